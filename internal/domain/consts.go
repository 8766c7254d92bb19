package domain

import "time"

// Layouts used for the persisted date and time fields of a meeting.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// MeetingIntervalDays is the spacing between consecutive meetings.
const MeetingIntervalDays = 14

// DefaultMeetingTime is assigned to generated meetings.
const DefaultMeetingTime = "09:00"

// DefaultMeetingDuration is the length of the calendar invite event.
const DefaultMeetingDuration = time.Hour

// Slot numbers of the two presenter positions on a meeting
const (
	SlotFirst  = 1
	SlotSecond = 2
)

// UserType is the access level granted by a passcode.
type UserType string

const (
	UserTypeAdmin UserType = "admin"
	UserTypeUser  UserType = "user"
)

// Reminder branches taken by the weekly check
const (
	BranchEveryone   = "everyone"
	BranchPresenters = "presenters"
	BranchNone       = "none"
)

// WeekdayCodes maps two-letter iCalendar weekday codes to Go weekdays.
var WeekdayCodes = map[string]time.Weekday{
	"MO": time.Monday,
	"TU": time.Tuesday,
	"WE": time.Wednesday,
	"TH": time.Thursday,
	"FR": time.Friday,
	"SA": time.Saturday,
	"SU": time.Sunday,
}

// Document keys under which the roster and schedule are persisted.
const (
	MembersKey  = "members"
	ScheduleKey = "schedule"
)
