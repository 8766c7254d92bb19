package mail

import (
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/group-meeting-rotation/internal/domain"
	"github.com/diegoclair/group-meeting-rotation/internal/domain/entity"
)

const unassigned = "TBD"

// Details carries the group-wide values printed in every reminder.
type Details struct {
	GroupName   string
	MeetingLink string
	Location    *time.Location
}

// EveryoneReminder announces an imminent meeting to the whole roster.
func EveryoneReminder(d Details, m entity.Meeting) (subject, body string) {
	subject = fmt.Sprintf("%s Reminder: %s", d.GroupName, m.Date)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s Reminder\n\n", d.GroupName)
	fmt.Fprintf(&b, "- **Date:** %s\n", m.Date)
	fmt.Fprintf(&b, "- **Time:** %s (%s)\n", meetingTime(m), zoneName(d))
	fmt.Fprintf(&b, "- **Presenters:** %s and %s\n", presenter(m.Presenter1), presenter(m.Presenter2))
	if d.MeetingLink != "" {
		fmt.Fprintf(&b, "- **Join:** %s\n", d.MeetingLink)
	}
	b.WriteString("\nA calendar invite is attached. Please join us for the group meeting!\n")
	return subject, b.String()
}

// PresenterReminder tells the presenters of an upcoming meeting to prepare.
func PresenterReminder(d Details, m entity.Meeting) (subject, body string) {
	subject = fmt.Sprintf("Presentation Reminder: %s", m.Date)

	var b strings.Builder
	b.WriteString("# Presentation Reminder\n\n")
	fmt.Fprintf(&b, "You are scheduled to present at the %s on **%s** at **%s** (%s).\n\n",
		d.GroupName, m.Date, meetingTime(m), zoneName(d))
	fmt.Fprintf(&b, "Presenters: %s and %s\n\n", presenter(m.Presenter1), presenter(m.Presenter2))
	b.WriteString("Please prepare your presentation.\n")
	return subject, b.String()
}

// ScheduleReport lists every meeting by date.
func ScheduleReport(d Details, schedule []entity.Meeting, generatedAt time.Time) (subject, body string) {
	subject = fmt.Sprintf("%s Schedule Report: %s", d.GroupName, generatedAt.Format(domain.DateLayout))

	var b strings.Builder
	fmt.Fprintf(&b, "%s schedule as of %s\n\n", d.GroupName, generatedAt.Format(time.RFC1123))
	if len(schedule) == 0 {
		b.WriteString("No meetings scheduled.\n")
		return subject, b.String()
	}
	for _, m := range schedule {
		fmt.Fprintf(&b, "- %s %s: %s, %s\n", m.Date, meetingTime(m), presenter(m.Presenter1), presenter(m.Presenter2))
	}
	return subject, b.String()
}

// SlackAnnouncement is the chat version of the roster reminder.
func SlackAnnouncement(d Details, m entity.Meeting) string {
	text := fmt.Sprintf(":calendar: *%s* on %s at %s (%s)\nPresenters: %s and %s",
		d.GroupName, m.Date, meetingTime(m), zoneName(d), presenter(m.Presenter1), presenter(m.Presenter2))
	if d.MeetingLink != "" {
		text += "\nJoin: " + d.MeetingLink
	}
	return text
}

func presenter(name string) string {
	if name == "" {
		return unassigned
	}
	return name
}

func meetingTime(m entity.Meeting) string {
	if m.Time == "" {
		return domain.DefaultMeetingTime
	}
	return m.Time
}

func zoneName(d Details) string {
	if d.Location == nil {
		return time.UTC.String()
	}
	return d.Location.String()
}
