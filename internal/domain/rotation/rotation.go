// Package rotation holds the schedule bookkeeping: generating presenter pairs,
// skipping, re-dating, swapping and refilling slots. Every function works on a
// copy of the schedule it receives.
package rotation

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"
	"slices"
	"sort"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/diegoclair/group-meeting-rotation/internal/domain"
	"github.com/diegoclair/group-meeting-rotation/internal/domain/entity"
)

var (
	ErrMeetingNotFound   = errors.New("meeting not found")
	ErrPresenterNotFound = errors.New("presenter is not assigned to that meeting")
	ErrInvalidTime       = errors.New("invalid time format, use HH:MM (24-hour)")
	ErrInvalidDate       = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidSlot       = errors.New("slot must be 1 or 2")
	ErrDateConflict      = errors.New("another meeting is already scheduled on that date")
)

var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Shuffle permutes n elements through swap, with the signature of rand.Shuffle.
type Shuffle func(n int, swap func(i, j int))

// Generate shuffles the roster and pairs consecutive members into meetings
// spaced MeetingIntervalDays apart from start. An odd roster leaves the last
// second slot empty. A nil shuffle uses math/rand/v2.
func Generate(members []entity.Member, start time.Time, shuffle Shuffle) []entity.Meeting {
	if shuffle == nil {
		shuffle = rand.Shuffle
	}

	shuffled := slices.Clone(members)
	shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return pairUp(shuffled, calendarDay(start))
}

func pairUp(members []entity.Member, start time.Time) []entity.Meeting {
	var schedule []entity.Meeting
	for i := 0; i < len(members); i += 2 {
		meeting := entity.Meeting{
			Date:            FormatDate(start.AddDate(0, 0, (i/2)*domain.MeetingIntervalDays)),
			Time:            domain.DefaultMeetingTime,
			Presenter1:      members[i].Name,
			Presenter1Email: members[i].Email,
		}
		if i+1 < len(members) {
			meeting.Presenter2 = members[i+1].Name
			meeting.Presenter2Email = members[i+1].Email
		}
		schedule = append(schedule, meeting)
	}
	return schedule
}

// Skip removes the meeting on date and appends its presenters and time as a new
// meeting after the current last one. Later meetings keep their own dates.
// A single-meeting schedule just moves that meeting one interval later.
func Skip(schedule []entity.Meeting, date string) ([]entity.Meeting, error) {
	idx := indexOf(schedule, date)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMeetingNotFound, date)
	}

	out := slices.Clone(schedule)
	if len(out) == 1 {
		next, err := AddDays(out[0].Date, domain.MeetingIntervalDays)
		if err != nil {
			return nil, err
		}
		out[0].Date = next
		return out, nil
	}

	skipped := out[idx]
	out = slices.Delete(out, idx, idx+1)

	next, err := AddDays(out[len(out)-1].Date, domain.MeetingIntervalDays)
	if err != nil {
		return nil, err
	}
	skipped.Date = next
	out = append(out, skipped)

	if err := checkUniqueDates(out); err != nil {
		return nil, err
	}
	return out, nil
}

// ChangeDate moves the meeting on oldDate to newDate and re-dates every later
// meeting to keep the fixed interval from its predecessor.
func ChangeDate(schedule []entity.Meeting, oldDate, newDate string) ([]entity.Meeting, error) {
	if _, err := ParseDate(newDate); err != nil {
		return nil, err
	}

	idx := indexOf(schedule, oldDate)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMeetingNotFound, oldDate)
	}

	out := slices.Clone(schedule)
	out[idx].Date = newDate
	for i := idx + 1; i < len(out); i++ {
		next, err := AddDays(out[i-1].Date, domain.MeetingIntervalDays)
		if err != nil {
			return nil, err
		}
		out[i].Date = next
	}

	if err := checkUniqueDates(out); err != nil {
		return nil, err
	}
	return out, nil
}

// ValidTime reports whether t is a 24-hour HH:MM time.
func ValidTime(t string) bool {
	return timePattern.MatchString(t)
}

// ChangeTime rewrites the time of the meeting on date.
func ChangeTime(schedule []entity.Meeting, date, newTime string) ([]entity.Meeting, error) {
	if !ValidTime(newTime) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTime, newTime)
	}

	idx := indexOf(schedule, date)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMeetingNotFound, date)
	}

	out := slices.Clone(schedule)
	out[idx].Time = newTime
	return out, nil
}

// Swap exchanges the slot held by name1 on date1 with the slot held by name2 on date2.
func Swap(schedule []entity.Meeting, date1, name1, date2, name2 string) ([]entity.Meeting, error) {
	i1 := indexOf(schedule, date1)
	if i1 < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMeetingNotFound, date1)
	}
	i2 := indexOf(schedule, date2)
	if i2 < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMeetingNotFound, date2)
	}

	s1 := slotOf(schedule[i1], name1)
	if s1 == 0 {
		return nil, fmt.Errorf("%w: %s on %s", ErrPresenterNotFound, name1, date1)
	}
	s2 := slotOf(schedule[i2], name2)
	if s2 == 0 {
		return nil, fmt.Errorf("%w: %s on %s", ErrPresenterNotFound, name2, date2)
	}

	out := slices.Clone(schedule)
	n1, e1 := getSlot(out[i1], s1)
	n2, e2 := getSlot(out[i2], s2)
	setSlot(&out[i1], s1, n2, e2)
	setSlot(&out[i2], s2, n1, e1)
	return out, nil
}

// Refill places roster members that hold no slot into the empty slots of
// meetings dated today or later, in roster order. Members left over are
// appended as new meetings after the last one.
func Refill(schedule []entity.Meeting, members []entity.Member, today time.Time) ([]entity.Meeting, error) {
	out := slices.Clone(schedule)

	scheduled := presenterNames(out)
	var queue []entity.Member
	for _, member := range members {
		if member.Name == "" || scheduled.Contains(member.Name) {
			continue
		}
		scheduled.Add(member.Name)
		queue = append(queue, member)
	}

	todayStr := FormatDate(today)
	for i := range out {
		if len(queue) == 0 {
			break
		}
		if out[i].Date < todayStr {
			continue
		}
		if out[i].Presenter1 == "" {
			setSlot(&out[i], domain.SlotFirst, queue[0].Name, queue[0].Email)
			queue = queue[1:]
		}
		if len(queue) > 0 && out[i].Presenter2 == "" {
			setSlot(&out[i], domain.SlotSecond, queue[0].Name, queue[0].Email)
			queue = queue[1:]
		}
	}

	if len(queue) == 0 {
		return out, nil
	}

	start, err := nextStart(out, today)
	if err != nil {
		return nil, err
	}
	out = append(out, pairUp(queue, start)...)
	if err := checkUniqueDates(out); err != nil {
		return nil, err
	}
	return out, nil
}

// ClearMember empties every slot held by name on meetings dated today or later.
// Earlier meetings are left as they were.
func ClearMember(schedule []entity.Meeting, name string, today time.Time) []entity.Meeting {
	out := slices.Clone(schedule)
	todayStr := FormatDate(today)
	for i := range out {
		if out[i].Date < todayStr {
			continue
		}
		if out[i].Presenter1 == name {
			setSlot(&out[i], domain.SlotFirst, "", "")
		}
		if out[i].Presenter2 == name {
			setSlot(&out[i], domain.SlotSecond, "", "")
		}
	}
	return out
}

// RemovePresenter clears one slot of the meeting on date.
func RemovePresenter(schedule []entity.Meeting, date string, slot int) ([]entity.Meeting, error) {
	return writeSlot(schedule, date, slot, "", "")
}

// AssignPresenter writes member into one slot of the meeting on date.
func AssignPresenter(schedule []entity.Meeting, date string, slot int, member entity.Member) ([]entity.Meeting, error) {
	return writeSlot(schedule, date, slot, member.Name, member.Email)
}

func writeSlot(schedule []entity.Meeting, date string, slot int, name, email string) ([]entity.Meeting, error) {
	if slot != domain.SlotFirst && slot != domain.SlotSecond {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSlot, slot)
	}

	idx := indexOf(schedule, date)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMeetingNotFound, date)
	}

	out := slices.Clone(schedule)
	setSlot(&out[idx], slot, name, email)
	return out, nil
}

// DropPast removes meetings dated before today and reports how many were removed.
func DropPast(schedule []entity.Meeting, today time.Time) ([]entity.Meeting, int) {
	todayStr := FormatDate(today)
	out := slices.DeleteFunc(slices.Clone(schedule), func(m entity.Meeting) bool {
		return m.Date < todayStr
	})
	return out, len(schedule) - len(out)
}

// Upcoming returns the meetings dated today or later, in schedule order.
func Upcoming(schedule []entity.Meeting, today time.Time) []entity.Meeting {
	upcoming, _ := DropPast(schedule, today)
	return upcoming
}

// Sorted returns a copy of schedule ordered by date.
func Sorted(schedule []entity.Meeting) []entity.Meeting {
	out := slices.Clone(schedule)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

// Find returns the meeting on date.
func Find(schedule []entity.Meeting, date string) (entity.Meeting, bool) {
	idx := indexOf(schedule, date)
	if idx < 0 {
		return entity.Meeting{}, false
	}
	return schedule[idx], true
}

// Earliest returns the first meeting by date that is on or after today.
func Earliest(schedule []entity.Meeting, today time.Time) (entity.Meeting, bool) {
	upcoming := Sorted(Upcoming(schedule, today))
	if len(upcoming) == 0 {
		return entity.Meeting{}, false
	}
	return upcoming[0], true
}

// NeedsNewRotation reports whether fewer than a third of the roster still
// appear as presenters anywhere in the schedule.
func NeedsNewRotation(schedule []entity.Meeting, members []entity.Member) bool {
	if len(members) == 0 {
		return false
	}

	names := presenterNames(schedule)
	appearing := 0
	for _, member := range members {
		if names.Contains(member.Name) {
			appearing++
		}
	}
	return appearing*3 < len(members)
}

// Extend appends a freshly shuffled rotation of the whole roster one interval
// after the last meeting, or from the next Monday when the schedule is empty.
func Extend(schedule []entity.Meeting, members []entity.Member, today time.Time, shuffle Shuffle) ([]entity.Meeting, error) {
	start, err := nextStart(schedule, today)
	if err != nil {
		return nil, err
	}

	out := slices.Clone(schedule)
	out = append(out, Generate(members, start, shuffle)...)
	if err := checkUniqueDates(out); err != nil {
		return nil, err
	}
	return out, nil
}

// nextStart is one interval after the latest meeting date. A re-dated
// meeting can leave the schedule out of date order, so the last entry is not
// necessarily the latest.
func nextStart(schedule []entity.Meeting, today time.Time) (time.Time, error) {
	if len(schedule) == 0 {
		return NextMonday(today), nil
	}
	latest := slices.MaxFunc(schedule, func(a, b entity.Meeting) int {
		return strings.Compare(a.Date, b.Date)
	})
	last, err := ParseDate(latest.Date)
	if err != nil {
		return time.Time{}, err
	}
	return last.AddDate(0, 0, domain.MeetingIntervalDays), nil
}

func presenterNames(schedule []entity.Meeting) mapset.Set[string] {
	names := mapset.NewThreadUnsafeSet[string]()
	for _, m := range schedule {
		if m.Presenter1 != "" {
			names.Add(m.Presenter1)
		}
		if m.Presenter2 != "" {
			names.Add(m.Presenter2)
		}
	}
	return names
}

func checkUniqueDates(schedule []entity.Meeting) error {
	seen := mapset.NewThreadUnsafeSet[string]()
	for _, m := range schedule {
		if !seen.Add(m.Date) {
			return fmt.Errorf("%w: %s", ErrDateConflict, m.Date)
		}
	}
	return nil
}

func indexOf(schedule []entity.Meeting, date string) int {
	return slices.IndexFunc(schedule, func(m entity.Meeting) bool {
		return m.Date == date
	})
}

func slotOf(m entity.Meeting, name string) int {
	switch {
	case name == "":
		return 0
	case m.Presenter1 == name:
		return domain.SlotFirst
	case m.Presenter2 == name:
		return domain.SlotSecond
	}
	return 0
}

func getSlot(m entity.Meeting, slot int) (string, string) {
	if slot == domain.SlotFirst {
		return m.Presenter1, m.Presenter1Email
	}
	return m.Presenter2, m.Presenter2Email
}

func setSlot(m *entity.Meeting, slot int, name, email string) {
	if slot == domain.SlotFirst {
		m.Presenter1, m.Presenter1Email = name, email
		return
	}
	m.Presenter2, m.Presenter2Email = name, email
}
