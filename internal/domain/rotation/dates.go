package rotation

import (
	"fmt"
	"time"

	"github.com/diegoclair/group-meeting-rotation/internal/domain"
)

// ParseDate parses a YYYY-MM-DD calendar date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatDate renders the calendar date of t in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}

// AddDays shifts a YYYY-MM-DD date by n calendar days.
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}

// NextMonday returns day itself when it is a Monday, otherwise the following Monday.
func NextMonday(day time.Time) time.Time {
	offset := (int(time.Monday) - int(day.Weekday()) + 7) % 7
	return calendarDay(day).AddDate(0, 0, offset)
}

// calendarDay drops the clock and zone of t, keeping its calendar date.
func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
