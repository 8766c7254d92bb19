package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/diegoclair/group-meeting-rotation/internal/domain"
	"github.com/diegoclair/group-meeting-rotation/internal/domain/contract"
	"github.com/teambition/rrule-go"
)

// retryWait is how long the loop sleeps when the trigger cannot be computed.
const retryWait = time.Hour

var rruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
	time.Sunday:    rrule.SU,
}

// scheduler fires the reminder check once a week at weekday/at in loc.
type scheduler struct {
	svc      contract.MeetingService
	weekday  string
	at       string
	loc      *time.Location
	now      func() time.Time
	mu       sync.Mutex
	stopChan chan struct{}
	running  bool
}

func newScheduler(svc contract.MeetingService, weekday, at string, loc *time.Location) *scheduler {
	return &scheduler{
		svc:      svc,
		weekday:  weekday,
		at:       at,
		loc:      loc,
		now:      time.Now,
		running:  false,
	}
}

// Start launches the loop. A stopped scheduler can be started again.
func (s *scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.stopChan = make(chan struct{})
	slog.Info("scheduler_starting", "weekday", s.weekday, "time", s.at, "timezone", s.loc.String())
	go s.mainLoop(s.stopChan)
}

func (s *scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	slog.Info("scheduler_stopping")
	close(s.stopChan)
	s.running = false
}

func (s *scheduler) isRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *scheduler) mainLoop(stop <-chan struct{}) {
	for {
		wait := retryWait
		next, err := nextRun(s.weekday, s.at, s.loc, s.now())
		if err != nil {
			slog.Error("scheduler_next_run_failed", "error", err)
		} else {
			wait = next.Sub(s.now())
			slog.Info("scheduler_next_run", "at", next.Format(time.RFC3339), "in", wait.Round(time.Second).String())
		}

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
			if err == nil {
				s.svc.RunReminderCheck(context.Background())
			}
		case <-stop:
			timer.Stop()
			return
		}
	}
}

// nextRun returns the first weekly trigger strictly after after.
func nextRun(weekday, at string, loc *time.Location, after time.Time) (time.Time, error) {
	day, ok := domain.WeekdayCodes[weekday]
	if !ok {
		return time.Time{}, fmt.Errorf("invalid reminder weekday %q", weekday)
	}

	clock, err := time.Parse(domain.TimeLayout, at)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reminder time %q: %w", at, err)
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Dtstart:   after.In(loc),
		Byweekday: []rrule.Weekday{rruleWeekdays[day]},
		Byhour:    []int{clock.Hour()},
		Byminute:  []int{clock.Minute()},
		Bysecond:  []int{0},
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to build reminder rule: %w", err)
	}

	next := rule.After(after, false)
	if next.IsZero() {
		return time.Time{}, fmt.Errorf("no reminder occurrence after %s", after.Format(time.RFC3339))
	}
	return next, nil
}
