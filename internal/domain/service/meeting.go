package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/diegoclair/group-meeting-rotation/internal/config"
	"github.com/diegoclair/group-meeting-rotation/internal/domain"
	"github.com/diegoclair/group-meeting-rotation/internal/domain/contract"
	"github.com/diegoclair/group-meeting-rotation/internal/domain/entity"
	"github.com/diegoclair/group-meeting-rotation/internal/domain/rotation"
	"github.com/diegoclair/group-meeting-rotation/internal/mail"
	"github.com/dustin/go-humanize"
)

var (
	ErrMemberNotFound    = errors.New("member not found")
	ErrMemberExists      = errors.New("a member with that name or email already exists")
	ErrInvalidMember     = errors.New("member name and a valid email are required")
	ErrMailNotConfigured = errors.New("email is not configured")
	ErrNoUpcomingMeeting = errors.New("no upcoming meeting")
	ErrStateUnavailable  = errors.New("stored state could not be loaded, try again later")
)

// meetingService owns the roster and the schedule. Every mutation holds mu
// across the change and the save that follows it. While loaded is false the
// in-memory state is a fallback: mutations are refused and nothing is written
// back to the store.
type meetingService struct {
	cfg    *config.Config
	store  contract.Store
	sender contract.Sender
	slack  contract.SlackClient

	loc     *time.Location
	now     func() time.Time
	shuffle rotation.Shuffle

	mu               sync.Mutex
	loaded           bool
	members          []entity.Member
	schedule         []entity.Meeting
	membersUpdatedAt time.Time
}

func newMeetingService(cfg *config.Config, store contract.Store, sender contract.Sender, slackClient contract.SlackClient) *meetingService {
	return &meetingService{
		cfg:    cfg,
		store:  store,
		sender: sender,
		slack:  slackClient,
		loc:    cfg.Location(),
		now:    time.Now,
	}
}

func (s *meetingService) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	members, schedule, err := s.read(ctx)
	if err != nil {
		slog.Warn("state_load_failed", "error", err, "fallback", "in-memory only, saves paused until a reload succeeds")
	}
	return s.apply(ctx, members, schedule, err == nil)
}

func (s *meetingService) read(ctx context.Context) ([]entity.Member, []entity.Meeting, error) {
	members, membersErr := s.store.LoadMembers(ctx)
	if membersErr != nil {
		membersErr = fmt.Errorf("failed to load members: %w", membersErr)
	}
	schedule, scheduleErr := s.store.LoadSchedule(ctx)
	if scheduleErr != nil {
		scheduleErr = fmt.Errorf("failed to load schedule: %w", scheduleErr)
	}
	return members, schedule, errors.Join(membersErr, scheduleErr)
}

// apply installs loaded documents. A missing roster becomes empty and a
// missing schedule is generated from the roster; the generated schedule is
// saved only when persisted is set.
func (s *meetingService) apply(ctx context.Context, members []entity.Member, schedule []entity.Meeting, persisted bool) error {
	if members == nil {
		slog.Warn("members_missing", "fallback", "empty roster")
		members = []entity.Member{}
	}
	s.members = members
	s.membersUpdatedAt = s.now()
	s.loaded = persisted

	if schedule != nil {
		s.schedule = schedule
		slog.Info("state_loaded", "members", len(s.members), "meetings", len(s.schedule), "persisted", persisted)
		return nil
	}

	start, err := s.startDate("")
	if err != nil {
		return fmt.Errorf("failed to resolve start date: %w", err)
	}
	s.schedule = rotation.Generate(s.members, start, s.shuffle)
	slog.Info("schedule_generated", "start", rotation.FormatDate(start), "meetings", len(s.schedule), "persisted", persisted)

	if persisted && !s.saveSchedule(ctx) {
		slog.Warn("schedule_initial_save_failed")
	}
	return nil
}

// ensureLoaded retries the load after a failed one and replaces the fallback
// state on success. Callers hold mu.
func (s *meetingService) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}

	members, schedule, err := s.read(ctx)
	if err != nil {
		slog.Warn("state_reload_failed", "error", err)
		return fmt.Errorf("%w: %w", ErrStateUnavailable, err)
	}
	if err := s.apply(ctx, members, schedule, true); err != nil {
		return err
	}
	slog.Info("state_reloaded", "members", len(s.members), "meetings", len(s.schedule))
	return nil
}

// Login resolves the access level granted by passcode. The admin secret wins
// when both secrets are equal.
func (s *meetingService) Login(passcode string) (domain.UserType, bool) {
	if secretMatches(passcode, s.cfg.AdminPasscode) {
		return domain.UserTypeAdmin, true
	}
	if secretMatches(passcode, s.cfg.Passcode) {
		return domain.UserTypeUser, true
	}
	return "", false
}

func (s *meetingService) IsAdmin(passcode string) bool {
	return secretMatches(passcode, s.cfg.AdminPasscode)
}

func secretMatches(given, secret string) bool {
	if secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(given), []byte(secret)) == 1
}

// Schedule returns the meetings dated today or later.
func (s *meetingService) Schedule() []entity.Meeting {
	s.mu.Lock()
	defer s.mu.Unlock()
	return rotation.Upcoming(s.schedule, s.today())
}

// FullSchedule includes meetings that already took place.
func (s *meetingService) FullSchedule() []entity.Meeting {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.schedule)
}

func (s *meetingService) Members() []entity.Member {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.members)
}

func (s *meetingService) ExportMembers() ([]entity.Member, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.members), s.membersUpdatedAt
}

func (s *meetingService) Health() (entity.Snapshot, *entity.NextMeeting) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.snapshot(false)
	m, ok := rotation.Earliest(s.schedule, s.today())
	if !ok {
		return snapshot, nil
	}

	next := &entity.NextMeeting{Meeting: m}
	if start, err := mail.MeetingStart(m, s.loc); err == nil {
		next.StartsIn = humanize.RelTime(start, s.now(), "ago", "from now")
	}
	return snapshot, next
}

func (s *meetingService) SwapPresenters(ctx context.Context, date1, presenter1, date2, presenter2 string) (entity.Snapshot, error) {
	return s.updateSchedule(ctx, "swap_presenters", func(schedule []entity.Meeting) ([]entity.Meeting, error) {
		return rotation.Swap(schedule, date1, presenter1, date2, presenter2)
	})
}

func (s *meetingService) SkipMeeting(ctx context.Context, date string) (entity.Snapshot, error) {
	return s.updateSchedule(ctx, "skip_meeting", func(schedule []entity.Meeting) ([]entity.Meeting, error) {
		return rotation.Skip(schedule, date)
	})
}

func (s *meetingService) ChangeDate(ctx context.Context, oldDate, newDate string) (entity.Snapshot, error) {
	return s.updateSchedule(ctx, "change_date", func(schedule []entity.Meeting) ([]entity.Meeting, error) {
		return rotation.ChangeDate(schedule, oldDate, newDate)
	})
}

func (s *meetingService) ChangeTime(ctx context.Context, date, newTime string) (entity.Snapshot, error) {
	return s.updateSchedule(ctx, "change_time", func(schedule []entity.Meeting) ([]entity.Meeting, error) {
		return rotation.ChangeTime(schedule, date, newTime)
	})
}

func (s *meetingService) RemovePresenter(ctx context.Context, date string, slot int) (entity.Snapshot, error) {
	return s.updateSchedule(ctx, "remove_presenter", func(schedule []entity.Meeting) ([]entity.Meeting, error) {
		return rotation.RemovePresenter(schedule, date, slot)
	})
}

func (s *meetingService) AssignPresenter(ctx context.Context, date string, slot int, memberName string) (entity.Snapshot, error) {
	return s.updateSchedule(ctx, "assign_presenter", func(schedule []entity.Meeting) ([]entity.Meeting, error) {
		idx := s.memberIndex(memberName)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s", ErrMemberNotFound, memberName)
		}
		return rotation.AssignPresenter(schedule, date, slot, s.members[idx])
	})
}

func (s *meetingService) RefillSchedule(ctx context.Context) (entity.Snapshot, error) {
	return s.updateSchedule(ctx, "refill_schedule", func(schedule []entity.Meeting) ([]entity.Meeting, error) {
		return rotation.Refill(schedule, s.members, s.today())
	})
}

func (s *meetingService) RegenerateSchedule(ctx context.Context, startDate string) (entity.Snapshot, error) {
	return s.updateSchedule(ctx, "regenerate_schedule", func([]entity.Meeting) ([]entity.Meeting, error) {
		start, err := s.startDate(startDate)
		if err != nil {
			return nil, err
		}
		return rotation.Generate(s.members, start, s.shuffle), nil
	})
}

func (s *meetingService) AddMember(ctx context.Context, member entity.Member) (entity.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return entity.Snapshot{}, err
	}

	member, err := normalizeMember(member)
	if err != nil {
		return entity.Snapshot{}, err
	}
	if err := checkUnique(append(slices.Clone(s.members), member)); err != nil {
		return entity.Snapshot{}, err
	}

	s.members = append(s.members, member)
	s.membersUpdatedAt = s.now()
	slog.Info("member_added", "name", member.Name)

	return s.snapshot(!s.saveMembers(ctx)), nil
}

// RemoveMember drops name from the roster and clears it from every slot dated
// today or later.
func (s *meetingService) RemoveMember(ctx context.Context, name string) (entity.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return entity.Snapshot{}, err
	}

	idx := s.memberIndex(name)
	if idx < 0 {
		return entity.Snapshot{}, fmt.Errorf("%w: %s", ErrMemberNotFound, name)
	}

	s.members = slices.Delete(s.members, idx, idx+1)
	s.membersUpdatedAt = s.now()
	s.schedule = rotation.ClearMember(s.schedule, name, s.today())
	slog.Info("member_removed", "name", name)

	membersSaved := s.saveMembers(ctx)
	scheduleSaved := s.saveSchedule(ctx)
	return s.snapshot(!membersSaved || !scheduleSaved), nil
}

// UpdateMembers replaces the roster and regenerates the schedule from the
// default start date.
func (s *meetingService) UpdateMembers(ctx context.Context, members []entity.Member) (entity.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return entity.Snapshot{}, err
	}

	roster := make([]entity.Member, 0, len(members))
	for _, m := range members {
		m, err := normalizeMember(m)
		if err != nil {
			return entity.Snapshot{}, err
		}
		roster = append(roster, m)
	}
	if err := checkUnique(roster); err != nil {
		return entity.Snapshot{}, err
	}

	start, err := s.startDate("")
	if err != nil {
		return entity.Snapshot{}, err
	}

	s.members = roster
	s.membersUpdatedAt = s.now()
	s.schedule = rotation.Generate(roster, start, s.shuffle)
	slog.Info("members_replaced", "members", len(roster), "meetings", len(s.schedule))

	membersSaved := s.saveMembers(ctx)
	scheduleSaved := s.saveSchedule(ctx)
	return s.snapshot(!membersSaved || !scheduleSaved), nil
}

func (s *meetingService) updateSchedule(ctx context.Context, operation string, fn func([]entity.Meeting) ([]entity.Meeting, error)) (entity.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return entity.Snapshot{}, err
	}

	schedule, err := fn(s.schedule)
	if err != nil {
		return entity.Snapshot{}, err
	}
	s.schedule = schedule
	slog.Info("schedule_updated", "operation", operation, "meetings", len(schedule))

	return s.snapshot(!s.saveSchedule(ctx)), nil
}

// saveMembers persists the roster and reports success. A failure keeps the
// in-memory state.
func (s *meetingService) saveMembers(ctx context.Context) bool {
	if err := s.store.SaveMembers(ctx, s.members); err != nil {
		slog.Error("members_save_failed", "error", err)
		return false
	}
	return true
}

func (s *meetingService) saveSchedule(ctx context.Context) bool {
	if err := s.store.SaveSchedule(ctx, s.schedule); err != nil {
		slog.Error("schedule_save_failed", "error", err)
		return false
	}
	return true
}

func (s *meetingService) snapshot(saveFailed bool) entity.Snapshot {
	return entity.Snapshot{
		Members:    slices.Clone(s.members),
		Schedule:   slices.Clone(s.schedule),
		SaveFailed: saveFailed,
	}
}

// today is the current calendar date in the configured zone, as UTC midnight.
func (s *meetingService) today() time.Time {
	now := s.now().In(s.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// startDate parses an explicit start date, or falls back to START_DATE when it
// is not in the past, or to the next Monday.
func (s *meetingService) startDate(explicit string) (time.Time, error) {
	if explicit != "" {
		return rotation.ParseDate(explicit)
	}

	today := s.today()
	if s.cfg.StartDate != "" {
		start, err := rotation.ParseDate(s.cfg.StartDate)
		if err != nil {
			slog.Warn("config_invalid_start_date", "start_date", s.cfg.StartDate)
		} else if !start.Before(today) {
			return start, nil
		}
	}
	return rotation.NextMonday(today), nil
}

func (s *meetingService) memberIndex(name string) int {
	return slices.IndexFunc(s.members, func(m entity.Member) bool {
		return m.Name == name
	})
}

func normalizeMember(m entity.Member) (entity.Member, error) {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	if m.Name == "" || !strings.Contains(m.Email, "@") {
		return entity.Member{}, ErrInvalidMember
	}
	return m, nil
}

// checkUnique rejects rosters that repeat a name, or an email in any letter case.
func checkUnique(members []entity.Member) error {
	names := mapset.NewThreadUnsafeSet[string]()
	emails := mapset.NewThreadUnsafeSet[string]()
	for _, m := range members {
		if !names.Add(m.Name) {
			return fmt.Errorf("%w: %s", ErrMemberExists, m.Name)
		}
		if !emails.Add(strings.ToLower(m.Email)) {
			return fmt.Errorf("%w: %s", ErrMemberExists, m.Email)
		}
	}
	return nil
}
