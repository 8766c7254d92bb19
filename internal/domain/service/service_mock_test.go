package service

import (
	"testing"
	"time"

	"github.com/diegoclair/group-meeting-rotation/internal/config"
	"github.com/diegoclair/group-meeting-rotation/internal/domain/entity"
	"github.com/diegoclair/group-meeting-rotation/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockStore       *mocks.MockStore
	mockSender      *mocks.MockSender
	mockSlackClient *mocks.MockSlackClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	m = allMocks{
		mockStore:       mocks.NewMockStore(ctrl),
		mockSender:      mocks.NewMockSender(ctrl),
		mockSlackClient: mocks.NewMockSlackClient(ctrl),
	}

	return
}

func testConfig() *config.Config {
	return &config.Config{
		Passcode:        "user-secret",
		AdminPasscode:   "admin-secret",
		GroupName:       "Lab Meeting",
		MeetingLink:     "https://meet.lab.test/weekly",
		Timezone:        "UTC",
		ReminderWeekday: "FR",
		ReminderTime:    "09:00",
		MailConcurrency: 4,
	}
}

// newTestService builds a service frozen at now with identity shuffling and
// the given state already loaded.
func newTestService(t *testing.T, cfg *config.Config, m allMocks, now time.Time, members []entity.Member, schedule []entity.Meeting) *meetingService {
	t.Helper()

	svc := newMeetingService(cfg, m.mockStore, m.mockSender, m.mockSlackClient)
	require.NotNil(t, svc)

	svc.now = func() time.Time { return now }
	svc.shuffle = noShuffle
	svc.loaded = true
	svc.members = members
	svc.schedule = schedule
	return svc
}

func noShuffle(int, func(i, j int)) {}

func roster(names ...string) []entity.Member {
	members := make([]entity.Member, 0, len(names))
	for _, n := range names {
		members = append(members, entity.Member{Name: n, Email: n + "@lab.test"})
	}
	return members
}

func meeting(date, p1, p2 string) entity.Meeting {
	m := entity.Meeting{Date: date, Time: "09:00", Presenter1: p1, Presenter2: p2}
	if p1 != "" {
		m.Presenter1Email = p1 + "@lab.test"
	}
	if p2 != "" {
		m.Presenter2Email = p2 + "@lab.test"
	}
	return m
}

// at returns 10:00 UTC on a YYYY-MM-DD date.
func at(date string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", date+" 10:00")
	if err != nil {
		panic(err)
	}
	return t
}
