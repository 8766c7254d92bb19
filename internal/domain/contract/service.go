package contract

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../../../mocks/service_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/diegoclair/group-meeting-rotation/internal/domain"
	"github.com/diegoclair/group-meeting-rotation/internal/domain/entity"
)

type MeetingService interface {
	Init(ctx context.Context) error
	Login(passcode string) (domain.UserType, bool)
	IsAdmin(passcode string) bool

	Schedule() []entity.Meeting
	FullSchedule() []entity.Meeting
	Members() []entity.Member
	ExportMembers() ([]entity.Member, time.Time)
	Health() (entity.Snapshot, *entity.NextMeeting)

	SwapPresenters(ctx context.Context, date1, presenter1, date2, presenter2 string) (entity.Snapshot, error)
	SkipMeeting(ctx context.Context, date string) (entity.Snapshot, error)
	ChangeDate(ctx context.Context, oldDate, newDate string) (entity.Snapshot, error)
	ChangeTime(ctx context.Context, date, newTime string) (entity.Snapshot, error)

	AddMember(ctx context.Context, member entity.Member) (entity.Snapshot, error)
	RemoveMember(ctx context.Context, name string) (entity.Snapshot, error)
	RemovePresenter(ctx context.Context, date string, slot int) (entity.Snapshot, error)
	AssignPresenter(ctx context.Context, date string, slot int, memberName string) (entity.Snapshot, error)
	RefillSchedule(ctx context.Context) (entity.Snapshot, error)
	UpdateMembers(ctx context.Context, members []entity.Member) (entity.Snapshot, error)
	RegenerateSchedule(ctx context.Context, startDate string) (entity.Snapshot, error)

	RunReminderCheck(ctx context.Context) entity.ReminderReport
	SendPresenterReminder(ctx context.Context) (entity.ReminderReport, error)
	SendEveryoneReminder(ctx context.Context) (entity.ReminderReport, error)
}
