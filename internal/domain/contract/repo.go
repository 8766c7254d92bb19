package contract

//go:generate go run go.uber.org/mock/mockgen -source=repo.go -destination=../../../mocks/repo_mock.go -package=mocks

import (
	"context"

	"github.com/diegoclair/group-meeting-rotation/internal/domain/entity"
)

// Store persists the roster and the schedule as two documents.
// Load methods return nil and no error when the document does not exist yet.
type Store interface {
	LoadMembers(ctx context.Context) ([]entity.Member, error)
	SaveMembers(ctx context.Context, members []entity.Member) error
	LoadSchedule(ctx context.Context) ([]entity.Meeting, error)
	SaveSchedule(ctx context.Context, schedule []entity.Meeting) error
	Close() error
}
