package contract

//go:generate go run go.uber.org/mock/mockgen -source=mail.go -destination=../../../mocks/mail_mock.go -package=mocks

import (
	"context"

	"github.com/diegoclair/group-meeting-rotation/internal/mail"
)

// Sender delivers one email. Implementations apply their own timeout and retries.
type Sender interface {
	Send(ctx context.Context, msg mail.Message) error
}
