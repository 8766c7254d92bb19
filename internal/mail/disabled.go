package mail

import (
	"context"
	"log/slog"
)

// DisabledSender fails every send. It stands in for the relay when no API key is configured
// so that startup succeeds and sends fail loudly.
type DisabledSender struct{}

func NewDisabledSender() *DisabledSender {
	return &DisabledSender{}
}

func (DisabledSender) Send(_ context.Context, msg Message) error {
	slog.Warn("mail_send_disabled", "to", msg.To, "subject", msg.Subject)
	return ErrNotConfigured
}
