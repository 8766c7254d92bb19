package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/diegoclair/group-meeting-rotation/pkg/retry"
	"github.com/resend/resend-go/v2"
)

// ResendSender sends emails through the Resend API.
type ResendSender struct {
	client  *resend.Client
	from    string
	replyTo string
	policy  retry.Policy
}

func NewResendSender(apiKey, from, replyTo string, policy retry.Policy) *ResendSender {
	return NewResendSenderWithClient(newResendClient(apiKey), from, replyTo, policy)
}

type statusKey struct{}

// responseStatus receives the HTTP status of the request it is attached to.
type responseStatus struct {
	code int
}

// statusTransport copies the response status into the request's responseStatus.
type statusTransport struct {
	base http.RoundTripper
}

func (t statusTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if status, ok := req.Context().Value(statusKey{}).(*responseStatus); ok && resp != nil {
		status.code = resp.StatusCode
	}
	return resp, err
}

func newResendClient(apiKey string) *resend.Client {
	return resend.NewCustomClient(&http.Client{Transport: statusTransport{base: http.DefaultTransport}}, apiKey)
}

// rejected reports a 4xx answer other than 429: the request itself is wrong.
func rejected(code int) bool {
	return code >= http.StatusBadRequest && code < http.StatusInternalServerError && code != http.StatusTooManyRequests
}

// NewResendSenderWithClient lets callers point the sender at a custom Resend client.
func NewResendSenderWithClient(client *resend.Client, from, replyTo string, policy retry.Policy) *ResendSender {
	return &ResendSender{
		client:  client,
		from:    from,
		replyTo: replyTo,
		policy:  policy,
	}
}

// Send delivers msg, retrying transient failures according to the sender's policy.
func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      msg.To,
		Subject: msg.Subject,
		Text:    msg.Text,
		Html:    msg.HTML,
	}
	if s.replyTo != "" {
		params.ReplyTo = s.replyTo
	}
	for _, a := range msg.Attachments {
		params.Attachments = append(params.Attachments, &resend.Attachment{
			Filename:    a.Filename,
			Content:     a.Content,
			ContentType: a.ContentType,
		})
	}

	var messageID string
	err := retry.Do(ctx, s.policy, func(ctx context.Context) error {
		status := &responseStatus{}
		sent, err := s.client.Emails.SendWithContext(context.WithValue(ctx, statusKey{}, status), params)
		if err != nil {
			if rejected(status.code) {
				return retry.Permanent(err)
			}
			return err
		}
		messageID = sent.Id
		return nil
	})
	if err != nil {
		slog.Error("resend_send_failed", "error", err, "to", msg.To, "subject", msg.Subject)
		return fmt.Errorf("resend send failed: %w", err)
	}

	slog.Info("resend_sent", "message_id", messageID, "to", msg.To, "subject", msg.Subject)
	return nil
}
