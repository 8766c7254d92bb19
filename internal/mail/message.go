package mail

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned by the disabled sender when no mail credentials were provided.
var ErrNotConfigured = errors.New("mail delivery is not configured")

type Message struct {
	To          []string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
}

type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// NewMessage builds a message whose plain text body is markdown and whose HTML
// body is the rendered markdown.
func NewMessage(to []string, subject, markdown string, attachments ...Attachment) (Message, error) {
	html, err := RenderHTML(markdown)
	if err != nil {
		return Message{}, fmt.Errorf("failed to render email body: %w", err)
	}

	return Message{
		To:          to,
		Subject:     subject,
		Text:        markdown,
		HTML:        html,
		Attachments: attachments,
	}, nil
}
