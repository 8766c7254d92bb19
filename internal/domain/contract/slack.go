package contract

//go:generate go run go.uber.org/mock/mockgen -source=slack.go -destination=../../../mocks/slack_mock.go -package=mocks

import "github.com/slack-go/slack"

// SlackClient is the subset of the Slack API used to announce meetings
type SlackClient interface {
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
}
