package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdNext     CommandType = "next"
	CmdSchedule CommandType = "schedule"
	CmdMembers  CommandType = "members"
	CmdHelp     CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}
	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	switch strings.ToLower(parts[0]) {
	case "next":
		cmd.Type = CmdNext
	case "schedule", "ls":
		cmd.Type = CmdSchedule
	case "members", "roster":
		cmd.Type = CmdMembers
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available Commands:*

• ` + "`/meeting next`" + ` - Show the next meeting and its presenters
• ` + "`/meeting schedule`" + ` - List upcoming meetings
• ` + "`/meeting members`" + ` - List the roster
• ` + "`/meeting help`" + ` - Show this message`
}
