package service

import (
	"github.com/diegoclair/group-meeting-rotation/internal/config"
	"github.com/diegoclair/group-meeting-rotation/internal/domain/contract"
)

type Instance struct {
	Meeting   contract.MeetingService
	Scheduler *scheduler
}

// NewInstance wires the meeting state owner and its weekly scheduler.
// slackClient may be nil when no Slack workspace is configured.
func NewInstance(cfg *config.Config, store contract.Store, sender contract.Sender, slackClient contract.SlackClient) *Instance {
	meetingService := newMeetingService(cfg, store, sender, slackClient)

	return &Instance{
		Meeting:   meetingService,
		Scheduler: newScheduler(meetingService, cfg.ReminderWeekday, cfg.ReminderTime, meetingService.loc),
	}
}
