package service

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/diegoclair/group-meeting-rotation/internal/domain"
	"github.com/diegoclair/group-meeting-rotation/internal/domain/entity"
	"github.com/diegoclair/group-meeting-rotation/internal/domain/rotation"
	"github.com/diegoclair/group-meeting-rotation/internal/mail"
	"github.com/slack-go/slack"
	"golang.org/x/sync/errgroup"
)

// RunReminderCheck is the weekly job. It drops past meetings, mails the whole
// roster when a meeting falls on the coming Monday and otherwise warns the
// presenters of the following one, then tops the schedule up when the roster
// is nearly exhausted. Mail failures are counted in the report, never returned.
func (s *meetingService) RunReminderCheck(ctx context.Context) entity.ReminderReport {
	s.mu.Lock()
	if err := s.ensureLoaded(ctx); err != nil {
		slog.Warn("reminder_check_unpersisted", "error", err)
	}
	today := s.today()
	schedule, removed := rotation.DropPast(s.schedule, today)
	s.schedule = schedule
	members := s.snapshot(false).Members
	s.mu.Unlock()

	report := entity.ReminderReport{Branch: domain.BranchNone, RemovedPast: removed}

	nextMonday := rotation.NextMonday(today)
	if m, ok := rotation.Find(schedule, rotation.FormatDate(nextMonday)); ok {
		report.Branch = domain.BranchEveryone
		report.Meeting = &m
		report.Sent, report.Failed = s.fanOut(ctx, s.everyoneMessages(m, members))
		report.SlackPosted = s.postAnnouncement(m)
	} else if m, ok := s.advanceMeeting(schedule, today, nextMonday); ok {
		report.Branch = domain.BranchPresenters
		report.Meeting = &m
		report.Sent, report.Failed = s.fanOut(ctx, s.presenterMessages(m))
	}

	if s.cfg.ReportEmail != "" {
		report.ReportSent = s.sendReport(ctx, schedule)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if rotation.NeedsNewRotation(s.schedule, s.members) {
		extended, err := rotation.Extend(s.schedule, s.members, today, s.shuffle)
		if err != nil {
			slog.Error("schedule_extend_failed", "error", err)
		} else {
			s.schedule = extended
			report.Extended = true
		}
	}

	if report.RemovedPast > 0 || report.Extended {
		report.SaveFailed = !s.loaded || !s.saveSchedule(ctx)
	}

	slog.Info("reminder_check_completed",
		"branch", report.Branch,
		"sent", report.Sent,
		"failed", report.Failed,
		"removed_past", report.RemovedPast,
		"extended", report.Extended,
	)
	return report
}

// SendPresenterReminder mails the presenters of the next upcoming meeting.
func (s *meetingService) SendPresenterReminder(ctx context.Context) (entity.ReminderReport, error) {
	m, err := s.nextForManualSend()
	if err != nil {
		return entity.ReminderReport{}, err
	}

	report := entity.ReminderReport{Branch: domain.BranchPresenters, Meeting: &m}
	report.Sent, report.Failed = s.fanOut(ctx, s.presenterMessages(m))
	slog.Info("presenter_reminder_sent", "date", m.Date, "sent", report.Sent, "failed", report.Failed)
	return report, nil
}

// SendEveryoneReminder mails the whole roster about the next upcoming meeting.
func (s *meetingService) SendEveryoneReminder(ctx context.Context) (entity.ReminderReport, error) {
	m, err := s.nextForManualSend()
	if err != nil {
		return entity.ReminderReport{}, err
	}

	report := entity.ReminderReport{Branch: domain.BranchEveryone, Meeting: &m}
	report.Sent, report.Failed = s.fanOut(ctx, s.everyoneMessages(m, s.Members()))
	slog.Info("everyone_reminder_sent", "date", m.Date, "sent", report.Sent, "failed", report.Failed)
	return report, nil
}

func (s *meetingService) nextForManualSend() (entity.Meeting, error) {
	if !s.cfg.MailConfigured() {
		return entity.Meeting{}, ErrMailNotConfigured
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := rotation.Earliest(s.schedule, s.today())
	if !ok {
		return entity.Meeting{}, ErrNoUpcomingMeeting
	}
	return m, nil
}

// advanceMeeting picks the meeting one week after nextMonday, or failing
// that the earliest meeting from today on.
func (s *meetingService) advanceMeeting(schedule []entity.Meeting, today, nextMonday time.Time) (entity.Meeting, bool) {
	if m, ok := rotation.Find(schedule, rotation.FormatDate(nextMonday.AddDate(0, 0, 7))); ok {
		return m, true
	}
	return rotation.Earliest(schedule, today)
}

func (s *meetingService) details() mail.Details {
	return mail.Details{
		GroupName:   s.cfg.GroupName,
		MeetingLink: s.cfg.MeetingLink,
		Location:    s.loc,
	}
}

func (s *meetingService) everyoneMessages(m entity.Meeting, members []entity.Member) []mail.Message {
	d := s.details()
	subject, body := mail.EveryoneReminder(d, m)

	var attachments []mail.Attachment
	invite, err := mail.MeetingInvite(d, m, s.now())
	if err != nil {
		slog.Warn("invite_build_failed", "date", m.Date, "error", err)
	} else {
		attachments = append(attachments, invite)
	}

	var msgs []mail.Message
	for _, member := range members {
		if member.Email == "" {
			continue
		}
		msg, err := mail.NewMessage([]string{member.Email}, subject, body, attachments...)
		if err != nil {
			slog.Warn("message_build_failed", "to", member.Email, "error", err)
			continue
		}
		msgs = append(msgs, msg)
	}
	return msgs
}

func (s *meetingService) presenterMessages(m entity.Meeting) []mail.Message {
	subject, body := mail.PresenterReminder(s.details(), m)

	var msgs []mail.Message
	for _, email := range m.PresenterEmails() {
		msg, err := mail.NewMessage([]string{email}, subject, body)
		if err != nil {
			slog.Warn("message_build_failed", "to", email, "error", err)
			continue
		}
		msgs = append(msgs, msg)
	}
	return msgs
}

func (s *meetingService) sendReport(ctx context.Context, schedule []entity.Meeting) bool {
	subject, body := mail.ScheduleReport(s.details(), rotation.Sorted(schedule), s.now().In(s.loc))
	msg := mail.Message{To: []string{s.cfg.ReportEmail}, Subject: subject, Text: body}

	if err := s.sender.Send(ctx, msg); err != nil {
		slog.Warn("schedule_report_failed", "to", s.cfg.ReportEmail, "error", err)
		return false
	}
	return true
}

// fanOut sends every message independently and tallies the outcomes.
func (s *meetingService) fanOut(ctx context.Context, msgs []mail.Message) (sent, failed int) {
	var okCount, failCount atomic.Int64

	var g errgroup.Group
	g.SetLimit(max(1, s.cfg.MailConcurrency))
	for _, msg := range msgs {
		g.Go(func() error {
			if err := s.sender.Send(ctx, msg); err != nil {
				failCount.Add(1)
				slog.Warn("reminder_send_failed", "to", msg.To, "error", err)
				return nil
			}
			okCount.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	return int(okCount.Load()), int(failCount.Load())
}

func (s *meetingService) postAnnouncement(m entity.Meeting) bool {
	if s.slack == nil || s.cfg.SlackChannelID == "" {
		return false
	}

	_, _, err := s.slack.PostMessage(
		s.cfg.SlackChannelID,
		slack.MsgOptionText(mail.SlackAnnouncement(s.details(), m), false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		slog.Warn("slack_post_failed", "channel", s.cfg.SlackChannelID, "error", err)
		return false
	}
	return true
}
