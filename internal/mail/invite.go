package mail

import (
	"bytes"
	"fmt"
	"time"

	"github.com/diegoclair/group-meeting-rotation/internal/domain"
	"github.com/diegoclair/group-meeting-rotation/internal/domain/entity"
	"github.com/emersion/go-ical"
	"github.com/google/uuid"
)

const inviteProductID = "-//diegoclair//group-meeting-rotation//EN"

// MeetingStart resolves the meeting's date and time in loc.
func MeetingStart(m entity.Meeting, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	start, err := time.ParseInLocation(domain.DateLayout+" "+domain.TimeLayout, m.Date+" "+meetingTime(m), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse meeting start: %w", err)
	}
	return start, nil
}

// MeetingInvite builds an invite.ics attachment for m. The UID is derived from
// the meeting date so a re-sent invite updates the same calendar entry.
func MeetingInvite(d Details, m entity.Meeting, now time.Time) (Attachment, error) {
	start, err := MeetingStart(m, d.Location)
	if err != nil {
		return Attachment{}, err
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropProductID, inviteProductID)
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropMethod, "PUBLISH")

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, uuid.NewSHA1(uuid.NameSpaceURL, []byte("meeting:"+m.Date)).String())
	event.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
	event.Props.SetDateTime(ical.PropDateTimeStart, start.UTC())
	event.Props.SetDateTime(ical.PropDateTimeEnd, start.Add(domain.DefaultMeetingDuration).UTC())
	event.Props.SetText(ical.PropSummary, fmt.Sprintf("%s: %s & %s", d.GroupName, presenter(m.Presenter1), presenter(m.Presenter2)))
	event.Props.SetText(ical.PropDescription, fmt.Sprintf("Presenters: %s and %s", presenter(m.Presenter1), presenter(m.Presenter2)))
	if d.MeetingLink != "" {
		event.Props.SetText(ical.PropLocation, d.MeetingLink)
	}
	cal.Children = append(cal.Children, event.Component)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return Attachment{}, fmt.Errorf("failed to encode invite: %w", err)
	}

	return Attachment{
		Filename:    "invite.ics",
		ContentType: "text/calendar; charset=utf-8; method=PUBLISH",
		Content:     buf.Bytes(),
	}, nil
}
