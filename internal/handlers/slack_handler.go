package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diegoclair/group-meeting-rotation/internal/domain/contract"
	slackcmd "github.com/diegoclair/group-meeting-rotation/internal/domain/slack"
	"github.com/diegoclair/group-meeting-rotation/internal/mail"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	meetingService contract.MeetingService
	details        mail.Details
	signingSecret  string
}

func NewSlackHandler(meetingService contract.MeetingService, details mail.Details, signingSecret string) *SlackHandler {
	return &SlackHandler{
		meetingService: meetingService,
		details:        details,
		signingSecret:  signingSecret,
	}
}

func (h *SlackHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /slack/commands", h.HandleSlashCommand)
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	response := h.handleCommand(cmd)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(cmd *slackcmd.Command) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdNext:
		return h.handleNext()
	case slackcmd.CmdSchedule:
		return h.handleSchedule()
	case slackcmd.CmdMembers:
		return h.handleMembers()
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Command not recognized")
	}
}

func (h *SlackHandler) handleNext() *slack.Msg {
	schedule := h.meetingService.Schedule()
	if len(schedule) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No upcoming meetings are scheduled.",
		}
	}

	// Schedule order may drift from date order after edits
	next := schedule[0]
	for _, m := range schedule[1:] {
		if m.Date < next.Date {
			next = m
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         mail.SlackAnnouncement(h.details, next),
	}
}

func (h *SlackHandler) handleSchedule() *slack.Msg {
	schedule := h.meetingService.Schedule()
	if len(schedule) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No upcoming meetings are scheduled.",
		}
	}

	var list strings.Builder
	list.WriteString("*Upcoming meetings:*\n")
	for _, m := range schedule {
		list.WriteString(fmt.Sprintf("• %s %s: %s, %s\n", m.Date, m.Time, orTBD(m.Presenter1), orTBD(m.Presenter2)))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleMembers() *slack.Msg {
	members := h.meetingService.Members()
	if len(members) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "The roster is empty.",
		}
	}

	var list strings.Builder
	list.WriteString("*Members:*\n")
	for i, member := range members {
		list.WriteString(fmt.Sprintf("%d. %s\n", i+1, member.Name))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func orTBD(name string) string {
	if name == "" {
		return "TBD"
	}
	return name
}
