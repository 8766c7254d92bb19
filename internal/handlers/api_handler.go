package handlers

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/diegoclair/group-meeting-rotation/internal/domain/contract"
	"github.com/diegoclair/group-meeting-rotation/internal/domain/entity"
)

type APIHandler struct {
	meetingService contract.MeetingService
	cronSecret     string
}

func NewAPIHandler(meetingService contract.MeetingService, cronSecret string) *APIHandler {
	return &APIHandler{
		meetingService: meetingService,
		cronSecret:     cronSecret,
	}
}

// Register mounts the REST routes on mux. Login goes through limit.
func (h *APIHandler) Register(mux *http.ServeMux, limit func(http.Handler) http.Handler) {
	mux.Handle("POST /api/login", limit(http.HandlerFunc(h.handleLogin)))
	mux.HandleFunc("GET /api/schedule", h.handleSchedule)
	mux.HandleFunc("GET /api/members", h.handleMembers)
	mux.HandleFunc("GET /api/health", h.handleHealth)

	mux.HandleFunc("POST /api/swap-presenters", h.handleSwapPresenters)
	mux.HandleFunc("POST /api/skip-meeting", h.handleSkipMeeting)
	mux.HandleFunc("POST /api/change-date", h.handleChangeDate)
	mux.HandleFunc("POST /api/change-time", h.handleChangeTime)

	mux.HandleFunc("POST /api/admin/add-member", h.handleAddMember)
	mux.HandleFunc("POST /api/admin/remove-member", h.handleRemoveMember)
	mux.HandleFunc("POST /api/admin/remove-presenter", h.handleRemovePresenter)
	mux.HandleFunc("POST /api/admin/assign-presenter", h.handleAssignPresenter)
	mux.HandleFunc("POST /api/admin/refill-schedule", h.handleRefillSchedule)
	mux.HandleFunc("POST /api/admin/update-members", h.handleUpdateMembers)
	mux.HandleFunc("POST /api/admin/regenerate-schedule", h.handleRegenerateSchedule)
	mux.HandleFunc("GET /api/admin/export-members", h.handleExportMembers)
	mux.HandleFunc("GET /api/admin/schedule-full", h.handleScheduleFull)
	mux.HandleFunc("POST /api/admin/run-reminder-check", h.handleRunReminderCheck)
	mux.HandleFunc("POST /api/admin/send-presenter-reminder", h.handleSendPresenterReminder)
	mux.HandleFunc("POST /api/admin/send-everyone-reminder", h.handleSendEveryoneReminder)
}

type adminRequest struct {
	AdminPasscode string `json:"adminPasscode"`
}

func (h *APIHandler) requireAdmin(w http.ResponseWriter, passcode string) bool {
	if !h.meetingService.IsAdmin(passcode) {
		writeError(w, http.StatusForbidden, "Admin access required")
		return false
	}
	return true
}

func requireFields(w http.ResponseWriter, fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			writeError(w, http.StatusBadRequest, "Missing required fields")
			return false
		}
	}
	return true
}

func (h *APIHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Passcode string `json:"passcode"`
	}
	if !decodeJSON(w, r, &req, false) {
		return
	}

	userType, ok := h.meetingService.Login(req.Passcode)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid passcode")
		return
	}

	writeJSON(w, http.StatusOK, struct {
		response
		UserType string `json:"userType"`
	}{
		response: response{Success: true, Message: "Login successful"},
		UserType: string(userType),
	})
}

func (h *APIHandler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, nonNilMeetings(h.meetingService.Schedule()))
}

func (h *APIHandler) handleMembers(w http.ResponseWriter, r *http.Request) {
	members := h.meetingService.Members()
	if members == nil {
		members = []entity.Member{}
	}
	writeJSON(w, http.StatusOK, members)
}

func (h *APIHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	snapshot, next := h.meetingService.Health()

	writeJSON(w, http.StatusOK, struct {
		Status      string              `json:"status"`
		Members     int                 `json:"members"`
		Meetings    int                 `json:"meetings"`
		NextMeeting *entity.NextMeeting `json:"nextMeeting,omitempty"`
	}{
		Status:      "ok",
		Members:     len(snapshot.Members),
		Meetings:    len(snapshot.Schedule),
		NextMeeting: next,
	})
}

func (h *APIHandler) handleSwapPresenters(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date1      string `json:"date1"`
		Presenter1 string `json:"presenter1"`
		Date2      string `json:"date2"`
		Presenter2 string `json:"presenter2"`
	}
	if !decodeJSON(w, r, &req, false) || !requireFields(w, req.Date1, req.Presenter1, req.Date2, req.Presenter2) {
		return
	}

	snapshot, err := h.meetingService.SwapPresenters(r.Context(), req.Date1, req.Presenter1, req.Date2, req.Presenter2)
	h.respondSnapshot(w, snapshot, err, "Presenters swapped")
}

func (h *APIHandler) handleSkipMeeting(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date string `json:"date"`
	}
	if !decodeJSON(w, r, &req, false) || !requireFields(w, req.Date) {
		return
	}

	snapshot, err := h.meetingService.SkipMeeting(r.Context(), req.Date)
	h.respondSnapshot(w, snapshot, err, "Meeting skipped")
}

func (h *APIHandler) handleChangeDate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OldDate string `json:"oldDate"`
		NewDate string `json:"newDate"`
	}
	if !decodeJSON(w, r, &req, false) || !requireFields(w, req.OldDate, req.NewDate) {
		return
	}

	snapshot, err := h.meetingService.ChangeDate(r.Context(), req.OldDate, req.NewDate)
	h.respondSnapshot(w, snapshot, err, "Meeting date changed")
}

func (h *APIHandler) handleChangeTime(w http.ResponseWriter, r *http.Request) {
	var req struct {
		adminRequest
		Date    string `json:"date"`
		NewTime string `json:"newTime"`
	}
	if !decodeJSON(w, r, &req, false) || !h.requireAdmin(w, req.AdminPasscode) || !requireFields(w, req.Date, req.NewTime) {
		return
	}

	snapshot, err := h.meetingService.ChangeTime(r.Context(), req.Date, req.NewTime)
	h.respondSnapshot(w, snapshot, err, "Meeting time changed")
}

func (h *APIHandler) handleAddMember(w http.ResponseWriter, r *http.Request) {
	var req struct {
		adminRequest
		Member entity.Member `json:"member"`
	}
	if !decodeJSON(w, r, &req, false) || !h.requireAdmin(w, req.AdminPasscode) {
		return
	}

	snapshot, err := h.meetingService.AddMember(r.Context(), req.Member)
	h.respondSnapshot(w, snapshot, err, "Member added")
}

func (h *APIHandler) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	var req struct {
		adminRequest
		Name string `json:"name"`
	}
	if !decodeJSON(w, r, &req, false) || !h.requireAdmin(w, req.AdminPasscode) || !requireFields(w, req.Name) {
		return
	}

	snapshot, err := h.meetingService.RemoveMember(r.Context(), req.Name)
	h.respondSnapshot(w, snapshot, err, "Member removed")
}

func (h *APIHandler) handleRemovePresenter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		adminRequest
		Date string `json:"date"`
		Slot int    `json:"slot"`
	}
	if !decodeJSON(w, r, &req, false) || !h.requireAdmin(w, req.AdminPasscode) || !requireFields(w, req.Date) {
		return
	}

	snapshot, err := h.meetingService.RemovePresenter(r.Context(), req.Date, req.Slot)
	h.respondSnapshot(w, snapshot, err, "Presenter removed")
}

func (h *APIHandler) handleAssignPresenter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		adminRequest
		Date       string `json:"date"`
		Slot       int    `json:"slot"`
		MemberName string `json:"memberName"`
	}
	if !decodeJSON(w, r, &req, false) || !h.requireAdmin(w, req.AdminPasscode) || !requireFields(w, req.Date, req.MemberName) {
		return
	}

	snapshot, err := h.meetingService.AssignPresenter(r.Context(), req.Date, req.Slot, req.MemberName)
	h.respondSnapshot(w, snapshot, err, "Presenter assigned")
}

func (h *APIHandler) handleRefillSchedule(w http.ResponseWriter, r *http.Request) {
	var req adminRequest
	if !decodeJSON(w, r, &req, false) || !h.requireAdmin(w, req.AdminPasscode) {
		return
	}

	snapshot, err := h.meetingService.RefillSchedule(r.Context())
	h.respondSnapshot(w, snapshot, err, "Schedule refilled")
}

func (h *APIHandler) handleUpdateMembers(w http.ResponseWriter, r *http.Request) {
	var req struct {
		adminRequest
		Members []entity.Member `json:"members"`
	}
	if !decodeJSON(w, r, &req, false) || !h.requireAdmin(w, req.AdminPasscode) {
		return
	}
	if req.Members == nil {
		writeError(w, http.StatusBadRequest, "Invalid members data")
		return
	}

	snapshot, err := h.meetingService.UpdateMembers(r.Context(), req.Members)
	h.respondSnapshot(w, snapshot, err, "Members updated and schedule regenerated")
}

func (h *APIHandler) handleRegenerateSchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		adminRequest
		StartDate string `json:"startDate"`
	}
	if !decodeJSON(w, r, &req, false) || !h.requireAdmin(w, req.AdminPasscode) {
		return
	}

	snapshot, err := h.meetingService.RegenerateSchedule(r.Context(), req.StartDate)
	h.respondSnapshot(w, snapshot, err, "Schedule regenerated successfully")
}

func (h *APIHandler) handleExportMembers(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r.URL.Query().Get("adminPasscode")) {
		return
	}

	members, updatedAt := h.meetingService.ExportMembers()
	if members == nil {
		members = []entity.Member{}
	}

	writeJSON(w, http.StatusOK, struct {
		response
		Members    []entity.Member `json:"members"`
		ExportDate string          `json:"exportDate"`
		UpdatedAt  string          `json:"updatedAt,omitempty"`
	}{
		response:   response{Success: true},
		Members:    members,
		ExportDate: time.Now().UTC().Format(time.RFC3339),
		UpdatedAt:  formatTime(updatedAt),
	})
}

func (h *APIHandler) handleScheduleFull(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r.URL.Query().Get("adminPasscode")) {
		return
	}

	writeJSON(w, http.StatusOK, struct {
		response
		Schedule []entity.Meeting `json:"schedule"`
	}{
		response: response{Success: true},
		Schedule: nonNilMeetings(h.meetingService.FullSchedule()),
	})
}

// handleRunReminderCheck accepts the admin passcode or the cron bearer secret.
func (h *APIHandler) handleRunReminderCheck(w http.ResponseWriter, r *http.Request) {
	var req adminRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}
	if !h.isCron(r) && !h.requireAdmin(w, req.AdminPasscode) {
		return
	}

	report := h.meetingService.RunReminderCheck(r.Context())
	writeJSON(w, http.StatusOK, reportResponse{
		response: response{Success: true, Message: "Reminder check completed"},
		Report:   report,
	})
}

func (h *APIHandler) handleSendPresenterReminder(w http.ResponseWriter, r *http.Request) {
	var req adminRequest
	if !decodeJSON(w, r, &req, false) || !h.requireAdmin(w, req.AdminPasscode) {
		return
	}

	report, err := h.meetingService.SendPresenterReminder(r.Context())
	h.respondReport(w, report, err, "Presenter reminder sent")
}

func (h *APIHandler) handleSendEveryoneReminder(w http.ResponseWriter, r *http.Request) {
	var req adminRequest
	if !decodeJSON(w, r, &req, false) || !h.requireAdmin(w, req.AdminPasscode) {
		return
	}

	report, err := h.meetingService.SendEveryoneReminder(r.Context())
	h.respondReport(w, report, err, "Everyone reminder sent")
}

func (h *APIHandler) isCron(r *http.Request) bool {
	if h.cronSecret == "" {
		return false
	}
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	return ok && subtle.ConstantTimeCompare([]byte(token), []byte(h.cronSecret)) == 1
}

func (h *APIHandler) respondSnapshot(w http.ResponseWriter, snapshot entity.Snapshot, err error, message string) {
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if snapshot.SaveFailed {
		message += " (changes were not saved)"
	}
	snapshot.Members = nonNilMembers(snapshot.Members)
	snapshot.Schedule = nonNilMeetings(snapshot.Schedule)

	writeJSON(w, http.StatusOK, snapshotResponse{
		response: response{Success: true, Message: message},
		Snapshot: snapshot,
	})
}

func (h *APIHandler) respondReport(w http.ResponseWriter, report entity.ReminderReport, err error, message string) {
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reportResponse{
		response: response{Success: true, Message: message},
		Report:   report,
	})
}

func nonNilMeetings(m []entity.Meeting) []entity.Meeting {
	if m == nil {
		return []entity.Meeting{}
	}
	return m
}

func nonNilMembers(m []entity.Member) []entity.Member {
	if m == nil {
		return []entity.Member{}
	}
	return m
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
