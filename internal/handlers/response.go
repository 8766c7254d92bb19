package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/diegoclair/group-meeting-rotation/internal/domain/entity"
	"github.com/diegoclair/group-meeting-rotation/internal/domain/rotation"
	"github.com/diegoclair/group-meeting-rotation/internal/domain/service"
)

const maxBodyBytes = 1 << 20

type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type snapshotResponse struct {
	response
	entity.Snapshot
}

type reportResponse struct {
	response
	Report entity.ReminderReport `json:"report"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("response_encode_failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, response{Success: false, Message: message})
}

// writeServiceError maps domain errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("request_failed", "error", err)
		writeError(w, status, "Internal server error")
		return
	}
	if errors.Is(err, service.ErrStateUnavailable) {
		slog.Warn("request_state_unavailable", "error", err)
		err = service.ErrStateUnavailable
	}
	writeError(w, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, rotation.ErrInvalidDate),
		errors.Is(err, rotation.ErrInvalidTime),
		errors.Is(err, rotation.ErrInvalidSlot),
		errors.Is(err, rotation.ErrPresenterNotFound),
		errors.Is(err, service.ErrInvalidMember):
		return http.StatusBadRequest
	case errors.Is(err, rotation.ErrMeetingNotFound),
		errors.Is(err, service.ErrMemberNotFound),
		errors.Is(err, service.ErrNoUpcomingMeeting):
		return http.StatusNotFound
	case errors.Is(err, service.ErrMemberExists),
		errors.Is(err, rotation.ErrDateConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrMailNotConfigured),
		errors.Is(err, service.ErrStateUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON reads a JSON body into dst. An empty body leaves dst untouched
// when allowEmpty is set.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || (allowEmpty && errors.Is(err, io.EOF)) {
		return true
	}
	writeError(w, http.StatusBadRequest, "Invalid request body")
	return false
}
