package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"quizbank-service/internal/domain"
)

type jsonResponse struct {
	Error   bool   `json:"error"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(jsonResponse{Data: data})
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(jsonResponse{Error: status >= 400, Message: msg})
}

// writeError maps core errors onto responses. Authorization denials are
// fail-soft: the caller is sent back to /home instead of seeing an error.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrAuthorizationDenied):
		http.Redirect(w, r, "/home?denied", http.StatusSeeOther)
	case errors.Is(err, domain.ErrDuplicateUser):
		writeMessage(w, http.StatusConflict, "registration failed: "+err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrQuizNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrDuplicateID):
		writeMessage(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidQuiz), errors.Is(err, domain.ErrInvalidInput):
		writeMessage(w, http.StatusBadRequest, err.Error())
	default:
		h.log.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
	}
}
