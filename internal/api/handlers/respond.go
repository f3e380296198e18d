package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dom/dev-network/internal/auth"
	"github.com/dom/dev-network/internal/domain"
	"github.com/dom/dev-network/internal/service"
	"github.com/sirupsen/logrus"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeMessage writes a single-message JSON body, the shape used for all
// non-validation errors.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"msg": msg})
}

func writeFieldErrors(w http.ResponseWriter, verr *domain.ValidationError) {
	writeJSON(w, http.StatusBadRequest, verr)
}

// writeServiceError maps service sentinels onto HTTP statuses. Internal
// failures are logged with detail and returned as a generic message.
func writeServiceError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeFieldErrors(w, verr)
	case errors.Is(err, service.ErrProfileNotFound),
		errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, service.ErrCommentNotFound),
		errors.Is(err, service.ErrUserNotFound):
		writeMessage(w, http.StatusNotFound, "Not found")
	case errors.Is(err, service.ErrForbidden):
		writeMessage(w, http.StatusForbidden, "Not authorized")
	case errors.Is(err, service.ErrConflict):
		writeMessage(w, http.StatusConflict, "Concurrent modification, please retry")
	case errors.Is(err, context.DeadlineExceeded):
		logrus.WithError(err).Error("store operation timed out")
		writeMessage(w, http.StatusServiceUnavailable, "Service unavailable")
	case errors.Is(err, auth.ErrCorruptHash):
		logrus.WithError(err).Error("stored credential unreadable")
		writeMessage(w, http.StatusInternalServerError, "Server error")
	default:
		logrus.WithError(err).Error("request failed")
		writeMessage(w, http.StatusInternalServerError, "Server error")
	}
}
