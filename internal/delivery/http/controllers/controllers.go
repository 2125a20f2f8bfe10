// Package controllers contains the HTTP handlers for the admin and kiosk
// surfaces. Handlers decode and validate input, call a service, and write the
// standard response envelope.
package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"visitordesk/internal/delivery/http/helpers"
	"visitordesk/internal/domain"
)

// writeDomainError maps service errors onto HTTP status codes and the error
// envelope, logging only unexpected failures.
func writeDomainError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrConflict):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}
