package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sessionlab/sessiond/core/logger"
	"github.com/sessionlab/sessiond/core/session"
)

// errorResponse is the uniform failure envelope. Internals never leak; the
// message is short and client-facing.
type errorResponse struct {
	Message string `json:"message"`
}

// respond writes v as JSON with the given status. Encoding goes straight to
// the response writer.
func respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondError maps core errors onto the HTTP surface. Client errors become
// 4xx with a short message; everything else is a 500/503 without internals.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := classify(err)

	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "request failed",
			logger.Component("httpapi"),
			slog.String("path", r.URL.Path),
			logger.Error(err))
	}

	respond(w, status, errorResponse{Message: message})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, errMalformedBody):
		return http.StatusBadRequest, "Malformed request body"
	case errors.Is(err, session.ErrMissingSessionID):
		return http.StatusBadRequest, "Session ID required"
	case errors.Is(err, session.ErrInvalidInput):
		return http.StatusBadRequest, "Required fields missing"
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound, "Session not found"
	case errors.Is(err, session.ErrNoActiveSessions):
		return http.StatusNotFound, "No active sessions"
	case errors.Is(err, session.ErrAlreadyTerminated):
		return http.StatusConflict, "Session already terminated"
	case errors.Is(err, session.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "Service temporarily unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
