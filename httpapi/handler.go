package httpapi

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/sessionlab/sessiond/core/session"
	"github.com/sessionlab/sessiond/pkg/clientip"
)

const welcomeMessage = "Welcome to the session control API"

// Handler translates HTTP requests into lifecycle manager operations.
type Handler struct {
	manager *session.Manager
	logger  *slog.Logger
}

// NewHandler creates the transport handler. A nil logger falls back to a
// no-op logger.
func NewHandler(manager *session.Manager, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Handler{
		manager: manager,
		logger:  log,
	}
}

// Welcome handles GET /welcome.
func (h *Handler) Welcome(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, map[string]string{
		"message": welcomeMessage,
	})
}

// Login handles POST /login. The client IP comes from request metadata, the
// MAC from the body; the server stamps its own resolved identity.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	sess, err := h.manager.Login(r.Context(), session.LoginParams{
		Email:     req.Email,
		Nickname:  req.Nickname,
		ClientIP:  clientip.GetIP(r),
		ClientMAC: req.MacAddress,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, map[string]any{
		"message":   "Login successful",
		"sessionID": sess.ID,
	})
}

// Logout handles POST /logout.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	if _, err := h.manager.Logout(r.Context(), req.SessionID); err != nil {
		h.respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, map[string]any{
		"message": "Logout successful",
	})
}

// Heartbeat handles PUT /update.
func (h *Handler) Heartbeat(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	sess, err := h.manager.Heartbeat(r.Context(), req.SessionID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, map[string]any{
		"message": "Session updated",
		"session": sess,
	})
}

// Status handles POST /status. Read-only; does not refresh the session.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	sess, idle, err := h.manager.Status(r.Context(), req.SessionID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, map[string]any{
		"message":        "Session status",
		"session":        sess,
		"inactivityTime": idle.String(),
	})
}

// ListActive handles GET /listCurrentSessions.
func (h *Handler) ListActive(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.manager.ListActive(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, map[string]any{
		"message":        "Active sessions",
		"activeSessions": sessions,
	})
}
