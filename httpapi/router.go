package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// NewRouter assembles the API surface. Readiness checks (database pings and
// the like) run on /health/ready; /health/live answers as long as the
// process serves requests.
func NewRouter(h *Handler, readychecks ...func(context.Context) error) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Default().Handler)

	r.Get("/welcome", h.Welcome)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.Put("/update", h.Heartbeat)
	r.Post("/status", h.Status)
	r.Get("/listCurrentSessions", h.ListActive)

	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ALIVE"))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, req *http.Request) {
		for _, check := range readychecks {
			if err := check(req.Context()); err != nil {
				http.Error(w, "NOT READY", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	})

	return r
}
