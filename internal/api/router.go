// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"splitledger/internal/api/handler"
	"splitledger/internal/api/middleware"
	"splitledger/internal/auth"
)

// Handlers bundles the HTTP handlers the router mounts.
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Transfer     *handler.TransferHandler
	Split        *handler.SplitHandler
	Group        *handler.GroupHandler
	Notification *handler.NotificationHandler
}

// NewRouter sets up and returns a new HTTP router.
func NewRouter(h Handlers, jwtManager *auth.JWTManager, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(handler.DefaultTimeout))
	r.Use(middleware.Metrics)

	// Health check and Prometheus metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Public auth endpoints
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.Auth.Signup)
		r.Post("/login", h.Auth.Login)
	})

	// Authenticated API
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(jwtManager))

		r.Get("/me", h.User.Me)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.User.ListUsers)
			r.Get("/search", h.User.SearchUsers)
			r.Get("/{userID}", h.User.GetUser)
		})

		r.Post("/transfers", h.Transfer.Transfer)
		r.Get("/payments", h.Transfer.History)

		r.Route("/splits", func(r chi.Router) {
			r.Post("/", h.Split.CreateSplit)
			r.Get("/history", h.Split.History)
			r.Get("/search", h.Split.SearchSplits)
			r.Get("/{splitID}/share", h.Split.ShareSplit)
		})

		r.Route("/groups", func(r chi.Router) {
			r.Post("/", h.Group.CreateGroup)
			r.Get("/", h.Group.ListGroups)
			r.Get("/{groupID}", h.Group.GetGroup)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", h.Notification.ListNotifications)
			r.Post("/{notificationID}/read", h.Notification.MarkRead)
		})
	})

	return r
}
