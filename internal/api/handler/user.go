// internal/api/handler/user.go
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"splitledger/internal/api/middleware"
	"splitledger/internal/service"
	"splitledger/internal/util"
)

// UserHandler handles HTTP requests for user lookups and search.
type UserHandler struct {
	users  service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// Me returns the authenticated user's profile and balance.
// GET /me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	user, err := h.users.GetUser(r.Context(), userID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"username": user.Username,
		"balance":  user.Balance,
	})
}

// GetUser returns the details of a single user.
// GET /users/{userID}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	user, err := h.users.GetUser(r.Context(), userID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"user_details": map[string]interface{}{
			"id":       user.ID,
			"username": user.Username,
			"balance":  user.Balance,
		},
	})
}

// ListUsers returns the usernames of all registered users.
// GET /users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	names := make([]string, len(users))
	for i, user := range users {
		names[i] = user.Username
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"users": names})
}

// SearchUsers returns users whose username contains the query, case-insensitively.
// GET /users/search?query=
func (h *UserHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	users, err := h.users.SearchUsers(r.Context(), query)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	results := make([]map[string]interface{}, len(users))
	for i, user := range users {
		results[i] = map[string]interface{}{
			"user_id":  user.ID,
			"username": user.Username,
		}
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"users": results})
}
