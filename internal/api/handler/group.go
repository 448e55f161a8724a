// internal/api/handler/group.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"splitledger/internal/api/middleware"
	"splitledger/internal/service"
	"splitledger/internal/util"
)

// GroupHandler handles HTTP requests for the group directory.
type GroupHandler struct {
	groups service.GroupService
	logger *slog.Logger
}

// NewGroupHandler creates a new GroupHandler.
func NewGroupHandler(groups service.GroupService, logger *slog.Logger) *GroupHandler {
	return &GroupHandler{groups: groups, logger: logger}
}

// CreateGroupRequest represents the request body for creating a group.
type CreateGroupRequest struct {
	GroupName string  `json:"group_name"`
	Members   []int64 `json:"members"`
}

// CreateGroup handles the create group request.
// POST /groups
func (h *GroupHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	group, err := h.groups.CreateGroup(r.Context(), req.GroupName, req.Members)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	h.logger.Info("Group created", "group_id", group.ID, "members_count", len(group.MemberIDs))
	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "Group created successfully",
		"group_id": group.ID,
	})
}

// GetGroup returns a single group with its member IDs.
// GET /groups/{groupID}
func (h *GroupHandler) GetGroup(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(chi.URLParam(r, "groupID"), 10, 64)
	if err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	group, err := h.groups.GetGroup(r.Context(), groupID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"group_id":   group.ID,
		"group_name": group.Name,
		"members":    group.MemberIDs,
	})
}

// ListGroups returns all groups the authenticated user belongs to.
// GET /groups
func (h *GroupHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	groups, err := h.groups.ListGroups(r.Context(), userID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	results := make([]map[string]interface{}, len(groups))
	for i, group := range groups {
		results[i] = map[string]interface{}{
			"group_id":   group.ID,
			"group_name": group.Name,
		}
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"groups": results})
}
