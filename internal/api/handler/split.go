// internal/api/handler/split.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"splitledger/internal/api/middleware"
	"splitledger/internal/service"
	"splitledger/internal/util"
)

// SplitHandler handles HTTP requests for bill splitting.
type SplitHandler struct {
	splits service.SplitService
	logger *slog.Logger
}

// NewSplitHandler creates a new SplitHandler.
func NewSplitHandler(splits service.SplitService, logger *slog.Logger) *SplitHandler {
	return &SplitHandler{splits: splits, logger: logger}
}

// CreateSplitRequest represents the request body for creating a split.
type CreateSplitRequest struct {
	SelectedUsers []int64         `json:"selected_users"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Description   string          `json:"description"`
}

// CreateSplit handles the create split request.
// POST /splits
func (h *SplitHandler) CreateSplit(w http.ResponseWriter, r *http.Request) {
	var req CreateSplitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	split, err := h.splits.CreateSplit(r.Context(), req.SelectedUsers, req.TotalAmount, req.Description)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "Split created successfully",
		"split_id": split.ID,
	})
}

// History returns the authenticated user's split history.
// GET /splits/history
func (h *SplitHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	entries, err := h.splits.History(r.Context(), userID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	history := make([]map[string]interface{}, len(entries))
	for i, entry := range entries {
		history[i] = map[string]interface{}{
			"split_id":     entry.ID,
			"total_amount": entry.TotalAmount,
			"num_users":    entry.NumUsers,
		}
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"history": history})
}

// SearchSplits returns splits whose description contains the query.
// GET /splits/search?query=
func (h *SplitHandler) SearchSplits(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	splits, err := h.splits.Search(r.Context(), query)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	results := make([]map[string]interface{}, len(splits))
	for i, split := range splits {
		results[i] = map[string]interface{}{
			"split_id":    split.ID,
			"description": split.Description,
		}
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"splits": results})
}

// ShareSplit returns a shareable text summary of a split.
// GET /splits/{splitID}/share
func (h *SplitHandler) ShareSplit(w http.ResponseWriter, r *http.Request) {
	splitID, err := strconv.ParseInt(chi.URLParam(r, "splitID"), 10, 64)
	if err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	message, err := h.splits.ShareMessage(r.Context(), splitID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": message})
}
