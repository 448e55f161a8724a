// internal/api/handler/transfer.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"splitledger/internal/api/middleware"
	"splitledger/internal/service"
	"splitledger/internal/util"
)

// TransferHandler handles HTTP requests for balance transfers.
type TransferHandler struct {
	transfers service.TransferService
	logger    *slog.Logger
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transfers service.TransferService, logger *slog.Logger) *TransferHandler {
	return &TransferHandler{transfers: transfers, logger: logger}
}

// TransferRequest represents the request body for a transfer.
type TransferRequest struct {
	PayerID int64           `json:"payer_id"`
	PayeeID int64           `json:"payee_id"`
	Amount  decimal.Decimal `json:"amount"`
}

// Transfer handles the transfer money request.
// POST /transfers
func (h *TransferHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	if req.PayerID == 0 || req.PayeeID == 0 {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		respondWithError(w, h.logger, util.ErrInvalidAmount)
		return
	}

	payment, payer, payee, err := h.transfers.Transfer(r.Context(), req.PayerID, req.PayeeID, req.Amount)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	h.logger.Info("Transfer completed",
		"payment_id", payment.ID,
		"payer_id", payer.ID,
		"payee_id", payee.ID,
		"amount", payment.Amount,
	)
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":           "Payment settled successfully",
		"payment_id":        payment.ID,
		"payer_new_balance": payer.Balance,
		"payee_new_balance": payee.Balance,
	})
}

// History returns the authenticated user's payment audit records.
// GET /payments
func (h *TransferHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	payments, err := h.transfers.History(r.Context(), userID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"payments": payments})
}
