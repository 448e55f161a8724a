// internal/domain/payment.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the immutable audit record of a completed transfer between two
// distinct users.
type Payment struct {
	ID        int64           `db:"id" json:"id"`
	PayerID   int64           `db:"payer_id" json:"payer_id"`
	PayeeID   int64           `db:"payee_id" json:"payee_id"`
	Amount    decimal.Decimal `db:"amount" json:"amount"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

// NewPayment creates a new Payment instance.
func NewPayment(payerID, payeeID int64, amount decimal.Decimal) *Payment {
	return &Payment{
		PayerID:   payerID,
		PayeeID:   payeeID,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
}
