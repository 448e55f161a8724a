// internal/domain/split.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Split represents one bill-splitting event: a total amount divided equally
// across a set of participants. Immutable once created.
type Split struct {
	ID          int64           `db:"id" json:"id"`
	TotalAmount decimal.Decimal `db:"total_amount" json:"total_amount"`
	Description string          `db:"description" json:"description"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`

	// Participants holds the user IDs debited by this split.
	// Loaded from the split_participants join table.
	Participants []int64 `db:"-" json:"participants,omitempty"`
}

// NewSplit creates a new Split instance.
func NewSplit(totalAmount decimal.Decimal, description string, participants []int64) *Split {
	return &Split{
		TotalAmount:  totalAmount,
		Description:  description,
		Participants: participants,
		CreatedAt:    time.Now().UTC(),
	}
}

// SplitHistoryEntry is the denormalized per-user record of a split event,
// one row per participant, used for per-user history queries.
type SplitHistoryEntry struct {
	ID          int64           `db:"id" json:"split_id"`
	UserID      int64           `db:"user_id" json:"-"`
	TotalAmount decimal.Decimal `db:"total_amount" json:"total_amount"`
	NumUsers    int             `db:"num_users" json:"num_users"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}
