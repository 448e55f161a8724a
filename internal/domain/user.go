// internal/domain/user.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a registered account holder with a ledger balance.
// The balance is mutated only by the transfer and split services, always
// inside a database transaction.
type User struct {
	ID           int64           `db:"id" json:"id"`
	Username     string          `db:"username" json:"username"` // Unique username
	PasswordHash string          `db:"password_hash" json:"-"`   // bcrypt hash, never serialized
	Balance      decimal.Decimal `db:"balance" json:"balance"`   // Current balance, NUMERIC(20, 4) in DB
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at" json:"updated_at"`
}

// NewUser creates a new User instance with a zero balance.
func NewUser(username, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		Balance:      decimal.Zero,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
