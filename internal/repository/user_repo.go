// internal/repository/user_repo.go
package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"splitledger/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// CreateUser adds a new user to the database using the provided DBExecutor.
	// Returns util.ErrDuplicateUsername if the username is already taken.
	CreateUser(ctx context.Context, q DBExecutor, user *domain.User) error
	// GetUserByID retrieves a user by their ID using the provided DBExecutor.
	GetUserByID(ctx context.Context, q DBExecutor, id int64) (*domain.User, error)
	// GetUserByUsername retrieves a user by their username using the provided DBExecutor.
	GetUserByUsername(ctx context.Context, q DBExecutor, username string) (*domain.User, error)
	// GetUsersByIDs retrieves all users whose IDs appear in the given set.
	// Missing IDs are simply absent from the result; callers compare lengths.
	GetUsersByIDs(ctx context.Context, q DBExecutor, ids []int64) ([]domain.User, error)
	// ListUsers retrieves all users ordered by ID.
	ListUsers(ctx context.Context, q DBExecutor) ([]domain.User, error)
	// SearchUsers retrieves users whose username contains the query,
	// case-insensitively. An empty query matches all users.
	SearchUsers(ctx context.Context, q DBExecutor, query string) ([]domain.User, error)
	// AdjustBalance applies a signed delta to a user's balance. Debits pass a
	// negative delta, credits a positive one. This is the only balance
	// mutation primitive; multi-user mutations must share one transaction.
	AdjustBalance(ctx context.Context, q DBExecutor, userID int64, delta decimal.Decimal) error
}
