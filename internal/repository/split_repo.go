// internal/repository/split_repo.go
package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"splitledger/internal/domain"
)

// SplitRepository defines the interface for split data operations.
type SplitRepository interface {
	// CreateSplit adds a split and its participant rows, each carrying the
	// given per-participant share, using the provided DBExecutor.
	CreateSplit(ctx context.Context, q DBExecutor, split *domain.Split, share decimal.Decimal) error
	// GetSplit retrieves a split by ID with its participant user IDs loaded.
	GetSplit(ctx context.Context, q DBExecutor, id int64) (*domain.Split, error)
	// CreateHistoryEntry adds one denormalized per-user history row.
	CreateHistoryEntry(ctx context.Context, q DBExecutor, entry *domain.SplitHistoryEntry) error
	// HistoryForUser retrieves all history rows for a user, oldest first.
	HistoryForUser(ctx context.Context, q DBExecutor, userID int64) ([]domain.SplitHistoryEntry, error)
	// SearchSplits retrieves splits whose description contains the query,
	// case-insensitively. An empty query matches all splits.
	SearchSplits(ctx context.Context, q DBExecutor, query string) ([]domain.Split, error)
}
