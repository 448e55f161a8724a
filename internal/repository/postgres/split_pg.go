// internal/repository/postgres/split_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"splitledger/internal/domain"
	"splitledger/internal/repository"
	"splitledger/internal/util"
)

// SplitRepository implements repository.SplitRepository for PostgreSQL.
type SplitRepository struct{}

// NewSplitRepository creates a new SplitRepository.
func NewSplitRepository(db *sqlx.DB) repository.SplitRepository {
	return &SplitRepository{}
}

// CreateSplit inserts a split and its participant rows using the provided DBExecutor.
// Callers are expected to pass a transaction executor; the split insert and
// the participant inserts must not be separable.
func (r *SplitRepository) CreateSplit(ctx context.Context, q repository.DBExecutor, split *domain.Split, share decimal.Decimal) error {
	query := `INSERT INTO splits (total_amount, description, created_at)
              VALUES ($1, $2, $3) RETURNING id`
	err := q.QueryRowContext(ctx, query,
		split.TotalAmount, split.Description, split.CreatedAt,
	).Scan(&split.ID)
	if err != nil {
		return fmt.Errorf("failed to create split: %w", err)
	}

	for _, userID := range split.Participants {
		_, err := q.ExecContext(ctx,
			`INSERT INTO split_participants (split_id, user_id, share) VALUES ($1, $2, $3)`,
			split.ID, userID, share,
		)
		if err != nil {
			return fmt.Errorf("failed to add participant %d to split %d: %w", userID, split.ID, err)
		}
	}
	return nil
}

// GetSplit retrieves a split by ID with its participant user IDs loaded.
func (r *SplitRepository) GetSplit(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Split, error) {
	var split domain.Split
	query := `SELECT id, total_amount, description, created_at FROM splits WHERE id = $1`
	err := q.GetContext(ctx, &split, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get split by ID %d: %w", id, err)
	}

	participants := []int64{}
	err = q.SelectContext(ctx, &participants,
		`SELECT user_id FROM split_participants WHERE split_id = $1 ORDER BY user_id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants for split %d: %w", id, err)
	}
	split.Participants = participants
	return &split, nil
}

// CreateHistoryEntry inserts one denormalized per-user history row using the provided DBExecutor.
func (r *SplitRepository) CreateHistoryEntry(ctx context.Context, q repository.DBExecutor, entry *domain.SplitHistoryEntry) error {
	query := `INSERT INTO split_history (user_id, total_amount, num_users, created_at)
              VALUES ($1, $2, $3, $4) RETURNING id`
	err := q.QueryRowContext(ctx, query,
		entry.UserID, entry.TotalAmount, entry.NumUsers, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("failed to create split history entry: %w", err)
	}
	return nil
}

// HistoryForUser retrieves all history rows for a user, oldest first.
func (r *SplitRepository) HistoryForUser(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.SplitHistoryEntry, error) {
	entries := []domain.SplitHistoryEntry{}
	query := `SELECT id, user_id, total_amount, num_users, created_at
              FROM split_history WHERE user_id = $1 ORDER BY id`
	if err := q.SelectContext(ctx, &entries, query, userID); err != nil {
		return nil, fmt.Errorf("failed to fetch split history for user %d: %w", userID, err)
	}
	return entries, nil
}

// SearchSplits retrieves splits whose description contains the query, case-insensitively.
func (r *SplitRepository) SearchSplits(ctx context.Context, q repository.DBExecutor, query string) ([]domain.Split, error) {
	splits := []domain.Split{}
	stmt := `SELECT id, total_amount, description, created_at
             FROM splits WHERE description ILIKE '%' || $1 || '%' ORDER BY id`
	if err := q.SelectContext(ctx, &splits, stmt, query); err != nil {
		return nil, fmt.Errorf("failed to search splits: %w", err)
	}
	return splits, nil
}
