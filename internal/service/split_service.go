// internal/service/split_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"splitledger/internal/domain"
	"splitledger/internal/repository"
	"splitledger/internal/util"
	"splitledger/pkg/db"
)

// shareScale is the number of decimal places a per-participant share is
// rounded to. Shares round down so their sum never exceeds the split total.
const shareScale = 2

// SplitService defines the interface for equal bill splitting.
type SplitService interface {
	// CreateSplit divides the total evenly across the given users, debiting
	// each inside a single database transaction, and records one history row
	// per participant. The aggregated amount is assumed collected out of
	// band; no account is credited.
	CreateSplit(ctx context.Context, userIDs []int64, total decimal.Decimal, description string) (*domain.Split, error)
	// History retrieves all split history rows for a user.
	History(ctx context.Context, userID int64) ([]domain.SplitHistoryEntry, error)
	// Search retrieves splits whose description contains the query,
	// case-insensitively. An empty query matches all splits.
	Search(ctx context.Context, query string) ([]domain.Split, error)
	// ShareMessage builds a human-readable summary of a split for sharing.
	ShareMessage(ctx context.Context, splitID int64) (string, error)
}

// splitService implements the SplitService interface.
type splitService struct {
	dbBeginner    db.DBTxBeginner
	dbExecutor    repository.DBExecutor
	userRepo      repository.UserRepository
	splitRepo     repository.SplitRepository
	notifications NotificationService
	beginTx       db.BeginTxFunc
	commitTx      db.CommitTxFunc
	rollbackTx    db.RollbackTxFunc
}

// NewSplitService creates a new instance of SplitService.
func NewSplitService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	splitRepo repository.SplitRepository,
	notifications NotificationService,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) SplitService {
	return &splitService{
		dbBeginner:    dbBeginner,
		dbExecutor:    dbExecutor,
		userRepo:      userRepo,
		splitRepo:     splitRepo,
		notifications: notifications,
		beginTx:       beginTx,
		commitTx:      commitTx,
		rollbackTx:    rollbackTx,
	}
}

// CreateSplit validates every participant before any mutation. A duplicate or
// unknown ID makes the resolved user set smaller than the request, which
// fails the whole operation with ErrUserNotFound and no balance change.
func (s *splitService) CreateSplit(ctx context.Context, userIDs []int64, total decimal.Decimal, description string) (*domain.Split, error) {
	if len(userIDs) == 0 {
		return nil, util.ErrInvalidInput
	}
	if total.LessThanOrEqual(decimal.Zero) {
		return nil, util.ErrInvalidAmount
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("create split: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("create split: transaction controller does not implement DBExecutor")
	}

	users, err := s.userRepo.GetUsersByIDs(ctx, txExecutor, userIDs)
	if err != nil {
		return nil, fmt.Errorf("create split: failed to resolve participants: %w", err)
	}
	if len(users) != len(userIDs) {
		return nil, util.ErrUserNotFound
	}

	numUsers := int64(len(users))
	share := total.Div(decimal.NewFromInt(numUsers)).RoundDown(shareScale)

	split := domain.NewSplit(total, description, userIDs)
	if err := s.splitRepo.CreateSplit(ctx, txExecutor, split, share); err != nil {
		return nil, fmt.Errorf("create split: %w", err)
	}

	for _, user := range users {
		if err := s.userRepo.AdjustBalance(ctx, txExecutor, user.ID, share.Neg()); err != nil {
			return nil, fmt.Errorf("create split: failed to debit user %d: %w", user.ID, err)
		}

		entry := &domain.SplitHistoryEntry{
			UserID:      user.ID,
			TotalAmount: total,
			NumUsers:    int(numUsers),
			CreatedAt:   split.CreatedAt,
		}
		if err := s.splitRepo.CreateHistoryEntry(ctx, txExecutor, entry); err != nil {
			return nil, fmt.Errorf("create split: failed to record history for user %d: %w", user.ID, err)
		}
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("create split: failed to commit transaction: %w", err)
	}

	slog.Info("Split created",
		"split_id", split.ID,
		"total", total.StringFixed(shareScale),
		"num_users", numUsers,
		"share", share.StringFixed(shareScale),
	)

	// Best effort after commit.
	message := fmt.Sprintf("You were debited %s in a split of %s across %d users",
		share.StringFixed(shareScale), total.StringFixed(shareScale), numUsers)
	for _, user := range users {
		if _, err := s.notifications.Notify(ctx, user.ID, message); err != nil {
			slog.Warn("Failed to notify split participant",
				"user_id", user.ID, "split_id", split.ID, "error", err)
		}
	}

	return split, nil
}

// History retrieves all split history rows for a user.
func (s *splitService) History(ctx context.Context, userID int64) ([]domain.SplitHistoryEntry, error) {
	entries, err := s.splitRepo.HistoryForUser(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("split history: %w", err)
	}
	return entries, nil
}

// Search retrieves splits whose description matches the query.
func (s *splitService) Search(ctx context.Context, query string) ([]domain.Split, error) {
	splits, err := s.splitRepo.SearchSplits(ctx, s.dbExecutor, query)
	if err != nil {
		return nil, fmt.Errorf("search splits: %w", err)
	}
	return splits, nil
}

// ShareMessage builds a shareable text summary of a split: its ID, total,
// description, and participant usernames.
func (s *splitService) ShareMessage(ctx context.Context, splitID int64) (string, error) {
	split, err := s.splitRepo.GetSplit(ctx, s.dbExecutor, splitID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return "", util.ErrNotFound
		}
		return "", fmt.Errorf("share split: failed to get split %d: %w", splitID, err)
	}

	users, err := s.userRepo.GetUsersByIDs(ctx, s.dbExecutor, split.Participants)
	if err != nil {
		return "", fmt.Errorf("share split: failed to resolve participants: %w", err)
	}
	names := make([]string, len(users))
	for i, user := range users {
		names[i] = user.Username
	}

	description := split.Description
	if description == "" {
		description = "No description provided."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Split ID: %d\n", split.ID)
	fmt.Fprintf(&b, "Total Amount: %s\n", split.TotalAmount.StringFixed(shareScale))
	fmt.Fprintf(&b, "Split Description: %s\n", description)
	fmt.Fprintf(&b, "Participants: %s\n", strings.Join(names, ", "))
	return b.String(), nil
}
