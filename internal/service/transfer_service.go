// internal/service/transfer_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"splitledger/internal/domain"
	"splitledger/internal/repository"
	"splitledger/internal/util"
	"splitledger/pkg/db"
)

// TransferService defines the interface for direct balance movement between users.
type TransferService interface {
	// Transfer debits the payer, credits the payee, and records one payment,
	// all inside a single database transaction.
	Transfer(ctx context.Context, payerID, payeeID int64, amount decimal.Decimal) (*domain.Payment, *domain.User, *domain.User, error)
	// History retrieves payments where the user is payer or payee, newest first.
	History(ctx context.Context, userID int64) ([]domain.Payment, error)
}

// transferService implements the TransferService interface.
type transferService struct {
	dbBeginner    db.DBTxBeginner
	dbExecutor    repository.DBExecutor
	userRepo      repository.UserRepository
	paymentRepo   repository.PaymentRepository
	notifications NotificationService
	beginTx       db.BeginTxFunc
	commitTx      db.CommitTxFunc
	rollbackTx    db.RollbackTxFunc
}

// NewTransferService creates a new instance of TransferService.
func NewTransferService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	paymentRepo repository.PaymentRepository,
	notifications NotificationService,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) TransferService {
	return &transferService{
		dbBeginner:    dbBeginner,
		dbExecutor:    dbExecutor,
		userRepo:      userRepo,
		paymentRepo:   paymentRepo,
		notifications: notifications,
		beginTx:       beginTx,
		commitTx:      commitTx,
		rollbackTx:    rollbackTx,
	}
}

// Transfer moves funds between two distinct users. All validation happens
// before any mutation; the debit, credit, and payment record either all
// commit or none do.
func (s *transferService) Transfer(ctx context.Context, payerID, payeeID int64, amount decimal.Decimal) (*domain.Payment, *domain.User, *domain.User, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, nil, util.ErrInvalidAmount
	}
	if payerID == payeeID {
		return nil, nil, nil, util.ErrSameUserTransfer
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("transfer: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, nil, nil, fmt.Errorf("transfer: transaction controller does not implement DBExecutor")
	}

	payer, err := s.userRepo.GetUserByID(ctx, txExecutor, payerID)
	if err != nil {
		if util.IsError(err, util.ErrUserNotFound) {
			return nil, nil, nil, util.ErrUserNotFound
		}
		return nil, nil, nil, fmt.Errorf("transfer: failed to get payer %d: %w", payerID, err)
	}

	_, err = s.userRepo.GetUserByID(ctx, txExecutor, payeeID)
	if err != nil {
		if util.IsError(err, util.ErrUserNotFound) {
			return nil, nil, nil, util.ErrUserNotFound
		}
		return nil, nil, nil, fmt.Errorf("transfer: failed to get payee %d: %w", payeeID, err)
	}

	if payer.Balance.LessThan(amount) {
		return nil, nil, nil, util.ErrInsufficientFunds
	}

	if err := s.userRepo.AdjustBalance(ctx, txExecutor, payerID, amount.Neg()); err != nil {
		return nil, nil, nil, fmt.Errorf("transfer: failed to debit payer %d: %w", payerID, err)
	}
	if err := s.userRepo.AdjustBalance(ctx, txExecutor, payeeID, amount); err != nil {
		return nil, nil, nil, fmt.Errorf("transfer: failed to credit payee %d: %w", payeeID, err)
	}

	payment := domain.NewPayment(payerID, payeeID, amount)
	if err := s.paymentRepo.CreatePayment(ctx, txExecutor, payment); err != nil {
		return nil, nil, nil, fmt.Errorf("transfer: failed to create payment: %w", err)
	}

	updatedPayer, err := s.userRepo.GetUserByID(ctx, txExecutor, payerID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("transfer: failed to re-fetch payer %d: %w", payerID, err)
	}
	updatedPayee, err := s.userRepo.GetUserByID(ctx, txExecutor, payeeID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("transfer: failed to re-fetch payee %d: %w", payeeID, err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, nil, nil, fmt.Errorf("transfer: failed to commit transaction: %w", err)
	}

	// Best effort after commit; a failed notification never fails the transfer.
	message := fmt.Sprintf("You received %s from %s", amount.StringFixed(2), payer.Username)
	if _, err := s.notifications.Notify(ctx, payeeID, message); err != nil {
		slog.Warn("Failed to notify payee after transfer",
			"payee_id", payeeID, "payment_id", payment.ID, "error", err)
	}

	return payment, updatedPayer, updatedPayee, nil
}

// History retrieves the payment audit records involving the user.
func (s *transferService) History(ctx context.Context, userID int64) ([]domain.Payment, error) {
	if _, err := s.userRepo.GetUserByID(ctx, s.dbExecutor, userID); err != nil {
		if util.IsError(err, util.ErrUserNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("payment history: failed to check user %d: %w", userID, err)
	}

	payments, err := s.paymentRepo.ListPaymentsForUser(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("payment history: %w", err)
	}
	return payments, nil
}
