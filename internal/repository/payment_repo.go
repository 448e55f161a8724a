// internal/repository/payment_repo.go
package repository

import (
	"context"

	"splitledger/internal/domain"
)

// PaymentRepository defines the interface for payment audit records.
type PaymentRepository interface {
	// CreatePayment adds a new payment record to the database using the provided DBExecutor.
	CreatePayment(ctx context.Context, q DBExecutor, payment *domain.Payment) error
	// ListPaymentsForUser retrieves payments where the user is payer or payee,
	// newest first.
	ListPaymentsForUser(ctx context.Context, q DBExecutor, userID int64) ([]domain.Payment, error)
}
