// internal/repository/postgres/payment_pg.go
package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"splitledger/internal/domain"
	"splitledger/internal/repository"
)

// PaymentRepository implements repository.PaymentRepository for PostgreSQL.
type PaymentRepository struct{}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(db *sqlx.DB) repository.PaymentRepository {
	return &PaymentRepository{}
}

// CreatePayment inserts a new payment record into the database using the provided DBExecutor.
func (r *PaymentRepository) CreatePayment(ctx context.Context, q repository.DBExecutor, payment *domain.Payment) error {
	query := `INSERT INTO payments (payer_id, payee_id, amount, created_at)
              VALUES ($1, $2, $3, $4) RETURNING id`
	err := q.QueryRowContext(ctx, query,
		payment.PayerID, payment.PayeeID, payment.Amount, payment.CreatedAt,
	).Scan(&payment.ID)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// ListPaymentsForUser retrieves payments where the user is payer or payee, newest first.
func (r *PaymentRepository) ListPaymentsForUser(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Payment, error) {
	payments := []domain.Payment{}
	query := `SELECT id, payer_id, payee_id, amount, created_at
              FROM payments
              WHERE payer_id = $1 OR payee_id = $1
              ORDER BY created_at DESC, id DESC`
	if err := q.SelectContext(ctx, &payments, query, userID); err != nil {
		return nil, fmt.Errorf("failed to fetch payments for user %d: %w", userID, err)
	}
	return payments, nil
}
