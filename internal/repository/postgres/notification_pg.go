// internal/repository/postgres/notification_pg.go
package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"splitledger/internal/domain"
	"splitledger/internal/repository"
	"splitledger/internal/util"
)

// NotificationRepository implements repository.NotificationRepository for PostgreSQL.
type NotificationRepository struct{}

// NewNotificationRepository creates a new NotificationRepository.
func NewNotificationRepository(db *sqlx.DB) repository.NotificationRepository {
	return &NotificationRepository{}
}

// CreateNotification appends a new notification using the provided DBExecutor.
func (r *NotificationRepository) CreateNotification(ctx context.Context, q repository.DBExecutor, notification *domain.Notification) error {
	query := `INSERT INTO notifications (user_id, message, is_read, created_at)
              VALUES ($1, $2, $3, $4) RETURNING id`
	err := q.QueryRowContext(ctx, query,
		notification.UserID, notification.Message, notification.IsRead, notification.CreatedAt,
	).Scan(&notification.ID)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// MarkRead sets the read flag on a notification. The update matches the row
// whether or not it is already read, so repeated calls are no-op successes.
func (r *NotificationRepository) MarkRead(ctx context.Context, q repository.DBExecutor, id int64) error {
	result, err := q.ExecContext(ctx, `UPDATE notifications SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification %d as read: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after marking notification %d: %w", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// ListForUser retrieves all notifications for a user in insertion order.
func (r *NotificationRepository) ListForUser(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Notification, error) {
	notifications := []domain.Notification{}
	query := `SELECT id, user_id, message, is_read, created_at
              FROM notifications WHERE user_id = $1 ORDER BY id`
	if err := q.SelectContext(ctx, &notifications, query, userID); err != nil {
		return nil, fmt.Errorf("failed to fetch notifications for user %d: %w", userID, err)
	}
	return notifications, nil
}
