// internal/repository/notification_repo.go
package repository

import (
	"context"

	"splitledger/internal/domain"
)

// NotificationRepository defines the interface for notification data operations.
type NotificationRepository interface {
	// CreateNotification appends a new notification using the provided DBExecutor.
	CreateNotification(ctx context.Context, q DBExecutor, notification *domain.Notification) error
	// MarkRead sets the read flag on a notification. Marking an already-read
	// notification is a no-op success. Returns util.ErrNotFound for an
	// unknown ID.
	MarkRead(ctx context.Context, q DBExecutor, id int64) error
	// ListForUser retrieves all notifications for a user in insertion order.
	ListForUser(ctx context.Context, q DBExecutor, userID int64) ([]domain.Notification, error)
}
