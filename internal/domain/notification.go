// internal/domain/notification.go
package domain

import "time"

// Notification is an informational message attached to a user. The read flag
// transitions false to true exactly once and never reverts; notifications are
// never deleted.
type Notification struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"-"`
	Message   string    `db:"message" json:"message"`
	IsRead    bool      `db:"is_read" json:"is_read"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// NewNotification creates a new unread Notification instance.
func NewNotification(userID int64, message string) *Notification {
	return &Notification{
		UserID:    userID,
		Message:   message,
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}
}
