// internal/service/notification_service.go
package service

import (
	"context"
	"fmt"

	"splitledger/internal/domain"
	"splitledger/internal/repository"
	"splitledger/internal/util"
)

// NotificationService defines the interface for the per-user message store.
type NotificationService interface {
	// Notify appends an unread notification for an existing user.
	Notify(ctx context.Context, userID int64, message string) (*domain.Notification, error)
	// MarkRead marks a notification as read. Marking an already-read
	// notification again is a no-op success, not an error.
	MarkRead(ctx context.Context, notificationID int64) error
	// ListForUser retrieves all notifications for a user in insertion order.
	ListForUser(ctx context.Context, userID int64) ([]domain.Notification, error)
}

// notificationService implements the NotificationService interface.
type notificationService struct {
	dbExecutor       repository.DBExecutor
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new instance of NotificationService.
func NewNotificationService(
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
) NotificationService {
	return &notificationService{
		dbExecutor:       dbExecutor,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

// Notify appends an unread notification with the current timestamp.
func (s *notificationService) Notify(ctx context.Context, userID int64, message string) (*domain.Notification, error) {
	if message == "" {
		return nil, util.ErrInvalidInput
	}

	if _, err := s.userRepo.GetUserByID(ctx, s.dbExecutor, userID); err != nil {
		if util.IsError(err, util.ErrUserNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("notify: failed to check user %d: %w", userID, err)
	}

	notification := domain.NewNotification(userID, message)
	if err := s.notificationRepo.CreateNotification(ctx, s.dbExecutor, notification); err != nil {
		return nil, fmt.Errorf("notify: %w", err)
	}
	return notification, nil
}

// MarkRead marks a notification as read. The flag only ever transitions from
// unread to read; repeated calls succeed without changing anything.
func (s *notificationService) MarkRead(ctx context.Context, notificationID int64) error {
	if err := s.notificationRepo.MarkRead(ctx, s.dbExecutor, notificationID); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return util.ErrNotFound
		}
		return fmt.Errorf("mark read: %w", err)
	}
	return nil
}

// ListForUser retrieves all notifications for a user in insertion order.
func (s *notificationService) ListForUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	notifications, err := s.notificationRepo.ListForUser(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}
