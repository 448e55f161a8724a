// internal/repository/group_repo.go
package repository

import (
	"context"

	"splitledger/internal/domain"
)

// GroupRepository defines the interface for group data operations.
type GroupRepository interface {
	// CreateGroup adds a group and its membership rows using the provided DBExecutor.
	CreateGroup(ctx context.Context, q DBExecutor, group *domain.Group) error
	// GetGroup retrieves a group by ID with its member user IDs loaded.
	GetGroup(ctx context.Context, q DBExecutor, id int64) (*domain.Group, error)
	// ListGroupsForUser retrieves all groups the user belongs to.
	ListGroupsForUser(ctx context.Context, q DBExecutor, userID int64) ([]domain.Group, error)
}
