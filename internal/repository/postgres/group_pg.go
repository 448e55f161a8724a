// internal/repository/postgres/group_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"splitledger/internal/domain"
	"splitledger/internal/repository"
	"splitledger/internal/util"
)

// GroupRepository implements repository.GroupRepository for PostgreSQL.
type GroupRepository struct{}

// NewGroupRepository creates a new GroupRepository.
func NewGroupRepository(db *sqlx.DB) repository.GroupRepository {
	return &GroupRepository{}
}

// CreateGroup inserts a group and its membership rows using the provided DBExecutor.
// Callers are expected to pass a transaction executor.
func (r *GroupRepository) CreateGroup(ctx context.Context, q repository.DBExecutor, group *domain.Group) error {
	query := `INSERT INTO groups (name, created_at) VALUES ($1, $2) RETURNING id`
	err := q.QueryRowContext(ctx, query, group.Name, group.CreatedAt).Scan(&group.ID)
	if err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}

	for _, userID := range group.MemberIDs {
		_, err := q.ExecContext(ctx,
			`INSERT INTO group_members (group_id, user_id) VALUES ($1, $2)`,
			group.ID, userID,
		)
		if err != nil {
			return fmt.Errorf("failed to add member %d to group %d: %w", userID, group.ID, err)
		}
	}
	return nil
}

// GetGroup retrieves a group by ID with its member user IDs loaded.
func (r *GroupRepository) GetGroup(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Group, error) {
	var group domain.Group
	query := `SELECT id, name, created_at FROM groups WHERE id = $1`
	err := q.GetContext(ctx, &group, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get group by ID %d: %w", id, err)
	}

	members := []int64{}
	err = q.SelectContext(ctx, &members,
		`SELECT user_id FROM group_members WHERE group_id = $1 ORDER BY user_id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get members for group %d: %w", id, err)
	}
	group.MemberIDs = members
	return &group, nil
}

// ListGroupsForUser retrieves all groups the user belongs to.
func (r *GroupRepository) ListGroupsForUser(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Group, error) {
	groups := []domain.Group{}
	query := `SELECT g.id, g.name, g.created_at
              FROM groups g
              JOIN group_members gm ON gm.group_id = g.id
              WHERE gm.user_id = $1
              ORDER BY g.id`
	if err := q.SelectContext(ctx, &groups, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list groups for user %d: %w", userID, err)
	}
	return groups, nil
}
