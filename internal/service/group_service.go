// internal/service/group_service.go
package service

import (
	"context"
	"fmt"

	"splitledger/internal/domain"
	"splitledger/internal/repository"
	"splitledger/internal/util"
	"splitledger/pkg/db"
)

// GroupService defines the interface for the group directory.
type GroupService interface {
	// CreateGroup validates every member and creates the group with its
	// membership rows in a single database transaction.
	CreateGroup(ctx context.Context, name string, memberIDs []int64) (*domain.Group, error)
	// GetGroup retrieves a group with its member IDs.
	GetGroup(ctx context.Context, groupID int64) (*domain.Group, error)
	// ListGroups retrieves all groups containing the user.
	ListGroups(ctx context.Context, userID int64) ([]domain.Group, error)
}

// groupService implements the GroupService interface.
type groupService struct {
	dbBeginner db.DBTxBeginner
	dbExecutor repository.DBExecutor
	userRepo   repository.UserRepository
	groupRepo  repository.GroupRepository
	beginTx    db.BeginTxFunc
	commitTx   db.CommitTxFunc
	rollbackTx db.RollbackTxFunc
}

// NewGroupService creates a new instance of GroupService.
func NewGroupService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	groupRepo repository.GroupRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) GroupService {
	return &groupService{
		dbBeginner: dbBeginner,
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
		groupRepo:  groupRepo,
		beginTx:    beginTx,
		commitTx:   commitTx,
		rollbackTx: rollbackTx,
	}
}

// CreateGroup creates a named group. Every member ID must resolve to an
// existing user or the whole operation fails with no mutation.
func (s *groupService) CreateGroup(ctx context.Context, name string, memberIDs []int64) (*domain.Group, error) {
	if name == "" {
		return nil, util.ErrInvalidInput
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("create group: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("create group: transaction controller does not implement DBExecutor")
	}

	if len(memberIDs) > 0 {
		members, err := s.userRepo.GetUsersByIDs(ctx, txExecutor, memberIDs)
		if err != nil {
			return nil, fmt.Errorf("create group: failed to resolve members: %w", err)
		}
		if len(members) != len(memberIDs) {
			return nil, util.ErrUserNotFound
		}
	}

	group := domain.NewGroup(name, memberIDs)
	if err := s.groupRepo.CreateGroup(ctx, txExecutor, group); err != nil {
		return nil, fmt.Errorf("create group: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("create group: failed to commit transaction: %w", err)
	}

	return group, nil
}

// GetGroup retrieves a group with its member IDs.
func (s *groupService) GetGroup(ctx context.Context, groupID int64) (*domain.Group, error) {
	group, err := s.groupRepo.GetGroup(ctx, s.dbExecutor, groupID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("get group: failed to get group %d: %w", groupID, err)
	}
	return group, nil
}

// ListGroups retrieves all groups containing the user.
func (s *groupService) ListGroups(ctx context.Context, userID int64) ([]domain.Group, error) {
	groups, err := s.groupRepo.ListGroupsForUser(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}
