// internal/service/user_service.go
package service

import (
	"context"
	"fmt"

	"splitledger/internal/auth"
	"splitledger/internal/domain"
	"splitledger/internal/repository"
	"splitledger/internal/util"
)

// UserService defines the interface for account and authentication logic.
type UserService interface {
	// Register creates a new user with a hashed password and a zero balance.
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed session token.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	// ListUsers retrieves all users.
	ListUsers(ctx context.Context) ([]domain.User, error)
	// SearchUsers retrieves users whose username contains the query,
	// case-insensitively. An empty query matches all users.
	SearchUsers(ctx context.Context, query string) ([]domain.User, error)
}

// userService implements the UserService interface.
type userService struct {
	dbExecutor repository.DBExecutor
	userRepo   repository.UserRepository
	jwtManager *auth.JWTManager
}

// NewUserService creates a new instance of UserService.
func NewUserService(
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	jwtManager *auth.JWTManager,
) UserService {
	return &userService{
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// Register creates a new user account. The username is unique; a duplicate
// surfaces as util.ErrDuplicateUsername from the repository.
func (s *userService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, util.ErrInvalidInput
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	user := domain.NewUser(username, hash)
	if err := s.userRepo.CreateUser(ctx, s.dbExecutor, user); err != nil {
		if util.IsError(err, util.ErrDuplicateUsername) {
			return nil, util.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("register: failed to create user: %w", err)
	}

	return user, nil
}

// Login verifies the username and password and returns a signed token.
// Both unknown usernames and wrong passwords surface as ErrInvalidCredentials
// so the response does not reveal which part was wrong.
func (s *userService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, util.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetUserByUsername(ctx, s.dbExecutor, username)
	if err != nil {
		if util.IsError(err, util.ErrUserNotFound) {
			return "", nil, util.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: failed to look up user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", nil, util.ErrInvalidCredentials
	}

	token, err := s.jwtManager.Generate(user.ID, user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}

	return token, user, nil
}

// GetUser retrieves a user by ID.
func (s *userService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrUserNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: failed to get user %d: %w", id, err)
	}
	return user, nil
}

// ListUsers retrieves all users.
func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// SearchUsers retrieves users matching the query.
func (s *userService) SearchUsers(ctx context.Context, query string) ([]domain.User, error) {
	users, err := s.userRepo.SearchUsers(ctx, s.dbExecutor, query)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return users, nil
}
