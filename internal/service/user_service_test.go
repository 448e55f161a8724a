// internal/service/user_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"splitledger/internal/auth"
	"splitledger/internal/domain"
	"splitledger/internal/util"
)

func newTestJWTManager() *auth.JWTManager {
	return auth.NewJWTManager("test-secret", time.Hour)
}

// TestRegister tests the Register method of UserService.
func TestRegister(t *testing.T) {
	t.Run("SuccessfulRegistration", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		mockDBExecutor := new(MockDBExecutor)

		service := NewUserService(mockDBExecutor, mockUserRepo, newTestJWTManager())

		mockUserRepo.On("CreateUser", ctx, mock.Anything, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
			user := args.Get(2).(*domain.User)
			user.ID = 1
		}).Return(nil).Once()

		user, err := service.Register(ctx, "alice", "s3cret")

		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.True(t, user.Balance.IsZero())
		// The stored hash must verify against the original password and must
		// not be the password itself.
		assert.NotEqual(t, "s3cret", user.PasswordHash)
		assert.True(t, auth.CheckPassword(user.PasswordHash, "s3cret"))

		mock.AssertExpectationsForObjects(t, mockUserRepo, mockDBExecutor)
	})

	t.Run("EmptyFields", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		mockDBExecutor := new(MockDBExecutor)

		service := NewUserService(mockDBExecutor, mockUserRepo, newTestJWTManager())

		for _, tc := range []struct{ username, password string }{
			{"", "s3cret"},
			{"alice", ""},
			{"", ""},
		} {
			user, err := service.Register(ctx, tc.username, tc.password)

			assert.ErrorIs(t, err, util.ErrInvalidInput)
			assert.Nil(t, user)
		}
		mockUserRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		mockDBExecutor := new(MockDBExecutor)

		service := NewUserService(mockDBExecutor, mockUserRepo, newTestJWTManager())

		mockUserRepo.On("CreateUser", ctx, mock.Anything, mock.AnythingOfType("*domain.User")).Return(util.ErrDuplicateUsername).Once()

		user, err := service.Register(ctx, "alice", "s3cret")

		assert.ErrorIs(t, err, util.ErrDuplicateUsername)
		assert.Nil(t, user)
		mock.AssertExpectationsForObjects(t, mockUserRepo, mockDBExecutor)
	})
}

// TestLogin tests the Login method of UserService.
func TestLogin(t *testing.T) {
	t.Run("SuccessfulLogin", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		mockDBExecutor := new(MockDBExecutor)
		jwtManager := newTestJWTManager()

		service := NewUserService(mockDBExecutor, mockUserRepo, jwtManager)

		hash, err := auth.HashPassword("s3cret")
		assert.NoError(t, err)
		stored := &domain.User{ID: 1, Username: "alice", PasswordHash: hash, Balance: decimal.NewFromFloat(10.00)}

		mockUserRepo.On("GetUserByUsername", ctx, mock.Anything, "alice").Return(stored, nil).Once()

		token, user, err := service.Login(ctx, "alice", "s3cret")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, int64(1), user.ID)

		claims, err := jwtManager.Validate(token)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), claims.UserID)
		assert.Equal(t, "alice", claims.Username)

		mock.AssertExpectationsForObjects(t, mockUserRepo, mockDBExecutor)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		mockDBExecutor := new(MockDBExecutor)

		service := NewUserService(mockDBExecutor, mockUserRepo, newTestJWTManager())

		hash, err := auth.HashPassword("s3cret")
		assert.NoError(t, err)
		stored := &domain.User{ID: 1, Username: "alice", PasswordHash: hash}

		mockUserRepo.On("GetUserByUsername", ctx, mock.Anything, "alice").Return(stored, nil).Once()

		token, user, err := service.Login(ctx, "alice", "wrong")

		assert.ErrorIs(t, err, util.ErrInvalidCredentials)
		assert.Empty(t, token)
		assert.Nil(t, user)
		mock.AssertExpectationsForObjects(t, mockUserRepo, mockDBExecutor)
	})

	t.Run("UnknownUsername", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		mockDBExecutor := new(MockDBExecutor)

		service := NewUserService(mockDBExecutor, mockUserRepo, newTestJWTManager())

		mockUserRepo.On("GetUserByUsername", ctx, mock.Anything, "ghost").Return(nil, util.ErrUserNotFound).Once()

		token, user, err := service.Login(ctx, "ghost", "s3cret")

		// Unknown users and bad passwords are indistinguishable to the caller.
		assert.ErrorIs(t, err, util.ErrInvalidCredentials)
		assert.Empty(t, token)
		assert.Nil(t, user)
		mock.AssertExpectationsForObjects(t, mockUserRepo, mockDBExecutor)
	})
}

// TestSearchUsers tests the SearchUsers method of UserService.
func TestSearchUsers(t *testing.T) {
	t.Run("MatchingSubset", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		mockDBExecutor := new(MockDBExecutor)

		service := NewUserService(mockDBExecutor, mockUserRepo, newTestJWTManager())

		matches := []domain.User{{ID: 3, Username: "Sarvesh"}}
		mockUserRepo.On("SearchUsers", ctx, mock.Anything, "sar").Return(matches, nil).Once()

		users, err := service.SearchUsers(ctx, "sar")

		assert.NoError(t, err)
		assert.Len(t, users, 1)
		assert.Equal(t, "Sarvesh", users[0].Username)
		mock.AssertExpectationsForObjects(t, mockUserRepo, mockDBExecutor)
	})

	t.Run("NoMatches", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		mockDBExecutor := new(MockDBExecutor)

		service := NewUserService(mockDBExecutor, mockUserRepo, newTestJWTManager())

		mockUserRepo.On("SearchUsers", ctx, mock.Anything, "zzz").Return([]domain.User{}, nil).Once()

		users, err := service.SearchUsers(ctx, "zzz")

		assert.NoError(t, err)
		assert.Empty(t, users)
		mock.AssertExpectationsForObjects(t, mockUserRepo, mockDBExecutor)
	})
}

// TestGetUser tests the GetUser method of UserService.
func TestGetUser(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		mockDBExecutor := new(MockDBExecutor)

		service := NewUserService(mockDBExecutor, mockUserRepo, newTestJWTManager())

		mockUserRepo.On("GetUserByID", ctx, mock.Anything, int64(42)).Return(nil, util.ErrUserNotFound).Once()

		user, err := service.GetUser(ctx, 42)

		assert.ErrorIs(t, err, util.ErrUserNotFound)
		assert.Nil(t, user)
		mock.AssertExpectationsForObjects(t, mockUserRepo, mockDBExecutor)
	})
}
