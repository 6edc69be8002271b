package usecase

import (
	"chess_backend/domain"
	"chess_backend/internal/auth/mocks"
	"chess_backend/internal/service/logger"
	"chess_backend/internal/service/middleware"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestLoginUser(t *testing.T) {
	logger.AccessLogger = zap.NewNop()
	logger.DBLogger = zap.NewNop()
	ctx := context.Background()

	hashedPassword, err := middleware.HashPassword("pw1")
	assert.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.MockAuthRepository)
		authUC := NewAuthUsecase(mockRepo)

		mockRepo.On("GetUserByUsername", mock.Anything, "alice").
			Return(&domain.User{UUID: "user-123", Username: "alice", Password: hashedPassword}, nil)

		user, err := authUC.LoginUser(ctx, "alice", "pw1")
		assert.NoError(t, err)
		assert.Equal(t, "user-123", user.UUID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Fail - Incorrect Password", func(t *testing.T) {
		mockRepo := new(mocks.MockAuthRepository)
		authUC := NewAuthUsecase(mockRepo)

		mockRepo.On("GetUserByUsername", mock.Anything, "alice").
			Return(&domain.User{UUID: "user-123", Username: "alice", Password: hashedPassword}, nil)

		user, err := authUC.LoginUser(ctx, "alice", "wrong")
		assert.Error(t, err)
		assert.Equal(t, "incorrect password", err.Error())
		assert.Nil(t, user)
	})

	t.Run("Fail - User Does Not Exist", func(t *testing.T) {
		mockRepo := new(mocks.MockAuthRepository)
		authUC := NewAuthUsecase(mockRepo)

		mockRepo.On("GetUserByUsername", mock.Anything, "bob").
			Return(nil, errors.New("user does not exist"))

		user, err := authUC.LoginUser(ctx, "bob", "x")
		assert.Error(t, err)
		assert.Equal(t, "user does not exist", err.Error())
		assert.Nil(t, user)
	})

	t.Run("Fail - Missing Credentials", func(t *testing.T) {
		mockRepo := new(mocks.MockAuthRepository)
		authUC := NewAuthUsecase(mockRepo)

		for _, creds := range [][2]string{{"", "pw1"}, {"alice", ""}, {"", ""}} {
			user, err := authUC.LoginUser(ctx, creds[0], creds[1])
			assert.Error(t, err)
			assert.Equal(t, "username and password are required", err.Error())
			assert.Nil(t, user)
		}
		mockRepo.AssertNotCalled(t, "GetUserByUsername")
	})

	t.Run("Fail - Input Exceeds Character Limit", func(t *testing.T) {
		mockRepo := new(mocks.MockAuthRepository)
		authUC := NewAuthUsecase(mockRepo)

		user, err := authUC.LoginUser(ctx, strings.Repeat("a", 101), "pw1")
		assert.Error(t, err)
		assert.Equal(t, "Input exceeds character limit", err.Error())
		assert.Nil(t, user)
		mockRepo.AssertNotCalled(t, "GetUserByUsername")
	})
}

func TestRegisterUser(t *testing.T) {
	logger.AccessLogger = zap.NewNop()
	logger.DBLogger = zap.NewNop()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.MockAuthRepository)
		authUC := NewAuthUsecase(mockRepo)

		mockRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Username == "alice" &&
				u.Email == "alice@example.com" &&
				u.Rating == domain.InitialRating &&
				u.Password != "pw1" &&
				middleware.CheckPassword(u.Password, "pw1")
		})).Return(nil)

		user, err := authUC.RegisterUser(ctx, "alice", "pw1", "alice@example.com")
		assert.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Fail - User Already Exists", func(t *testing.T) {
		mockRepo := new(mocks.MockAuthRepository)
		authUC := NewAuthUsecase(mockRepo)

		mockRepo.On("CreateUser", mock.Anything, mock.Anything).
			Return(errors.New("user already exists"))

		user, err := authUC.RegisterUser(ctx, "alice", "pw1", "")
		assert.Error(t, err)
		assert.Equal(t, "user already exists", err.Error())
		assert.Nil(t, user)
	})

	t.Run("Fail - Missing Credentials", func(t *testing.T) {
		mockRepo := new(mocks.MockAuthRepository)
		authUC := NewAuthUsecase(mockRepo)

		user, err := authUC.RegisterUser(ctx, "alice", "", "")
		assert.Error(t, err)
		assert.Equal(t, "username and password are required", err.Error())
		assert.Nil(t, user)
		mockRepo.AssertNotCalled(t, "CreateUser")
	})
}
