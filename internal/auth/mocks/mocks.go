package mocks

import (
	"chess_backend/domain"
	"chess_backend/internal/service/middleware"
	"context"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/mock"
)

type MockAuthRepository struct {
	mock.Mock
}

func (m *MockAuthRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthRepository) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) LoginUser(ctx context.Context, username string, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthUsecase) RegisterUser(ctx context.Context, username string, password string, email string) (*domain.User, error) {
	args := m.Called(ctx, username, password, email)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockJwtTokenService struct {
	mock.Mock
}

func (m *MockJwtTokenService) Create(userID string, sessionID string, tokenExpTime int64) (string, error) {
	args := m.Called(userID, sessionID, tokenExpTime)
	return args.String(0), args.Error(1)
}

func (m *MockJwtTokenService) Validate(tokenString string) (*middleware.SessionClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) != nil {
		return args.Get(0).(*middleware.SessionClaims), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJwtTokenService) ParseSecretGetter(token *jwt.Token) (interface{}, error) {
	args := m.Called(token)
	return args.Get(0), args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Create(ctx context.Context, sessionID string, userID string) error {
	args := m.Called(ctx, sessionID, userID)
	return args.Error(0)
}

func (m *MockSessionService) Get(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
