package mocks

import (
	"chess_backend/domain"
	"chess_backend/internal/service/middleware"
	"context"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/mock"
)

type MockGameUsecase struct {
	mock.Mock
}

func (m *MockGameUsecase) ListGames(ctx context.Context) ([]domain.ChessGame, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.ChessGame), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGameUsecase) CreateGame(ctx context.Context, request domain.CreateGameRequest) (*domain.ChessGame, error) {
	args := m.Called(ctx, request)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.ChessGame), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGameUsecase) GetGame(ctx context.Context, id string) (*domain.ChessGame, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.ChessGame), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGameUsecase) UpdateGame(ctx context.Context, id string, request domain.UpdateGameRequest) (*domain.ChessGame, error) {
	args := m.Called(ctx, id, request)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.ChessGame), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGameUsecase) DeleteGame(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGameUsecase) ReportResult(ctx context.Context, id string, result string) (*domain.ChessGame, error) {
	args := m.Called(ctx, id, result)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.ChessGame), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) ListGames(ctx context.Context) ([]domain.ChessGame, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.ChessGame), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGameRepository) CreateGame(ctx context.Context, game *domain.ChessGame) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}

func (m *MockGameRepository) GetGame(ctx context.Context, id string) (*domain.ChessGame, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.ChessGame), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGameRepository) UpdateGame(ctx context.Context, id string, updates domain.UpdateGameRequest) (*domain.ChessGame, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.ChessGame), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGameRepository) DeleteGame(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGameRepository) ReportResult(ctx context.Context, id string, result string) (*domain.ChessGame, error) {
	args := m.Called(ctx, id, result)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.ChessGame), args.Error(1)
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
