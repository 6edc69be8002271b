package usecase

import (
	"chess_backend/domain"
	"chess_backend/internal/service/logger"
	"chess_backend/internal/service/middleware"
	"chess_backend/internal/service/validation"
	"context"
	"errors"

	"go.uber.org/zap"
)

type GameUsecase interface {
	ListGames(ctx context.Context) ([]domain.ChessGame, error)
	CreateGame(ctx context.Context, request domain.CreateGameRequest) (*domain.ChessGame, error)
	GetGame(ctx context.Context, id string) (*domain.ChessGame, error)
	UpdateGame(ctx context.Context, id string, request domain.UpdateGameRequest) (*domain.ChessGame, error)
	DeleteGame(ctx context.Context, id string) error
	ReportResult(ctx context.Context, id string, result string) (*domain.ChessGame, error)
}

type gameUsecase struct {
	gameRepository domain.GameRepository
}

func NewGameUsecase(gameRepository domain.GameRepository) GameUsecase {
	return &gameUsecase{
		gameRepository: gameRepository,
	}
}

func (uc *gameUsecase) ListGames(ctx context.Context) ([]domain.ChessGame, error) {
	return uc.gameRepository.ListGames(ctx)
}

func (uc *gameUsecase) CreateGame(ctx context.Context, request domain.CreateGameRequest) (*domain.ChessGame, error) {
	requestID := middleware.GetRequestID(ctx)
	if request.Player1 == "" || request.Player2 == "" {
		logger.AccessLogger.Warn("Create game with missing player reference", zap.String("request_id", requestID))
		return nil, errors.New("invalid player reference")
	}

	game := &domain.ChessGame{
		Player1ID:  request.Player1,
		Player2ID:  request.Player2,
		BoardState: request.BoardState,
	}
	if err := uc.gameRepository.CreateGame(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

func (uc *gameUsecase) GetGame(ctx context.Context, id string) (*domain.ChessGame, error) {
	return uc.gameRepository.GetGame(ctx, id)
}

func (uc *gameUsecase) UpdateGame(ctx context.Context, id string, request domain.UpdateGameRequest) (*domain.ChessGame, error) {
	requestID := middleware.GetRequestID(ctx)
	if (request.Player1 != nil && *request.Player1 == "") || (request.Player2 != nil && *request.Player2 == "") {
		logger.AccessLogger.Warn("Update game with empty player reference", zap.String("request_id", requestID))
		return nil, errors.New("invalid player reference")
	}
	return uc.gameRepository.UpdateGame(ctx, id, request)
}

func (uc *gameUsecase) DeleteGame(ctx context.Context, id string) error {
	return uc.gameRepository.DeleteGame(ctx, id)
}

func (uc *gameUsecase) ReportResult(ctx context.Context, id string, result string) (*domain.ChessGame, error) {
	requestID := middleware.GetRequestID(ctx)
	if !validation.ValidResult(result) {
		logger.AccessLogger.Warn("Invalid game result", zap.String("request_id", requestID), zap.String("result", result))
		return nil, errors.New("invalid result")
	}
	return uc.gameRepository.ReportResult(ctx, id, result)
}
