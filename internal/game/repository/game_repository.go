package repository

import (
	"chess_backend/domain"
	"chess_backend/internal/service/logger"
	"chess_backend/internal/service/middleware"
	"chess_backend/internal/service/rating"
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type gameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) domain.GameRepository {
	return &gameRepository{
		db: db,
	}
}

func (r *gameRepository) ListGames(ctx context.Context) ([]domain.ChessGame, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("ListGames called", zap.String("request_id", requestID))

	games := make([]domain.ChessGame, 0)
	if err := r.db.Find(&games).Error; err != nil {
		logger.DBLogger.Error("Failed to fetch games", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to fetch games")
	}

	logger.DBLogger.Info("Successfully fetched games", zap.String("request_id", requestID), zap.Int("count", len(games)))
	return games, nil
}

func (r *gameRepository) CreateGame(ctx context.Context, game *domain.ChessGame) error {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("CreateGame called", zap.String("request_id", requestID),
		zap.String("player1_id", game.Player1ID), zap.String("player2_id", game.Player2ID))

	if err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := playersExist(tx, game.Player1ID, game.Player2ID); err != nil {
			logger.DBLogger.Warn("Player reference not found", zap.String("request_id", requestID))
			return err
		}

		if err := tx.Create(game).Error; err != nil {
			logger.DBLogger.Error("Failed to create game", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to create game")
		}
		return nil
	}); err != nil {
		return err
	}

	logger.DBLogger.Info("Successfully created game", zap.String("request_id", requestID), zap.String("game_id", game.UUID))
	return nil
}

func (r *gameRepository) GetGame(ctx context.Context, id string) (*domain.ChessGame, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("GetGame called", zap.String("request_id", requestID), zap.String("game_id", id))

	var game domain.ChessGame
	if err := r.db.First(&game, "uuid = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.DBLogger.Warn("Game not found", zap.String("request_id", requestID), zap.String("game_id", id))
			return nil, errors.New("game not found")
		}
		logger.DBLogger.Error("Failed to get game", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to fetch game")
	}

	return &game, nil
}

func (r *gameRepository) UpdateGame(ctx context.Context, id string, updates domain.UpdateGameRequest) (*domain.ChessGame, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("UpdateGame called", zap.String("request_id", requestID), zap.String("game_id", id))

	var game domain.ChessGame
	if err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&game, "uuid = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.DBLogger.Warn("Game not found", zap.String("request_id", requestID), zap.String("game_id", id))
				return errors.New("game not found")
			}
			logger.DBLogger.Error("Failed to get game", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch game")
		}

		fields := map[string]interface{}{}
		if updates.Player1 != nil {
			fields["player1_id"] = *updates.Player1
		}
		if updates.Player2 != nil {
			fields["player2_id"] = *updates.Player2
		}
		if updates.Player1 != nil || updates.Player2 != nil {
			p1, p2 := game.Player1ID, game.Player2ID
			if updates.Player1 != nil {
				p1 = *updates.Player1
			}
			if updates.Player2 != nil {
				p2 = *updates.Player2
			}
			if err := playersExist(tx, p1, p2); err != nil {
				logger.DBLogger.Warn("Player reference not found", zap.String("request_id", requestID))
				return err
			}
		}
		if updates.BoardState != nil {
			fields["board_state"] = *updates.BoardState
		}

		if len(fields) == 0 {
			return nil
		}

		if err := tx.Model(&game).Updates(fields).Error; err != nil {
			logger.DBLogger.Error("Failed to update game", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to update game")
		}
		return nil
	}); err != nil {
		return nil, err
	}

	logger.DBLogger.Info("Successfully updated game", zap.String("request_id", requestID), zap.String("game_id", id))
	return &game, nil
}

func (r *gameRepository) DeleteGame(ctx context.Context, id string) error {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("DeleteGame called", zap.String("request_id", requestID), zap.String("game_id", id))

	result := r.db.Delete(&domain.ChessGame{}, "uuid = ?", id)
	if result.Error != nil {
		logger.DBLogger.Error("Failed to delete game", zap.String("request_id", requestID), zap.Error(result.Error))
		return errors.New("failed to delete game")
	}
	if result.RowsAffected == 0 {
		logger.DBLogger.Warn("Game not found", zap.String("request_id", requestID), zap.String("game_id", id))
		return errors.New("game not found")
	}

	logger.DBLogger.Info("Successfully deleted game", zap.String("request_id", requestID), zap.String("game_id", id))
	return nil
}

func (r *gameRepository) ReportResult(ctx context.Context, id string, result string) (*domain.ChessGame, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("ReportResult called", zap.String("request_id", requestID),
		zap.String("game_id", id), zap.String("result", result))

	tx := r.db.Begin()
	if tx.Error != nil {
		logger.DBLogger.Error("Failed to start transaction", zap.Error(tx.Error))
		return nil, errors.New("failed to start transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var game domain.ChessGame
	if err := tx.First(&game, "uuid = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.DBLogger.Warn("Game not found", zap.String("request_id", requestID), zap.String("game_id", id))
			return nil, errors.New("game not found")
		}
		logger.DBLogger.Error("Failed to get game", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to fetch game")
	}

	var player1 domain.User
	if err := tx.First(&player1, "uuid = ?", game.Player1ID).Error; err != nil {
		tx.Rollback()
		logger.DBLogger.Error("Failed to get player1", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("invalid player reference")
	}

	var player2 domain.User
	if err := tx.First(&player2, "uuid = ?", game.Player2ID).Error; err != nil {
		tx.Rollback()
		logger.DBLogger.Error("Failed to get player2", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("invalid player reference")
	}

	score1, score2 := rating.Scores(result)
	newRating1 := rating.Next(player1.Rating, player2.Rating, score1)
	newRating2 := rating.Next(player2.Rating, player1.Rating, score2)

	if err := tx.Model(&domain.User{}).Where("uuid = ?", player1.UUID).Update("rating", newRating1).Error; err != nil {
		tx.Rollback()
		logger.DBLogger.Error("Failed to update player1 rating", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to update rating")
	}

	if err := tx.Model(&domain.User{}).Where("uuid = ?", player2.UUID).Update("rating", newRating2).Error; err != nil {
		tx.Rollback()
		logger.DBLogger.Error("Failed to update player2 rating", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to update rating")
	}

	if err := tx.Model(&game).Update("result", result).Error; err != nil {
		tx.Rollback()
		logger.DBLogger.Error("Failed to update game result", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to update game")
	}

	if err := tx.Commit().Error; err != nil {
		logger.DBLogger.Error("Failed to commit transaction", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to commit transaction")
	}

	logger.DBLogger.Info("Successfully reported result", zap.String("request_id", requestID),
		zap.String("game_id", id), zap.Int("player1_rating", newRating1), zap.Int("player2_rating", newRating2))
	return &game, nil
}

// playersExist checks that every distinct player id resolves to a user row.
func playersExist(tx *gorm.DB, player1ID string, player2ID string) error {
	ids := []string{player1ID, player2ID}
	if player1ID == player2ID {
		ids = ids[:1]
	}

	var count int64
	if err := tx.Model(&domain.User{}).Where("uuid IN ?", ids).Count(&count).Error; err != nil {
		return errors.New("failed to fetch players")
	}
	if count != int64(len(ids)) {
		return errors.New("invalid player reference")
	}
	return nil
}
