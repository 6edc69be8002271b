package repository

import (
	"chess_backend/domain"
	"chess_backend/internal/service/logger"
	"chess_backend/internal/service/middleware"
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) domain.AuthRepository {
	return &authRepository{
		db: db,
	}
}

func (r *authRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("GetUserByUsername called", zap.String("request_id", requestID), zap.String("username", username))

	var user domain.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.DBLogger.Warn("User not found", zap.String("request_id", requestID), zap.String("username", username))
			return nil, errors.New("user does not exist")
		}
		logger.DBLogger.Error("Failed to get user", zap.String("request_id", requestID), zap.String("username", username), zap.Error(err))
		return nil, errors.New("failed to fetch user")
	}

	logger.DBLogger.Info("Successfully fetched user", zap.String("request_id", requestID), zap.String("username", username))
	return &user, nil
}

func (r *authRepository) CreateUser(ctx context.Context, user *domain.User) error {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("CreateUser called", zap.String("request_id", requestID), zap.String("username", user.Username))

	var existing domain.User
	err := r.db.First(&existing, "username = ?", user.Username).Error
	if err == nil {
		logger.DBLogger.Warn("User already exists", zap.String("request_id", requestID), zap.String("username", user.Username))
		return errors.New("user already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.DBLogger.Error("Failed to get user", zap.String("request_id", requestID), zap.String("username", user.Username), zap.Error(err))
		return errors.New("failed to fetch user")
	}

	if err := r.db.Create(user).Error; err != nil {
		logger.DBLogger.Error("Failed to create user", zap.String("request_id", requestID), zap.String("username", user.Username), zap.Error(err))
		return errors.New("failed to create user")
	}

	logger.DBLogger.Info("Successfully created user", zap.String("request_id", requestID), zap.String("username", user.Username))
	return nil
}
