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

type AuthUsecase interface {
	LoginUser(ctx context.Context, username string, password string) (*domain.User, error)
	RegisterUser(ctx context.Context, username string, password string, email string) (*domain.User, error)
}

type authUsecase struct {
	authRepository domain.AuthRepository
}

func NewAuthUsecase(authRepository domain.AuthRepository) AuthUsecase {
	return &authUsecase{
		authRepository: authRepository,
	}
}

const maxLen = 100

func (uc *authUsecase) LoginUser(ctx context.Context, username string, password string) (*domain.User, error) {
	requestID := middleware.GetRequestID(ctx)
	if !validation.CredentialsPresent(username, password) {
		logger.AccessLogger.Warn("Login attempt with missing username or password", zap.String("request_id", requestID))
		return nil, errors.New("username and password are required")
	}
	if len(username) > maxLen || len(password) > maxLen {
		logger.AccessLogger.Warn("Input exceeds character limit", zap.String("request_id", requestID))
		return nil, errors.New("Input exceeds character limit")
	}

	user, err := uc.authRepository.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if !middleware.CheckPassword(user.Password, password) {
		logger.AccessLogger.Warn("Failed login attempt", zap.String("request_id", requestID), zap.String("username", username))
		return nil, errors.New("incorrect password")
	}

	return user, nil
}

func (uc *authUsecase) RegisterUser(ctx context.Context, username string, password string, email string) (*domain.User, error) {
	requestID := middleware.GetRequestID(ctx)
	if !validation.CredentialsPresent(username, password) {
		logger.AccessLogger.Warn("Registration attempt with missing username or password", zap.String("request_id", requestID))
		return nil, errors.New("username and password are required")
	}
	if len(username) > maxLen || len(password) > maxLen {
		logger.AccessLogger.Warn("Input exceeds character limit", zap.String("request_id", requestID))
		return nil, errors.New("Input exceeds character limit")
	}

	hashedPassword, err := middleware.HashPassword(password)
	if err != nil {
		logger.AccessLogger.Error("Failed to hash password", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to hash password")
	}

	user := &domain.User{
		Username: username,
		Password: hashedPassword,
		Email:    email,
		Rating:   domain.InitialRating,
	}
	if err := uc.authRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
