package session

import (
	"chess_backend/internal/service/logger"
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Lifetime matches the JWT expiry, so a token outlives its session record
// only when the session was explicitly revoked.
const Lifetime = 24 * time.Hour

var ErrSessionNotFound = errors.New("invalid session token")

type SessionService interface {
	Create(ctx context.Context, sessionID string, userID string) error
	Get(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}

type redisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) SessionService {
	return &redisSessionStore{
		client: client,
	}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func (s *redisSessionStore) Create(ctx context.Context, sessionID string, userID string) error {
	if err := s.client.Set(ctx, sessionKey(sessionID), userID, Lifetime).Err(); err != nil {
		logger.DBLogger.Error("Failed to create session", zap.String("session_id", sessionID), zap.Error(err))
		return errors.New("failed to create session")
	}
	return nil
}

// Get returns the user id the session was established for.
func (s *redisSessionStore) Get(ctx context.Context, sessionID string) (string, error) {
	userID, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrSessionNotFound
		}
		logger.DBLogger.Error("Failed to get session", zap.String("session_id", sessionID), zap.Error(err))
		return "", errors.New("failed to get session")
	}
	return userID, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, sessionID string) error {
	deleted, err := s.client.Del(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		logger.DBLogger.Error("Failed to delete session", zap.String("session_id", sessionID), zap.Error(err))
		return errors.New("failed to delete session")
	}
	if deleted == 0 {
		return ErrSessionNotFound
	}
	return nil
}
