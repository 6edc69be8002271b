package controller

import (
	"chess_backend/domain"
	"chess_backend/internal/auth/usecase"
	"chess_backend/internal/service/logger"
	"chess_backend/internal/service/middleware"
	"chess_backend/internal/service/session"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type AuthHandler struct {
	usecase  usecase.AuthUsecase
	jwtToken middleware.JwtTokenService
	sessions session.SessionService
}

func NewAuthHandler(usecase usecase.AuthUsecase, jwtToken middleware.JwtTokenService, sessions session.SessionService) *AuthHandler {
	return &AuthHandler{
		usecase:  usecase,
		jwtToken: jwtToken,
		sessions: sessions,
	}
}

func (h *AuthHandler) LoginUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	sanitizer := bluemonday.UGCPolicy()
	defer cancel()

	logger.AccessLogger.Info("Received LoginUser request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	authHeader := r.Header.Get("JWT-Token")
	if authHeader != "" {
		logger.AccessLogger.Warn("jwt_token already exists",
			zap.String("request_id", requestID),
		)
		h.handleError(w, errors.New("jwt_token already exists"), requestID)
		return
	}

	var creds domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		logger.AccessLogger.Error("Failed to decode request body",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		h.handleError(w, err, requestID)
		return
	}

	creds.Username = sanitizer.Sanitize(creds.Username)
	creds.Password = sanitizer.Sanitize(creds.Password)

	user, err := h.usecase.LoginUser(ctx, creds.Username, creds.Password)
	if err != nil {
		logger.AccessLogger.Error("Failed to login",
			zap.String("request_id", requestID),
			zap.Error(err))
		h.handleError(w, err, requestID)
		return
	}

	if err := h.respondWithSession(ctx, w, user, http.StatusOK, requestID); err != nil {
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed LoginUser request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *AuthHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	sanitizer := bluemonday.UGCPolicy()
	defer cancel()

	logger.AccessLogger.Info("Received RegisterUser request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	authHeader := r.Header.Get("JWT-Token")
	if authHeader != "" {
		logger.AccessLogger.Warn("jwt_token already exists",
			zap.String("request_id", requestID),
		)
		h.handleError(w, errors.New("jwt_token already exists"), requestID)
		return
	}

	var creds domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		logger.AccessLogger.Error("Failed to decode request body",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		h.handleError(w, err, requestID)
		return
	}

	creds.Username = sanitizer.Sanitize(creds.Username)
	creds.Password = sanitizer.Sanitize(creds.Password)
	creds.Email = sanitizer.Sanitize(creds.Email)

	user, err := h.usecase.RegisterUser(ctx, creds.Username, creds.Password, creds.Email)
	if err != nil {
		logger.AccessLogger.Error("Failed to register",
			zap.String("request_id", requestID),
			zap.Error(err))
		h.handleError(w, err, requestID)
		return
	}

	if err := h.respondWithSession(ctx, w, user, http.StatusCreated, requestID); err != nil {
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed RegisterUser request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusCreated),
	)
}

func (h *AuthHandler) LogoutUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received LogoutUser request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	authHeader := r.Header.Get("JWT-Token")
	if authHeader == "" {
		h.handleError(w, errors.New("Missing JWT-Token header"), requestID)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := h.jwtToken.Validate(tokenString)
	if err != nil {
		h.handleError(w, errors.New("Invalid JWT token"), requestID)
		return
	}

	if err := h.sessions.Delete(ctx, claims.SessionID); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.WriteHeader(http.StatusNoContent)

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed LogoutUser request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusNoContent),
	)
}

// respondWithSession issues the JWT, records the session and writes the
// identity view. On error the response has already been written.
func (h *AuthHandler) respondWithSession(ctx context.Context, w http.ResponseWriter, user *domain.User, status int, requestID string) error {
	sessionID := uuid.New().String()
	tokenExpTime := time.Now().Add(session.Lifetime).Unix()
	jwtToken, err := h.jwtToken.Create(user.UUID, sessionID, tokenExpTime)
	if err != nil {
		logger.AccessLogger.Error("Failed to create JWT token",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		h.handleError(w, errors.New("failed to create session token"), requestID)
		return err
	}

	if err := h.sessions.Create(ctx, sessionID, user.UUID); err != nil {
		logger.AccessLogger.Error("Failed to create session",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		h.handleError(w, err, requestID)
		return err
	}

	body := map[string]interface{}{
		"token": jwtToken,
		"user":  user.Public(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.AccessLogger.Error("Failed to encode response",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return err
	}
	return nil
}

func (h *AuthHandler) handleError(w http.ResponseWriter, err error, requestID string) {
	logger.AccessLogger.Error("Handling error",
		zap.String("request_id", requestID),
		zap.Error(err),
	)

	w.Header().Set("Content-Type", "application/json")
	errorResponse := map[string]string{"error": err.Error()}

	switch err.Error() {
	case "username and password are required", "user already exists",
		"jwt_token already exists", "Input exceeds character limit":
		w.WriteHeader(http.StatusBadRequest)
	case "user does not exist", "incorrect password",
		"Missing JWT-Token header", "Invalid JWT token", "invalid session token":
		w.WriteHeader(http.StatusUnauthorized)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}

	if jsonErr := json.NewEncoder(w).Encode(errorResponse); jsonErr != nil {
		logger.AccessLogger.Error("Failed to encode error response",
			zap.String("request_id", requestID),
			zap.Error(jsonErr),
		)
		http.Error(w, jsonErr.Error(), http.StatusInternalServerError)
	}
}
