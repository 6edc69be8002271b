package controller

import (
	"chess_backend/domain"
	"chess_backend/internal/game/usecase"
	"chess_backend/internal/service/logger"
	"chess_backend/internal/service/middleware"
	"chess_backend/internal/service/session"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type GameHandler struct {
	usecase  usecase.GameUsecase
	jwtToken middleware.JwtTokenService
	sessions session.SessionService
}

func NewGameHandler(usecase usecase.GameUsecase, jwtToken middleware.JwtTokenService, sessions session.SessionService) *GameHandler {
	return &GameHandler{
		usecase:  usecase,
		jwtToken: jwtToken,
		sessions: sessions,
	}
}

// authorize checks the JWT and that its session record has not been revoked.
func (h *GameHandler) authorize(ctx context.Context, r *http.Request) (*middleware.SessionClaims, error) {
	authHeader := r.Header.Get("JWT-Token")
	if authHeader == "" {
		return nil, errors.New("Missing JWT-Token header")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := h.jwtToken.Validate(tokenString)
	if err != nil {
		return nil, errors.New("Invalid JWT token")
	}

	userID, err := h.sessions.Get(ctx, claims.SessionID)
	if err != nil || userID != claims.UserID {
		return nil, session.ErrSessionNotFound
	}
	return claims, nil
}

func (h *GameHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received ListGames request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	if _, err := h.authorize(ctx, r); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	games, err := h.usecase.ListGames(ctx)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(games); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed ListGames request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK))
}

func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	sanitizer := bluemonday.UGCPolicy()
	defer cancel()

	logger.AccessLogger.Info("Received CreateGame request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	if _, err := h.authorize(ctx, r); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	var data domain.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		h.handleError(w, err, requestID)
		return
	}
	data.Player1 = sanitizer.Sanitize(data.Player1)
	data.Player2 = sanitizer.Sanitize(data.Player2)

	game, err := h.usecase.CreateGame(ctx, data)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(game); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed CreateGame request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusCreated))
}

func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received GetGame request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	if _, err := h.authorize(ctx, r); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	game, err := h.usecase.GetGame(ctx, mux.Vars(r)["id"])
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(game); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed GetGame request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK))
}

func (h *GameHandler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	sanitizer := bluemonday.UGCPolicy()
	defer cancel()

	logger.AccessLogger.Info("Received UpdateGame request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	if _, err := h.authorize(ctx, r); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	var data domain.UpdateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		h.handleError(w, err, requestID)
		return
	}
	if data.Player1 != nil {
		clean := sanitizer.Sanitize(*data.Player1)
		data.Player1 = &clean
	}
	if data.Player2 != nil {
		clean := sanitizer.Sanitize(*data.Player2)
		data.Player2 = &clean
	}

	game, err := h.usecase.UpdateGame(ctx, mux.Vars(r)["id"], data)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(game); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed UpdateGame request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK))
}

func (h *GameHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received DeleteGame request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	if _, err := h.authorize(ctx, r); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	if err := h.usecase.DeleteGame(ctx, mux.Vars(r)["id"]); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.WriteHeader(http.StatusNoContent)

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed DeleteGame request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusNoContent))
}

func (h *GameHandler) ReportResult(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	sanitizer := bluemonday.UGCPolicy()
	defer cancel()

	logger.AccessLogger.Info("Received ReportResult request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	if _, err := h.authorize(ctx, r); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	var data domain.ReportResultRequest
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		h.handleError(w, err, requestID)
		return
	}
	data.Result = sanitizer.Sanitize(data.Result)

	game, err := h.usecase.ReportResult(ctx, mux.Vars(r)["id"], data.Result)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(game); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed ReportResult request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK))
}

func (h *GameHandler) handleError(w http.ResponseWriter, err error, requestID string) {
	logger.AccessLogger.Error("Handling error",
		zap.String("request_id", requestID),
		zap.Error(err),
	)

	w.Header().Set("Content-Type", "application/json")
	errorResponse := map[string]string{"error": err.Error()}

	switch err.Error() {
	case "invalid player reference", "invalid result":
		w.WriteHeader(http.StatusBadRequest)
	case "Missing JWT-Token header", "Invalid JWT token", "invalid session token":
		w.WriteHeader(http.StatusUnauthorized)
	case "game not found":
		w.WriteHeader(http.StatusNotFound)
	case "failed to fetch games", "failed to fetch game", "failed to create game",
		"failed to update game", "failed to delete game", "failed to fetch players",
		"failed to update rating", "failed to start transaction", "failed to commit transaction":
		w.WriteHeader(http.StatusInternalServerError)
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
