package controller

import (
	"bytes"
	"chess_backend/domain"
	"chess_backend/internal/game/mocks"
	"chess_backend/internal/service/logger"
	"chess_backend/internal/service/middleware"
	"chess_backend/internal/service/session"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func createTestRequest(method, url string, body []byte) (*http.Request, *httptest.ResponseRecorder) {
	r := httptest.NewRequest(method, url, bytes.NewReader(body))
	w := httptest.NewRecorder()
	return r, w
}

func newTestHandler() (*GameHandler, *mocks.MockGameUsecase, *mocks.MockJwtTokenService, *mocks.MockSessionService) {
	mockUsecase := new(mocks.MockGameUsecase)
	mockJWT := new(mocks.MockJwtTokenService)
	mockSessions := new(mocks.MockSessionService)
	return NewGameHandler(mockUsecase, mockJWT, mockSessions), mockUsecase, mockJWT, mockSessions
}

func validClaims() *middleware.SessionClaims {
	return &middleware.SessionClaims{
		UserID:         "user-uuid",
		SessionID:      "session-1",
		StandardClaims: jwt.StandardClaims{ExpiresAt: 86400},
	}
}

func authorizeOK(mockJWT *mocks.MockJwtTokenService, mockSessions *mocks.MockSessionService) {
	mockJWT.On("Validate", "valid_token").Return(validClaims(), nil)
	mockSessions.On("Get", mock.Anything, "session-1").Return("user-uuid", nil)
}

func TestListGames(t *testing.T) {
	logger.AccessLogger = zap.NewNop()

	t.Run("Success", func(t *testing.T) {
		h, mockUsecase, mockJWT, mockSessions := newTestHandler()
		authorizeOK(mockJWT, mockSessions)

		mockUsecase.On("ListGames", mock.Anything).
			Return([]domain.ChessGame{{UUID: "game-1"}, {UUID: "game-2"}}, nil)

		r, w := createTestRequest(http.MethodGet, "/games/", nil)
		r.Header.Set("JWT-Token", "Bearer valid_token")
		h.ListGames(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var games []domain.ChessGame
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&games))
		assert.Len(t, games, 2)

		t.Cleanup(func() {
			mockUsecase.AssertExpectations(t)
			mockJWT.AssertExpectations(t)
			mockSessions.AssertExpectations(t)
		})
	})

	t.Run("Failure - Missing Token", func(t *testing.T) {
		h, mockUsecase, _, _ := newTestHandler()

		r, w := createTestRequest(http.MethodGet, "/games/", nil)
		h.ListGames(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		mockUsecase.AssertNotCalled(t, "ListGames")
	})

	t.Run("Failure - Revoked Session", func(t *testing.T) {
		h, mockUsecase, mockJWT, mockSessions := newTestHandler()

		mockJWT.On("Validate", "valid_token").Return(validClaims(), nil)
		mockSessions.On("Get", mock.Anything, "session-1").Return("", session.ErrSessionNotFound)

		r, w := createTestRequest(http.MethodGet, "/games/", nil)
		r.Header.Set("JWT-Token", "Bearer valid_token")
		h.ListGames(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		mockUsecase.AssertNotCalled(t, "ListGames")
	})
}

func TestCreateGame(t *testing.T) {
	logger.AccessLogger = zap.NewNop()

	t.Run("Success", func(t *testing.T) {
		h, mockUsecase, mockJWT, mockSessions := newTestHandler()
		authorizeOK(mockJWT, mockSessions)

		request := domain.CreateGameRequest{Player1: "p1", Player2: "p2", BoardState: `{"fen":"start"}`}
		body, _ := json.Marshal(request)

		created := &domain.ChessGame{UUID: "game-1", Player1ID: "p1", Player2ID: "p2", BoardState: `{"fen":"start"}`}
		mockUsecase.On("CreateGame", mock.Anything, request).Return(created, nil)

		r, w := createTestRequest(http.MethodPost, "/games/", body)
		r.Header.Set("JWT-Token", "Bearer valid_token")
		h.CreateGame(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var game domain.ChessGame
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&game))
		assert.Equal(t, "game-1", game.UUID)

		t.Cleanup(func() {
			mockUsecase.AssertExpectations(t)
		})
	})

	t.Run("Failure - Invalid Player Reference", func(t *testing.T) {
		h, mockUsecase, mockJWT, mockSessions := newTestHandler()
		authorizeOK(mockJWT, mockSessions)

		request := domain.CreateGameRequest{Player1: "p1", Player2: "ghost"}
		body, _ := json.Marshal(request)

		mockUsecase.On("CreateGame", mock.Anything, request).
			Return(nil, errors.New("invalid player reference"))

		r, w := createTestRequest(http.MethodPost, "/games/", body)
		r.Header.Set("JWT-Token", "Bearer valid_token")
		h.CreateGame(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetGame(t *testing.T) {
	logger.AccessLogger = zap.NewNop()

	t.Run("Success", func(t *testing.T) {
		h, mockUsecase, mockJWT, mockSessions := newTestHandler()
		authorizeOK(mockJWT, mockSessions)

		mockUsecase.On("GetGame", mock.Anything, "game-1").
			Return(&domain.ChessGame{UUID: "game-1", BoardState: "{}"}, nil)

		r, w := createTestRequest(http.MethodGet, "/games/game-1/", nil)
		r.Header.Set("JWT-Token", "Bearer valid_token")
		r = mux.SetURLVars(r, map[string]string{"id": "game-1"})
		h.GetGame(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		h, mockUsecase, mockJWT, mockSessions := newTestHandler()
		authorizeOK(mockJWT, mockSessions)

		mockUsecase.On("GetGame", mock.Anything, "ghost").
			Return(nil, errors.New("game not found"))

		r, w := createTestRequest(http.MethodGet, "/games/ghost/", nil)
		r.Header.Set("JWT-Token", "Bearer valid_token")
		r = mux.SetURLVars(r, map[string]string{"id": "ghost"})
		h.GetGame(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestUpdateGame(t *testing.T) {
	logger.AccessLogger = zap.NewNop()

	t.Run("Success - Partial Update", func(t *testing.T) {
		h, mockUsecase, mockJWT, mockSessions := newTestHandler()
		authorizeOK(mockJWT, mockSessions)

		board := `{"fen":"e4"}`
		updated := &domain.ChessGame{UUID: "game-1", BoardState: board}
		mockUsecase.On("UpdateGame", mock.Anything, "game-1", mock.MatchedBy(func(req domain.UpdateGameRequest) bool {
			return req.BoardState != nil && *req.BoardState == board && req.Player1 == nil
		})).Return(updated, nil)

		body, _ := json.Marshal(map[string]string{"board_state": board})
		r, w := createTestRequest(http.MethodPatch, "/games/game-1/", body)
		r.Header.Set("JWT-Token", "Bearer valid_token")
		r = mux.SetURLVars(r, map[string]string{"id": "game-1"})
		h.UpdateGame(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var game domain.ChessGame
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&game))
		assert.Equal(t, board, game.BoardState)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		h, mockUsecase, mockJWT, mockSessions := newTestHandler()
		authorizeOK(mockJWT, mockSessions)

		mockUsecase.On("UpdateGame", mock.Anything, "ghost", mock.Anything).
			Return(nil, errors.New("game not found"))

		body, _ := json.Marshal(map[string]string{"board_state": "{}"})
		r, w := createTestRequest(http.MethodPut, "/games/ghost/", body)
		r.Header.Set("JWT-Token", "Bearer valid_token")
		r = mux.SetURLVars(r, map[string]string{"id": "ghost"})
		h.UpdateGame(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestDeleteGame(t *testing.T) {
	logger.AccessLogger = zap.NewNop()

	t.Run("Success", func(t *testing.T) {
		h, mockUsecase, mockJWT, mockSessions := newTestHandler()
		authorizeOK(mockJWT, mockSessions)

		mockUsecase.On("DeleteGame", mock.Anything, "game-1").Return(nil)

		r, w := createTestRequest(http.MethodDelete, "/games/game-1/", nil)
		r.Header.Set("JWT-Token", "Bearer valid_token")
		r = mux.SetURLVars(r, map[string]string{"id": "game-1"})
		h.DeleteGame(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		h, mockUsecase, mockJWT, mockSessions := newTestHandler()
		authorizeOK(mockJWT, mockSessions)

		mockUsecase.On("DeleteGame", mock.Anything, "ghost").
			Return(errors.New("game not found"))

		r, w := createTestRequest(http.MethodDelete, "/games/ghost/", nil)
		r.Header.Set("JWT-Token", "Bearer valid_token")
		r = mux.SetURLVars(r, map[string]string{"id": "ghost"})
		h.DeleteGame(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestReportResult(t *testing.T) {
	logger.AccessLogger = zap.NewNop()

	t.Run("Success", func(t *testing.T) {
		h, mockUsecase, mockJWT, mockSessions := newTestHandler()
		authorizeOK(mockJWT, mockSessions)

		finished := &domain.ChessGame{UUID: "game-1", Result: domain.ResultWin}
		mockUsecase.On("ReportResult", mock.Anything, "game-1", domain.ResultWin).Return(finished, nil)

		body, _ := json.Marshal(domain.ReportResultRequest{Result: domain.ResultWin})
		r, w := createTestRequest(http.MethodPost, "/games/game-1/result/", body)
		r.Header.Set("JWT-Token", "Bearer valid_token")
		r = mux.SetURLVars(r, map[string]string{"id": "game-1"})
		h.ReportResult(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Failure - Invalid Result", func(t *testing.T) {
		h, mockUsecase, mockJWT, mockSessions := newTestHandler()
		authorizeOK(mockJWT, mockSessions)

		mockUsecase.On("ReportResult", mock.Anything, "game-1", "checkmate").
			Return(nil, errors.New("invalid result"))

		body, _ := json.Marshal(domain.ReportResultRequest{Result: "checkmate"})
		r, w := createTestRequest(http.MethodPost, "/games/game-1/result/", body)
		r.Header.Set("JWT-Token", "Bearer valid_token")
		r = mux.SetURLVars(r, map[string]string{"id": "game-1"})
		h.ReportResult(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
