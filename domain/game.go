package domain

import (
	"context"
	"time"
)

// Game results are recorded from player1's perspective.
const (
	ResultWin  = "win"
	ResultLoss = "loss"
	ResultDraw = "draw"
)

type ChessGame struct {
	UUID       string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid();column:uuid" json:"id"`
	Player1ID  string    `gorm:"type:uuid;column:player1_id;not null" json:"player1"`
	Player2ID  string    `gorm:"type:uuid;column:player2_id;not null" json:"player2"`
	BoardState string    `gorm:"type:text;column:board_state" json:"board_state"`
	Result     string    `gorm:"type:varchar(10);column:result" json:"result,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
	Player1    User      `gorm:"foreignKey:Player1ID;references:UUID;constraint:OnDelete:CASCADE" json:"-"`
	Player2    User      `gorm:"foreignKey:Player2ID;references:UUID;constraint:OnDelete:CASCADE" json:"-"`
}

type CreateGameRequest struct {
	Player1    string `json:"player1"`
	Player2    string `json:"player2"`
	BoardState string `json:"board_state"`
}

// UpdateGameRequest carries a partial update. Nil fields are left untouched;
// board_state is replaced wholesale, never merged or parsed.
type UpdateGameRequest struct {
	Player1    *string `json:"player1"`
	Player2    *string `json:"player2"`
	BoardState *string `json:"board_state"`
}

type ReportResultRequest struct {
	Result string `json:"result"`
}

type GameRepository interface {
	ListGames(ctx context.Context) ([]ChessGame, error)
	CreateGame(ctx context.Context, game *ChessGame) error
	GetGame(ctx context.Context, id string) (*ChessGame, error)
	UpdateGame(ctx context.Context, id string, updates UpdateGameRequest) (*ChessGame, error)
	DeleteGame(ctx context.Context, id string) error
	ReportResult(ctx context.Context, id string, result string) (*ChessGame, error)
}
