package rating

import (
	"chess_backend/domain"
	"math"
)

const kFactor = 32

// ExpectedScore is the standard Elo expectation of a player rated a against
// a player rated b.
func ExpectedScore(a int, b int) float64 {
	return 1 / (1 + math.Pow(10, float64(b-a)/400))
}

func Next(current int, opponent int, score float64) int {
	return int(math.Round(float64(current) + kFactor*(score-ExpectedScore(current, opponent))))
}

// Scores maps a recorded result to (player1 score, player2 score).
func Scores(result string) (float64, float64) {
	switch result {
	case domain.ResultWin:
		return 1, 0
	case domain.ResultLoss:
		return 0, 1
	default:
		return 0.5, 0.5
	}
}
