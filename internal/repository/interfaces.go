package repository

import (
	"context"
	"time"

	"github.com/gabriel/mindspeed/internal/models"
)

// PlayerRepository handles player data access
type PlayerRepository interface {
	GetByName(ctx context.Context, name string) (*models.Player, error)
	Insert(ctx context.Context, name string) (*models.Player, error)
}

// GameRepository handles game data access
type GameRepository interface {
	Insert(ctx context.Context, game models.Game) (int64, error)
	// GetDetail loads the full game aggregate in one explicit join-based read:
	// the game row, the owning player's name, and all questions in order with
	// their answers. Returns sql.ErrNoRows when the game does not exist.
	GetDetail(ctx context.Context, id int64) (*models.GameDetail, error)
	UpdateProgress(ctx context.Context, id int64, score, totalTime float64) error
	SetEndTime(ctx context.Context, id int64, t time.Time) error
}

// QuestionRepository handles question data access
type QuestionRepository interface {
	Insert(ctx context.Context, question models.Question) (int64, error)
}

// AnswerRepository handles answer data access
type AnswerRepository interface {
	Insert(ctx context.Context, answer models.Answer) (int64, error)
	// ListByGame returns a game's answers ordered by submission time.
	ListByGame(ctx context.Context, gameID int64) ([]models.Answer, error)
}
