package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gabriel/mindspeed/internal/logger"
	"github.com/gabriel/mindspeed/internal/models"
	"github.com/gabriel/mindspeed/internal/repository"
)

type gameRepository struct {
	db *sql.DB
}

// NewGameRepository creates a new GameRepository implementation
func NewGameRepository(db *sql.DB) repository.GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) Insert(ctx context.Context, g models.Game) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("game_repo")
	log.Debug("inserting game: player_id=%d, difficulty=%d", g.PlayerID, g.Difficulty)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO games (player_id, difficulty, start_time, current_score, total_time_spent)
VALUES (?, ?, ?, ?, ?)
`, g.PlayerID, g.Difficulty, g.StartTime, g.CurrentScore, g.TotalTimeSpent)
	if err != nil {
		log.Error("failed to insert game: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get game id: %v", err)
		return 0, err
	}
	log.Debug("game inserted: id=%d", id)
	return id, nil
}

// GetDetail loads the game aggregate with two explicit queries: the game row
// joined to its player, then the questions left-joined to their answers in
// order. Questions never have more than one answer. Returns sql.ErrNoRows
// when the game does not exist.
func (r *gameRepository) GetDetail(ctx context.Context, id int64) (*models.GameDetail, error) {
	log := logger.FromContext(ctx).WithPrefix("game_repo")
	log.Debug("loading game detail: id=%d", id)

	var d models.GameDetail
	err := r.db.QueryRowContext(ctx, `
SELECT g.id, g.player_id, g.difficulty, g.start_time, g.end_time,
       g.current_score, g.total_time_spent, g.created_at, p.name
FROM games g
JOIN players p ON p.id = g.player_id
WHERE g.id = ?
`, id).Scan(&d.ID, &d.PlayerID, &d.Difficulty, &d.StartTime, &d.EndTime,
		&d.CurrentScore, &d.TotalTimeSpent, &d.CreatedAt, &d.PlayerName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("game not found: id=%d", id)
		} else {
			log.Error("failed to load game: %v", err)
		}
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT q.id, q.game_id, q.question_text, q.correct_answer, q.order_index, q.created_at,
       a.id, a.question_id, a.player_answer, a.time_taken, a.is_correct, a.submitted_at, a.created_at
FROM questions q
LEFT JOIN answers a ON a.question_id = q.id
WHERE q.game_id = ?
ORDER BY q.order_index ASC
`, id)
	if err != nil {
		log.Error("failed to load questions for game: %v", err)
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var qa models.QuestionWithAnswer
		var (
			answerID     sql.NullInt64
			questionID   sql.NullInt64
			playerAnswer sql.NullFloat64
			timeTaken    sql.NullFloat64
			isCorrect    sql.NullBool
			submittedAt  sql.NullTime
			createdAt    sql.NullTime
		)
		if err := rows.Scan(&qa.ID, &qa.GameID, &qa.QuestionText, &qa.CorrectAnswer, &qa.OrderIndex, &qa.CreatedAt,
			&answerID, &questionID, &playerAnswer, &timeTaken, &isCorrect, &submittedAt, &createdAt); err != nil {
			log.Error("failed to scan question row: %v", err)
			return nil, err
		}
		if answerID.Valid {
			qa.Answer = &models.Answer{
				ID:           answerID.Int64,
				QuestionID:   questionID.Int64,
				PlayerAnswer: playerAnswer.Float64,
				TimeTaken:    timeTaken.Float64,
				IsCorrect:    isCorrect.Bool,
				SubmittedAt:  submittedAt.Time,
				CreatedAt:    createdAt.Time,
			}
		}
		d.Questions = append(d.Questions, qa)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Debug("game detail loaded: id=%d, questions=%d", id, len(d.Questions))
	return &d, nil
}

func (r *gameRepository) UpdateProgress(ctx context.Context, id int64, score, totalTime float64) error {
	log := logger.FromContext(ctx).WithPrefix("game_repo")
	log.Debug("updating game progress: game_id=%d, score=%.4f, total_time=%.2f", id, score, totalTime)

	_, err := r.db.ExecContext(ctx, `
UPDATE games
SET current_score = ?, total_time_spent = ?
WHERE id = ?
`, score, totalTime, id)
	if err != nil {
		log.Error("failed to update game progress: %v", err)
	}
	return err
}

func (r *gameRepository) SetEndTime(ctx context.Context, id int64, t time.Time) error {
	log := logger.FromContext(ctx).WithPrefix("game_repo")
	log.Debug("stamping game end time: game_id=%d", id)

	_, err := r.db.ExecContext(ctx, `UPDATE games SET end_time = ? WHERE id = ?`, t, id)
	if err != nil {
		log.Error("failed to set game end time: %v", err)
	}
	return err
}
