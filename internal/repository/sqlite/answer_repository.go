package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/gabriel/mindspeed/internal/logger"
	"github.com/gabriel/mindspeed/internal/models"
	"github.com/gabriel/mindspeed/internal/repository"
)

type answerRepository struct {
	db *sql.DB
}

// NewAnswerRepository creates a new AnswerRepository implementation
func NewAnswerRepository(db *sql.DB) repository.AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Insert(ctx context.Context, a models.Answer) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("answer_repo")
	log.Debug("inserting answer: question_id=%d, correct=%t", a.QuestionID, a.IsCorrect)

	query, args, err := sqlBuilder.Insert("answers").
		Columns("question_id", "player_answer", "time_taken", "is_correct", "submitted_at").
		Values(a.QuestionID, a.PlayerAnswer, a.TimeTaken, a.IsCorrect, a.SubmittedAt).
		ToSql()
	if err != nil {
		log.Error("failed to build insert query: %v", err)
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to insert answer: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get answer id: %v", err)
		return 0, err
	}
	log.Debug("answer inserted: id=%d", id)
	return id, nil
}

func (r *answerRepository) ListByGame(ctx context.Context, gameID int64) ([]models.Answer, error) {
	log := logger.FromContext(ctx).WithPrefix("answer_repo")
	log.Debug("listing answers for game: game_id=%d", gameID)

	query, args, err := sqlBuilder.Select(
		"a.id", "a.question_id", "a.player_answer", "a.time_taken",
		"a.is_correct", "a.submitted_at", "a.created_at",
	).From("answers a").
		Join("questions q ON q.id = a.question_id").
		Where(squirrel.Eq{"q.game_id": gameID}).
		OrderBy("a.submitted_at ASC", "a.id ASC").
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list answers: %v", err)
		return nil, err
	}
	defer rows.Close()

	var answers []models.Answer
	for rows.Next() {
		var a models.Answer
		if err := rows.Scan(&a.ID, &a.QuestionID, &a.PlayerAnswer, &a.TimeTaken, &a.IsCorrect, &a.SubmittedAt, &a.CreatedAt); err != nil {
			log.Error("failed to scan answer row: %v", err)
			return nil, err
		}
		answers = append(answers, a)
	}
	log.Debug("found %d answers", len(answers))
	return answers, rows.Err()
}
