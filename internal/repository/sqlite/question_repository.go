package sqlite

import (
	"context"
	"database/sql"

	"github.com/gabriel/mindspeed/internal/logger"
	"github.com/gabriel/mindspeed/internal/models"
	"github.com/gabriel/mindspeed/internal/repository"
)

type questionRepository struct {
	db *sql.DB
}

// NewQuestionRepository creates a new QuestionRepository implementation
func NewQuestionRepository(db *sql.DB) repository.QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Insert(ctx context.Context, q models.Question) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("question_repo")
	log.Debug("inserting question: game_id=%d, order=%d", q.GameID, q.OrderIndex)

	query, args, err := sqlBuilder.Insert("questions").
		Columns("game_id", "question_text", "correct_answer", "order_index").
		Values(q.GameID, q.QuestionText, q.CorrectAnswer, q.OrderIndex).
		ToSql()
	if err != nil {
		log.Error("failed to build insert query: %v", err)
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to insert question: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get question id: %v", err)
		return 0, err
	}
	log.Debug("question inserted: id=%d", id)
	return id, nil
}
