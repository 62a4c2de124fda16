package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gabriel/mindspeed/internal/models"
)

// MockAnswerRepository is a mock implementation of repository.AnswerRepository
type MockAnswerRepository struct {
	mock.Mock
}

func (m *MockAnswerRepository) Insert(ctx context.Context, answer models.Answer) (int64, error) {
	args := m.Called(ctx, answer)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAnswerRepository) ListByGame(ctx context.Context, gameID int64) ([]models.Answer, error) {
	args := m.Called(ctx, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Answer), args.Error(1)
}
