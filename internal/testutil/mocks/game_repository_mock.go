package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/gabriel/mindspeed/internal/models"
)

// MockGameRepository is a mock implementation of repository.GameRepository
type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) Insert(ctx context.Context, game models.Game) (int64, error) {
	args := m.Called(ctx, game)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGameRepository) GetDetail(ctx context.Context, id int64) (*models.GameDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GameDetail), args.Error(1)
}

func (m *MockGameRepository) UpdateProgress(ctx context.Context, id int64, score, totalTime float64) error {
	args := m.Called(ctx, id, score, totalTime)
	return args.Error(0)
}

func (m *MockGameRepository) SetEndTime(ctx context.Context, id int64, t time.Time) error {
	args := m.Called(ctx, id, t)
	return args.Error(0)
}
