package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gabriel/mindspeed/internal/models"
)

// MockGameService is a mock implementation of services.GameService
type MockGameService struct {
	mock.Mock
}

func (m *MockGameService) StartGame(ctx context.Context, name string, difficulty int) (*models.StartGameResponse, error) {
	args := m.Called(ctx, name, difficulty)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StartGameResponse), args.Error(1)
}

func (m *MockGameService) SubmitAnswer(ctx context.Context, gameID int64, playerAnswer float64) (*models.SubmitAnswerResponse, error) {
	args := m.Called(ctx, gameID, playerAnswer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubmitAnswerResponse), args.Error(1)
}

func (m *MockGameService) EndGame(ctx context.Context, gameID int64) (*models.EndGameResponse, error) {
	args := m.Called(ctx, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EndGameResponse), args.Error(1)
}
