package services

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/gabriel/mindspeed/internal/errors"
	"github.com/gabriel/mindspeed/internal/logger"
	"github.com/gabriel/mindspeed/internal/models"
	"github.com/gabriel/mindspeed/internal/quiz"
	"github.com/gabriel/mindspeed/internal/repository"
)

// maxAnswersPerGame caps a session; no question is generated past this count.
const maxAnswersPerGame = 10

// GameService handles the game lifecycle business logic
type GameService interface {
	StartGame(ctx context.Context, name string, difficulty int) (*models.StartGameResponse, error)
	SubmitAnswer(ctx context.Context, gameID int64, playerAnswer float64) (*models.SubmitAnswerResponse, error)
	EndGame(ctx context.Context, gameID int64) (*models.EndGameResponse, error)
}

type gameService struct {
	playerRepo   repository.PlayerRepository
	gameRepo     repository.GameRepository
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository

	locks *gameLocks
	now   func() time.Time

	rngMu sync.Mutex
	rng   *rand.Rand
}

// Option configures a gameService.
type Option func(*gameService)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *gameService) {
		s.now = now
	}
}

// WithRand overrides the random source, for deterministic tests.
func WithRand(rng *rand.Rand) Option {
	return func(s *gameService) {
		s.rng = rng
	}
}

// NewGameService creates a new GameService
func NewGameService(
	playerRepo repository.PlayerRepository,
	gameRepo repository.GameRepository,
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	opts ...Option,
) GameService {
	s := &gameService{
		playerRepo:   playerRepo,
		gameRepo:     gameRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		locks:        newGameLocks(),
		now:          time.Now,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *gameService) StartGame(ctx context.Context, name string, difficulty int) (*models.StartGameResponse, error) {
	log := logger.FromContext(ctx)
	log.Debug("starting game: name=%s, difficulty=%d", name, difficulty)

	player, err := s.playerRepo.GetByName(ctx, name)
	if err != nil {
		log.Error("failed to look up player: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if player == nil {
		player, err = s.playerRepo.Insert(ctx, name)
		if err != nil {
			log.Error("failed to create player: %v", err)
			return nil, errors.NewInternalError(err)
		}
		log.Info("created new player: id=%d, name=%s", player.ID, name)
	}

	start := s.now()
	gameID, err := s.gameRepo.Insert(ctx, models.Game{
		PlayerID:   player.ID,
		Difficulty: difficulty,
		StartTime:  start,
	})
	if err != nil {
		log.Error("failed to create game: %v", err)
		return nil, errors.NewInternalError(err)
	}

	text, answer := s.generate(difficulty)
	if _, err := s.questionRepo.Insert(ctx, models.Question{
		GameID:        gameID,
		QuestionText:  text,
		CorrectAnswer: answer,
		OrderIndex:    1,
	}); err != nil {
		log.Error("failed to create first question: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Info("game started: id=%d, player=%s, difficulty=%d", gameID, name, difficulty)
	return &models.StartGameResponse{
		Message:     fmt.Sprintf("Hello %s, find your submit API URL below", name),
		SubmitURL:   submitURL(gameID),
		Question:    text,
		TimeStarted: start,
	}, nil
}

func (s *gameService) SubmitAnswer(ctx context.Context, gameID int64, playerAnswer float64) (*models.SubmitAnswerResponse, error) {
	log := logger.FromContext(ctx)
	log.Debug("submitting answer: game_id=%d", gameID)

	s.locks.lock(gameID)
	defer s.locks.unlock(gameID)

	detail, err := s.gameRepo.GetDetail(ctx, gameID)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NewNotFoundError("game", gameID)
		}
		log.Error("failed to load game: %v", err)
		return nil, errors.NewInternalError(err)
	}

	if detail.Ended() {
		return nil, errors.NewInvalidStateError("cannot submit answers for an ended game")
	}

	current := detail.OpenQuestion()
	if current == nil {
		return nil, errors.NewInvalidStateError("no unanswered questions found")
	}

	prior, err := s.answerRepo.ListByGame(ctx, gameID)
	if err != nil {
		log.Error("failed to list prior answers: %v", err)
		return nil, errors.NewInternalError(err)
	}

	// Elapsed time runs from the previous submission, or from game start for
	// the first answer.
	now := s.now()
	var elapsed float64
	if len(prior) == 0 {
		elapsed = now.Sub(detail.StartTime).Seconds()
	} else {
		elapsed = now.Sub(prior[len(prior)-1].SubmittedAt).Seconds()
	}

	isCorrect := quiz.IsCorrect(playerAnswer, current.CorrectAnswer)

	if _, err := s.answerRepo.Insert(ctx, models.Answer{
		QuestionID:   current.ID,
		PlayerAnswer: playerAnswer,
		TimeTaken:    elapsed,
		IsCorrect:    isCorrect,
		SubmittedAt:  now,
	}); err != nil {
		log.Error("failed to insert answer: %v", err)
		return nil, errors.NewInternalError(err)
	}

	totalAnswered := len(prior) + 1
	correctCount := 0
	for _, a := range prior {
		if a.IsCorrect {
			correctCount++
		}
	}
	if isCorrect {
		correctCount++
	}

	score := float64(correctCount) / float64(totalAnswered)
	if err := s.gameRepo.UpdateProgress(ctx, gameID, score, detail.TotalTimeSpent+elapsed); err != nil {
		log.Error("failed to update game progress: %v", err)
		return nil, errors.NewInternalError(err)
	}

	result := fmt.Sprintf("Sorry %s, your answer is incorrect.", detail.PlayerName)
	if isCorrect {
		result = fmt.Sprintf("Good job %s, your answer is correct!", detail.PlayerName)
	}

	resp := &models.SubmitAnswerResponse{
		Result:       result,
		TimeTaken:    quiz.Round2(elapsed),
		CurrentScore: quiz.ScoreString(correctCount, totalAnswered),
	}

	if totalAnswered < maxAnswersPerGame {
		text, answer := s.generate(detail.Difficulty)
		if _, err := s.questionRepo.Insert(ctx, models.Question{
			GameID:        gameID,
			QuestionText:  text,
			CorrectAnswer: answer,
			OrderIndex:    totalAnswered + 1,
		}); err != nil {
			log.Error("failed to create next question: %v", err)
			return nil, errors.NewInternalError(err)
		}
		resp.NextQuestion = &models.NextQuestion{
			SubmitURL: submitURL(gameID),
			Question:  text,
		}
	}

	log.Info("answer recorded: game_id=%d, correct=%t, score=%s", gameID, isCorrect, resp.CurrentScore)
	return resp, nil
}

func (s *gameService) EndGame(ctx context.Context, gameID int64) (*models.EndGameResponse, error) {
	log := logger.FromContext(ctx)
	log.Debug("ending game: game_id=%d", gameID)

	s.locks.lock(gameID)
	defer s.locks.unlock(gameID)

	detail, err := s.gameRepo.GetDetail(ctx, gameID)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NewNotFoundError("game", gameID)
		}
		log.Error("failed to load game: %v", err)
		return nil, errors.NewInternalError(err)
	}

	// Idempotent: ending twice simply re-stamps the end time.
	if err := s.gameRepo.SetEndTime(ctx, gameID, s.now()); err != nil {
		log.Error("failed to stamp end time: %v", err)
		return nil, errors.NewInternalError(err)
	}

	answers, err := s.answerRepo.ListByGame(ctx, gameID)
	if err != nil {
		log.Error("failed to list answers: %v", err)
		return nil, errors.NewInternalError(err)
	}

	correctCount := 0
	for _, a := range answers {
		if a.IsCorrect {
			correctCount++
		}
	}

	questionByID := make(map[int64]models.Question, len(detail.Questions))
	for _, q := range detail.Questions {
		questionByID[q.ID] = q.Question
	}

	// Best score is the fastest correct answer; first encountered wins ties.
	best := models.BestScore{Question: "No correct answers"}
	bestTime := 0.0
	haveBest := false
	for _, a := range answers {
		if !a.IsCorrect {
			continue
		}
		if !haveBest || a.TimeTaken < bestTime {
			q := questionByID[a.QuestionID]
			best = models.BestScore{
				Question:  q.QuestionText,
				Answer:    q.CorrectAnswer,
				TimeTaken: quiz.Round2(a.TimeTaken),
			}
			bestTime = a.TimeTaken
			haveBest = true
		}
	}

	// History keeps every question that has an answer record, in question
	// order. Unanswered questions are excluded.
	history := make([]models.HistoryEntry, 0, len(answers))
	for _, q := range detail.Questions {
		if q.Answer == nil {
			continue
		}
		history = append(history, models.HistoryEntry{
			Question:      q.QuestionText,
			PlayerAnswer:  q.Answer.PlayerAnswer,
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     q.Answer.IsCorrect,
			TimeTaken:     quiz.Round2(q.Answer.TimeTaken),
		})
	}

	log.Info("game ended: id=%d, score=%d/%d", gameID, correctCount, len(answers))
	return &models.EndGameResponse{
		Name:           detail.PlayerName,
		Difficulty:     detail.Difficulty,
		CurrentScore:   quiz.ScoreString(correctCount, len(answers)),
		TotalTimeSpent: quiz.Round2(detail.TotalTimeSpent),
		BestScore:      best,
		History:        history,
	}, nil
}

// generate draws a question from the shared random source.
func (s *gameService) generate(difficulty int) (string, float64) {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return quiz.Generate(difficulty, s.rng)
}

func submitURL(gameID int64) string {
	return fmt.Sprintf("/game/%d/submit", gameID)
}
