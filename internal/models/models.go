package models

import "time"

type Player struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Game struct {
	ID             int64      `json:"id"`
	PlayerID       int64      `json:"player_id"`
	Difficulty     int        `json:"difficulty"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        *time.Time `json:"end_time"`
	CurrentScore   float64    `json:"current_score"`
	TotalTimeSpent float64    `json:"total_time_spent"`
	CreatedAt      time.Time  `json:"created_at"`
}

// Ended reports whether the game session has been closed.
func (g Game) Ended() bool {
	return g.EndTime != nil
}

type Question struct {
	ID            int64     `json:"id"`
	GameID        int64     `json:"game_id"`
	QuestionText  string    `json:"question_text"`
	CorrectAnswer float64   `json:"correct_answer"`
	OrderIndex    int       `json:"order_index"`
	CreatedAt     time.Time `json:"created_at"`
}

type Answer struct {
	ID           int64     `json:"id"`
	QuestionID   int64     `json:"question_id"`
	PlayerAnswer float64   `json:"player_answer"`
	TimeTaken    float64   `json:"time_taken"`
	IsCorrect    bool      `json:"is_correct"`
	SubmittedAt  time.Time `json:"submitted_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// QuestionWithAnswer pairs a question with its answer, if one was submitted.
// A question has at most one answer.
type QuestionWithAnswer struct {
	Question
	Answer *Answer `json:"answer"`
}

// GameDetail is the fully-loaded game aggregate: the game row, the owning
// player's name, and the game's questions in order with their answers.
type GameDetail struct {
	Game
	PlayerName string               `json:"player_name"`
	Questions  []QuestionWithAnswer `json:"questions"`
}

// OpenQuestion returns the first question without an answer, or nil when
// every question has been answered.
func (d *GameDetail) OpenQuestion() *QuestionWithAnswer {
	for i := range d.Questions {
		if d.Questions[i].Answer == nil {
			return &d.Questions[i]
		}
	}
	return nil
}
