package models

import "time"

// Request and response bodies for the game API.

type StartGameRequest struct {
	// Pointers distinguish missing fields from zero values during validation.
	Name       *string  `json:"name"`
	Difficulty *float64 `json:"difficulty"`
}

type StartGameResponse struct {
	Message     string    `json:"message"`
	SubmitURL   string    `json:"submit_url"`
	Question    string    `json:"question"`
	TimeStarted time.Time `json:"time_started"`
}

type SubmitAnswerRequest struct {
	Answer *float64 `json:"answer"`
}

type NextQuestion struct {
	SubmitURL string `json:"submit_url"`
	Question  string `json:"question"`
}

type SubmitAnswerResponse struct {
	Result       string        `json:"result"`
	TimeTaken    float64       `json:"time_taken"`
	CurrentScore string        `json:"current_score"`
	NextQuestion *NextQuestion `json:"next_question,omitempty"`
}

type BestScore struct {
	Question  string  `json:"question"`
	Answer    float64 `json:"answer"`
	TimeTaken float64 `json:"time_taken"`
}

type HistoryEntry struct {
	Question      string  `json:"question"`
	PlayerAnswer  float64 `json:"player_answer"`
	CorrectAnswer float64 `json:"correct_answer"`
	IsCorrect     bool    `json:"is_correct"`
	TimeTaken     float64 `json:"time_taken"`
}

type EndGameResponse struct {
	Name           string         `json:"name"`
	Difficulty     int            `json:"difficulty"`
	CurrentScore   string         `json:"current_score"`
	TotalTimeSpent float64        `json:"total_time_spent"`
	BestScore      BestScore      `json:"best_score"`
	History        []HistoryEntry `json:"history"`
}
