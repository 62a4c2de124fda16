package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gabriel/mindspeed/internal/errors"
	"github.com/gabriel/mindspeed/internal/logger"
	"github.com/gabriel/mindspeed/internal/models"
)

func (s *Server) handleStartGame(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req models.StartGameRequest
	if err := decodeJSON(r, &req); err != nil {
		s.handleError(w, r, err)
		return
	}
	if details := validateStartGame(&req); len(details) > 0 {
		s.handleError(w, r, errors.NewValidationError(details))
		return
	}

	log.Debug("start game request: name=%s, difficulty=%.0f", *req.Name, *req.Difficulty)

	resp, err := s.GameService.StartGame(r.Context(), *req.Name, int(*req.Difficulty))
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, resp)
}

func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	gameID, err := parseGameID(r)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	var req models.SubmitAnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		s.handleError(w, r, err)
		return
	}
	if details := validateSubmitAnswer(&req); len(details) > 0 {
		s.handleError(w, r, errors.NewValidationError(details))
		return
	}

	log.Debug("submit answer request: game_id=%d", gameID)

	resp, err := s.GameService.SubmitAnswer(r.Context(), gameID, *req.Answer)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) handleEndGame(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	gameID, err := parseGameID(r)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	log.Debug("end game request: game_id=%d", gameID)

	resp, err := s.GameService.EndGame(r.Context(), gameID)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, resp)
}

// parseGameID reads the gameId path parameter; a non-integer value is a 400
// before the service runs.
func parseGameID(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "gameId")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, errors.NewBadRequestError("invalid game ID")
	}
	return id, nil
}
