package api

import (
	"encoding/json"
	"io"
	"math"
	"net/http"
	"strings"

	"github.com/gabriel/mindspeed/internal/errors"
	"github.com/gabriel/mindspeed/internal/models"
	"github.com/gabriel/mindspeed/internal/quiz"
)

// decodeJSON decodes a request body into dst, rejecting unknown fields and
// trailing data. Type mismatches and malformed JSON map to 400s.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if err == io.EOF {
			return errors.NewBadRequestError("request body is required")
		}
		return errors.NewBadRequestError("invalid request body: " + err.Error())
	}
	if dec.More() {
		return errors.NewBadRequestError("request body must contain a single JSON object")
	}
	return nil
}

// validateStartGame sanitizes and validates a start-game request in place.
// String fields are trimmed before validation.
func validateStartGame(req *models.StartGameRequest) []errors.FieldError {
	var details []errors.FieldError

	if req.Name == nil {
		details = append(details, errors.FieldError{Field: "name", Message: "name is required"})
	} else {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
		if trimmed == "" {
			details = append(details, errors.FieldError{Field: "name", Message: "name must not be empty"})
		}
	}

	if req.Difficulty == nil {
		details = append(details, errors.FieldError{Field: "difficulty", Message: "difficulty is required"})
	} else if d := *req.Difficulty; d != math.Trunc(d) {
		details = append(details, errors.FieldError{Field: "difficulty", Message: "difficulty must be an integer"})
	} else if d < quiz.MinDifficulty || d > quiz.MaxDifficulty {
		details = append(details, errors.FieldError{Field: "difficulty", Message: "difficulty must be between 1 and 4"})
	}

	return details
}

// validateSubmitAnswer validates a submit-answer request.
func validateSubmitAnswer(req *models.SubmitAnswerRequest) []errors.FieldError {
	var details []errors.FieldError

	if req.Answer == nil {
		details = append(details, errors.FieldError{Field: "answer", Message: "answer is required and must be numeric"})
	}

	return details
}
