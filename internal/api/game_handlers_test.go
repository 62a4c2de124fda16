package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gabriel/mindspeed/internal/api"
	"github.com/gabriel/mindspeed/internal/errors"
	"github.com/gabriel/mindspeed/internal/models"
	"github.com/gabriel/mindspeed/internal/testutil/mocks"
)

func newTestServer(svc *mocks.MockGameService) http.Handler {
	s := &api.Server{GameService: svc}
	return s.Routes()
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	body := decodeBody(t, rec)
	errObj, ok := body["error"].(map[string]any)
	require.True(t, ok, "response should carry an error object: %s", rec.Body.String())
	return errObj
}

func TestStartGame_Created(t *testing.T) {
	svc := new(mocks.MockGameService)
	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.On("StartGame", mock.Anything, "Ada", 2).Return(&models.StartGameResponse{
		Message:     "Hello Ada, find your submit API URL below",
		SubmitURL:   "/game/5/submit",
		Question:    "12 + 34",
		TimeStarted: started,
	}, nil)

	rec := doRequest(t, newTestServer(svc), http.MethodPost, "/api/v1/game/start",
		`{"name": "Ada", "difficulty": 2}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decodeBody(t, rec)
	assert.Equal(t, "Hello Ada, find your submit API URL below", body["message"])
	assert.Equal(t, "/game/5/submit", body["submit_url"])
	assert.Equal(t, "12 + 34", body["question"])
	svc.AssertExpectations(t)
}

func TestStartGame_TrimsName(t *testing.T) {
	svc := new(mocks.MockGameService)
	svc.On("StartGame", mock.Anything, "Ada", 1).Return(&models.StartGameResponse{}, nil)

	rec := doRequest(t, newTestServer(svc), http.MethodPost, "/api/v1/game/start",
		`{"name": "  Ada  ", "difficulty": 1}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

func TestStartGame_ValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{name: "missing name", body: `{"difficulty": 2}`, field: "name"},
		{name: "blank name", body: `{"name": "   ", "difficulty": 2}`, field: "name"},
		{name: "missing difficulty", body: `{"name": "Ada"}`, field: "difficulty"},
		{name: "difficulty too low", body: `{"name": "Ada", "difficulty": 0}`, field: "difficulty"},
		{name: "difficulty too high", body: `{"name": "Ada", "difficulty": 5}`, field: "difficulty"},
		{name: "fractional difficulty", body: `{"name": "Ada", "difficulty": 2.5}`, field: "difficulty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mocks.MockGameService)
			rec := doRequest(t, newTestServer(svc), http.MethodPost, "/api/v1/game/start", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			errObj := errorBody(t, rec)
			assert.Equal(t, errors.ErrCodeValidation, errObj["code"])

			details, ok := errObj["details"].([]any)
			require.True(t, ok)
			require.NotEmpty(t, details)
			first := details[0].(map[string]any)
			assert.Equal(t, tt.field, first["field"])

			svc.AssertNotCalled(t, "StartGame", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestStartGame_RejectsMalformedBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "unknown field", body: `{"name": "Ada", "difficulty": 1, "level": 3}`},
		{name: "non-numeric difficulty", body: `{"name": "Ada", "difficulty": "two"}`},
		{name: "trailing data", body: `{"name": "Ada", "difficulty": 1}{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mocks.MockGameService)
			rec := doRequest(t, newTestServer(svc), http.MethodPost, "/api/v1/game/start", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			errObj := errorBody(t, rec)
			assert.Equal(t, errors.ErrCodeBadRequest, errObj["code"])
		})
	}
}

func TestSubmitAnswer_OK(t *testing.T) {
	svc := new(mocks.MockGameService)
	svc.On("SubmitAnswer", mock.Anything, int64(5), 46.0).Return(&models.SubmitAnswerResponse{
		Result:       "Good job Ada, your answer is correct!",
		TimeTaken:    7.0,
		CurrentScore: "1/1",
		NextQuestion: &models.NextQuestion{SubmitURL: "/game/5/submit", Question: "56 + 78"},
	}, nil)

	rec := doRequest(t, newTestServer(svc), http.MethodPost, "/api/v1/game/5/submit",
		`{"answer": 46}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Good job Ada, your answer is correct!", body["result"])
	assert.Equal(t, "1/1", body["current_score"])
	next, ok := body["next_question"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "56 + 78", next["question"])
	svc.AssertExpectations(t)
}

func TestSubmitAnswer_OmitsNextQuestionWhenDone(t *testing.T) {
	svc := new(mocks.MockGameService)
	svc.On("SubmitAnswer", mock.Anything, int64(5), 1.0).Return(&models.SubmitAnswerResponse{
		Result:       "Sorry Ada, your answer is incorrect.",
		TimeTaken:    2.0,
		CurrentScore: "9/10",
	}, nil)

	rec := doRequest(t, newTestServer(svc), http.MethodPost, "/api/v1/game/5/submit",
		`{"answer": 1}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	_, present := body["next_question"]
	assert.False(t, present)
}

func TestSubmitAnswer_InvalidGameID(t *testing.T) {
	svc := new(mocks.MockGameService)
	rec := doRequest(t, newTestServer(svc), http.MethodPost, "/api/v1/game/abc/submit",
		`{"answer": 1}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	errObj := errorBody(t, rec)
	assert.Equal(t, errors.ErrCodeBadRequest, errObj["code"])
	svc.AssertNotCalled(t, "SubmitAnswer", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitAnswer_MissingAnswer(t *testing.T) {
	svc := new(mocks.MockGameService)
	rec := doRequest(t, newTestServer(svc), http.MethodPost, "/api/v1/game/5/submit", `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	errObj := errorBody(t, rec)
	assert.Equal(t, errors.ErrCodeValidation, errObj["code"])
}

func TestSubmitAnswer_GameNotFound(t *testing.T) {
	svc := new(mocks.MockGameService)
	svc.On("SubmitAnswer", mock.Anything, int64(404), 1.0).
		Return(nil, errors.NewNotFoundError("game", int64(404)))

	rec := doRequest(t, newTestServer(svc), http.MethodPost, "/api/v1/game/404/submit",
		`{"answer": 1}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	errObj := errorBody(t, rec)
	assert.Equal(t, errors.ErrCodeNotFound, errObj["code"])
}

func TestSubmitAnswer_EndedGame(t *testing.T) {
	svc := new(mocks.MockGameService)
	svc.On("SubmitAnswer", mock.Anything, int64(5), 1.0).
		Return(nil, errors.NewInvalidStateError("cannot submit answers for an ended game"))

	rec := doRequest(t, newTestServer(svc), http.MethodPost, "/api/v1/game/5/submit",
		`{"answer": 1}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	errObj := errorBody(t, rec)
	assert.Equal(t, errors.ErrCodeInvalidState, errObj["code"])
	assert.Equal(t, "cannot submit answers for an ended game", errObj["message"])
}

func TestEndGame_OK(t *testing.T) {
	svc := new(mocks.MockGameService)
	svc.On("EndGame", mock.Anything, int64(5)).Return(&models.EndGameResponse{
		Name:           "Ada",
		Difficulty:     1,
		CurrentScore:   "2/3",
		TotalTimeSpent: 17.33,
		BestScore: models.BestScore{
			Question:  "4 + 5",
			Answer:    9,
			TimeTaken: 3.03,
		},
		History: []models.HistoryEntry{
			{Question: "4 + 5", PlayerAnswer: 9, CorrectAnswer: 9, IsCorrect: true, TimeTaken: 3.03},
		},
	}, nil)

	rec := doRequest(t, newTestServer(svc), http.MethodGet, "/api/v1/game/5/end", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Ada", body["name"])
	assert.Equal(t, "2/3", body["current_score"])

	best, ok := body["best_score"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "4 + 5", best["question"])

	history, ok := body["history"].([]any)
	require.True(t, ok)
	assert.Len(t, history, 1)
}

func TestEndGame_NotFound(t *testing.T) {
	svc := new(mocks.MockGameService)
	svc.On("EndGame", mock.Anything, int64(404)).
		Return(nil, errors.NewNotFoundError("game", int64(404)))

	rec := doRequest(t, newTestServer(svc), http.MethodGet, "/api/v1/game/404/end", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEndGame_InvalidGameID(t *testing.T) {
	svc := new(mocks.MockGameService)
	rec := doRequest(t, newTestServer(svc), http.MethodGet, "/api/v1/game/abc/end", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "EndGame", mock.Anything, mock.Anything)
}

func TestInternalErrorHidesDetails(t *testing.T) {
	svc := new(mocks.MockGameService)
	svc.On("EndGame", mock.Anything, int64(5)).
		Return(nil, errors.NewInternalError(assert.AnError))

	rec := doRequest(t, newTestServer(svc), http.MethodGet, "/api/v1/game/5/end", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	errObj := errorBody(t, rec)
	assert.Equal(t, "internal server error", errObj["message"])
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestHealth(t *testing.T) {
	svc := new(mocks.MockGameService)
	rec := doRequest(t, newTestServer(svc), http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "MindSpeed API is running", body["message"])
}

func TestRequestIDHeader(t *testing.T) {
	svc := new(mocks.MockGameService)
	rec := doRequest(t, newTestServer(svc), http.MethodGet, "/health", "")

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
