package api

import (
	"encoding/json"
	"net/http"

	"github.com/gabriel/mindspeed/internal/logger"
	"github.com/gabriel/mindspeed/internal/services"
)

type Server struct {
	GameService services.GameService

	// Dev exposes underlying error details on 500 responses.
	Dev bool
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}
