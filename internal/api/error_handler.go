package api

import (
	"fmt"
	"net/http"

	"github.com/gabriel/mindspeed/internal/errors"
	"github.com/gabriel/mindspeed/internal/logger"
)

// handleError centralizes error handling for HTTP responses
func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	// Wrap unknown errors as internal errors
	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.NewInternalError(err)
	}

	if appErr.Status >= 500 {
		log.Error("server error: %v", appErr)
	} else {
		log.Warn("client error: %v", appErr)
	}

	message := appErr.Message
	// Underlying error details stay server-side outside development mode.
	if appErr.Status >= 500 && s.Dev && appErr.Err != nil {
		message = fmt.Sprintf("%s: %v", appErr.Message, appErr.Err)
	}

	body := map[string]any{
		"code":    appErr.Code,
		"message": message,
	}
	if len(appErr.Details) > 0 {
		body["details"] = appErr.Details
	}

	writeJSON(w, r, appErr.Status, map[string]any{"error": body})
}
