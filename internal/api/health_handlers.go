package api

import "net/http"

// handleHealth is a liveness probe indicating the server process is running.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "OK",
		"message": "MindSpeed API is running",
	})
}
