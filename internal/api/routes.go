package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/game/start", s.handleStartGame)
		r.Post("/game/{gameId}/submit", s.handleSubmitAnswer)
		r.Get("/game/{gameId}/end", s.handleEndGame)
	})

	return r
}
