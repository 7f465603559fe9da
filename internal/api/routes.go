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
	r.Use(s.profileMiddleware)

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Route("/profiles", func(r chi.Router) {
			r.Get("/", s.handleListProfiles)
			r.Post("/", s.handleCreateProfile)
			r.Get("/{id}", s.handleGetProfile)
			r.Delete("/{id}", s.handleDeleteProfile)
		})

		r.Route("/decks", func(r chi.Router) {
			r.Get("/", s.handleListDecks)
			r.Post("/", s.handleCreateDeck)
			r.Get("/{id}", s.handleGetDeck)
			r.Put("/{id}", s.handleUpdateDeck)
			r.Delete("/{id}", s.handleDeleteDeck)
			r.Post("/{id}/import", s.handleImportDeck)
		})

		r.Route("/cards", func(r chi.Router) {
			r.Get("/", s.handleListCards)
			r.Post("/", s.handleCreateCard)
			r.Get("/{id}", s.handleGetCard)
			r.Put("/{id}", s.handleUpdateCard)
			r.Delete("/{id}", s.handleDeleteCard)
			r.Get("/{id}/schedule", s.handlePreviewCard)
			r.Post("/{id}/review", s.handleReviewCard)
			r.Get("/{id}/history", s.handleCardHistory)
		})

		r.Get("/queue", s.handleStudyQueue)

		r.Route("/stats", func(r chi.Router) {
			r.Get("/summary", s.handleStatsSummary)
			r.Get("/ratings", s.handleStatsRatings)
			r.Get("/decks", s.handleStatsDecks)
		})
	})

	return r
}
