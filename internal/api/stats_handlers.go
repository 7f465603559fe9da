package api

import (
	"net/http"
	"time"
)

func (s *Server) handleStatsSummary(w http.ResponseWriter, r *http.Request) {
	profile, err := requireProfile(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	summary, err := s.StatsService.Summary(r.Context(), profile.ID, time.Now().UTC())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, summary)
}

func (s *Server) handleStatsRatings(w http.ResponseWriter, r *http.Request) {
	profile, err := requireProfile(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	counts, err := s.StatsService.RatingBreakdown(r.Context(), profile.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"ratings": counts})
}

func (s *Server) handleStatsDecks(w http.ResponseWriter, r *http.Request) {
	profile, err := requireProfile(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	stats, err := s.StatsService.DeckStats(r.Context(), profile.ID, time.Now().UTC())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"decks": stats})
}
