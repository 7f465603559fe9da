package api

import (
	"net/http"
	"time"

	"github.com/memoflash/memoflash/internal/fsrs"
	"github.com/memoflash/memoflash/internal/logger"
)

func (s *Server) handleStudyQueue(w http.ResponseWriter, r *http.Request) {
	profile, err := requireProfile(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	limit := queryInt(r, "limit", 0)
	cards, err := s.ReviewService.NextCards(r.Context(), profile.ID, time.Now().UTC(), limit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{
		"queue": cards,
		"count": len(cards),
	})
}

// handlePreviewCard returns, for one card, the outcome each rating would
// produce right now. Nothing is persisted.
func (s *Server) handlePreviewCard(w http.ResponseWriter, r *http.Request) {
	profile, err := requireProfile(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	id, err := urlParamID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.ReviewService.PreviewCard(r.Context(), id, profile.ID, time.Now().UTC())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, result)
}

func (s *Server) handleReviewCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	profile, err := requireProfile(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	id, err := urlParamID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req struct {
		Rating fsrs.Rating `json:"rating"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	schedule, err := s.ReviewService.ReviewCard(r.Context(), id, profile.ID, req.Rating, time.Now().UTC())
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("review committed: card_id=%d, rating=%s", id, req.Rating)
	respondJSON(w, r, http.StatusOK, schedule)
}

func (s *Server) handleCardHistory(w http.ResponseWriter, r *http.Request) {
	profile, err := requireProfile(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	id, err := urlParamID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	records, err := s.ReviewService.CardHistory(r.Context(), id, profile.ID, queryInt(r, "limit", 0))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"reviews": records})
}
