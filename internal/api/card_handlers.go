package api

import (
	"net/http"
	"time"

	"github.com/memoflash/memoflash/internal/models"
)

func (s *Server) handleListCards(w http.ResponseWriter, r *http.Request) {
	profile, err := requireProfile(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	filter := models.CardFilter{
		DeckID:   queryInt64(r, "deck_id"),
		Search:   r.URL.Query().Get("search"),
		OrderBy:  r.URL.Query().Get("order_by"),
		OrderDir: r.URL.Query().Get("order_dir"),
		Limit:    queryInt(r, "limit", 50),
		Offset:   queryInt(r, "offset", 0),
	}

	cards, total, err := s.CardService.ListCards(r.Context(), profile.ID, filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{
		"cards": cards,
		"total": total,
	})
}

func (s *Server) handleGetCard(w http.ResponseWriter, r *http.Request) {
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

	card, err := s.CardService.GetCard(r.Context(), id, profile.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, card)
}

func (s *Server) handleCreateCard(w http.ResponseWriter, r *http.Request) {
	profile, err := requireProfile(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req struct {
		DeckID int64  `json:"deck_id"`
		Front  string `json:"front"`
		Back   string `json:"back"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	card, err := s.CardService.CreateCard(r.Context(), models.Card{
		DeckID: req.DeckID,
		Front:  req.Front,
		Back:   req.Back,
	}, profile.ID, time.Now().UTC())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, card)
}

func (s *Server) handleUpdateCard(w http.ResponseWriter, r *http.Request) {
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
		Front string `json:"front"`
		Back  string `json:"back"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	err = s.CardService.UpdateCard(r.Context(), models.Card{
		ID:    id,
		Front: req.Front,
		Back:  req.Back,
	}, profile.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusNoContent, nil)
}

func (s *Server) handleDeleteCard(w http.ResponseWriter, r *http.Request) {
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

	if err := s.CardService.DeleteCard(r.Context(), id, profile.ID); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusNoContent, nil)
}
