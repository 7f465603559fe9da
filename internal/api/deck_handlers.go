package api

import (
	"net/http"

	"github.com/memoflash/memoflash/internal/models"
)

func (s *Server) handleListDecks(w http.ResponseWriter, r *http.Request) {
	profile, err := requireProfile(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	decks, err := s.DeckService.ListDecks(r.Context(), profile.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"decks": decks})
}

func (s *Server) handleGetDeck(w http.ResponseWriter, r *http.Request) {
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

	deck, err := s.DeckService.GetDeck(r.Context(), id, profile.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, deck)
}

func (s *Server) handleCreateDeck(w http.ResponseWriter, r *http.Request) {
	profile, err := requireProfile(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	deck, err := s.DeckService.CreateDeck(r.Context(), models.Deck{
		ProfileID:   profile.ID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, deck)
}

func (s *Server) handleUpdateDeck(w http.ResponseWriter, r *http.Request) {
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
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	err = s.DeckService.UpdateDeck(r.Context(), models.Deck{
		ID:          id,
		ProfileID:   profile.ID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusNoContent, nil)
}

func (s *Server) handleDeleteDeck(w http.ResponseWriter, r *http.Request) {
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

	if err := s.DeckService.DeleteDeck(r.Context(), id, profile.ID); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusNoContent, nil)
}
