package api

import (
	"net/http"

	"github.com/memoflash/memoflash/internal/deckfile"
	"github.com/memoflash/memoflash/internal/errors"
	"github.com/memoflash/memoflash/internal/logger"
)

const maxImportUpload = 10 << 20 // 10 MiB

// handleImportDeck accepts a CSV or TSV upload, parses it synchronously so
// format errors surface to the caller, and enqueues the actual card
// creation as a background job.
func (s *Server) handleImportDeck(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	profile, err := requireProfile(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	deckID, err := urlParamID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	// Ownership check before touching the upload.
	if _, err := s.DeckService.GetDeck(r.Context(), deckID, profile.ID); err != nil {
		handleError(w, r, err)
		return
	}

	if err := r.ParseMultipartForm(maxImportUpload); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid multipart upload"))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("missing file field"))
		return
	}
	defer file.Close()

	entries, err := deckfile.Parse(file)
	if err != nil {
		log.Warn("rejected deck file %q: %v", header.Filename, err)
		handleError(w, r, errors.NewValidationError("file", err.Error()))
		return
	}

	if err := s.JobQueue.EnqueueImport(deckID, profile.ID, entries); err != nil {
		log.Error("failed to enqueue import: %v", err)
		handleError(w, r, errors.NewInternalError(err))
		return
	}

	log.Info("import queued: deck_id=%d, file=%s, entries=%d", deckID, header.Filename, len(entries))
	respondJSON(w, r, http.StatusAccepted, map[string]any{
		"status":  "queued",
		"entries": len(entries),
	})
}
