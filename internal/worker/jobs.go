package worker

import (
	"context"
	"time"

	"github.com/memoflash/memoflash/internal/deckfile"
	"github.com/memoflash/memoflash/internal/logger"
)

// ImportDeckJob loads parsed deck file entries into a deck in the background.
type ImportDeckJob struct {
	Importer  DeckImporter
	DeckID    int64
	ProfileID int64
	Entries   []deckfile.Entry
}

func (j *ImportDeckJob) Name() string { return "import_deck" }

func (j *ImportDeckJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithFields(map[string]any{
		"deck_id":    j.DeckID,
		"profile_id": j.ProfileID,
	})
	log.Info("starting background import of %d entries", len(j.Entries))

	count, err := j.Importer.ImportDeck(ctx, j.DeckID, j.ProfileID, j.Entries, time.Now().UTC())
	if err != nil {
		log.Error("import failed: %v", err)
		return err
	}
	log.Info("imported %d cards", count)
	return nil
}
