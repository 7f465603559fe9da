package worker

import (
	"context"
	"time"

	"github.com/memoflash/memoflash/internal/deckfile"
)

// DeckImporter is the slice of the import service that jobs need.
type DeckImporter interface {
	ImportDeck(ctx context.Context, deckID, profileID int64, entries []deckfile.Entry, now time.Time) (int, error)
}
