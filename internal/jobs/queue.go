package jobs

import "github.com/memoflash/memoflash/internal/deckfile"

// JobQueue provides an abstraction for enqueueing background jobs
type JobQueue interface {
	EnqueueImport(deckID, profileID int64, entries []deckfile.Entry) error
}
