package jobs

import (
	"github.com/memoflash/memoflash/internal/deckfile"
	"github.com/memoflash/memoflash/internal/worker"
)

// WorkerQueue implements JobQueue using a worker pool
type WorkerQueue struct {
	importPool *worker.Pool
	importer   worker.DeckImporter
}

// NewWorkerQueue creates a new WorkerQueue implementation
func NewWorkerQueue(importPool *worker.Pool, importer worker.DeckImporter) JobQueue {
	return &WorkerQueue{
		importPool: importPool,
		importer:   importer,
	}
}

func (q *WorkerQueue) EnqueueImport(deckID, profileID int64, entries []deckfile.Entry) error {
	return q.importPool.Submit(&worker.ImportDeckJob{
		Importer:  q.importer,
		DeckID:    deckID,
		ProfileID: profileID,
		Entries:   entries,
	})
}
