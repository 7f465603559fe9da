package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/memoflash/memoflash/internal/deckfile"
)

// MockJobQueue is a mock implementation of jobs.JobQueue
type MockJobQueue struct {
	mock.Mock
}

func (m *MockJobQueue) EnqueueImport(deckID, profileID int64, entries []deckfile.Entry) error {
	args := m.Called(deckID, profileID, entries)
	return args.Error(0)
}
