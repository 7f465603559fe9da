package models

import (
	"time"

	"github.com/memoflash/memoflash/internal/fsrs"
)

// CardSchedule is the persisted memory state of one card for one learner:
// the scheduler's card state plus storage identity. Rows are created when a
// card enters a profile's collection and updated on every review.
type CardSchedule struct {
	ID            int64      `json:"id"`
	CardID        int64      `json:"card_id"`
	ProfileID     int64      `json:"profile_id"`
	Stability     float64    `json:"stability"`
	Difficulty    float64    `json:"difficulty"`
	ElapsedDays   float64    `json:"elapsed_days"`
	ScheduledDays float64    `json:"scheduled_days"`
	Reps          int        `json:"reps"`
	Lapses        int        `json:"lapses"`
	State         fsrs.State `json:"state"`
	Due           time.Time  `json:"due"`
	LastReview    *time.Time `json:"last_review,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// MemoryState extracts the scheduler's view of this row.
func (s CardSchedule) MemoryState() fsrs.Card {
	return fsrs.Card{
		Stability:     s.Stability,
		Difficulty:    s.Difficulty,
		ElapsedDays:   s.ElapsedDays,
		ScheduledDays: s.ScheduledDays,
		Reps:          s.Reps,
		Lapses:        s.Lapses,
		State:         s.State,
		Due:           s.Due,
		LastReview:    s.LastReview,
	}
}

// ApplyMemoryState writes an updated scheduler state back into the row.
func (s *CardSchedule) ApplyMemoryState(c fsrs.Card) {
	s.Stability = c.Stability
	s.Difficulty = c.Difficulty
	s.ElapsedDays = c.ElapsedDays
	s.ScheduledDays = c.ScheduledDays
	s.Reps = c.Reps
	s.Lapses = c.Lapses
	s.State = c.State
	s.Due = c.Due
	s.LastReview = c.LastReview
}

// QueueCard is a due card joined with its content, as served to the study
// queue.
type QueueCard struct {
	Card     Card         `json:"card"`
	DeckName string       `json:"deck_name"`
	Schedule CardSchedule `json:"schedule"`
}
