package models

import "time"

// Profile is a learner. Every scheduling state and review belongs to
// exactly one profile, so several people can share one install (or one
// deck) without sharing memory state.
type Profile struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Deck is a named collection of cards owned by a profile.
type Deck struct {
	ID          int64     `json:"id"`
	ProfileID   int64     `json:"profile_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Card is the content of a flashcard. Scheduling state lives separately in
// CardSchedule, one per (card, profile).
type Card struct {
	ID        int64     `json:"id"`
	DeckID    int64     `json:"deck_id"`
	Front     string    `json:"front"`
	Back      string    `json:"back"`
	CreatedAt time.Time `json:"created_at"`
}

// CardFilter narrows card listings.
type CardFilter struct {
	DeckID   int64
	Search   string // matches front or back, substring
	OrderBy  string // "created_at" (default) or "front"
	OrderDir string // "ASC" or "DESC"
	Limit    int
	Offset   int
}
