package models

import (
	"time"

	"github.com/memoflash/memoflash/internal/fsrs"
)

// ReviewRecord is one entry in the append-only review log, written after
// every committed review for analytics and (offline) parameter tuning.
type ReviewRecord struct {
	ID            int64       `json:"id"`
	CardID        int64       `json:"card_id"`
	ProfileID     int64       `json:"profile_id"`
	Rating        fsrs.Rating `json:"rating"`
	PriorState    fsrs.State  `json:"prior_state"`
	ElapsedDays   float64     `json:"elapsed_days"`
	ScheduledDays float64     `json:"scheduled_days"`
	ReviewedAt    time.Time   `json:"reviewed_at"`
}
