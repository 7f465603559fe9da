package fsrs

import "time"

// Card is the memory state the scheduler tracks for one card and one
// learner. It is a plain value: Review and Schedule never mutate the card
// they are given, they return a new one.
type Card struct {
	// Stability is the expected number of days until recall probability
	// decays to the target retention. Zero only before the first review.
	Stability float64 `json:"stability"`
	// Difficulty is the intrinsic hardness of the card, in [1, 10].
	Difficulty float64 `json:"difficulty"`
	// ElapsedDays is the days between the previous review and the most
	// recent one, recomputed from LastReview on every review.
	ElapsedDays float64 `json:"elapsed_days"`
	// ScheduledDays is the interval scheduled at the most recent review.
	// Zero for minute-scale (learning/relearning) steps.
	ScheduledDays float64 `json:"scheduled_days"`
	// Reps counts successful scheduling events.
	Reps int `json:"reps"`
	// Lapses counts Again ratings given while the card was in the Review
	// or Relearning state.
	Lapses int `json:"lapses"`
	// State is the current scheduling phase.
	State State `json:"state"`
	// Due is when the card should next be presented.
	Due time.Time `json:"due"`
	// LastReview is the time of the last review, nil before the first.
	LastReview *time.Time `json:"last_review,omitempty"`
}

// Preview is the hypothetical outcome of one rating: where the card would
// land without committing the review.
type Preview struct {
	Due           time.Time `json:"due"`
	ScheduledDays float64   `json:"scheduled_days"`
	State         State     `json:"state"`
}

// SchedulingResult maps each of the four ratings to its preview outcome.
// Callers use it to show interval previews before the learner picks.
type SchedulingResult map[Rating]Preview

// elapsedDays returns the whole span since the card's last review in
// fractional days, or 0 for a card that has never been reviewed.
func elapsedDays(card Card, now time.Time) float64 {
	if card.LastReview == nil {
		return 0
	}
	d := now.Sub(*card.LastReview).Hours() / 24.0
	if d < 0 {
		return 0
	}
	return d
}
