// Package fsrs implements an FSRS-style spaced-repetition scheduler: a
// probabilistic memory model (stability, difficulty, retrievability) with a
// four-state card lifecycle. The scheduler is a pure value; it performs no
// I/O, reads no clock, and never mutates the card it is given, so a single
// instance is safe for concurrent use. Persistence and due-card selection
// belong to the callers.
package fsrs

import (
	"math"
	"time"
)

// Scheduler computes review schedules from a fixed parameter set. The zero
// value is not usable; construct with NewScheduler.
type Scheduler struct {
	params Params
}

// NewScheduler creates a Scheduler. Zero-valued or out-of-range fields in
// params are replaced with defaults.
func NewScheduler(params Params) *Scheduler {
	return &Scheduler{params: params.normalize()}
}

// Params returns the configuration the scheduler was built with.
func (s *Scheduler) Params() Params {
	return s.params
}

// NewCard returns the state of a card that has never been reviewed: all
// zeros, state New, due immediately.
func (s *Scheduler) NewCard(now time.Time) Card {
	return Card{State: New, Due: now}
}

// Schedule previews the outcome of each of the four ratings without
// committing anything. For a card in any state past New, the preview is
// computed from the card's current stability; committing a rating with
// Review first updates stability, so committed intervals for Review-state
// cards differ from the preview accordingly.
func (s *Scheduler) Schedule(card Card, now time.Time) SchedulingResult {
	if card.State == New {
		return s.scheduleNew(now)
	}
	return s.scheduleReview(card.Stability, now)
}

// Review commits a rating at the given time and returns the card's next
// state. The input card is left untouched.
func (s *Scheduler) Review(card Card, rating Rating, now time.Time) Card {
	rating = clampRating(rating)
	elapsed := elapsedDays(card, now)

	next := card
	next.ElapsedDays = elapsed

	switch card.State {
	case New:
		s.reviewNew(&next, rating, now)
	case Learning, Relearning:
		s.reviewLearning(&next, rating, elapsed, now)
	default:
		// Review, and defensively anything outside the defined states.
		s.reviewGraduated(&next, rating, elapsed, now)
	}

	next.LastReview = &now
	return next
}

// reviewNew handles the first-ever review of a card. Initial stability is a
// direct weight lookup by rating (w[rating-1]) and initial difficulty is
// linear in the rating around Good. Due, state, and interval come from the
// same table Schedule uses, so preview and commit agree exactly on this path.
func (s *Scheduler) reviewNew(c *Card, rating Rating, now time.Time) {
	w := s.params.W
	c.Stability = clampStability(w[rating-1], s.params.MaximumInterval)
	c.Difficulty = clampDifficulty(w[4] - float64(rating-Good)*w[5])
	c.Reps = 1
	if rating == Again {
		c.Lapses = 1
	} else {
		c.Lapses = 0
	}

	outcome := s.scheduleNew(now)[rating]
	c.State = outcome.State
	c.Due = outcome.Due
	c.ScheduledDays = outcome.ScheduledDays
}

// reviewLearning handles cards in the Learning or Relearning state. Again
// and Hard repeat a minute-scale step in place; Good and Easy graduate the
// card into the Review cycle with a freshly grown stability.
func (s *Scheduler) reviewLearning(c *Card, rating Rating, elapsed float64, now time.Time) {
	switch rating {
	case Again:
		c.Lapses++
		c.Due = now.Add(time.Minute)
		c.ScheduledDays = 0
	case Hard:
		c.Reps++
		c.Due = now.Add(5 * time.Minute)
		c.ScheduledDays = 0
	default: // Good or Easy: graduate.
		stability := s.nextStability(*c, rating, elapsed)
		if rating == Easy {
			stability = clampStability(stability*easyGraduationBonus, s.params.MaximumInterval)
		}
		c.Stability = stability
		c.Difficulty = s.nextDifficulty(c.Difficulty, rating)
		c.Reps++
		c.State = Review
		c.ScheduledDays = math.Max(1, math.Round(stability))
		c.Due = addDays(now, c.ScheduledDays)
	}
}

// reviewGraduated handles cards in the Review state. Again is a lapse: the
// card drops back to Relearning with a severe stability penalty and is
// shown again within a minute. A lapse does not count as a successful
// repetition, so Reps stays put; only Lapses moves.
func (s *Scheduler) reviewGraduated(c *Card, rating Rating, elapsed float64, now time.Time) {
	if rating == Again {
		c.Stability = math.Max(minStability, c.Stability*lapseStabilityFactor)
		c.Lapses++
		c.State = Relearning
		c.Due = now.Add(time.Minute)
		c.ScheduledDays = 0
		return
	}

	c.Stability = s.nextStability(*c, rating, elapsed)
	c.Difficulty = s.nextDifficulty(c.Difficulty, rating)
	c.Reps++

	// Re-run the interval table against the updated stability and take the
	// branch for the chosen rating, so commit and preview share one formula.
	outcome := s.scheduleReview(c.Stability, now)[rating]
	c.State = outcome.State
	c.Due = outcome.Due
	c.ScheduledDays = outcome.ScheduledDays
}

// scheduleNew is the outcome table for a card's first exposure. The three
// failure-ish ratings keep the card in Learning on minute-scale steps; Easy
// is the only path that graduates directly, jumping w[3] days out.
func (s *Scheduler) scheduleNew(now time.Time) SchedulingResult {
	easyDays := s.params.W[3]
	return SchedulingResult{
		Again: {Due: now.Add(time.Minute), ScheduledDays: 0, State: Learning},
		Hard:  {Due: now.Add(5 * time.Minute), ScheduledDays: 0, State: Learning},
		Good:  {Due: now.Add(10 * time.Minute), ScheduledDays: 0, State: Learning},
		Easy:  {Due: addDays(now, easyDays), ScheduledDays: easyDays, State: Review},
	}
}

// scheduleReview is the outcome table for a card already carrying a
// stability. Hard, Good, and Easy intervals are forced strictly increasing
// (each at least one day past the previous); Easy is additionally capped at
// the maximum interval. Again resurfaces the card in a minute, not a day:
// its recorded interval is 0 even though the lapse nominally lasts a day.
func (s *Scheduler) scheduleReview(stability float64, now time.Time) SchedulingResult {
	retention := s.params.RequestRetention
	// Interval for the target retention; r^(-1/3) is the growth factor at
	// which recall probability decays to the requested level.
	factor := math.Pow(retention, -1.0/3.0)

	hard := math.Max(1, math.Round(stability*0.8))
	good := math.Max(hard+1, math.Round(stability*factor))
	easy := math.Min(
		math.Max(good+1, math.Round(stability*easyGraduationBonus*factor)),
		float64(s.params.MaximumInterval),
	)

	return SchedulingResult{
		Again: {Due: now.Add(time.Minute), ScheduledDays: 0, State: Relearning},
		Hard:  {Due: addDays(now, hard), ScheduledDays: hard, State: Review},
		Good:  {Due: addDays(now, good), ScheduledDays: good, State: Review},
		Easy:  {Due: addDays(now, easy), ScheduledDays: easy, State: Review},
	}
}

// nextStability models stability growth on a successful (non-Again) review.
// Growth scales with how far retrievability has fallen, shrinks with
// difficulty and with stability already accrued, and is skewed by the hard
// penalty or easy bonus weight.
func (s *Scheduler) nextStability(c Card, rating Rating, elapsed float64) float64 {
	w := s.params.W
	stability := c.Stability
	if stability < minStability {
		// Never reviewed or corrupted input; keep the formula total.
		stability = minStability
	}

	r := retrievability(c.Stability, elapsed)

	hardPenalty := 1.0
	if rating == Hard {
		hardPenalty = w[15]
	}
	easyBonus := 1.0
	if rating == Easy {
		easyBonus = w[16]
	}

	grown := stability * (1 +
		math.Exp(w[8])*
			(11-c.Difficulty)*
			math.Pow(stability, -w[9])*
			(math.Exp((1-r)*w[10])-1)*
			hardPenalty*easyBonus)
	return clampStability(grown, s.params.MaximumInterval)
}

// nextDifficulty shifts difficulty by w[6] per rating step away from Good
// and clamps to [1, 10].
func (s *Scheduler) nextDifficulty(difficulty float64, rating Rating) float64 {
	return clampDifficulty(difficulty - s.params.W[6]*float64(rating-Good))
}

// retrievability is the modeled recall probability after elapsed days at
// the given stability: (1 + t/(9s))^-1, and 0 for a card with no stability.
func retrievability(stability, elapsed float64) float64 {
	if stability == 0 {
		return 0
	}
	return 1 / (1 + elapsed/(9*stability))
}

func clampStability(stability float64, maximumInterval int) float64 {
	return math.Min(math.Max(stability, minStability), float64(maximumInterval))
}

func clampDifficulty(difficulty float64) float64 {
	return math.Min(math.Max(difficulty, 1), 10)
}

// addDays advances t by a fractional number of 24-hour days. Scheduling is
// plain timestamp arithmetic; calendar and DST effects are out of scope.
func addDays(t time.Time, days float64) time.Time {
	return t.Add(time.Duration(days * 24 * float64(time.Hour)))
}
