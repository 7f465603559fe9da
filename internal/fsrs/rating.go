package fsrs

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Rating is the learner's assessment of recall quality for a review.
// Ratings are ordered: Again < Hard < Good < Easy.
type Rating int

const (
	Again Rating = iota + 1 // Complete failure to recall.
	Hard                    // Recalled with significant difficulty.
	Good                    // Recalled with some effort.
	Easy                    // Recalled effortlessly.
)

var (
	ratingNames  = [...]string{Again: "again", Hard: "hard", Good: "good", Easy: "easy"}
	ratingByName = map[string]Rating{
		"again": Again,
		"hard":  Hard,
		"good":  Good,
		"easy":  Easy,
	}
)

var (
	_ fmt.Stringer             = Rating(0)
	_ encoding.TextMarshaler   = Rating(0)
	_ encoding.TextUnmarshaler = (*Rating)(nil)
)

// IsValid reports whether r is one of the four defined ratings.
func (r Rating) IsValid() bool {
	return r >= Again && r <= Easy
}

// String returns the lowercase name of the rating, or "rating(n)" for
// values outside the defined range.
func (r Rating) String() string {
	if r.IsValid() {
		return ratingNames[r]
	}
	return fmt.Sprintf("rating(%d)", int(r))
}

// ParseRating converts a string such as "good" into a Rating.
func ParseRating(s string) (Rating, error) {
	if r, ok := ratingByName[s]; ok {
		return r, nil
	}
	return 0, fmt.Errorf("unknown rating %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (r Rating) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("invalid rating: %d", int(r))
	}
	return []byte(ratingNames[r]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rating) UnmarshalText(text []byte) error {
	v, err := ParseRating(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// MarshalJSON serializes the rating as a JSON string.
func (r Rating) MarshalJSON() ([]byte, error) {
	text, err := r.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON accepts either a JSON string ("good") or the numeric
// form (3) that older clients send.
func (r *Rating) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return r.UnmarshalText([]byte(s))
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid rating: %s", data)
	}
	v := Rating(n)
	if !v.IsValid() {
		return fmt.Errorf("invalid rating: %d", n)
	}
	*r = v
	return nil
}

// clampRating forces out-of-range values into the defined ratings rather
// than failing, so the scheduler always returns a usable card state.
func clampRating(r Rating) Rating {
	if r < Again {
		return Again
	}
	if r > Easy {
		return Easy
	}
	return r
}
