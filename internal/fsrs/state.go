package fsrs

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// State is the scheduling phase of a card.
type State int

const (
	New        State = iota // Never reviewed.
	Learning                // In initial acquisition, minute-scale steps.
	Review                  // Graduated to the long-term review cycle.
	Relearning              // Lapsed out of Review, being reacquired.
)

var (
	stateNames  = [...]string{New: "new", Learning: "learning", Review: "review", Relearning: "relearning"}
	stateByName = map[string]State{
		"new":        New,
		"learning":   Learning,
		"review":     Review,
		"relearning": Relearning,
	}
)

var (
	_ fmt.Stringer             = State(0)
	_ encoding.TextMarshaler   = State(0)
	_ encoding.TextUnmarshaler = (*State)(nil)
)

// IsValid reports whether s is one of the four defined states.
func (s State) IsValid() bool {
	return s >= New && s <= Relearning
}

// String returns the lowercase name of the state, or "state(n)" for
// values outside the defined range.
func (s State) String() string {
	if s.IsValid() {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// ParseState converts a string such as "review" into a State.
func ParseState(str string) (State, error) {
	if s, ok := stateByName[str]; ok {
		return s, nil
	}
	return 0, fmt.Errorf("unknown state %q", str)
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid state: %d", int(s))
	}
	return []byte(stateNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	v, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalJSON serializes the state as a JSON string.
func (s State) MarshalJSON() ([]byte, error) {
	text, err := s.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON expects a JSON string.
func (s *State) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("invalid state: %s", data)
	}
	return s.UnmarshalText([]byte(str))
}
