package fsrs_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memoflash/memoflash/internal/fsrs"
)

func TestRating_Ordering(t *testing.T) {
	assert.True(t, fsrs.Again < fsrs.Hard)
	assert.True(t, fsrs.Hard < fsrs.Good)
	assert.True(t, fsrs.Good < fsrs.Easy)
}

func TestRating_String(t *testing.T) {
	assert.Equal(t, "again", fsrs.Again.String())
	assert.Equal(t, "easy", fsrs.Easy.String())
	assert.Equal(t, "rating(7)", fsrs.Rating(7).String())
}

func TestParseRating(t *testing.T) {
	r, err := fsrs.ParseRating("good")
	require.NoError(t, err)
	assert.Equal(t, fsrs.Good, r)

	_, err = fsrs.ParseRating("meh")
	assert.Error(t, err)
}

func TestRating_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(fsrs.Hard)
	require.NoError(t, err)
	assert.Equal(t, `"hard"`, string(data))

	var r fsrs.Rating
	require.NoError(t, json.Unmarshal(data, &r))
	assert.Equal(t, fsrs.Hard, r)
}

func TestRating_JSONAcceptsNumericForm(t *testing.T) {
	var r fsrs.Rating
	require.NoError(t, json.Unmarshal([]byte(`3`), &r))
	assert.Equal(t, fsrs.Good, r)

	assert.Error(t, json.Unmarshal([]byte(`5`), &r))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "new", fsrs.New.String())
	assert.Equal(t, "relearning", fsrs.Relearning.String())
	assert.Equal(t, "state(9)", fsrs.State(9).String())
}

func TestState_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(fsrs.Relearning)
	require.NoError(t, err)
	assert.Equal(t, `"relearning"`, string(data))

	var s fsrs.State
	require.NoError(t, json.Unmarshal(data, &s))
	assert.Equal(t, fsrs.Relearning, s)
}
