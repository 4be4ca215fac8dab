package ladder

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioPuzzle(t *testing.T, opts Options) *Puzzle {
	t.Helper()
	d := smallDict()
	path, err := ShortestPath(d, "cat", "dog", 4)
	require.NoError(t, err)
	return FromPair(d, Pair{Start: "cat", Target: "dog", Path: path}, opts)
}

func TestNewPuzzle(t *testing.T) {
	p, err := NewPuzzle(smallDict(), rand.New(rand.NewPCG(1, 1)), Options{WordLength: 3, MaxSteps: 4})
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, p.Start, p.Current)
	assert.Equal(t, []string{p.Start}, p.History)
	assert.Equal(t, DefaultGuesses, p.GuessesLeft)
	assert.Equal(t, DefaultHints, p.HintsLeft)
	assert.Equal(t, StatePlaying, p.State())
}

func TestNewPuzzle_NoWords(t *testing.T) {
	_, err := NewPuzzle(smallDict(), rand.New(rand.NewPCG(1, 1)), Options{WordLength: 7})
	assert.ErrorIs(t, err, ErrInsufficientDictionary)
}

func TestPuzzle_SubmitValidation(t *testing.T) {
	p := scenarioPuzzle(t, Options{})

	cases := []struct {
		word string
		want error
	}{
		{"  ", ErrEmptyWord},
		{"cots", ErrWrongLength},
		{"cab", ErrNotAWord},
		{"dog", ErrNotOneLetter},
		{"cat", ErrNotOneLetter},
	}
	for _, tc := range cases {
		state, err := p.Submit(tc.word)
		assert.ErrorIs(t, err, tc.want, tc.word)
		assert.Equal(t, StatePlaying, state)
	}
	assert.Equal(t, DefaultGuesses, p.GuessesLeft, "rejected guesses cost nothing")

	_, err := p.Submit("cot")
	require.NoError(t, err)
	_, err = p.Submit("cat")
	assert.ErrorIs(t, err, ErrAlreadyUsed)
}

func TestPuzzle_Win(t *testing.T) {
	p := scenarioPuzzle(t, Options{})

	for _, w := range []string{"COT", "cog"} {
		state, err := p.Submit(w)
		require.NoError(t, err)
		assert.Equal(t, StatePlaying, state)
	}
	state, err := p.Submit("dog")
	require.NoError(t, err)
	assert.Equal(t, StateWon, state)
	assert.Equal(t, []string{"cat", "cot", "cog", "dog"}, p.History)
	assert.Equal(t, 3, p.Steps())

	_, err = p.Submit("dot")
	assert.ErrorIs(t, err, ErrGameFinished)
}

func TestPuzzle_Lose(t *testing.T) {
	p := scenarioPuzzle(t, Options{Guesses: 2})

	_, err := p.Submit("cot")
	require.NoError(t, err)
	state, err := p.Submit("dot")
	require.NoError(t, err)
	assert.Equal(t, StateLost, state)
	assert.True(t, p.Finished)
	assert.False(t, p.Won)
}

func TestPuzzle_Hint(t *testing.T) {
	p := scenarioPuzzle(t, Options{})

	word, state, err := p.Hint()
	require.NoError(t, err)
	assert.Equal(t, "cot", word)
	assert.Equal(t, StatePlaying, state)
	assert.Equal(t, DefaultHints-1, p.HintsLeft)
	assert.Equal(t, DefaultGuesses-1, p.GuessesLeft)

	word, _, err = p.Hint()
	require.NoError(t, err)
	assert.Equal(t, "cog", word)

	_, _, err = p.Hint()
	assert.ErrorIs(t, err, ErrNoHintsRemaining)
	assert.Equal(t, 2, p.HintsUsed)
}

func TestPuzzle_HintOffPath(t *testing.T) {
	p := scenarioPuzzle(t, Options{})

	_, err := p.Submit("cot")
	require.NoError(t, err)
	_, err = p.Submit("dot")
	require.NoError(t, err)

	_, _, err = p.Hint()
	assert.ErrorIs(t, err, ErrNoHintAvailable)
	assert.Equal(t, DefaultHints, p.HintsLeft, "failed hint is not consumed")
}

func TestPuzzle_HintsDisabled(t *testing.T) {
	p := scenarioPuzzle(t, Options{Hints: -1})
	_, _, err := p.Hint()
	assert.ErrorIs(t, err, ErrNoHintsRemaining)
}
