package hangman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	g, err := New(" kiwi ")
	require.NoError(t, err)
	assert.Equal(t, "KIWI", g.Word)
	assert.Equal(t, "____", g.Masked())
	assert.Equal(t, DefaultGuesses, g.GuessesLeft)
	assert.Equal(t, StatePlaying, g.State())
	assert.NotEmpty(t, g.ID)

	_, err = New("")
	assert.ErrorIs(t, err, ErrNoWord)
}

func TestGuess_Validation(t *testing.T) {
	g, err := New("kiwi")
	require.NoError(t, err)

	for _, in := range []string{"", "ab", "1", "?"} {
		_, err := g.Guess(in)
		assert.ErrorIs(t, err, ErrInvalidLetter, "%q", in)
	}

	_, err = g.Guess("i")
	require.NoError(t, err)
	_, err = g.Guess("I")
	assert.ErrorIs(t, err, ErrLetterUsed)
	assert.Equal(t, LetterPoints, g.Score, "repeat guess scores nothing")
}

func TestGuess_FoundAndSolved(t *testing.T) {
	g, err := New("kiwi")
	require.NoError(t, err)

	res, err := g.Guess("i")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, "_I_I", g.Masked())

	_, err = g.Guess("k")
	require.NoError(t, err)
	res, err = g.Guess("w")
	require.NoError(t, err)

	assert.Equal(t, StateSolved, res.State)
	assert.Equal(t, 3*LetterPoints+WordBonus, g.Score)
	assert.Equal(t, 1, g.Rounds)

	_, err = g.Guess("z")
	assert.ErrorIs(t, err, ErrRoundSolved)
}

func TestGuess_Rejected(t *testing.T) {
	g, err := New("fig")
	require.NoError(t, err)

	for _, l := range []string{"z", "a", "q"} {
		res, err := g.Guess(l)
		require.NoError(t, err)
		assert.False(t, res.Found)
	}
	assert.Equal(t, []string{"A", "Q", "Z"}, g.Rejected())
	assert.Equal(t, DefaultGuesses-3, g.GuessesLeft)
	assert.Equal(t, 0, g.Score)
}

func TestGuess_Lost(t *testing.T) {
	g, err := New("fig")
	require.NoError(t, err)

	misses := "abcdehjklm"
	var res Result
	for _, l := range misses {
		res, err = g.Guess(string(l))
		require.NoError(t, err)
	}
	assert.Equal(t, StateLost, res.State)

	_, err = g.Guess("f")
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestNextWord_KeepsScoreAndGuesses(t *testing.T) {
	g, err := New("yam")
	require.NoError(t, err)
	_, _ = g.Guess("x")
	for _, l := range "yam" {
		_, err := g.Guess(string(l))
		require.NoError(t, err)
	}
	score, left := g.Score, g.GuessesLeft

	require.NoError(t, g.NextWord("fig"))
	assert.Equal(t, "___", g.Masked())
	assert.Empty(t, g.Rejected())
	assert.Equal(t, score, g.Score)
	assert.Equal(t, left, g.GuessesLeft)
	assert.Equal(t, StatePlaying, g.State())

	_, err = g.Guess("x")
	require.NoError(t, err, "used letters reset between rounds")
}

func TestParseWords(t *testing.T) {
	in := strings.Join([]string{
		"# comment",
		"11111\tabacus",
		"11112\tabdomen",
		"11113\tab",
		"11114\tt-shirt",
		"giraffe",
		"encyclopedia",
		"",
	}, "\n")

	got, err := ParseWords(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"ABACUS", "ABDOMEN", "GIRAFFE"}, got)
}
