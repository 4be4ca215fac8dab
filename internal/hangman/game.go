// apps/go-server/internal/hangman/game.go
//
// Hangman engine for a single session.
// Responsibilities:
//   - Mask the secret word and reveal letters as they are found.
//   - Track used and rejected letters, score, and remaining guesses.
//   - Chain rounds: a solved word is replaced via NextWord while score and
//     remaining guesses carry over.
//
// Scoring: +10 for each correct letter, +50 for completing a word.

package hangman

import (
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"
)

const (
	DefaultGuesses = 10
	LetterPoints   = 10
	WordBonus      = 50
	maskRune       = '_'
)

// Game states.
const (
	StatePlaying = "playing"
	StateSolved  = "solved" // word complete, waiting for NextWord
	StateLost    = "lost"
)

var (
	ErrInvalidLetter = errors.New("please enter a valid letter")
	ErrLetterUsed    = errors.New("letter already used")
	ErrGameOver      = errors.New("game over")
	ErrRoundSolved   = errors.New("word already solved")
	ErrNoWord        = errors.New("no words available")
)

// Game holds the state of one hangman session.
type Game struct {
	ID          string
	Word        string // uppercase secret
	Score       int
	GuessesLeft int
	Rounds      int // words completed

	revealed []rune
	used     map[rune]struct{}
	rejected map[rune]struct{}
}

// Result describes the outcome of a single letter guess.
type Result struct {
	Letter string `json:"letter"`
	Found  bool   `json:"found"`
	State  string `json:"state"`
}

// New starts a game on word with the default guess budget.
func New(word string) (*Game, error) {
	g := &Game{ID: uuid.NewString(), GuessesLeft: DefaultGuesses}
	if err := g.NextWord(word); err != nil {
		return nil, err
	}
	return g, nil
}

// SessionID satisfies store.Session.
func (g *Game) SessionID() string { return g.ID }

// NextWord starts a new round. Score and remaining guesses are kept.
func (g *Game) NextWord(word string) error {
	word = strings.ToUpper(strings.TrimSpace(word))
	if word == "" {
		return ErrNoWord
	}
	g.Word = word
	g.revealed = []rune(strings.Repeat(string(maskRune), len([]rune(word))))
	g.used = make(map[rune]struct{})
	g.rejected = make(map[rune]struct{})
	return nil
}

// Guess applies a single letter.
func (g *Game) Guess(letter string) (Result, error) {
	switch g.State() {
	case StateLost:
		return Result{State: StateLost}, ErrGameOver
	case StateSolved:
		return Result{State: StateSolved}, ErrRoundSolved
	}

	letter = strings.ToUpper(strings.TrimSpace(letter))
	if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
		return Result{State: g.State()}, ErrInvalidLetter
	}
	r := rune(letter[0])
	if _, ok := g.used[r]; ok {
		return Result{Letter: letter, State: g.State()}, ErrLetterUsed
	}
	g.used[r] = struct{}{}

	found := false
	for i, c := range []rune(g.Word) {
		if c == r {
			g.revealed[i] = r
			found = true
		}
	}

	if found {
		g.Score += LetterPoints
		if g.State() == StateSolved {
			g.Score += WordBonus
			g.Rounds++
		}
	} else {
		g.rejected[r] = struct{}{}
		g.GuessesLeft--
	}
	return Result{Letter: letter, Found: found, State: g.State()}, nil
}

// Masked returns the word with unrevealed letters shown as '_'.
func (g *Game) Masked() string { return string(g.revealed) }

// Rejected returns the letters guessed that are not in the word, sorted.
func (g *Game) Rejected() []string {
	out := make([]string, 0, len(g.rejected))
	for r := range g.rejected {
		out = append(out, string(r))
	}
	sort.Strings(out)
	return out
}

// State reports "playing", "solved" or "lost".
func (g *Game) State() string {
	if g.GuessesLeft <= 0 {
		return StateLost
	}
	if !strings.ContainsRune(string(g.revealed), maskRune) {
		return StateSolved
	}
	return StatePlaying
}
