// apps/go-server/internal/ladder/puzzle.go
//
// Puzzle state for a single Word Ladder session.
// Responsibilities:
//   - Create puzzles from a solvable pair (random or supplied).
//   - Validate and apply guesses (length, dictionary, one-letter step, reuse).
//   - Serve hints from the precomputed shortest path.
//   - Track state transitions: playing → won/lost.

package ladder

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// Puzzle state strings.
const (
	StatePlaying = "playing"
	StateWon     = "won"
	StateLost    = "lost"
)

// Puzzle holds the state of one ladder game.
type Puzzle struct {
	ID          string
	Start       string
	Target      string
	Current     string
	History     []string // visited words, start included
	Path        Path     // shortest start→target path, used for hints
	WordLength  int
	MaxSteps    int
	GuessesLeft int
	HintsLeft   int
	HintsUsed   int
	Finished    bool
	Won         bool

	dict *Dictionary
}

// NewPuzzle picks a random solvable pair and returns a fresh puzzle.
func NewPuzzle(d *Dictionary, rng *rand.Rand, opts Options) (*Puzzle, error) {
	opts = opts.withDefaults()
	pair, err := PickSolvablePair(d, rng, opts.WordLength, opts.MaxSteps, opts.MaxAttempts)
	if err != nil {
		return nil, err
	}
	return FromPair(d, pair, opts), nil
}

// FromPair builds a puzzle around an already-solved pair.
func FromPair(d *Dictionary, pair Pair, opts Options) *Puzzle {
	opts = opts.withDefaults()
	return &Puzzle{
		ID:          uuid.NewString(),
		Start:       pair.Start,
		Target:      pair.Target,
		Current:     pair.Start,
		History:     []string{pair.Start},
		Path:        pair.Path,
		WordLength:  len(pair.Start),
		MaxSteps:    opts.MaxSteps,
		GuessesLeft: opts.Guesses,
		HintsLeft:   opts.Hints,
		dict:        d,
	}
}

// SessionID satisfies store.Session.
func (p *Puzzle) SessionID() string { return p.ID }

// Submit validates word and, if accepted, advances the ladder.
// Returns the new state string or an error describing the rejection.
func (p *Puzzle) Submit(word string) (string, error) {
	if p.Finished {
		return p.State(), ErrGameFinished
	}
	word = Normalize(word)
	switch {
	case word == "":
		return p.State(), ErrEmptyWord
	case len(word) != p.WordLength:
		return p.State(), ErrWrongLength
	case !p.dict.Contains(word):
		return p.State(), ErrNotAWord
	case !IsOneLetterDifferent(p.Current, word):
		return p.State(), ErrNotOneLetter
	case p.used(word):
		return p.State(), ErrAlreadyUsed
	}

	p.Current = word
	p.History = append(p.History, word)
	p.GuessesLeft--

	if p.Current == p.Target {
		p.Finished, p.Won = true, true
	} else if p.GuessesLeft <= 0 {
		p.Finished = true
	}
	return p.State(), nil
}

// Hint auto-submits the next word on the shortest path, consuming one hint
// and one guess. The hint word is returned alongside the new state.
func (p *Puzzle) Hint() (string, string, error) {
	if p.Finished {
		return "", p.State(), ErrGameFinished
	}
	if p.HintsLeft <= 0 {
		return "", p.State(), ErrNoHintsRemaining
	}
	next, err := HintNext(p.Path, p.Current, p.History)
	if err != nil {
		return "", p.State(), err
	}
	state, err := p.Submit(next)
	if err != nil {
		return "", state, err
	}
	p.HintsLeft--
	p.HintsUsed++
	return next, state, nil
}

// Steps returns how many words have been accepted after the start.
func (p *Puzzle) Steps() int { return len(p.History) - 1 }

// State reports "playing", "won" or "lost".
func (p *Puzzle) State() string {
	if p.Finished {
		if p.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

func (p *Puzzle) used(word string) bool {
	for _, h := range p.History {
		if h == word {
			return true
		}
	}
	return false
}
