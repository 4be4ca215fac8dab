// apps/go-server/internal/ladder/types.go
//
// Core type definitions for the Word Ladder engine.
// Defines:
//   - Path: ordered sequence of words, one letter apart.
//   - Pair: a solvable (start, target) pair with its shortest path.
//   - Options: tunables for puzzle generation.
//   - Sentinel errors for the solver and the puzzle state machine.

package ladder

import "errors"

// Defaults used when Options fields are left zero.
const (
	DefaultWordLength  = 5
	DefaultMaxSteps    = 6
	DefaultMaxAttempts = 100
	DefaultGuesses     = 10
	DefaultHints       = 2
)

// Path is an ordered sequence of words where each consecutive pair differs
// in exactly one position. Path[0] is the start word.
type Path []string

// Steps returns the number of edges in the path.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Pair is a puzzle-worthy start/target pair.
type Pair struct {
	Start  string `json:"start"`
	Target string `json:"target"`
	Path   Path   `json:"path"`
}

// Options configures puzzle generation. Zero values fall back to defaults.
type Options struct {
	WordLength  int
	MaxSteps    int
	MaxAttempts int
	Guesses     int
	Hints       int // negative disables hints
}

func (o Options) withDefaults() Options {
	if o.WordLength <= 0 {
		o.WordLength = DefaultWordLength
	}
	if o.MaxSteps <= 0 {
		o.MaxSteps = DefaultMaxSteps
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	if o.Guesses <= 0 {
		o.Guesses = DefaultGuesses
	}
	if o.Hints < 0 {
		o.Hints = 0
	} else if o.Hints == 0 {
		o.Hints = DefaultHints
	}
	return o
}

// Solver errors. All are recoverable by the caller.
var (
	ErrInsufficientDictionary = errors.New("insufficient dictionary")
	ErrNoPathWithinBound      = errors.New("no path within bound")
	ErrNoSolvablePair         = errors.New("no solvable pair found")
	ErrNoHintAvailable        = errors.New("no hint available")
)

// Puzzle errors returned by Submit and Hint.
var (
	ErrGameFinished     = errors.New("game finished")
	ErrEmptyWord        = errors.New("empty word")
	ErrWrongLength      = errors.New("wrong word length")
	ErrNotAWord         = errors.New("not a valid word")
	ErrNotOneLetter     = errors.New("can only change one letter at a time")
	ErrAlreadyUsed      = errors.New("word already used")
	ErrNoHintsRemaining = errors.New("no hints remaining")
)
