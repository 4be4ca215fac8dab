// apps/go-server/internal/words/words.go
//
// Word list management for both games.
//
// Responsibilities:
//   - Load the ladder dictionary and the hangman list from environment-provided
//     files, or fall back to the embedded defaults in the assets package.
//   - Build the immutable ladder.Dictionary once per process; callers receive
//     it through the Lexicon and pass it explicitly to the solver.
//   - Supply RandomHangmanWord and Stats.
//
// Environment variables:
//   WORDS_FILE=/path/to/wordlist.txt          (one word per line, any length)
//   HANGMAN_WORDS_FILE=/path/to/eff_large.txt (EFF "number<TAB>word" or plain)
//
// Failure policy:
//   • A ladder list that cannot be read, or that is empty, is an error.
//   • A hangman list that cannot be read falls back to hangman.Fallback.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordgames/apps/go-server/assets"
	"github.com/robalobadob/wordgames/apps/go-server/internal/hangman"
	"github.com/robalobadob/wordgames/apps/go-server/internal/ladder"
)

// Lexicon bundles the loaded word lists. It is read-only after Load.
type Lexicon struct {
	Ladder  *ladder.Dictionary
	Hangman []string // uppercase
}

// Load reads WORDS_FILE and HANGMAN_WORDS_FILE from the environment.
func Load() (*Lexicon, error) {
	return LoadFiles(os.Getenv("WORDS_FILE"), os.Getenv("HANGMAN_WORDS_FILE"))
}

// LoadFiles loads the given files; an empty path selects the embedded list.
func LoadFiles(ladderPath, hangmanPath string) (*Lexicon, error) {
	var (
		list []string
		err  error
	)
	if ladderPath != "" {
		list, err = readWordFile(ladderPath)
	} else {
		list, err = assets.LadderList()
	}
	if err != nil {
		return nil, fmt.Errorf("words: load ladder list: %w", err)
	}
	dict := ladder.NewDictionary(list)
	if dict.Len() == 0 {
		return nil, errors.New("words: no words found in the word list")
	}

	hm, err := loadHangman(hangmanPath)
	if err != nil || len(hm) == 0 {
		log.Warn().Err(err).Str("path", hangmanPath).Msg("hangman list unavailable, using fallback words")
		hm = append([]string(nil), hangman.Fallback...)
	}

	log.Info().
		Int("ladderWords", dict.Len()).
		Ints("lengths", dict.Lengths()).
		Int("hangmanWords", len(hm)).
		Msg("word lists loaded")
	return &Lexicon{Ladder: dict, Hangman: hm}, nil
}

func loadHangman(path string) ([]string, error) {
	var (
		rc  io.ReadCloser
		err error
	)
	if path != "" {
		rc, err = os.Open(path)
	} else {
		rc, err = assets.HangmanList()
	}
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return hangman.ParseWords(rc)
}

// readWordFile loads one word per line, lowercased and trimmed. Length and
// alphabet filtering happen in ladder.NewDictionary.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if w != "" && !strings.HasPrefix(w, "#") {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// RandomHangmanWord returns a cryptographically random hangman word.
func (l *Lexicon) RandomHangmanWord() string {
	if len(l.Hangman) == 0 {
		return hangman.Fallback[0]
	}
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(l.Hangman))))
	return l.Hangman[nBig.Int64()]
}

// Stats returns counts of loaded words: (ladder dictionary, hangman list).
func (l *Lexicon) Stats() (ladderCount int, hangmanCount int) {
	return l.Ladder.Len(), len(l.Hangman)
}
