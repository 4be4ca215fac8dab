package hangman

import (
	"bufio"
	"io"
	"strings"
)

// Word length bounds for hangman secrets.
const (
	MinWordLength = 4
	MaxWordLength = 8
)

// Fallback is used when no word list can be loaded.
var Fallback = []string{
	"APPLE", "BANANA", "CHERRY", "DATE", "ELDERBERRY",
	"FIG", "GRAPE", "HONEYDEW", "KIWI", "LEMON",
	"MANGO", "NECTARINE", "ORANGE", "PEACH", "QUINCE",
	"RASPBERRY", "STRAWBERRY", "TANGERINE", "UGLI", "VANILLA",
	"WATERMELON", "XYLOPHONE", "YAM", "ZUCCHINI",
}

// ParseWords reads a word list in either EFF dice format ("11111\tabacus")
// or one word per line. Words outside MinWordLength..MaxWordLength or
// containing non-letters are skipped; the rest are uppercased.
func ParseWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if tab := strings.IndexByte(line, '\t'); tab >= 0 {
			line = strings.TrimSpace(line[tab+1:])
		}
		w := strings.ToUpper(line)
		if len(w) < MinWordLength || len(w) > MaxWordLength || !isUpperAlpha(w) {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

func isUpperAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
