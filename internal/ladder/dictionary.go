// apps/go-server/internal/ladder/dictionary.go
//
// Immutable word dictionary for the ladder solver.
// Responsibilities:
//   - Normalise input words (trim, lowercase, a–z only, de-duplicated).
//   - Partition words by length (sorted, for deterministic sampling).
//   - Maintain a wildcard index ("c*t" → [cat cot cut]) so neighbour
//     lookups touch only candidate words instead of scanning the list.
//
// A Dictionary is built once per process and shared read-only; it has no
// mutating methods after NewDictionary returns.

package ladder

import (
	"sort"
	"strings"
)

// Dictionary is a read-only set of lowercase words partitioned by length.
type Dictionary struct {
	byLength map[int][]string
	set      map[string]struct{}
	buckets  map[string][]string // wildcard pattern → words matching it
}

// NewDictionary normalises words and builds the lookup indexes.
// Entries that are empty or contain anything other than a–z after
// lowercasing are dropped.
func NewDictionary(words []string) *Dictionary {
	d := &Dictionary{
		byLength: make(map[int][]string),
		set:      make(map[string]struct{}, len(words)),
		buckets:  make(map[string][]string),
	}
	for _, raw := range words {
		w := Normalize(raw)
		if w == "" || !isAlpha(w) {
			continue
		}
		if _, dup := d.set[w]; dup {
			continue
		}
		d.set[w] = struct{}{}
		d.byLength[len(w)] = append(d.byLength[len(w)], w)
	}
	for n := range d.byLength {
		sort.Strings(d.byLength[n])
		for _, w := range d.byLength[n] {
			for i := 0; i < n; i++ {
				key := wildcard(w, i)
				d.buckets[key] = append(d.buckets[key], w)
			}
		}
	}
	return d
}

// Normalize trims and lowercases a word.
func Normalize(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}

// Contains reports whether w (after normalisation) is in the dictionary.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[Normalize(w)]
	return ok
}

// Words returns the sorted words of length n. The slice must not be modified.
func (d *Dictionary) Words(n int) []string {
	return d.byLength[n]
}

// Lengths returns every word length present, ascending.
func (d *Dictionary) Lengths() []int {
	out := make([]int, 0, len(d.byLength))
	for n := range d.byLength {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// Len returns the total number of words.
func (d *Dictionary) Len() int { return len(d.set) }

// candidates returns the words sharing w's wildcard pattern at position i.
func (d *Dictionary) candidates(w string, i int) []string {
	return d.buckets[wildcard(w, i)]
}

// wildcard replaces position i of w with '*'.
func wildcard(w string, i int) string {
	return w[:i] + "*" + w[i+1:]
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
