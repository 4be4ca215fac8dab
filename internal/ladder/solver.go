// apps/go-server/internal/ladder/solver.go
//
// Word graph solver.
// The graph is implicit: nodes are dictionary words of one length, edges join
// words that differ in exactly one position.
//
// Operations:
//   - IsOneLetterDifferent: edge test (Hamming distance == 1).
//   - Neighbors:            adjacent words, sorted.
//   - ShortestPath:         level-order BFS bounded by maxSteps edges.
//   - PickSolvablePair:     bounded random sampling of a solvable pair.
//   - HintNext:             next unvisited word along a recorded path.

package ladder

import (
	"math/rand/v2"
	"sort"
)

// IsOneLetterDifferent reports whether a and b have equal length and differ
// in exactly one byte position.
func IsOneLetterDifferent(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	diff := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			diff++
			if diff > 1 {
				return false
			}
		}
	}
	return diff == 1
}

// Neighbors returns every dictionary word of the same length as word that
// differs from it in exactly one position. The result is sorted and never
// contains word itself.
func Neighbors(d *Dictionary, word string) []string {
	word = Normalize(word)
	var out []string
	for i := 0; i < len(word); i++ {
		for _, w := range d.candidates(word, i) {
			if w != word {
				out = append(out, w)
			}
		}
	}
	// Buckets for different positions are disjoint apart from word itself.
	sort.Strings(out)
	return out
}

// ShortestPath finds a minimal path from start to target using at most
// maxSteps edges.
//
// Nodes are marked visited when enqueued. A dequeued path is compared to the
// target before its length is checked, so a path of maxSteps+1 nodes is the
// longest one returned. Paths of that length are never expanded, which bounds
// the queue to the last acceptable level.
func ShortestPath(d *Dictionary, start, target string, maxSteps int) (Path, error) {
	start, target = Normalize(start), Normalize(target)
	if len(start) != len(target) || !d.Contains(start) || !d.Contains(target) {
		return nil, ErrNoPathWithinBound
	}
	if start == target {
		return Path{start}, nil
	}

	queue := []Path{{start}}
	visited := map[string]struct{}{start: {}}

	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]
		current := path[len(path)-1]

		if current == target {
			return path, nil
		}
		if len(path) > maxSteps {
			continue
		}

		for _, next := range Neighbors(d, current) {
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			np := make(Path, len(path)+1)
			copy(np, path)
			np[len(path)] = next
			queue = append(queue, np)
		}
	}
	return nil, ErrNoPathWithinBound
}

// PickSolvablePair samples distinct start/target words of wordLength until it
// finds one connected within maxSteps edges, giving up after maxAttempts
// samples. maxAttempts <= 0 means DefaultMaxAttempts. A nil rng is replaced
// by a randomly seeded PCG source.
func PickSolvablePair(d *Dictionary, rng *rand.Rand, wordLength, maxSteps, maxAttempts int) (Pair, error) {
	words := d.Words(wordLength)
	if len(words) < 2 {
		return Pair{}, ErrInsufficientDictionary
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		i := rng.IntN(len(words))
		j := rng.IntN(len(words))
		for j == i {
			j = rng.IntN(len(words))
		}
		start, target := words[i], words[j]

		path, err := ShortestPath(d, start, target, maxSteps)
		if err == nil && path.Steps() <= maxSteps {
			return Pair{Start: start, Target: target, Path: path}, nil
		}
	}
	return Pair{}, ErrNoSolvablePair
}

// HintNext returns the word after current on path, provided it has not been
// visited yet.
func HintNext(path Path, current string, history []string) (string, error) {
	idx := -1
	for i, w := range path {
		if w == current {
			idx = i
			break
		}
	}
	if idx == -1 || idx >= len(path)-1 {
		return "", ErrNoHintAvailable
	}
	next := path[idx+1]
	for _, h := range history {
		if h == next {
			return "", ErrNoHintAvailable
		}
	}
	return next, nil
}
