package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"math/rand/v2"
	"time"

	"github.com/robalobadob/wordgames/apps/go-server/internal/ladder"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Rand returns a PCG source seeded from HMAC(salt, YYYY-MM-DD), so every
// server sharing the salt derives the same puzzle for a given day.
func Rand(date time.Time, salt string) *rand.Rand {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	return rand.New(rand.NewPCG(
		binary.BigEndian.Uint64(sum[:8]),
		binary.BigEndian.Uint64(sum[8:16]),
	))
}

// Pair picks the day's start/target pair.
func Pair(d *ladder.Dictionary, date time.Time, salt string, opts ladder.Options) (ladder.Pair, error) {
	if opts.WordLength <= 0 {
		opts.WordLength = ladder.DefaultWordLength
	}
	if opts.MaxSteps <= 0 {
		opts.MaxSteps = ladder.DefaultMaxSteps
	}
	return ladder.PickSolvablePair(d, Rand(date, salt), opts.WordLength, opts.MaxSteps, opts.MaxAttempts)
}
