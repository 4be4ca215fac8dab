// Package metrics exposes Prometheus instruments for puzzle generation and
// play, and the /metrics handler.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/robalobadob/wordgames/apps/go-server/internal/ladder"
)

var (
	// PuzzlesGenerated counts ladder generation attempts by outcome.
	PuzzlesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wordgames_ladder_puzzles_generated_total",
		Help: "Ladder puzzle generation requests by result",
	}, []string{"result"})

	// GenerationDuration tracks how long pair sampling takes.
	GenerationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wordgames_ladder_generation_duration_seconds",
		Help:    "Time spent picking a solvable ladder pair",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
	})

	// Guesses counts accepted and rejected guesses per game.
	Guesses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wordgames_guesses_total",
		Help: "Guesses by game and result",
	}, []string{"game", "result"})

	// GamesFinished counts finished games per game and final state.
	GamesFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wordgames_games_finished_total",
		Help: "Finished games by game and state",
	}, []string{"game", "state"})

	// HintsServed counts ladder hint requests by result.
	HintsServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wordgames_ladder_hints_total",
		Help: "Ladder hint requests by result",
	}, []string{"result"})
)

// ObserveGeneration records one generation attempt.
func ObserveGeneration(start time.Time, err error) {
	GenerationDuration.Observe(time.Since(start).Seconds())
	PuzzlesGenerated.WithLabelValues(GenerationResult(err)).Inc()
}

// GenerationResult maps a solver error to a metric label.
func GenerationResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ladder.ErrInsufficientDictionary):
		return "insufficient_dictionary"
	case errors.Is(err, ladder.ErrNoSolvablePair):
		return "no_solvable_pair"
	default:
		return "error"
	}
}

// Handler serves the default registry.
func Handler() http.Handler { return promhttp.Handler() }
