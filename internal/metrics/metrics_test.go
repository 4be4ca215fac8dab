package metrics

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/wordgames/apps/go-server/internal/ladder"
)

func TestGenerationResult(t *testing.T) {
	assert.Equal(t, "ok", GenerationResult(nil))
	assert.Equal(t, "insufficient_dictionary", GenerationResult(ladder.ErrInsufficientDictionary))
	assert.Equal(t, "no_solvable_pair", GenerationResult(fmt.Errorf("wrap: %w", ladder.ErrNoSolvablePair)))
	assert.Equal(t, "error", GenerationResult(errors.New("other")))
}

func TestObserveGeneration(t *testing.T) {
	before := testutil.ToFloat64(PuzzlesGenerated.WithLabelValues("no_solvable_pair"))
	ObserveGeneration(time.Now(), ladder.ErrNoSolvablePair)
	after := testutil.ToFloat64(PuzzlesGenerated.WithLabelValues("no_solvable_pair"))
	assert.Equal(t, before+1, after)
}

func TestHandler(t *testing.T) {
	Guesses.WithLabelValues("ladder", "accepted").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "wordgames_guesses_total"))
}
