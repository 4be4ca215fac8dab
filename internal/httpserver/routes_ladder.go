// apps/go-server/internal/httpserver/routes_ladder.go
//
// HTTP routes for Word Ladder, mounted under /ladder:
//   - GET  /ladder/lengths   → word lengths available for a new game
//   - POST /ladder/new       → generate a puzzle (optional {"length": n})
//   - POST /ladder/guess     → submit the next rung
//   - POST /ladder/hint      → auto-submit the next word on the shortest path
//   - GET  /ladder/neighbors → one-letter neighbours of ?word=
//   - GET  /ladder/path      → shortest path ?from=&to=[&maxSteps=]
//
// Generation failures (422) tell the client to pick another length rather
// than retry the same one.

package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordgames/apps/go-server/internal/ladder"
	"github.com/robalobadob/wordgames/apps/go-server/internal/metrics"
	"github.com/robalobadob/wordgames/apps/go-server/internal/store"
)

// maxPathQuerySteps bounds ad-hoc /ladder/path lookups.
const maxPathQuerySteps = 20

func (s *Server) mountLadder(r chi.Router) {
	r.Route("/ladder", func(r chi.Router) {
		r.Get("/lengths", s.handleLadderLengths)
		r.Post("/new", s.handleLadderNew)
		r.Post("/guess", s.handleLadderGuess)
		r.Post("/hint", s.handleLadderHint)
		r.Get("/neighbors", s.handleLadderNeighbors)
		r.Get("/path", s.handleLadderPath)
	})
}

// ladderView is the client-facing puzzle state. The solution path is only
// revealed once the game is over.
type ladderView struct {
	GameID      string   `json:"gameId"`
	Start       string   `json:"start"`
	Target      string   `json:"target"`
	Current     string   `json:"current"`
	History     []string `json:"history"`
	WordLength  int      `json:"wordLength"`
	MaxSteps    int      `json:"maxSteps"`
	GuessesLeft int      `json:"guessesLeft"`
	HintsLeft   int      `json:"hintsLeft"`
	State       string   `json:"state"`
	Hint        string   `json:"hint,omitempty"`
	Solution    []string `json:"solution,omitempty"`
}

func viewOf(p *ladder.Puzzle) ladderView {
	v := ladderView{
		GameID:      p.ID,
		Start:       p.Start,
		Target:      p.Target,
		Current:     p.Current,
		History:     append([]string(nil), p.History...),
		WordLength:  p.WordLength,
		MaxSteps:    p.MaxSteps,
		GuessesLeft: p.GuessesLeft,
		HintsLeft:   p.HintsLeft,
		State:       p.State(),
	}
	if p.Finished {
		v.Solution = append([]string(nil), p.Path...)
	}
	return v
}

// ladderErrorCode maps engine errors to a status and a stable error code.
func ladderErrorCode(err error) (int, string) {
	switch {
	case errors.Is(err, ladder.ErrInsufficientDictionary):
		return http.StatusUnprocessableEntity, "insufficient_dictionary"
	case errors.Is(err, ladder.ErrNoSolvablePair):
		return http.StatusUnprocessableEntity, "no_solvable_pair"
	case errors.Is(err, ladder.ErrNoPathWithinBound):
		return http.StatusNotFound, "no_path"
	case errors.Is(err, ladder.ErrNoHintAvailable):
		return http.StatusConflict, "no_hint"
	case errors.Is(err, ladder.ErrNoHintsRemaining):
		return http.StatusConflict, "no_hints_remaining"
	case errors.Is(err, ladder.ErrGameFinished):
		return http.StatusConflict, "game_finished"
	case errors.Is(err, ladder.ErrEmptyWord):
		return http.StatusBadRequest, "empty_word"
	case errors.Is(err, ladder.ErrWrongLength):
		return http.StatusBadRequest, "wrong_length"
	case errors.Is(err, ladder.ErrNotAWord):
		return http.StatusBadRequest, "not_a_word"
	case errors.Is(err, ladder.ErrNotOneLetter):
		return http.StatusBadRequest, "not_one_letter"
	case errors.Is(err, ladder.ErrAlreadyUsed):
		return http.StatusBadRequest, "already_used"
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "not_found"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func writeLadderError(w http.ResponseWriter, err error) {
	status, code := ladderErrorCode(err)
	writeError(w, status, code, err)
}

func (s *Server) handleLadderLengths(w http.ResponseWriter, r *http.Request) {
	type lengthInfo struct {
		Length int `json:"length"`
		Words  int `json:"words"`
	}
	out := []lengthInfo{}
	for _, n := range s.lex.Ladder.Lengths() {
		if c := len(s.lex.Ladder.Words(n)); c >= 2 {
			out = append(out, lengthInfo{Length: n, Words: c})
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"lengths": out, "default": s.ladderOptions(0).WordLength})
}

// ladderOptions returns the configured options with an optional length override.
func (s *Server) ladderOptions(length int) ladder.Options {
	opts := s.cfg.Ladder
	if length > 0 {
		opts.WordLength = length
	}
	if opts.WordLength <= 0 {
		opts.WordLength = ladder.DefaultWordLength
	}
	return opts
}

type ladderNewReq struct {
	Length int `json:"length"`
}

func (s *Server) handleLadderNew(w http.ResponseWriter, r *http.Request) {
	var req ladderNewReq
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err)
		return
	}
	opts := s.ladderOptions(req.Length)

	started := time.Now()
	p, err := ladder.NewPuzzle(s.lex.Ladder, s.newRand(), opts)
	metrics.ObserveGeneration(started, err)
	if err != nil {
		log.Info().Err(err).Int("length", opts.WordLength).Msg("ladder generation failed")
		writeLadderError(w, err)
		return
	}
	if err := s.ladders.Save(r.Context(), p); err != nil {
		log.Error().Err(err).Msg("save puzzle")
		writeError(w, http.StatusInternalServerError, "save_failed", nil)
		return
	}
	s.recordStart(w, r, kindLadder, p.ID, p.Target)

	log.Debug().Str("gameId", p.ID).Str("start", p.Start).Str("target", p.Target).
		Int("steps", p.Path.Steps()).Dur("took", time.Since(started)).Msg("ladder puzzle created")
	writeJSON(w, http.StatusOK, viewOf(p))
}

type ladderGuessReq struct {
	GameID string `json:"gameId"`
	Word   string `json:"word"`
}

func (s *Server) handleLadderGuess(w http.ResponseWriter, r *http.Request) {
	var req ladderGuessReq
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err)
		return
	}
	var view ladderView
	err := s.ladders.Update(r.Context(), req.GameID, func(p *ladder.Puzzle) error {
		if _, err := p.Submit(req.Word); err != nil {
			return err
		}
		view = viewOf(p)
		return nil
	})
	if err != nil {
		metrics.Guesses.WithLabelValues(kindLadder, "rejected").Inc()
		writeLadderError(w, err)
		return
	}
	metrics.Guesses.WithLabelValues(kindLadder, "accepted").Inc()
	s.afterLadderMove(w, r, view)
	writeJSON(w, http.StatusOK, view)
}

type ladderHintReq struct {
	GameID string `json:"gameId"`
}

func (s *Server) handleLadderHint(w http.ResponseWriter, r *http.Request) {
	var req ladderHintReq
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err)
		return
	}
	var view ladderView
	err := s.ladders.Update(r.Context(), req.GameID, func(p *ladder.Puzzle) error {
		word, _, err := p.Hint()
		if err != nil {
			return err
		}
		view = viewOf(p)
		view.Hint = word
		return nil
	})
	if err != nil {
		_, code := ladderErrorCode(err)
		metrics.HintsServed.WithLabelValues(code).Inc()
		writeLadderError(w, err)
		return
	}
	metrics.HintsServed.WithLabelValues("ok").Inc()
	s.afterLadderMove(w, r, view)
	writeJSON(w, http.StatusOK, view)
}

// afterLadderMove persists progress and drops finished puzzles from memory.
func (s *Server) afterLadderMove(w http.ResponseWriter, r *http.Request, v ladderView) {
	finished := v.State != ladder.StatePlaying
	s.recordProgress(w, r, gameUpdate{
		ID:       v.GameID,
		State:    v.State,
		Score:    len(v.History) - 1,
		Finished: finished,
		Won:      v.State == ladder.StateWon,
		BumpUser: true,
	})
	if finished {
		metrics.GamesFinished.WithLabelValues(kindLadder, v.State).Inc()
		_ = s.ladders.Delete(r.Context(), v.GameID)
	}
}

func (s *Server) handleLadderNeighbors(w http.ResponseWriter, r *http.Request) {
	word := ladder.Normalize(r.URL.Query().Get("word"))
	if word == "" {
		writeError(w, http.StatusBadRequest, "missing_word", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"word":      word,
		"known":     s.lex.Ladder.Contains(word),
		"neighbors": nonNil(ladder.Neighbors(s.lex.Ladder, word)),
	})
}

func (s *Server) handleLadderPath(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, "missing_words", nil)
		return
	}
	maxSteps := s.ladderOptions(0).MaxSteps
	if maxSteps <= 0 {
		maxSteps = ladder.DefaultMaxSteps
	}
	if v := q.Get("maxSteps"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > maxPathQuerySteps {
			writeError(w, http.StatusBadRequest, "bad_max_steps", nil)
			return
		}
		maxSteps = n
	}

	path, err := ladder.ShortestPath(s.lex.Ladder, from, to, maxSteps)
	if err != nil {
		writeLadderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"path": path, "steps": path.Steps(), "maxSteps": maxSteps})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
