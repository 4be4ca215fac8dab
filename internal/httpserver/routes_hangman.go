// apps/go-server/internal/httpserver/routes_hangman.go
//
// HTTP routes for Hangman, mounted under /hangman:
//   - POST /hangman/new   → start a game on a random word
//   - POST /hangman/guess → guess one letter
//   - POST /hangman/next  → after solving, continue with a fresh word
//
// Score and remaining guesses carry over between words; a game ends only when
// guesses run out.

package httpserver

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordgames/apps/go-server/internal/hangman"
	"github.com/robalobadob/wordgames/apps/go-server/internal/metrics"
	"github.com/robalobadob/wordgames/apps/go-server/internal/store"
)

func (s *Server) mountHangman(r chi.Router) {
	r.Route("/hangman", func(r chi.Router) {
		r.Post("/new", s.handleHangmanNew)
		r.Post("/guess", s.handleHangmanGuess)
		r.Post("/next", s.handleHangmanNext)
	})
}

type hangmanView struct {
	GameID      string   `json:"gameId"`
	Masked      string   `json:"masked"`
	Length      int      `json:"length"`
	Score       int      `json:"score"`
	GuessesLeft int      `json:"guessesLeft"`
	Rejected    []string `json:"rejected"`
	Rounds      int      `json:"rounds"`
	State       string   `json:"state"`
	Found       *bool    `json:"found,omitempty"`
	Word        string   `json:"word,omitempty"` // revealed once solved or lost
}

func hangmanViewOf(g *hangman.Game) hangmanView {
	v := hangmanView{
		GameID:      g.ID,
		Masked:      g.Masked(),
		Length:      len(g.Masked()),
		Score:       g.Score,
		GuessesLeft: g.GuessesLeft,
		Rejected:    g.Rejected(),
		Rounds:      g.Rounds,
		State:       g.State(),
	}
	if v.State != hangman.StatePlaying {
		v.Word = g.Word
	}
	return v
}

func hangmanErrorCode(err error) (int, string) {
	switch {
	case errors.Is(err, hangman.ErrInvalidLetter):
		return http.StatusBadRequest, "invalid_letter"
	case errors.Is(err, hangman.ErrLetterUsed):
		return http.StatusBadRequest, "letter_used"
	case errors.Is(err, hangman.ErrGameOver):
		return http.StatusConflict, "game_over"
	case errors.Is(err, hangman.ErrRoundSolved):
		return http.StatusConflict, "round_solved"
	case errors.Is(err, hangman.ErrNoWord):
		return http.StatusUnprocessableEntity, "no_words"
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "not_found"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func (s *Server) handleHangmanNew(w http.ResponseWriter, r *http.Request) {
	g, err := hangman.New(s.lex.RandomHangmanWord())
	if err != nil {
		status, code := hangmanErrorCode(err)
		writeError(w, status, code, err)
		return
	}
	if err := s.hangmen.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save hangman game")
		writeError(w, http.StatusInternalServerError, "save_failed", nil)
		return
	}
	s.recordStart(w, r, kindHangman, g.ID, "")
	writeJSON(w, http.StatusOK, hangmanViewOf(g))
}

type hangmanGuessReq struct {
	GameID string `json:"gameId"`
	Letter string `json:"letter"`
}

func (s *Server) handleHangmanGuess(w http.ResponseWriter, r *http.Request) {
	var req hangmanGuessReq
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err)
		return
	}
	var view hangmanView
	err := s.hangmen.Update(r.Context(), req.GameID, func(g *hangman.Game) error {
		res, err := g.Guess(req.Letter)
		if err != nil {
			return err
		}
		view = hangmanViewOf(g)
		view.Found = &res.Found
		return nil
	})
	if err != nil {
		metrics.Guesses.WithLabelValues(kindHangman, "rejected").Inc()
		status, code := hangmanErrorCode(err)
		writeError(w, status, code, err)
		return
	}
	metrics.Guesses.WithLabelValues(kindHangman, "accepted").Inc()

	lost := view.State == hangman.StateLost
	s.recordProgress(w, r, gameUpdate{ID: view.GameID, State: view.State, Score: view.Score, Finished: lost})
	if lost {
		metrics.GamesFinished.WithLabelValues(kindHangman, view.State).Inc()
		_ = s.hangmen.Delete(r.Context(), view.GameID)
	}
	writeJSON(w, http.StatusOK, view)
}

type hangmanNextReq struct {
	GameID string `json:"gameId"`
}

// handleHangmanNext moves a solved game on to a fresh word.
func (s *Server) handleHangmanNext(w http.ResponseWriter, r *http.Request) {
	var req hangmanNextReq
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err)
		return
	}
	var view hangmanView
	err := s.hangmen.Update(r.Context(), req.GameID, func(g *hangman.Game) error {
		if g.State() != hangman.StateSolved {
			return errRoundInProgress
		}
		if err := g.NextWord(s.lex.RandomHangmanWord()); err != nil {
			return err
		}
		view = hangmanViewOf(g)
		return nil
	})
	if errors.Is(err, errRoundInProgress) {
		writeError(w, http.StatusConflict, "round_in_progress", err)
		return
	}
	if err != nil {
		status, code := hangmanErrorCode(err)
		writeError(w, status, code, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

var errRoundInProgress = errors.New("current word is not solved yet")
