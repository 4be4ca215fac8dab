// apps/go-server/internal/httpserver/routes_daily.go
//
// HTTP routes for the daily ladder, mounted under /daily:
//   - POST /daily/new         → start today's ladder (creates or reuses session)
//   - POST /daily/guess       → submit a rung for today's ladder
//   - POST /daily/hint        → take a hint on today's ladder
//   - GET  /daily/leaderboard → top 20 results for today (or ?date=YYYY-MM-DD)
//
// Every player sees the same start/target on a given day (HMAC of date + salt).
// Each player can finish once per day (enforced by DB + in-memory session).
// Sessions are held in memory for active play; finished games, won or lost,
// are persisted to DB. Sessions from earlier days are dropped on the next
// /daily/new.

package httpserver

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordgames/apps/go-server/internal/daily"
	"github.com/robalobadob/wordgames/apps/go-server/internal/ladder"
	"github.com/robalobadob/wordgames/apps/go-server/internal/metrics"
	"github.com/robalobadob/wordgames/apps/go-server/internal/store"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	store    *daily.Store
	now      func() time.Time
	sessions map[string]*dailySession // keyed by userID|date
	mu       sync.Mutex               // guards sessions and the puzzles they hold
}

// dailySession holds transient state for an in-progress daily ladder.
type dailySession struct {
	UserID string
	Date   string
	Puzzle *ladder.Puzzle
	Start  time.Time
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:      s,
		store:    daily.NewStore(s.db),
		now:      time.Now,
		sessions: make(map[string]*dailySession),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/guess", dd.handleGuess)
		r.Post("/hint", dd.handleHint)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// userID returns the authenticated user ID if logged in, otherwise the
// anonymous cookie ID.
func (d *dailyServer) userID(w http.ResponseWriter, r *http.Request) string {
	if me := userFrom(r); me != nil {
		return me.ID
	}
	return d.srv.ensureAnonID(w, r)
}

// -----------------------------------------------------------------------------
// /daily/new

type dailyNewRes struct {
	Date   string      `json:"date"`
	Played bool        `json:"played"`
	Game   *ladderView `json:"game,omitempty"`
}

// handleNew creates or reuses a daily session for the current date.
// - If the player already has a result for today → Played=true.
// - Otherwise create/reuse an in-memory session seeded from today's pair.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	uid := d.userID(w, r)
	now := d.now()
	date := daily.DateKey(now)

	if played, err := d.store.AlreadyPlayed(r.Context(), uid, date); err != nil {
		log.Warn().Err(err).Str("user", uid).Msg("daily already-played check")
	} else if played {
		writeJSON(w, http.StatusOK, dailyNewRes{Date: date, Played: true})
		return
	}

	key := uid + "|" + date
	if v := d.resume(key); v != nil {
		writeJSON(w, http.StatusOK, dailyNewRes{Date: date, Game: v})
		return
	}

	// Pair sampling can run many searches; keep it outside the lock.
	opts := d.srv.ladderOptions(0)
	started := time.Now()
	pair, err := daily.Pair(d.srv.lex.Ladder, now, d.srv.cfg.DailySalt, opts)
	metrics.ObserveGeneration(started, err)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("daily pair generation failed")
		writeLadderError(w, err)
		return
	}

	d.mu.Lock()
	d.pruneLocked(date)
	sess, ok := d.sessions[key]
	if !ok {
		sess = &dailySession{
			UserID: uid,
			Date:   date,
			Puzzle: ladder.FromPair(d.srv.lex.Ladder, pair, opts),
			Start:  time.Now(),
		}
		d.sessions[key] = sess
	}
	v := viewOf(sess.Puzzle)
	d.mu.Unlock()

	writeJSON(w, http.StatusOK, dailyNewRes{Date: date, Game: &v})
}

// resume returns the view of an existing session, or nil.
func (d *dailyServer) resume(key string) *ladderView {
	d.mu.Lock()
	defer d.mu.Unlock()
	sess, ok := d.sessions[key]
	if !ok {
		return nil
	}
	v := viewOf(sess.Puzzle)
	return &v
}

// pruneLocked drops sessions left unfinished on earlier days. d.mu must be held.
func (d *dailyServer) pruneLocked(today string) {
	for k, sess := range d.sessions {
		if sess.Date != today {
			delete(d.sessions, k)
		}
	}
}

// -----------------------------------------------------------------------------
// /daily/guess and /daily/hint

type dailyMoveReq struct {
	GameID string `json:"gameId"`
	Word   string `json:"word"`
}

func (d *dailyServer) handleGuess(w http.ResponseWriter, r *http.Request) {
	d.move(w, r, func(p *ladder.Puzzle, req dailyMoveReq) (string, error) {
		_, err := p.Submit(req.Word)
		return "", err
	})
}

func (d *dailyServer) handleHint(w http.ResponseWriter, r *http.Request) {
	d.move(w, r, func(p *ladder.Puzzle, _ dailyMoveReq) (string, error) {
		word, _, err := p.Hint()
		return word, err
	})
}

// move finds the caller's session for today, applies fn under the lock and
// persists the result once the game is won or lost. Finished sessions are
// dropped.
func (d *dailyServer) move(w http.ResponseWriter, r *http.Request, fn func(*ladder.Puzzle, dailyMoveReq) (string, error)) {
	uid := d.userID(w, r)
	var req dailyMoveReq
	if err := decode(r, &req); err != nil || req.GameID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	date := daily.DateKey(d.now())
	key := uid + "|" + date

	d.mu.Lock()
	sess, ok := d.sessions[key]
	if !ok || sess.Puzzle.ID != req.GameID {
		d.mu.Unlock()
		writeLadderError(w, store.ErrNotFound)
		return
	}
	hint, err := fn(sess.Puzzle, req)
	view := viewOf(sess.Puzzle)
	view.Hint = hint
	p := sess.Puzzle
	if p.Finished {
		delete(d.sessions, key)
	}
	d.mu.Unlock()

	if err != nil {
		writeLadderError(w, err)
		return
	}

	if p.Finished {
		res := daily.Result{
			UserID:    uid,
			Date:      date,
			Start:     p.Start,
			Target:    p.Target,
			Steps:     p.Steps(),
			HintsUsed: p.HintsUsed,
			ElapsedMs: int(time.Since(sess.Start).Milliseconds()),
			Won:       p.Won,
		}
		if err := d.store.InsertResult(r.Context(), res); err != nil {
			log.Warn().Err(err).Str("user", uid).Msg("insert daily result")
		}
		metrics.GamesFinished.WithLabelValues("daily", p.State()).Inc()
	}
	writeJSON(w, http.StatusOK, view)
}

// -----------------------------------------------------------------------------
// /daily/leaderboard

type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(d.now())
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		writeError(w, http.StatusBadRequest, "bad_date", err)
		return
	}
	rows, err := d.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		log.Error().Err(err).Msg("daily leaderboard")
		writeError(w, http.StatusInternalServerError, "server_error", nil)
		return
	}
	writeJSON(w, http.StatusOK, lbRes{Date: date, Top: rows})
}
