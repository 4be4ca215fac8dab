// apps/go-server/internal/httpserver/server.go
//
// HTTP server wiring for the word games backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/metrics", "/debug/words".
//   - Ladder endpoints (optional auth): mounted under /ladder.
//   - Hangman endpoints (optional auth): mounted under /hangman.
//   - Daily ladder endpoints (optional auth): mounted under /daily.
//   - Auth + profile/stat endpoints: /auth/*, /stats/me, /games/mine.
//   - Game history persistence and user stats.
//
// Notes:
//   - Sessions in play live in memory stores; SQLite keeps history only.
//   - The dictionary is loaded once by the caller and shared read-only.

package httpserver

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"math/rand/v2"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordgames/apps/go-server/internal/hangman"
	"github.com/robalobadob/wordgames/apps/go-server/internal/ladder"
	"github.com/robalobadob/wordgames/apps/go-server/internal/metrics"
	"github.com/robalobadob/wordgames/apps/go-server/internal/store"
	"github.com/robalobadob/wordgames/apps/go-server/internal/words"
)

// Config carries game tunables into the server.
type Config struct {
	Ladder    ladder.Options
	DailySalt string
	JWTSecret string
	TokenTTL  time.Duration
}

// Server bundles router, session stores, word lists and DB handle.
type Server struct {
	r       *chi.Mux
	ladders store.Store[*ladder.Puzzle]
	hangmen store.Store[*hangman.Game]
	lex     *words.Lexicon
	db      *sql.DB
	cfg     Config
	newRand func() *rand.Rand
}

// New constructs a Server, installs middleware, and registers routes.
func New(lex *words.Lexicon, db *sql.DB, cfg Config) *Server {
	if cfg.DailySalt == "" {
		cfg.DailySalt = "local_dev_salt"
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev_secret_change_me"
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 14 * 24 * time.Hour
	}
	s := &Server{
		r:       chi.NewRouter(),
		ladders: store.NewMemoryStore[*ladder.Puzzle](),
		hangmen: store.NewMemoryStore[*hangman.Game](),
		lex:     lex,
		db:      db,
		cfg:     cfg,
		newRand: func() *rand.Rand { return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) },
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)
	s.r.Use(corsFromEnv)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "wordgames-go",
			"endpoints": []string{"/health", "/metrics", "/ladder/*", "/hangman/*", "/daily/*", "/auth/*"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		l, h := s.lex.Stats()
		writeJSON(w, http.StatusOK, map[string]any{"ladder": l, "hangman": h, "lengths": s.lex.Ladder.Lengths()})
	})
	s.r.Method(http.MethodGet, "/metrics", metrics.Handler())

	optional := s.r.With(s.withOptionalAuth())
	s.mountLadder(optional)
	s.mountHangman(optional)
	s.mountDaily(optional)
	s.mountAuthRoutes()

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})
	return s
}

// Start begins serving HTTP on addr and shuts down gracefully when ctx ends.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := getEnv("CLIENT_ORIGIN", "http://localhost:5173")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------- responses ---------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

type errorRes struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	res := errorRes{Error: code}
	if err != nil {
		res.Message = err.Error()
	}
	writeJSON(w, status, res)
}

// decode reads a JSON body into v. An empty body leaves v untouched.
func decode(r *http.Request, v any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ------------------------------ game history --------------------------------

// Game kinds stored in games.kind.
const (
	kindLadder  = "ladder"
	kindHangman = "hangman"
)

// recordStart inserts the history row for a new game, owned by the signed-in
// user or the anonymous cookie. Failures are logged, never surfaced.
func (s *Server) recordStart(w http.ResponseWriter, r *http.Request, kind, id, answer string) {
	now := time.Now().UTC().Format(time.RFC3339)
	var err error
	if me := userFrom(r); me != nil {
		_, err = s.db.ExecContext(r.Context(),
			`INSERT INTO games (id, kind, user_id, answer, started_at, status) VALUES (?,?,?,?,?,?)`,
			id, kind, me.ID, answer, now, "playing")
	} else {
		_, err = s.db.ExecContext(r.Context(),
			`INSERT INTO games (id, kind, anonymous_id, answer, started_at, status) VALUES (?,?,?,?,?,?)`,
			id, kind, s.ensureAnonID(w, r), answer, now, "playing")
	}
	if err != nil {
		log.Warn().Err(err).Str("gameId", id).Str("kind", kind).Msg("insert game row")
	}
}

// gameUpdate describes the progress of one game after a guess.
type gameUpdate struct {
	ID       string
	State    string
	Score    int
	Finished bool
	Won      bool
	BumpUser bool // count the finish in the user's stats
}

// recordProgress bumps the guess counter and, once finished, stamps the final
// status and updates user stats, all in one best-effort transaction.
func (s *Server) recordProgress(w http.ResponseWriter, r *http.Request, u gameUpdate) {
	me := userFrom(r)
	ownerClause := `anonymous_id=?`
	ownerArg := any(s.ensureAnonID(w, r))
	if me != nil {
		ownerClause = `user_id=?`
		ownerArg = any(me.ID)
	}

	tx, err := s.db.BeginTx(r.Context(), nil)
	if err != nil {
		log.Warn().Err(err).Msg("begin progress tx")
		return
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`UPDATE games SET guesses = guesses + 1, score = ? WHERE id=? AND `+ownerClause,
		u.Score, u.ID, ownerArg); err != nil {
		log.Warn().Err(err).Str("gameId", u.ID).Msg("update guesses")
	}
	if u.Finished {
		if _, err := tx.Exec(`UPDATE games SET status=?, finished_at=? WHERE id=? AND `+ownerClause,
			u.State, time.Now().UTC().Format(time.RFC3339), u.ID, ownerArg); err != nil {
			log.Warn().Err(err).Str("gameId", u.ID).Msg("finish game")
		}
		if me != nil && u.BumpUser {
			if err := bumpStats(tx, me.ID, u.Won); err != nil {
				log.Warn().Err(err).Str("user", me.ID).Msg("bump stats")
			}
		}
	}
	if err := tx.Commit(); err != nil {
		log.Warn().Err(err).Msg("commit progress tx")
	}
}

// bumpStats increments games played; updates wins and streak based on result (within tx).
func bumpStats(tx *sql.Tx, userID string, won bool) error {
	var gp, wins, streak int
	row := tx.QueryRow(`SELECT games_played, wins, streak FROM users WHERE id=?`, userID)
	if err := row.Scan(&gp, &wins, &streak); err != nil {
		return err
	}
	gp++
	if won {
		wins++
		streak++
	} else {
		streak = 0
	}
	_, err := tx.Exec(`UPDATE users SET games_played=?, wins=?, streak=? WHERE id=?`, gp, wins, streak, userID)
	return err
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
