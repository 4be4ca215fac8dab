// apps/go-server/main.go
//
// Entry point for the word games server (Word Ladder, Hangman, daily ladder).
//
// Startup:
//   1. Load .env (optional) and set the zerolog level from LOG_LEVEL.
//   2. Load word lists (WORDS_FILE / HANGMAN_WORDS_FILE or embedded defaults).
//   3. Open SQLite at DB_PATH and apply embedded migrations.
//   4. Serve on PORT until SIGINT/SIGTERM, then shut down gracefully.

package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordgames/apps/go-server/assets"
	"github.com/robalobadob/wordgames/apps/go-server/internal/database"
	"github.com/robalobadob/wordgames/apps/go-server/internal/httpserver"
	"github.com/robalobadob/wordgames/apps/go-server/internal/ladder"
	"github.com/robalobadob/wordgames/apps/go-server/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	lex, err := words.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	dbPath := getEnv("DB_PATH", "./data/app.db")
	db, err := database.Open(dbPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", dbPath).Msg("open db")
	}
	defer db.Close()
	if err := database.Migrate(db, assets.Migrations()); err != nil {
		log.Fatal().Err(err).Msg("migrate db")
	}

	cfg := httpserver.Config{
		Ladder: ladder.Options{
			WordLength:  getEnvInt("LADDER_WORD_LENGTH", ladder.DefaultWordLength),
			MaxSteps:    getEnvInt("LADDER_MAX_STEPS", ladder.DefaultMaxSteps),
			MaxAttempts: getEnvInt("LADDER_MAX_ATTEMPTS", ladder.DefaultMaxAttempts),
			Guesses:     ladder.DefaultGuesses,
			Hints:       ladder.DefaultHints,
		},
		DailySalt: getEnv("DAILY_SALT", "local_dev_salt"),
		JWTSecret: getEnv("JWT_SECRET", "dev_secret_change_me"),
		TokenTTL:  time.Duration(getEnvInt("JWT_EXPIRES_DAYS", 14)) * 24 * time.Hour,
	}
	if os.Getenv("JWT_SECRET") == "" {
		log.Warn().Msg("JWT_SECRET not set, using development secret")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := httpserver.New(lex, db, cfg)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Msg("starting go-server")
	if err := srv.Start(ctx, ":"+port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// getEnvInt parses k as an int, falling back to def when unset or invalid.
func getEnvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Msg("invalid integer, using default")
		return def
	}
	return n
}
