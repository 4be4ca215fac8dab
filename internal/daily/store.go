package daily

import (
	"context"
	"database/sql"
)

// Result is one finished daily ladder. Lost games are stored too so the
// player cannot start the day again; only wins reach the leaderboard.
type Result struct {
	UserID    string `json:"userId"`
	Date      string `json:"date"`
	Start     string `json:"start"`
	Target    string `json:"target"`
	Steps     int    `json:"steps"`
	HintsUsed int    `json:"hintsUsed"`
	ElapsedMs int    `json:"elapsedMs"`
	Won       bool   `json:"won"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) AlreadyPlayed(ctx context.Context, userID, date string) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM daily_results WHERE user_id=? AND date=?",
		userID, date,
	).Scan(&cnt)
	return cnt > 0, err
}

// InsertResult records a finished game; a second result for the same user and
// date is ignored.
func (s *Store) InsertResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_results(user_id, date, start_word, target, steps, hints_used, elapsed_ms, won)
		VALUES(?,?,?,?,?,?,?,?)`,
		r.UserID, r.Date, r.Start, r.Target, r.Steps, r.HintsUsed, r.ElapsedMs, r.Won,
	)
	return err
}

type LBRow struct {
	UserID    string `json:"userId"`
	Steps     int    `json:"steps"`
	HintsUsed int    `json:"hintsUsed"`
	ElapsedMs int    `json:"elapsedMs"`
}

// Leaderboard ranks the day's wins by fewest steps, then fastest time, then
// earliest entry.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, steps, hints_used, elapsed_ms
		FROM daily_results
		WHERE date=? AND won=1
		ORDER BY steps ASC, elapsed_ms ASC, created_at ASC, rowid ASC
		LIMIT ?`, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []LBRow{}
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.UserID, &r.Steps, &r.HintsUsed, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
