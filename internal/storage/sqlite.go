// Package storage provides SQLite-based persistence for finished rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for round history.
type Store struct {
	db *sql.DB
}

// RoundRecord is one finished round.
type RoundRecord struct {
	ID           int64
	RoundID      string // UUID assigned when the round started
	Session      string // "local" or the SSH session that played it
	Players      int
	WinnerSlot   int    // 0-based player index
	WinnerColor  string // Color name of the winner
	Ticks        int
	DurationSecs float64 // Simulated time
	Transfers    int     // Number of tag changes
	CreatedAt    time.Time
}

// ColorWins is the number of rounds won by one player color.
type ColorWins struct {
	Color string
	Wins  int
}

// RoundStats contains aggregated statistics over all stored rounds.
type RoundStats struct {
	Rounds       int
	AvgDuration  float64
	LongestRound float64
	AvgTransfers float64
	LastPlayed   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL UNIQUE,
			session TEXT NOT NULL DEFAULT 'local',
			players INTEGER NOT NULL,
			winner_slot INTEGER NOT NULL,
			winner_color TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			duration_secs REAL NOT NULL DEFAULT 0,
			transfers INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_created ON rounds(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_rounds_winner_color ON rounds(winner_color);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a finished round.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(r RoundRecord) (int64, error) {
	if r.Session == "" {
		r.Session = "local"
	}
	result, err := s.db.Exec(
		`INSERT INTO rounds
		 (round_id, session, players, winner_slot, winner_color, ticks, duration_secs, transfers)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RoundID, r.Session, r.Players, r.WinnerSlot, r.WinnerColor, r.Ticks, r.DurationSecs, r.Transfers,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const roundColumns = `id, round_id, session, players, winner_slot, winner_color,
		ticks, duration_secs, transfers, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRound(row scanner) (RoundRecord, error) {
	var r RoundRecord
	var createdAt any
	err := row.Scan(
		&r.ID,
		&r.RoundID,
		&r.Session,
		&r.Players,
		&r.WinnerSlot,
		&r.WinnerColor,
		&r.Ticks,
		&r.DurationSecs,
		&r.Transfers,
		&createdAt,
	)
	if err != nil {
		return RoundRecord{}, err
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// RecentRounds retrieves the most recent rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var records []RoundRecord
	for rows.Next() {
		r, err := scanRound(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// RoundByID retrieves a round by its UUID. Returns nil if it does not exist.
func (s *Store) RoundByID(roundID string) (*RoundRecord, error) {
	r, err := scanRound(s.db.QueryRow(
		`SELECT `+roundColumns+` FROM rounds WHERE round_id = ?`,
		roundID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query round: %w", err)
	}
	return &r, nil
}

// WinsByColor returns the number of wins per color, most wins first.
func (s *Store) WinsByColor() ([]ColorWins, error) {
	rows, err := s.db.Query(
		`SELECT winner_color, COUNT(*) AS wins
		 FROM rounds
		 GROUP BY winner_color
		 ORDER BY wins DESC, winner_color ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query wins: %w", err)
	}
	defer rows.Close()

	var wins []ColorWins
	for rows.Next() {
		var w ColorWins
		if err := rows.Scan(&w.Color, &w.Wins); err != nil {
			return nil, fmt.Errorf("storage: cannot scan wins row: %w", err)
		}
		wins = append(wins, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return wins, nil
}

// Stats retrieves aggregated statistics over all rounds.
func (s *Store) Stats() (*RoundStats, error) {
	stats := &RoundStats{}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(AVG(duration_secs), 0), COALESCE(MAX(duration_secs), 0),
		        COALESCE(AVG(transfers), 0), MAX(created_at)
		 FROM rounds`,
	).Scan(&stats.Rounds, &stats.AvgDuration, &stats.LongestRound, &stats.AvgTransfers, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get round stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ClearRounds deletes all stored rounds.
func (s *Store) ClearRounds() error {
	if _, err := s.db.Exec("DELETE FROM rounds"); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}
