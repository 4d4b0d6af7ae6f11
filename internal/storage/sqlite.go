// Package storage provides SQLite-based persistence for finished matches.
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

	"github.com/vovakirdan/matrix-pong/internal/driver"
	"github.com/vovakirdan/matrix-pong/internal/game"
)

// DefaultPath is where the match database lives unless overridden.
const DefaultPath = "~/.pong/matches.db"

// Store manages the SQLite database connection for match persistence.
type Store struct {
	db *sql.DB
}

// MatchRecord represents one finished match.
type MatchRecord struct {
	ID         int64
	Winner     int // 0 = player 1, 1 = player 2, -1 = none
	Score1     int
	Score2     int
	BestRally1 int
	BestRally2 int
	SpeedMS    int64
	Duration   time.Duration
	Ticks      int64
	Seed       int64
	Source     string // "local" or "ssh:<user>"
	CreatedAt  time.Time
}

// WinnerName returns "P1", "P2" or "-".
func (m MatchRecord) WinnerName() string {
	switch m.Winner {
	case 0:
		return "P1"
	case 1:
		return "P2"
	default:
		return "-"
	}
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			winner INTEGER NOT NULL,
			score1 INTEGER NOT NULL DEFAULT 0,
			score2 INTEGER NOT NULL DEFAULT 0,
			best_rally1 INTEGER NOT NULL DEFAULT 0,
			best_rally2 INTEGER NOT NULL DEFAULT 0,
			speed_ms INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			source TEXT NOT NULL DEFAULT 'local',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_matches_source ON matches(source);
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

// SaveMatch records a finished match.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(m MatchRecord) (int64, error) {
	if m.Source == "" {
		m.Source = "local"
	}

	result, err := s.db.Exec(
		`INSERT INTO matches
		 (winner, score1, score2, best_rally1, best_rally2, speed_ms, duration_ms, ticks, seed, source)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.Winner,
		m.Score1,
		m.Score2,
		m.BestRally1,
		m.BestRally2,
		m.SpeedMS,
		m.Duration.Milliseconds(),
		m.Ticks,
		m.Seed,
		m.Source,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const matchColumns = `id, winner, score1, score2, best_rally1, best_rally2,
	speed_ms, duration_ms, ticks, seed, source, created_at`

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(row scanner) (MatchRecord, error) {
	var m MatchRecord
	var durationMS int64
	var createdAt any

	if err := row.Scan(
		&m.ID,
		&m.Winner,
		&m.Score1,
		&m.Score2,
		&m.BestRally1,
		&m.BestRally2,
		&m.SpeedMS,
		&durationMS,
		&m.Ticks,
		&m.Seed,
		&m.Source,
		&createdAt,
	); err != nil {
		return m, err
	}

	m.Duration = time.Duration(durationMS) * time.Millisecond
	m.CreatedAt = parseTime(createdAt)
	return m, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var matches []MatchRecord
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return matches, nil
}

// MatchByID retrieves a single match. Returns nil if it does not exist.
func (s *Store) MatchByID(id int64) (*MatchRecord, error) {
	m, err := scanMatch(s.db.QueryRow(
		`SELECT `+matchColumns+` FROM matches WHERE id = ?`,
		id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &m, nil
}

// WinStats contains aggregated results over all recorded matches.
type WinStats struct {
	Matches    int
	P1Wins     int
	P2Wins     int
	BestRally  int
	AvgPoints  float64 // Points per match, both players combined
	TotalTime  time.Duration
	LastPlayed time.Time
}

// WinCounts aggregates every recorded match.
func (s *Store) WinCounts() (*WinStats, error) {
	stats := &WinStats{}
	var totalMS int64

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = 0 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = 1 THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(MAX(best_rally1, best_rally2)), 0),
		        COALESCE(AVG(score1 + score2), 0),
		        COALESCE(SUM(duration_ms), 0)
		 FROM matches`,
	).Scan(&stats.Matches, &stats.P1Wins, &stats.P2Wins, &stats.BestRally, &stats.AvgPoints, &totalMS)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get win counts: %w", err)
	}
	stats.TotalTime = time.Duration(totalMS) * time.Millisecond

	// Get last played
	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM matches ORDER BY created_at DESC, id DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// ClearMatches deletes every recorded match.
func (s *Store) ClearMatches() error {
	_, err := s.db.Exec("DELETE FROM matches")
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// RecordMatch implements driver.Recorder.
// This adapter lets the game loop save results without a direct storage dependency.
func (s *Store) RecordMatch(r driver.MatchResult) error {
	winner := -1
	if r.Winner != game.NoPlayer {
		winner = int(r.Winner)
	}
	_, err := s.SaveMatch(MatchRecord{
		Winner:     winner,
		Score1:     r.Score1,
		Score2:     r.Score2,
		BestRally1: r.BestRally1,
		BestRally2: r.BestRally2,
		SpeedMS:    r.SpeedMS,
		Duration:   r.Duration,
		Ticks:      int64(r.Ticks),
		Seed:       r.Seed,
		Source:     r.Source,
	})
	return err
}

// Ensure Store implements Recorder
var _ driver.Recorder = (*Store)(nil)
