// Package storage provides SQLite-based persistence for scores and round
// results. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry is a single high score record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// RoundResult is the full outcome of one round, persisted alongside the
// plain score so the scoreboard can show rate and accuracy.
type RoundResult struct {
	ID           int64
	GameID       string
	Score        int
	DurationSecs int
	PointsPerSec float64
	Hits         int
	BonusHits    int
	Misses       int
	BestStreak   int
	CreatedAt    time.Time
}

// Open creates or opens a SQLite database at the given path. Parent
// directories are created as needed and migrations are applied.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to the home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL,
			points_per_sec REAL NOT NULL DEFAULT 0,
			hits INTEGER NOT NULL DEFAULT 0,
			bonus_hits INTEGER NOT NULL DEFAULT 0,
			misses INTEGER NOT NULL DEFAULT 0,
			best_streak INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_game_id ON rounds(game_id);
		CREATE INDEX IF NOT EXISTS idx_rounds_rate ON rounds(game_id, points_per_sec DESC);
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

// SaveScore records a new score for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, score) VALUES (?, ?)",
		gameID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveRound records a full round result.
func (s *Store) SaveRound(r RoundResult) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO rounds
		 (game_id, score, duration_secs, points_per_sec, hits, bonus_hits, misses, best_streak)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Score, r.DurationSecs, r.PointsPerSec,
		r.Hits, r.BonusHits, r.Misses, r.BestStreak,
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

// TopScores retrieves the top N scores for the given game, ordered by score
// descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// RecentRounds retrieves the most recent round results for the given game.
func (s *Store) RecentRounds(gameID string, limit int) ([]RoundResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, duration_secs, points_per_sec,
		        hits, bonus_hits, misses, best_streak, created_at
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var results []RoundResult
	for rows.Next() {
		var r RoundResult
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.GameID, &r.Score, &r.DurationSecs, &r.PointsPerSec,
			&r.Hits, &r.BonusHits, &r.Misses, &r.BestStreak, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// BestRounds retrieves the rounds with the highest points-per-second for the
// given game.
func (s *Store) BestRounds(gameID string, limit int) ([]RoundResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, duration_secs, points_per_sec,
		        hits, bonus_hits, misses, best_streak, created_at
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY points_per_sec DESC, score DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var results []RoundResult
	for rows.Next() {
		var r RoundResult
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.GameID, &r.Score, &r.DurationSecs, &r.PointsPerSec,
			&r.Hits, &r.BonusHits, &r.Misses, &r.BestStreak, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// HighScore returns the highest score for the given game, 0 when no scores
// exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores and round results for the given game.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM rounds WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	BestRate   float64
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	err = s.db.QueryRow(
		`SELECT COALESCE(MAX(points_per_sec), 0) FROM rounds WHERE game_id = ?`,
		gameID,
	).Scan(&stats.BestRate)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get best rate: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE game_id = ? ORDER BY created_at DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// parseTimestamp converts a scanned datetime column into a time.Time.
// The sqlite driver may return either a time.Time or a string.
func parseTimestamp(v any) time.Time {
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
