// Package highscore persists per-game top scores in a local sqlite
// database. Games are keyed by a stable string id; new games appear
// simply by submitting a score under a new id.
package highscore

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const tableName = "high_scores"

// Entry is one recorded score.
type Entry struct {
	ID        int
	GameID    string
	Score     uint32
	CreatedAt time.Time
}

// Store wraps the sqlite database holding all scores for the console.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening score database: %w", err)
	}

	const createTableSQL = `
	CREATE TABLE IF NOT EXISTS ` + tableName + ` (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating %s table: %w", tableName, err)
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Submit records a finished run's score for the given game.
func (s *Store) Submit(gameID string, score uint32) error {
	const insertSQL = `INSERT INTO ` + tableName + ` (game_id, score) VALUES (?, ?);`
	if _, err := s.db.Exec(insertSQL, gameID, score); err != nil {
		return fmt.Errorf("inserting score for %s: %w", gameID, err)
	}
	return nil
}

// Best returns the highest recorded score for a game, or 0 when the game
// has no scores yet.
func (s *Store) Best(gameID string) (uint32, error) {
	const bestSQL = `SELECT COALESCE(MAX(score), 0) FROM ` + tableName + ` WHERE game_id = ?;`
	var best uint32
	if err := s.db.QueryRow(bestSQL, gameID).Scan(&best); err != nil {
		return 0, fmt.Errorf("querying best score for %s: %w", gameID, err)
	}
	return best, nil
}

// Top returns up to limit scores for a game, best first.
func (s *Store) Top(gameID string, limit int) ([]Entry, error) {
	const topSQL = `
	SELECT id, game_id, score, created_at
	FROM ` + tableName + `
	WHERE game_id = ?
	ORDER BY score DESC, created_at ASC
	LIMIT ?;`

	rows, err := s.db.Query(topSQL, gameID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying top scores for %s: %w", gameID, err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning score row: %w", err)
		}
		if t, err := time.Parse("2006-01-02 15:04:05", createdAt); err == nil {
			e.CreatedAt = t
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating score rows: %w", err)
	}
	return entries, nil
}
