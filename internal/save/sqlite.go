// Package save provides SQLite-based persistence for the player's save
// state: coin balance, per-game high scores, and the unlocked level set.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package save

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for save state.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	GameType  string
	LevelID   int
	Score     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("save: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("save: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("save: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("save: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("save: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist. The wallet
// table holds a single row so coin updates stay atomic.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS wallet (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			coins INTEGER NOT NULL DEFAULT 0
		);
		INSERT OR IGNORE INTO wallet (id, coins) VALUES (1, 0);

		CREATE TABLE IF NOT EXISTS high_scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_type TEXT NOT NULL,
			level_id INTEGER NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_high_scores_game ON high_scores(game_type, level_id, score DESC);

		CREATE TABLE IF NOT EXISTS unlocked_levels (
			level_id INTEGER PRIMARY KEY,
			unlocked_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// Coins returns the current coin balance.
func (s *Store) Coins() (int, error) {
	var coins int
	err := s.db.QueryRow("SELECT coins FROM wallet WHERE id = 1").Scan(&coins)
	if err != nil {
		return 0, fmt.Errorf("save: cannot query coins: %w", err)
	}
	return coins, nil
}

// AddCoins adjusts the balance by delta (negative to spend) and returns
// the new balance. Spending below zero is rejected.
func (s *Store) AddCoins(delta int) (int, error) {
	coins, err := s.Coins()
	if err != nil {
		return 0, err
	}
	if coins+delta < 0 {
		return coins, fmt.Errorf("save: insufficient coins: have %d, need %d", coins, -delta)
	}

	if _, err := s.db.Exec("UPDATE wallet SET coins = coins + ? WHERE id = 1", delta); err != nil {
		return 0, fmt.Errorf("save: cannot update coins: %w", err)
	}
	return coins + delta, nil
}

// SubmitScore records a finished run. Returns the ID of the inserted
// record.
func (s *Store) SubmitScore(gameType string, levelID, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO high_scores (game_type, level_id, score) VALUES (?, ?, ?)",
		gameType, levelID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("save: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("save: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// HighScore returns the best score for a game type and level.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameType string, levelID int) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM high_scores WHERE game_type = ? AND level_id = ?",
		gameType, levelID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("save: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// TopScores retrieves the top N scores for a game type across all
// levels, ordered by score descending.
func (s *Store) TopScores(gameType string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_type, level_id, score, created_at
		 FROM high_scores
		 WHERE game_type = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		gameType, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("save: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameType, &e.LevelID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("save: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("save: row iteration error: %w", err)
	}

	return entries, nil
}

// UnlockLevel marks a level as completed/unlocked. Idempotent.
func (s *Store) UnlockLevel(levelID int) error {
	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO unlocked_levels (level_id) VALUES (?)",
		levelID,
	)
	if err != nil {
		return fmt.Errorf("save: cannot unlock level: %w", err)
	}
	return nil
}

// UnlockedLevels returns the completed level ids in ascending order.
func (s *Store) UnlockedLevels() ([]int, error) {
	rows, err := s.db.Query("SELECT level_id FROM unlocked_levels ORDER BY level_id")
	if err != nil {
		return nil, fmt.Errorf("save: cannot query unlocked levels: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("save: cannot scan row: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("save: row iteration error: %w", err)
	}

	return ids, nil
}

// RecordCompletion stores everything a finished level produces in one
// call: the score entry, earned coins, and the unlock.
func (s *Store) RecordCompletion(gameType string, levelID, score, coins int) error {
	if _, err := s.SubmitScore(gameType, levelID, score); err != nil {
		return err
	}
	if coins > 0 {
		if _, err := s.AddCoins(coins); err != nil {
			return err
		}
	}
	return s.UnlockLevel(levelID)
}
