/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package dataset

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore reads and writes the reference tables in a SQLite file. It
// doubles as a Loader and as the snapshot target for CachedLoader.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and ensures the
// schema exists.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS away_goals (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			hunting_ground TEXT NOT NULL,
			scorer TEXT NOT NULL,
			season TEXT NOT NULL,
			date TEXT,
			minute TEXT,
			match_report_url TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS hunting_grounds (
			hunting_ground TEXT PRIMARY KEY,
			difficulty INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_goals_ground ON away_goals(hunting_ground)`,
		`CREATE INDEX IF NOT EXISTS idx_grounds_difficulty ON hunting_grounds(difficulty)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Empty reports whether the store holds no snapshot yet.
func (s *SQLiteStore) Empty(ctx context.Context) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM hunting_grounds`).Scan(&n); err != nil {
		return false, err
	}
	return n == 0, nil
}

// Snapshot replaces both tables with the given records in one transaction.
func (s *SQLiteStore) Snapshot(ctx context.Context, goals []GoalRecord, grounds []HuntingGroundRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM away_goals`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM hunting_grounds`); err != nil {
		return err
	}

	goalStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO away_goals (hunting_ground, scorer, season, date, minute, match_report_url)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer goalStmt.Close()

	for _, g := range goals {
		if _, err := goalStmt.ExecContext(ctx, g.HuntingGround, g.Scorer, g.Season, g.Date, g.Minute, g.MatchReportURL); err != nil {
			return fmt.Errorf("inserting goal: %w", err)
		}
	}

	groundStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO hunting_grounds (hunting_ground, difficulty) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer groundStmt.Close()

	for _, hg := range grounds {
		if _, err := groundStmt.ExecContext(ctx, hg.HuntingGround, hg.Difficulty); err != nil {
			return fmt.Errorf("inserting hunting ground: %w", err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) LoadGoals(ctx context.Context) ([]GoalRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT hunting_ground, scorer, season, date, minute, match_report_url
		 FROM away_goals ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []GoalRecord
	for rows.Next() {
		var g GoalRecord
		if err := rows.Scan(&g.HuntingGround, &g.Scorer, &g.Season, &g.Date, &g.Minute, &g.MatchReportURL); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}

	return goals, rows.Err()
}

func (s *SQLiteStore) LoadHuntingGrounds(ctx context.Context) ([]HuntingGroundRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT hunting_ground, difficulty FROM hunting_grounds ORDER BY hunting_ground`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grounds []HuntingGroundRecord
	for rows.Next() {
		var hg HuntingGroundRecord
		if err := rows.Scan(&hg.HuntingGround, &hg.Difficulty); err != nil {
			return nil, err
		}
		grounds = append(grounds, hg)
	}

	return grounds, rows.Err()
}

// CachedLoader serves from the SQLite store when it holds a snapshot, and
// otherwise pulls from Source and snapshots the result. This keeps the
// spreadsheet fetch to a single request per cache lifetime and lets the
// server start offline afterwards.
type CachedLoader struct {
	Source Loader
	Store  *SQLiteStore

	goals   []GoalRecord
	grounds []HuntingGroundRecord
}

func (c *CachedLoader) fill(ctx context.Context) error {
	if c.goals != nil {
		return nil
	}

	empty, err := c.Store.Empty(ctx)
	if err != nil {
		return err
	}

	if !empty {
		if c.goals, err = c.Store.LoadGoals(ctx); err != nil {
			return err
		}
		c.grounds, err = c.Store.LoadHuntingGrounds(ctx)
		return err
	}

	if c.goals, err = c.Source.LoadGoals(ctx); err != nil {
		return err
	}
	if c.grounds, err = c.Source.LoadHuntingGrounds(ctx); err != nil {
		return err
	}

	return c.Store.Snapshot(ctx, c.goals, c.grounds)
}

func (c *CachedLoader) LoadGoals(ctx context.Context) ([]GoalRecord, error) {
	if err := c.fill(ctx); err != nil {
		return nil, err
	}
	return c.goals, nil
}

func (c *CachedLoader) LoadHuntingGrounds(ctx context.Context) ([]HuntingGroundRecord, error) {
	if err := c.fill(ctx); err != nil {
		return nil, err
	}
	return c.grounds, nil
}
