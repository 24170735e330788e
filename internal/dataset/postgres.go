/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package dataset

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresLoader reads both tables from a PostgreSQL database. Expected
// schema matches the SQLite snapshot tables: away_goals(hunting_ground,
// scorer, season, date, minute, match_report_url) and
// hunting_grounds(hunting_ground, difficulty).
type PostgresLoader struct {
	pool *pgxpool.Pool
}

// NewPostgresLoader connects to databaseURL and verifies the connection.
func NewPostgresLoader(ctx context.Context, databaseURL string) (*PostgresLoader, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	return &PostgresLoader{pool: pool}, nil
}

// Close releases the connection pool.
func (l *PostgresLoader) Close() {
	l.pool.Close()
}

func (l *PostgresLoader) LoadGoals(ctx context.Context) ([]GoalRecord, error) {
	rows, err := l.pool.Query(ctx,
		`SELECT hunting_ground, scorer, season,
		        COALESCE(date, ''), COALESCE(minute, ''), COALESCE(match_report_url, '')
		 FROM away_goals`)
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

func (l *PostgresLoader) LoadHuntingGrounds(ctx context.Context) ([]HuntingGroundRecord, error) {
	rows, err := l.pool.Query(ctx,
		`SELECT hunting_ground, difficulty FROM hunting_grounds`)
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
