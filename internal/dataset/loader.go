/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package dataset

import "context"

// Loader fetches the two reference tables from a concrete source. The game
// core only ever sees a Dataset built from a Loader, so the source can be
// CSV files, a published spreadsheet, SQLite, or Postgres.
type Loader interface {
	LoadGoals(ctx context.Context) ([]GoalRecord, error)
	LoadHuntingGrounds(ctx context.Context) ([]HuntingGroundRecord, error)
}
