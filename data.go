/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import (
	"context"
	"fmt"

	"github.com/Seednode/huntinggrounds/internal/dataset"
)

// loadDataset builds the configured Loader, loads both reference tables
// once, and returns the immutable Dataset shared by every session.
func loadDataset(ctx context.Context, cfg *Config) (*dataset.Dataset, error) {
	var loader dataset.Loader

	switch {
	case cfg.databaseURL != "":
		pg, err := dataset.NewPostgresLoader(ctx, cfg.databaseURL)
		if err != nil {
			return nil, err
		}
		defer pg.Close()

		logf(cfg, "DATA: Loading reference data from postgres")
		loader = pg

	case cfg.goalsURL != "":
		sheet := &dataset.SheetLoader{
			GoalsURL:   cfg.goalsURL,
			GroundsURL: cfg.groundsURL,
		}
		loader = sheet

		if cfg.sqliteCache != "" {
			store, err := dataset.OpenSQLite(cfg.sqliteCache)
			if err != nil {
				return nil, err
			}
			defer store.Close()

			logf(cfg, "DATA: Loading reference data from spreadsheet export (cache: %s)", cfg.sqliteCache)
			loader = &dataset.CachedLoader{Source: sheet, Store: store}
		} else {
			logf(cfg, "DATA: Loading reference data from spreadsheet export")
		}

	default:
		logf(cfg, "DATA: Loading reference data from csv files")
		loader = &dataset.CSVLoader{
			GoalsPath:   cfg.goalsCSV,
			GroundsPath: cfg.groundsCSV,
		}
	}

	data, err := dataset.Load(ctx, loader)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}

	logf(cfg, "DATA: Loaded %d away goals across %d hunting grounds (%d distinct scorers)",
		data.GoalCount(), data.GroundCount(), len(data.Scorers()))

	return data, nil
}
