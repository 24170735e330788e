/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package dataset

import (
	"context"
	"fmt"
	"sort"
)

// Dataset is the validated, in-memory copy of both reference tables.
// It is loaded once per process and is safe to share between sessions,
// since nothing mutates it after New returns.
type Dataset struct {
	goals   []GoalRecord
	grounds []HuntingGroundRecord

	goalsByGround   map[string][]GoalRecord
	groundsByLevel  map[int][]HuntingGroundRecord
	distinctScorers []string
}

// New validates both tables and builds the lookup indexes. Every goal must
// reference a hunting ground present in the grounds table.
func New(goals []GoalRecord, grounds []HuntingGroundRecord) (*Dataset, error) {
	if len(goals) == 0 {
		return nil, fmt.Errorf("no goal records")
	}
	if len(grounds) == 0 {
		return nil, fmt.Errorf("no hunting ground records")
	}

	d := &Dataset{
		goals:          goals,
		grounds:        grounds,
		goalsByGround:  make(map[string][]GoalRecord),
		groundsByLevel: make(map[int][]HuntingGroundRecord),
	}

	known := make(map[string]bool, len(grounds))
	for _, hg := range grounds {
		if err := hg.validate(); err != nil {
			return nil, err
		}
		if known[hg.HuntingGround] {
			return nil, fmt.Errorf("duplicate hunting ground %q", hg.HuntingGround)
		}
		known[hg.HuntingGround] = true
		d.groundsByLevel[hg.Difficulty] = append(d.groundsByLevel[hg.Difficulty], hg)
	}

	seen := make(map[string]bool)
	for _, g := range goals {
		if err := g.validate(); err != nil {
			return nil, err
		}
		if !known[g.HuntingGround] {
			return nil, fmt.Errorf("goal references unknown hunting ground %q", g.HuntingGround)
		}
		d.goalsByGround[g.HuntingGround] = append(d.goalsByGround[g.HuntingGround], g)
		if !seen[g.Scorer] {
			seen[g.Scorer] = true
			d.distinctScorers = append(d.distinctScorers, g.Scorer)
		}
	}
	sort.Strings(d.distinctScorers)

	return d, nil
}

// Load runs both loader calls and builds a Dataset from the results.
func Load(ctx context.Context, l Loader) (*Dataset, error) {
	goals, err := l.LoadGoals(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading goals: %w", err)
	}
	grounds, err := l.LoadHuntingGrounds(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading hunting grounds: %w", err)
	}
	return New(goals, grounds)
}

// GroundsAt returns every hunting ground tagged with the given difficulty.
func (d *Dataset) GroundsAt(difficulty int) []HuntingGroundRecord {
	return d.groundsByLevel[difficulty]
}

// GoalsFor returns every away goal recorded at the given hunting ground.
func (d *Dataset) GoalsFor(huntingGround string) []GoalRecord {
	return d.goalsByGround[huntingGround]
}

// Scorers returns the sorted, deduplicated list of all goal scorers.
func (d *Dataset) Scorers() []string {
	return d.distinctScorers
}

// GroundRecords returns all hunting ground records.
func (d *Dataset) GroundRecords() []HuntingGroundRecord {
	return d.grounds
}

// GoalCount returns the total number of goal records.
func (d *Dataset) GoalCount() int {
	return len(d.goals)
}

// GroundCount returns the total number of hunting ground records.
func (d *Dataset) GroundCount() int {
	return len(d.grounds)
}
