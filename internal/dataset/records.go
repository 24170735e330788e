/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

// Package dataset holds the immutable reference data the game is played
// against: one row per recorded away goal, and one row per "Team @ Venue"
// hunting ground with a precomputed difficulty. The data is loaded once at
// startup from a pluggable source and never mutated afterwards.
package dataset

import "fmt"

const (
	MinDifficulty = 1
	MaxDifficulty = 10

	firstSeasonStart = 1992
	lastSeasonStart  = 2022

	// DefaultSeason is the season the selector starts on each turn.
	DefaultSeason = "2022-2023"
)

// GoalRecord is one recorded away goal.
type GoalRecord struct {
	HuntingGround  string `json:"hunting_ground"`
	Scorer         string `json:"scorer"`
	Season         string `json:"season"`
	Date           string `json:"date"`
	Minute         string `json:"minute"`
	MatchReportURL string `json:"match_report_url"`
}

// HuntingGroundRecord is one team/venue combination and its difficulty.
type HuntingGroundRecord struct {
	HuntingGround string `json:"hunting_ground"`
	Difficulty    int    `json:"difficulty"`
}

// Seasons returns the fixed season list, "1992-1993" through "2022-2023".
func Seasons() []string {
	out := make([]string, 0, lastSeasonStart-firstSeasonStart+1)
	for yy := firstSeasonStart; yy <= lastSeasonStart; yy++ {
		out = append(out, fmt.Sprintf("%d-%d", yy, yy+1))
	}
	return out
}

// ValidSeason reports whether s is one of the seasons in Seasons().
func ValidSeason(s string) bool {
	for _, season := range Seasons() {
		if season == s {
			return true
		}
	}
	return false
}

func (g GoalRecord) validate() error {
	if g.HuntingGround == "" {
		return fmt.Errorf("goal record missing hunting ground")
	}
	if g.Scorer == "" {
		return fmt.Errorf("goal record for %q missing scorer", g.HuntingGround)
	}
	if !ValidSeason(g.Season) {
		return fmt.Errorf("goal record for %q has invalid season %q", g.HuntingGround, g.Season)
	}
	return nil
}

func (h HuntingGroundRecord) validate() error {
	if h.HuntingGround == "" {
		return fmt.Errorf("hunting ground record missing name")
	}
	if h.Difficulty < MinDifficulty || h.Difficulty > MaxDifficulty {
		return fmt.Errorf("hunting ground %q has difficulty %d outside [%d,%d]",
			h.HuntingGround, h.Difficulty, MinDifficulty, MaxDifficulty)
	}
	return nil
}
