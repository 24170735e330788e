/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package game

import (
	"fmt"

	"github.com/Seednode/huntinggrounds/internal/dataset"
)

// Verdict classifies a submitted answer.
type Verdict int

const (
	VerdictIncorrect Verdict = iota
	VerdictHalfCorrect
	VerdictBothCorrect
)

func (v Verdict) String() string {
	switch v {
	case VerdictHalfCorrect:
		return "half correct"
	case VerdictBothCorrect:
		return "both correct"
	default:
		return "incorrect"
	}
}

// Result is the outcome of evaluating one answer.
type Result struct {
	Verdict Verdict
	// Guess is the raw name the player typed, preserved for display.
	Guess  string
	Season string
	// MatchedName is the canonical scorer the guess matched; empty when
	// the verdict is incorrect.
	MatchedName string
	// Goals holds the matched scorer's goals in the guessed season, for
	// display on full credit. Empty otherwise.
	Goals  []dataset.GoalRecord
	Points float64
}

// Evaluate scores a free-text scorer guess and season against the goals
// recorded at a hunting ground. Full points (the difficulty) for naming a
// scorer and the season one of their goals fell in; half for the scorer
// alone; nothing otherwise. An empty guess simply scores 0 and comes back
// incorrect through the same path.
func Evaluate(guessName, guessSeason, huntingGround string, difficulty int, goals []dataset.GoalRecord) (Result, error) {
	var candidates []dataset.GoalRecord
	for _, g := range goals {
		if g.HuntingGround == huntingGround {
			candidates = append(candidates, g)
		}
	}

	if len(candidates) == 0 {
		return Result{}, fmt.Errorf("%w: %q", ErrNoCandidates, huntingGround)
	}

	seen := make(map[string]bool)
	var scorers []string
	for _, g := range candidates {
		if !seen[g.Scorer] {
			seen[g.Scorer] = true
			scorers = append(scorers, g.Scorer)
		}
	}

	result := Result{
		Verdict: VerdictIncorrect,
		Guess:   guessName,
		Season:  guessSeason,
	}

	matched, score := bestMatch(guessName, scorers)
	if score < matchThreshold {
		return result, nil
	}

	result.MatchedName = matched

	var inSeason []dataset.GoalRecord
	for _, g := range candidates {
		if g.Scorer == matched && g.Season == guessSeason {
			inSeason = append(inSeason, g)
		}
	}

	if len(inSeason) > 0 {
		result.Verdict = VerdictBothCorrect
		result.Goals = inSeason
		result.Points = float64(difficulty)
	} else {
		result.Verdict = VerdictHalfCorrect
		result.Points = float64(difficulty) / 2
	}

	return result, nil
}
