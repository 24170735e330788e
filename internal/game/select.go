/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/Seednode/huntinggrounds/internal/dataset"
)

// SelectPrompt picks one hunting ground uniformly at random from those
// tagged with the given difficulty. No seeding contract; reproducibility
// is not a goal.
func SelectPrompt(rng *rand.Rand, difficulty int, grounds []dataset.HuntingGroundRecord) (string, error) {
	if difficulty < dataset.MinDifficulty || difficulty > dataset.MaxDifficulty {
		return "", fmt.Errorf("%w: %d", ErrBadDifficulty, difficulty)
	}

	var pool []dataset.HuntingGroundRecord
	for _, hg := range grounds {
		if hg.Difficulty == difficulty {
			pool = append(pool, hg)
		}
	}

	if len(pool) == 0 {
		return "", fmt.Errorf("%w: difficulty %d", ErrEmptyPool, difficulty)
	}

	return pool[rng.IntN(len(pool))].HuntingGround, nil
}
