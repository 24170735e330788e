/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package game

import (
	"math"
	"strings"
	"unicode"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// matchThreshold is the minimum 0-100 similarity for a guess to count as
// naming a scorer. Fixed game constant, deliberately not configurable.
const matchThreshold = 85

// pairThreshold is the minimum per-token similarity for two words to be
// treated as the same (misspelled) token.
const pairThreshold = 60

var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldAccents(s string) string {
	out, _, err := transform.String(accentFolder, s)
	if err != nil {
		return s
	}
	return out
}

// tokenize lowercases, strips accents, and splits on anything that is not
// a letter or digit. Duplicate words collapse, so the result is a set.
func tokenize(s string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, foldAccents(s))

	seen := make(map[string]bool)
	var tokens []string
	for _, tok := range strings.Fields(cleaned) {
		if !seen[tok] {
			seen[tok] = true
			tokens = append(tokens, tok)
		}
	}

	return tokens
}

// tokenSetScore rates how well a free-text guess names a candidate,
// 0-100. Word order is ignored. Each guess word is paired greedily with
// its closest unused candidate word by Levenshtein ratio, so misspellings
// still count, and the paired overlap is normalized over both word sets.
// A bare surname against a two-word name therefore lands well under the
// match threshold, while a full name with mangled accents scores 100.
func tokenSetScore(guess, candidate string) int {
	a := tokenize(guess)
	b := tokenize(candidate)
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	used := make([]bool, len(b))
	var overlap float64

	for _, ta := range a {
		best, bestIndex := 0, -1
		for i, tb := range b {
			if used[i] {
				continue
			}
			if r := fuzzy.Ratio(ta, tb); r > best {
				best, bestIndex = r, i
			}
		}
		if bestIndex >= 0 && best >= pairThreshold {
			used[bestIndex] = true
			overlap += float64(best) / 100
		}
	}

	return int(math.Round(200 * overlap / float64(len(a)+len(b))))
}

// bestMatch returns the candidate with the highest similarity to guess,
// along with its score. Ties keep the earliest candidate, so results are
// deterministic for a fixed candidate order.
func bestMatch(guess string, candidates []string) (string, int) {
	bestName, bestScore := "", -1
	for _, c := range candidates {
		if score := tokenSetScore(guess, c); score > bestScore {
			bestName, bestScore = c, score
		}
	}
	if bestScore < 0 {
		return "", 0
	}
	return bestName, bestScore
}
