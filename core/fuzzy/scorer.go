package fuzzy

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Scorer returns the similarity of two normalized strings in [0, 1].
// Identical strings score 1.
type Scorer func(a, b string) float64

// LevenshteinScorer scores by edit distance relative to the longer string.
func LevenshteinScorer(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longest {
		longest = n
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

// TokenScorer matches every token of the query against its closest token in the
// candidate and averages the results, so word order and extra words matter less.
// The score is scaled down by the share of candidate tokens left unmatched.
func TokenScorer(query, candidate string) float64 {
	if query == candidate {
		return 1
	}
	qt := strings.Fields(query)
	ct := strings.Fields(candidate)
	if len(qt) == 0 || len(ct) == 0 {
		return 0
	}

	used := make([]bool, len(ct))
	var total float64
	for _, q := range qt {
		best, bestIdx := 0.0, -1
		for i, c := range ct {
			if used[i] {
				continue
			}
			if s := LevenshteinScorer(q, c); s > best {
				best, bestIdx = s, i
			}
		}
		if bestIdx >= 0 {
			used[bestIdx] = true
		} else {
			// more query words than candidate words
			for _, c := range ct {
				if s := LevenshteinScorer(q, c); s > best {
					best = s
				}
			}
		}
		total += best
	}
	matched := 0
	for _, u := range used {
		if u {
			matched++
		}
	}
	coverage := float64(matched) / float64(len(ct))
	return (total / float64(len(qt))) * (0.5 + 0.5*coverage)
}

// ScorerByName maps a configuration name to a scorer. Unknown names select Levenshtein.
func ScorerByName(name string) Scorer {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "token":
		return TokenScorer
	default:
		return LevenshteinScorer
	}
}
