package fuzzy

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"tataru/core/models"
	"tataru/core/utils"
)

const (
	// DefaultThreshold is the minimum score accepted as a match.
	DefaultThreshold = 0.6
	// DefaultSuggestions is how many near matches accompany a failed resolution.
	DefaultSuggestions = 5
)

// ErrNoMatch means no candidate scored at or above the threshold.
var ErrNoMatch = errors.New("no matching item")

// Match is a scored candidate.
type Match struct {
	models.NameID
	Score float64 `json:"score"`
}

// ResolveError carries the near matches of a failed resolution.
// It unwraps to ErrNoMatch.
type ResolveError struct {
	Query       string
	Kind        error
	Suggestions []Match
}

func (e *ResolveError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("%v: %q", e.Kind, e.Query)
	}
	names := make([]string, 0, len(e.Suggestions))
	for _, s := range e.Suggestions {
		names = append(names, s.Name)
	}
	return fmt.Sprintf("%v: %q (did you mean: %s)", e.Kind, e.Query, strings.Join(names, ", "))
}

func (e *ResolveError) Unwrap() error {
	return e.Kind
}

// Suggestions extracts near matches from a resolution error, if any.
func Suggestions(err error) []Match {
	var re *ResolveError
	if errors.As(err, &re) {
		return re.Suggestions
	}
	return nil
}

// Resolver picks the best candidate name for a free-text query. It is pure: it only
// reads the candidate slice it is given.
type Resolver struct {
	Scorer      Scorer
	Threshold   float64
	Suggestions int
}

// NewResolver creates a Resolver, applying defaults for zero values.
func NewResolver(scorer Scorer, threshold float64, suggestions int) *Resolver {
	if scorer == nil {
		scorer = LevenshteinScorer
	}
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	if suggestions <= 0 {
		suggestions = DefaultSuggestions
	}
	return &Resolver{Scorer: scorer, Threshold: threshold, Suggestions: suggestions}
}

// Resolve returns the id of the best matching candidate.
//
// An exact normalized match wins outright. Names are not unique, so several exact
// matches go to the lowest id. Otherwise the highest score wins, ties broken by
// shortest name then lowest id; a top score below the threshold returns ErrNoMatch.
func (r *Resolver) Resolve(query string, candidates []models.NameID) (Match, error) {
	q := utils.NormalizeName(query)
	if q == "" {
		return Match{}, &ResolveError{Query: query, Kind: ErrNoMatch}
	}

	var exact []Match
	for _, c := range candidates {
		if utils.NormalizeName(c.Name) == q {
			exact = append(exact, Match{NameID: c, Score: 1})
		}
	}
	if len(exact) > 0 {
		sortMatches(exact)
		return exact[0], nil
	}

	ranked := r.rank(q, candidates)
	if len(ranked) == 0 || ranked[0].Score < r.threshold() {
		return Match{}, &ResolveError{Query: query, Kind: ErrNoMatch, Suggestions: limit(ranked, r.limit())}
	}
	return ranked[0], nil
}

// Rank returns up to n candidates ordered best first.
func (r *Resolver) Rank(query string, candidates []models.NameID, n int) []Match {
	q := utils.NormalizeName(query)
	if q == "" {
		return nil
	}
	return limit(r.rank(q, candidates), n)
}

func (r *Resolver) rank(q string, candidates []models.NameID) []Match {
	scorer := r.Scorer
	if scorer == nil {
		scorer = LevenshteinScorer
	}
	out := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, Match{NameID: c, Score: scorer(q, utils.NormalizeName(c.Name))})
	}
	sortMatches(out)
	return out
}

func (r *Resolver) threshold() float64 {
	if r.Threshold <= 0 {
		return DefaultThreshold
	}
	return r.Threshold
}

func (r *Resolver) limit() int {
	if r.Suggestions <= 0 {
		return DefaultSuggestions
	}
	return r.Suggestions
}

func sortMatches(m []Match) {
	sort.SliceStable(m, func(i, j int) bool {
		if m[i].Score != m[j].Score {
			return m[i].Score > m[j].Score
		}
		li, lj := utf8.RuneCountInString(m[i].Name), utf8.RuneCountInString(m[j].Name)
		if li != lj {
			return li < lj
		}
		return m[i].ID < m[j].ID
	})
}

func limit(m []Match, n int) []Match {
	if n >= 0 && len(m) > n {
		return m[:n]
	}
	return m
}
