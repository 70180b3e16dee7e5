package fuzzy

import (
	"testing"

	"tataru/core/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveExactShortCircuit(t *testing.T) {
	r := NewResolver(nil, 0, 0)
	candidates := []models.NameID{{Name: "Lesser Panda", ID: 1}, {Name: "Greater Panda", ID: 2}}

	m, err := r.Resolve("lesser panda", candidates)
	require.NoError(t, err)
	assert.Equal(t, 1, m.ID)
	assert.Equal(t, 1.0, m.Score)

	m, err = r.Resolve("  LESSER   panda ", candidates)
	require.NoError(t, err)
	assert.Equal(t, 1, m.ID)
}

func TestResolveExactBeatsCloserScorer(t *testing.T) {
	// a scorer that prefers everything except the exact candidate
	biased := func(a, b string) float64 {
		if a == b {
			return 0
		}
		return 1
	}
	r := NewResolver(biased, 0.6, 5)
	m, err := r.Resolve("Lesser Panda", []models.NameID{{Name: "Greater Panda", ID: 2}, {Name: "Lesser Panda", ID: 1}})
	require.NoError(t, err)
	assert.Equal(t, 1, m.ID)
}

func TestResolveBelowThreshold(t *testing.T) {
	r := NewResolver(LevenshteinScorer, 0.6, 5)
	_, err := r.Resolve("xyzzy", []models.NameID{{Name: "Cobalt Ingot", ID: 10335}})
	require.ErrorIs(t, err, ErrNoMatch)

	sugg := Suggestions(err)
	require.Len(t, sugg, 1)
	assert.Equal(t, 10335, sugg[0].ID)
	assert.Contains(t, err.Error(), "Cobalt Ingot")
}

func TestResolveTypo(t *testing.T) {
	r := NewResolver(nil, 0, 0)
	candidates := []models.NameID{
		{Name: "Iron Ore", ID: 5111},
		{Name: "Iron Ingot", ID: 5057},
		{Name: "Cobalt Ingot", ID: 10335},
	}
	m, err := r.Resolve("iron ingto", candidates)
	require.NoError(t, err)
	assert.Equal(t, 5057, m.ID)
	assert.GreaterOrEqual(t, m.Score, 0.6)
}

func TestResolveTieBreak(t *testing.T) {
	t.Run("Lowest id on equal score and length", func(t *testing.T) {
		r := NewResolver(LevenshteinScorer, 0.6, 5)
		candidates := []models.NameID{{Name: "abe", ID: 9}, {Name: "abd", ID: 3}}
		for i := 0; i < 20; i++ {
			m, err := r.Resolve("abc", candidates)
			require.NoError(t, err)
			assert.Equal(t, 3, m.ID)
		}
	})

	t.Run("Shortest name first", func(t *testing.T) {
		flat := func(string, string) float64 { return 0.8 }
		r := NewResolver(flat, 0.6, 5)
		candidates := []models.NameID{
			{Name: "Grade 3 Tincture", ID: 1},
			{Name: "Tincture", ID: 50},
			{Name: "Tinctures", ID: 2},
		}
		m, err := r.Resolve("tinc", candidates)
		require.NoError(t, err)
		assert.Equal(t, 50, m.ID)
	})
}

func TestResolveDuplicateNames(t *testing.T) {
	r := NewResolver(nil, 0, 0)
	m, err := r.Resolve("lesser panda", []models.NameID{
		{Name: "Lesser Panda", ID: 7},
		{Name: "Lesser Panda", ID: 3},
		{Name: "Greater Panda", ID: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, m.ID)
	assert.Equal(t, 1.0, m.Score)
}

func TestResolveEmpty(t *testing.T) {
	r := NewResolver(nil, 0, 0)

	_, err := r.Resolve("   ", []models.NameID{{Name: "Iron Ore", ID: 1}})
	assert.ErrorIs(t, err, ErrNoMatch)

	_, err = r.Resolve("iron ore", nil)
	assert.ErrorIs(t, err, ErrNoMatch)
	assert.Empty(t, Suggestions(err))
}

func TestRank(t *testing.T) {
	r := NewResolver(nil, 0, 0)
	candidates := []models.NameID{
		{Name: "Iron Ore", ID: 5111},
		{Name: "Iron Ingot", ID: 5057},
		{Name: "Maple Log", ID: 5380},
	}
	ranked := r.Rank("iron ing", candidates, 2)
	require.Len(t, ranked, 2)
	assert.Equal(t, 5057, ranked[0].ID)
	assert.Equal(t, 5111, ranked[1].ID)
	assert.Nil(t, r.Rank("", candidates, 2))
}

func TestSuggestionLimit(t *testing.T) {
	r := NewResolver(LevenshteinScorer, 0.99, 2)
	_, err := r.Resolve("zz", []models.NameID{{Name: "a", ID: 1}, {Name: "b", ID: 2}, {Name: "c", ID: 3}})
	require.ErrorIs(t, err, ErrNoMatch)
	assert.Len(t, Suggestions(err), 2)
}
