package checks

import (
	"testing"

	"tataru/core/models"
	"tataru/core/store"

	"github.com/stretchr/testify/assert"
)

// brokenSource returns a record under the wrong key for one id.
type brokenSource struct {
	items []models.Item
	swap  map[int]int
}

func (b brokenSource) AllNames() []models.NameID {
	out := make([]models.NameID, 0, len(b.items))
	for _, it := range b.items {
		out = append(out, models.NameID{Name: it.Name, ID: it.ID})
	}
	return out
}

func (b brokenSource) Get(id int) (models.Item, error) {
	if other, ok := b.swap[id]; ok {
		id = other
	}
	for _, it := range b.items {
		if it.ID == id {
			return it, nil
		}
	}
	return models.Item{}, store.ErrNotFound
}

func (b brokenSource) All() []models.Item { return b.items }

func craft(id int, name string, ingredients ...int) models.Item {
	r := &models.Recipe{ItemID: id, Yield: 1}
	for _, in := range ingredients {
		r.Ingredients = append(r.Ingredients, models.Ingredient{ItemID: in, Quantity: 1})
	}
	return models.Item{ID: id, Name: name, Recipe: r, Hydrated: true}
}

func TestCheckCache_Clean(t *testing.T) {
	src := brokenSource{items: []models.Item{
		{ID: 5057, Name: "Iron Ingot", Hydrated: true},
		craft(5333, "Iron Rivets", 5057),
		{ID: 9999, Name: "Old Entry"},
	}}

	report := CheckCache(src)
	assert.Equal(t, "ok", report.Status)
	assert.Equal(t, 3, report.Items)
	assert.Equal(t, 1, report.Unhydrated)
	assert.Empty(t, report.Dangling)
	assert.Empty(t, report.Cycles)
	assert.Empty(t, report.MissingIngredients())
}

func TestCheckCache_Problems(t *testing.T) {
	mismatched := craft(20, "Wrong Owner", 10)
	mismatched.Recipe.ItemID = 21

	src := brokenSource{
		items: []models.Item{
			craft(10, "Alpha", 11, 404),
			craft(11, "Beta", 10, 404),
			mismatched,
			{ID: 30, Name: ""},
			{ID: -1, Name: "Negative"},
		},
		swap: map[int]int{30: 10},
	}

	report := CheckCache(src)
	assert.Equal(t, "error", report.Status)
	assert.Equal(t, []int{30}, report.KeyMismatches)
	assert.Equal(t, []int{-1}, report.InvalidIDs)
	assert.Equal(t, []int{30}, report.EmptyNames)
	assert.Equal(t, []int{20}, report.RecipeMismatch)
	assert.Equal(t, []DanglingRef{{ItemID: 10, IngredientID: 404}, {ItemID: 11, IngredientID: 404}}, report.Dangling)
	assert.Equal(t, [][]int{{10, 11}}, report.Cycles)
	assert.Equal(t, []int{404}, report.MissingIngredients())
}
