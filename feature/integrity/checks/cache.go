package checks

import (
	"sort"

	"tataru/core/models"
	"tataru/feature/recipe"
)

// ItemSource is the read side of the item store.
type ItemSource interface {
	AllNames() []models.NameID
	Get(id int) (models.Item, error)
	All() []models.Item
}

// DanglingRef is a recipe ingredient that is not cached.
type DanglingRef struct {
	ItemID       int `json:"item_id"`
	IngredientID int `json:"ingredient_id"`
}

// CacheReport is the result of a cache consistency check.
type CacheReport struct {
	Items          int           `json:"items"`
	Unhydrated     int           `json:"unhydrated"`
	KeyMismatches  []int         `json:"key_mismatches"`
	InvalidIDs     []int         `json:"invalid_ids"`
	EmptyNames     []int         `json:"empty_names"`
	RecipeMismatch []int         `json:"recipe_mismatch"`
	Dangling       []DanglingRef `json:"dangling"`
	Cycles         [][]int       `json:"cycles"`
	Status         string        `json:"status"` // "ok", "error"
}

// CheckCache verifies that every record is stored under its own id, that ids
// and names are valid and that recipe ingredients and recipe graphs are sound.
func CheckCache(src ItemSource) *CacheReport {
	report := &CacheReport{
		KeyMismatches:  []int{},
		InvalidIDs:     []int{},
		EmptyNames:     []int{},
		RecipeMismatch: []int{},
		Dangling:       []DanglingRef{},
		Status:         "ok",
	}

	for _, n := range src.AllNames() {
		it, err := src.Get(n.ID)
		if err != nil || it.ID != n.ID {
			report.KeyMismatches = append(report.KeyMismatches, n.ID)
		}
	}

	items := src.All()
	report.Items = len(items)
	known := make(map[int]struct{}, len(items))
	for _, it := range items {
		known[it.ID] = struct{}{}
	}

	for _, it := range items {
		if !it.Hydrated {
			report.Unhydrated++
		}
		if it.ID <= 0 {
			report.InvalidIDs = append(report.InvalidIDs, it.ID)
		}
		if it.Name == "" {
			report.EmptyNames = append(report.EmptyNames, it.ID)
		}
		if it.Recipe == nil {
			continue
		}
		if it.Recipe.ItemID != 0 && it.Recipe.ItemID != it.ID {
			report.RecipeMismatch = append(report.RecipeMismatch, it.ID)
		}
		for _, in := range it.Recipe.Ingredients {
			if _, ok := known[in.ItemID]; !ok {
				report.Dangling = append(report.Dangling, DanglingRef{ItemID: it.ID, IngredientID: in.ItemID})
			}
		}
	}

	report.Cycles = recipe.FindCycles(items)
	if report.Cycles == nil {
		report.Cycles = [][]int{}
	}

	if len(report.KeyMismatches)+len(report.InvalidIDs)+len(report.EmptyNames)+
		len(report.RecipeMismatch)+len(report.Dangling)+len(report.Cycles) > 0 {
		report.Status = "error"
	}
	return report
}

// MissingIngredients returns the distinct dangling ingredient ids in ascending order.
func (r *CacheReport) MissingIngredients() []int {
	seen := make(map[int]struct{}, len(r.Dangling))
	var out []int
	for _, d := range r.Dangling {
		if _, ok := seen[d.IngredientID]; ok {
			continue
		}
		seen[d.IngredientID] = struct{}{}
		out = append(out, d.IngredientID)
	}
	sort.Ints(out)
	return out
}
