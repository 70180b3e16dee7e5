package models

// Ingredient is one slot of a recipe.
type Ingredient struct {
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}

// Recipe describes how an item is crafted.
type Recipe struct {
	// ItemID is the item this recipe produces.
	ItemID int `json:"item_id"`
	// RecipeID is the source row of the recipe, zero when unknown.
	RecipeID int `json:"recipe_id,omitempty"`
	// CraftType is the crafting class name (e.g. "Blacksmith").
	CraftType string `json:"craft_type,omitempty"`
	// Yield is how many items one craft produces.
	Yield int `json:"yield"`
	// Ingredients are ordered as in the source data.
	Ingredients []Ingredient `json:"ingredients"`
}

// Clone returns a deep copy of the recipe.
func (r Recipe) Clone() Recipe {
	out := r
	out.Ingredients = append([]Ingredient(nil), r.Ingredients...)
	return out
}

// YieldOrOne returns the craft yield, treating missing data as one.
func (r Recipe) YieldOrOne() int {
	if r.Yield < 1 {
		return 1
	}
	return r.Yield
}

// CraftsFor returns how many crafts are needed to produce amount items.
func (r Recipe) CraftsFor(amount int) int {
	if amount <= 0 {
		return 0
	}
	return 1 + (amount-1)/r.YieldOrOne()
}
