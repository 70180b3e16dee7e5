package models

import (
	"strings"
	"time"
)

// Item is a cached game item keyed by its stable numeric ID.
type Item struct {
	// ID is assigned by the game data source and never changes.
	ID int `json:"id"`
	// Name is the display name and the fuzzy-match key. Not guaranteed unique.
	Name string `json:"name"`
	// Emoji is a user-settable annotation.
	Emoji string `json:"emoji,omitempty"`
	// Category is the item UI category (e.g. "Crystal", "Metal").
	Category string `json:"category,omitempty"`
	// IconURL points at the item icon.
	IconURL string `json:"icon_url,omitempty"`
	// Price is the last known market price, refreshed on demand.
	Price *Price `json:"price,omitempty"`
	// Recipe is the recipe producing this item, nil for raw materials.
	Recipe *Recipe `json:"recipe,omitempty"`
	// Hydrated is true once a full record from the remote source was merged.
	// Entries imported from legacy files start out unhydrated.
	Hydrated bool `json:"hydrated"`
	// UpdatedAt is the time of the last committed mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// IsCrystal reports whether the item is a crafting crystal, shard or cluster.
func (i Item) IsCrystal() bool {
	return strings.HasPrefix(strings.ToLower(i.Category), "crystal")
}

// Craftable reports whether the item has a recipe with at least one ingredient.
func (i Item) Craftable() bool {
	return i.Recipe != nil && len(i.Recipe.Ingredients) > 0
}

// Clone returns a deep copy so that callers never share mutable state with the store.
func (i Item) Clone() Item {
	out := i
	if i.Price != nil {
		p := i.Price.Clone()
		out.Price = &p
	}
	if i.Recipe != nil {
		r := i.Recipe.Clone()
		out.Recipe = &r
	}
	return out
}

// Merge folds a freshly fetched remote record into a cached one.
// Identity and source-owned fields come from fresh; the user-set emoji and a
// newer cached price survive.
func (i Item) Merge(fresh Item) Item {
	out := fresh.Clone()
	out.ID = i.ID
	if i.Emoji != "" {
		out.Emoji = i.Emoji
	}
	if out.Price == nil && i.Price != nil {
		p := i.Price.Clone()
		out.Price = &p
	}
	out.Hydrated = true
	return out
}

// NameID is a (name, id) pair used as a fuzzy-match candidate.
type NameID struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
}
