package remote

import (
	"fmt"
	"strings"
	"time"

	"tataru/core/models"

	"github.com/tidwall/gjson"
)

// itemFields is the field selection requested for Item rows.
const itemFields = "Name,ItemUICategory.Name,Icon"

// recipeFields is the field selection requested for Recipe rows.
const recipeFields = "AmountResult,CraftType.Name,Ingredient,AmountIngredient"

// parseItemRow decodes a sheet row ({"row_id":..,"fields":{..}}) into an item.
func parseItemRow(row gjson.Result, assetBase string) (models.Item, error) {
	id := int(row.Get("row_id").Int())
	name := row.Get("fields.Name").String()
	if id <= 0 || name == "" {
		return models.Item{}, fmt.Errorf("%w: item row without id or name", ErrSourceUnavailable)
	}
	it := models.Item{
		ID:       id,
		Name:     name,
		Category: row.Get("fields.ItemUICategory.fields.Name").String(),
	}
	if path := row.Get("fields.Icon.path").String(); path != "" {
		it.IconURL = fmt.Sprintf("%s/api/1/asset/%s?format=png", strings.TrimRight(assetBase, "/"), path)
	}
	return it, nil
}

// parseRecipeSearch decodes the first Recipe search result for itemID.
// It returns nil when the item has no recipe.
func parseRecipeSearch(body []byte, itemID int) (*models.Recipe, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: malformed recipe response", ErrSourceUnavailable)
	}
	row := gjson.GetBytes(body, "results.0")
	if !row.Exists() {
		return nil, nil
	}

	r := &models.Recipe{
		ItemID:    itemID,
		RecipeID:  int(row.Get("row_id").Int()),
		CraftType: row.Get("fields.CraftType.fields.Name").String(),
		Yield:     int(row.Get("fields.AmountResult").Int()),
	}
	if r.Yield < 1 {
		r.Yield = 1
	}

	amounts := row.Get("fields.AmountIngredient").Array()
	for i, ing := range row.Get("fields.Ingredient").Array() {
		id := ingredientID(ing)
		if id <= 0 || i >= len(amounts) {
			continue
		}
		qty := int(amounts[i].Int())
		if qty <= 0 {
			continue
		}
		r.Ingredients = append(r.Ingredients, models.Ingredient{ItemID: id, Quantity: qty})
	}
	return r, nil
}

// ingredientID accepts both plain ids and linked rows.
func ingredientID(v gjson.Result) int {
	switch {
	case v.Type == gjson.Number:
		return int(v.Int())
	case v.IsObject():
		if id := v.Get("row_id"); id.Exists() {
			return int(id.Int())
		}
		return int(v.Get("value").Int())
	default:
		return 0
	}
}

// parseAggregated decodes a Universalis aggregated response for one item.
func parseAggregated(body []byte, id int, world string, now time.Time) (models.Price, error) {
	if !gjson.ValidBytes(body) {
		return models.Price{}, fmt.Errorf("%w: malformed price response", ErrSourceUnavailable)
	}
	doc := gjson.ParseBytes(body)
	for _, failed := range doc.Get("failedItems").Array() {
		if int(failed.Int()) == id {
			return models.Price{}, ErrNotFound
		}
	}

	var entry gjson.Result
	doc.Get("results").ForEach(func(_, v gjson.Result) bool {
		if int(v.Get("itemId").Int()) == id {
			entry = v
			return false
		}
		return true
	})
	if !entry.Exists() {
		return models.Price{}, ErrNotFound
	}

	p := models.Price{
		World:     world,
		NQ:        parseTier(entry.Get("nq.minListing")),
		HQ:        parseTier(entry.Get("hq.minListing")),
		FetchedAt: now,
	}
	var oldest int64
	entry.Get("worldUploadTimes").ForEach(func(_, v gjson.Result) bool {
		ts := v.Get("timestamp").Int()
		if ts > 0 && (oldest == 0 || ts < oldest) {
			oldest = ts
		}
		return true
	})
	if oldest > 0 {
		p.OldestUpload = time.UnixMilli(oldest).UTC()
	}
	return p, nil
}

func parseTier(v gjson.Result) models.Tier {
	return models.Tier{
		World:      parseListing(v.Get("world")),
		DataCenter: parseListing(v.Get("dc")),
		Region:     parseListing(v.Get("region")),
	}
}

func parseListing(v gjson.Result) *models.Listing {
	price := v.Get("price")
	if !price.Exists() {
		return nil
	}
	id := int(v.Get("worldId").Int())
	return &models.Listing{Price: int(price.Int()), WorldID: id, WorldName: WorldName(id)}
}
