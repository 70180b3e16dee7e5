package recipe

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"tataru/core/models"
	"tataru/feature/lookup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalog resolves items from a fixed map.
type catalog struct {
	mu    sync.Mutex
	items map[int]models.Item
	calls map[int]int
}

func newCatalog(items ...models.Item) *catalog {
	c := &catalog{items: map[int]models.Item{}, calls: map[int]int{}}
	for _, it := range items {
		c.items[it.ID] = it
	}
	return c
}

func (c *catalog) ResolveID(_ context.Context, id int) (models.Item, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls[id]++
	it, ok := c.items[id]
	if !ok {
		return models.Item{}, fmt.Errorf("item %d: %w", id, errNotCached)
	}
	return it.Clone(), nil
}

var errNotCached = errors.New("not cached")

func craft(id int, name string, yield int, ings ...models.Ingredient) models.Item {
	return models.Item{ID: id, Name: name, Hydrated: true, Recipe: &models.Recipe{ItemID: id, Yield: yield, Ingredients: ings}}
}

func raw(id int, name, category string) models.Item {
	return models.Item{ID: id, Name: name, Category: category, Hydrated: true}
}

func ing(id, qty int) models.Ingredient {
	return models.Ingredient{ItemID: id, Quantity: qty}
}

// ironCatalog: Iron Ingot <- 4 Iron Ore + 1 Fire Shard; Iron Rivets <- 1 Iron Ingot + 1 Fire Shard (yield 3).
func ironCatalog() *catalog {
	return newCatalog(
		raw(5111, "Iron Ore", "Stone"),
		raw(4, "Fire Shard", "Crystal"),
		craft(5057, "Iron Ingot", 1, ing(5111, 4), ing(4, 1)),
		craft(5082, "Iron Rivets", 3, ing(5057, 1), ing(4, 1)),
	)
}

func TestExpandSelfReliance(t *testing.T) {
	ctx := context.Background()
	exp := NewExpander(ironCatalog(), 8, 2)

	t.Run("Off gives depth one", func(t *testing.T) {
		tree, err := exp.Expand(ctx, 5082, Options{SelfReliance: false})
		require.NoError(t, err)
		assert.Equal(t, 1, tree.Depth())
		require.Len(t, tree.Root.Children, 2)
		assert.Equal(t, 5057, tree.Root.Children[0].Item.ID)
		assert.Empty(t, tree.Root.Children[0].Children)
	})

	t.Run("On expands craftable ingredients", func(t *testing.T) {
		tree, err := exp.Expand(ctx, 5082, Options{SelfReliance: true})
		require.NoError(t, err)
		assert.Equal(t, 2, tree.Depth())
		ingot := tree.Root.Children[0]
		require.Len(t, ingot.Children, 2)
		assert.Equal(t, 5111, ingot.Children[0].Item.ID)
		assert.Equal(t, 4, ingot.Children[0].Quantity)
	})
}

func TestExpandQuantities(t *testing.T) {
	exp := NewExpander(ironCatalog(), 8, 4)

	tree, err := exp.Expand(context.Background(), 5082, Options{SelfReliance: true, Amount: 7})
	require.NoError(t, err)

	// 7 rivets at 3 per craft need 3 crafts
	assert.Equal(t, 7, tree.Root.Quantity)
	assert.Equal(t, 3, tree.Root.Crafts)
	assert.Equal(t, 3, tree.Root.Yield)

	ingot := tree.Root.Children[0]
	assert.Equal(t, 3, ingot.Quantity)
	assert.Equal(t, 3, ingot.Crafts)
	assert.Equal(t, 12, ingot.Children[0].Quantity)

	mats := tree.Materials()
	require.Len(t, mats, 2)
	assert.Equal(t, 5111, mats[0].Item.ID)
	assert.Equal(t, 12, mats[0].Quantity)
	// crystals last: 3 shards for the ingots plus 3 for the rivets
	assert.Equal(t, 4, mats[1].Item.ID)
	assert.Equal(t, 6, mats[1].Quantity)
}

func TestExpandCycle(t *testing.T) {
	cat := newCatalog(
		craft(1, "Alpha", 1, ing(2, 1)),
		craft(2, "Beta", 1, ing(3, 1)),
		craft(3, "Gamma", 1, ing(1, 1)),
	)
	exp := NewExpander(cat, 8, 2)

	_, err := exp.Expand(context.Background(), 1, Options{SelfReliance: true})
	require.ErrorIs(t, err, ErrCyclicRecipe)
	var ce *CycleError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, []int{1, 2, 3, 1}, ce.Path)
	assert.False(t, ce.DepthExceeded)

	// without self-reliance the cycle is never followed
	tree, err := exp.Expand(context.Background(), 1, Options{SelfReliance: false})
	require.NoError(t, err)
	assert.Equal(t, 1, tree.Depth())
}

func TestExpandSelfLoop(t *testing.T) {
	exp := NewExpander(newCatalog(craft(9, "Ouroboros", 1, ing(9, 2))), 8, 1)
	_, err := exp.Expand(context.Background(), 9, Options{SelfReliance: true})
	assert.ErrorIs(t, err, ErrCyclicRecipe)
}

func TestExpandDepthLimit(t *testing.T) {
	var items []models.Item
	for i := 1; i <= 5; i++ {
		items = append(items, craft(i, fmt.Sprintf("Tier %d", i), 1, ing(i+1, 1)))
	}
	items = append(items, raw(6, "Base", ""))
	exp := NewExpander(newCatalog(items...), 8, 1)

	_, err := exp.Expand(context.Background(), 1, Options{SelfReliance: true, MaxDepth: 3})
	require.ErrorIs(t, err, ErrCyclicRecipe)
	var ce *CycleError
	require.ErrorAs(t, err, &ce)
	assert.True(t, ce.DepthExceeded)
	assert.Equal(t, 3, ce.MaxDepth)

	tree, err := exp.Expand(context.Background(), 1, Options{SelfReliance: true})
	require.NoError(t, err)
	assert.Equal(t, 5, tree.Depth())
}

func TestExpandErrors(t *testing.T) {
	ctx := context.Background()
	exp := NewExpander(newCatalog(
		raw(5111, "Iron Ore", "Stone"),
		craft(1, "Broken", 1, ing(5111, 1), ing(404, 1)),
	), 0, 0)

	_, err := exp.Expand(ctx, 5111, Options{})
	assert.ErrorIs(t, err, ErrNoRecipe)

	_, err = exp.Expand(ctx, 1, Options{})
	assert.ErrorIs(t, err, errNotCached)
	assert.Contains(t, err.Error(), "ingredient 404")

	_, err = exp.Expand(ctx, 777, Options{})
	assert.ErrorIs(t, err, errNotCached)
}

func TestExpandPreservesOrder(t *testing.T) {
	var ings []models.Ingredient
	items := []models.Item{}
	for i := 10; i < 18; i++ {
		ings = append(ings, ing(i, 1))
		items = append(items, raw(i, fmt.Sprintf("Part %d", i), ""))
	}
	items = append(items, craft(1, "Assembly", 1, ings...))
	exp := NewExpander(newCatalog(items...), 8, 8)

	tree, err := exp.Expand(context.Background(), 1, Options{})
	require.NoError(t, err)
	for i, c := range tree.Root.Children {
		assert.Equal(t, 10+i, c.Item.ID)
	}
}

func TestExpandAmountLimit(t *testing.T) {
	ctx := context.Background()
	exp := NewExpander(ironCatalog(), 8, 2)

	tree, err := exp.Expand(ctx, 5082, Options{Amount: MaxAmount})
	require.NoError(t, err)
	assert.Equal(t, 3333, tree.Root.Crafts)

	for _, amount := range []int{MaxAmount + 1, math.MaxInt} {
		_, err := exp.Expand(ctx, 5082, Options{Amount: amount})
		assert.ErrorIs(t, err, ErrInvalidAmount)
		assert.ErrorIs(t, err, lookup.ErrInvalidQuery)
		assert.Equal(t, 400, StatusFor(err))
	}
}

func TestExpandQuantityOverflow(t *testing.T) {
	exp := NewExpander(newCatalog(
		raw(3, "Sand", ""),
		craft(2, "Brick", 1, ing(3, 1_000_000)),
		craft(1, "Tower", 1, ing(2, 1_000_000)),
	), 8, 2)

	tree, err := exp.Expand(context.Background(), 1, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1_000_000, tree.Materials()[0].Quantity)

	_, err = exp.Expand(context.Background(), 1, Options{SelfReliance: true})
	assert.ErrorIs(t, err, ErrQuantityTooLarge)
	assert.Equal(t, 400, StatusFor(err))
}
