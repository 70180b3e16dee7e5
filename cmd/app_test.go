package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"tataru/core/config"
	"tataru/core/fuzzy"
	"tataru/core/models"
	"tataru/core/store"
	"tataru/feature/lookup"
	"tataru/feature/recipe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenBackend(t *testing.T) {
	t.Run("Memory", func(t *testing.T) {
		b, err := openBackend(&config.Config{Store: store.Config{Backend: store.BackendMemory}})
		require.NoError(t, err)
		assert.Equal(t, store.BackendMemory, b.Name())
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := openBackend(&config.Config{Store: store.Config{Backend: "redis"}})
		assert.ErrorContains(t, err, "unknown store backend")
	})
}

func TestNewServer(t *testing.T) {
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("SERVER_API_KEY", "secret")
	t.Setenv("LOG_LEVEL", "error")

	a, err := newApp(context.Background())
	require.NoError(t, err)
	defer a.Close(context.Background())

	app, err := newServer(a)
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/backend", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	req := httptest.NewRequest("GET", "/integrity/backend", nil)
	req.Header.Set("X-API-Key", "secret")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Ray-ID"))

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "memory", body["backend"])

	req = httptest.NewRequest("GET", "/items/search", nil)
	req.Header.Set("X-API-Key", "secret")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestWithSuggestions(t *testing.T) {
	plain := errors.New("boom")
	assert.Equal(t, plain, withSuggestions(plain))

	err := &fuzzy.ResolveError{
		Query: "iron",
		Kind:  fuzzy.ErrNoMatch,
		Suggestions: []fuzzy.Match{
			{NameID: models.NameID{Name: "Iron Ore", ID: 5111}, Score: 0.7},
			{NameID: models.NameID{Name: "Iron Ingot", ID: 5057}, Score: 0.7},
		},
	}
	wrapped := withSuggestions(err)
	assert.ErrorIs(t, wrapped, fuzzy.ErrNoMatch)
	assert.Contains(t, wrapped.Error(), "did you mean: Iron Ore (5111), Iron Ingot (5057)")
}

func TestPrintHelpers(t *testing.T) {
	ingot := models.Item{ID: 5057, Name: "Iron Ingot", Emoji: "hammer", Category: "Metal"}
	shard := models.Item{ID: 2, Name: "Fire Shard", Category: "Crystal"}

	t.Run("Result", func(t *testing.T) {
		var buf bytes.Buffer
		printResult(&buf, &lookup.Result{
			Item:    ingot,
			Fuzzy:   true,
			Score:   0.85,
			Related: []fuzzy.Match{{NameID: models.NameID{Name: "Iron Ore", ID: 5111}}},
		})
		assert.Equal(t, ":hammer: Iron Ingot [5057] Metal (matched 0.85)\n  related: Iron Ore\n", buf.String())
	})

	t.Run("Price", func(t *testing.T) {
		var buf bytes.Buffer
		priced := ingot
		priced.Price = &models.Price{
			World:        "Twintania",
			NQ:           models.Tier{World: &models.Listing{Price: 120}, Region: &models.Listing{Price: 90, WorldID: 402, WorldName: "Alpha"}},
			OldestUpload: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		}
		printPrice(&buf, &lookup.Result{Item: priced})
		assert.Equal(t, ":hammer: Iron Ingot [5057] Metal\n  NQ: world 120 gil region 90 gil (Alpha)\n  data from Twintania (2026-03-01 12:00 UTC)\n", buf.String())
	})

	t.Run("Tree", func(t *testing.T) {
		var buf bytes.Buffer
		root := &recipe.Node{Item: ingot, Quantity: 1, Crafts: 1, Children: []*recipe.Node{{Item: shard, Quantity: 1}}}
		printTree(&buf, &recipe.Report{
			Tree:      &recipe.Tree{Root: root},
			Materials: []recipe.Material{{Item: shard, Quantity: 1}},
		})
		assert.Equal(t, "1x :hammer: Iron Ingot [5057] Metal (1 crafts)\n  1x Fire Shard [2] Crystal\nmaterials:\n  1x Fire Shard [2] Crystal\n", buf.String())
	})
}
