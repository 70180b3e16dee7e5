package lookup

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"tataru/core/models"
	"tataru/core/remote"
	"tataru/core/remote/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T, items ...models.Item) (*fiber.App, *mocks.Source) {
	svc, src, _ := newTestService(t, items...)
	app := fiber.New()
	require.NoError(t, NewFeature(svc).Load(app))
	return app, src
}

func TestHandleSearch(t *testing.T) {
	app, _ := setupTestApp(t, ironIngot())

	resp, err := app.Test(httptest.NewRequest("GET", "/items/search?q=iron+ingot", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 5057, body.Item.ID)
	assert.Equal(t, OriginCache, body.Origin)
}

func TestHandleSearchErrors(t *testing.T) {
	app, src := setupTestApp(t, ironIngot())
	src.On("FetchByExactName", mock.Anything, "xyzzy").Return(nil, remote.ErrNotFound)
	src.On("FetchByID", mock.Anything, 77).Return(nil, remote.ErrSourceUnavailable)

	resp, err := app.Test(httptest.NewRequest("GET", "/items/search?q=xyzzy", nil))
	require.NoError(t, err)
	assert.Equal(t, 422, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body["suggestions"])

	resp, err = app.Test(httptest.NewRequest("GET", "/items/search?q=77", nil))
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/items/search", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandlePrice(t *testing.T) {
	app, src := setupTestApp(t, ironIngot())
	src.On("FetchPrice", mock.Anything, 5057).Return(models.Price{World: "Twintania", NQ: models.Tier{World: &models.Listing{Price: 150}}}, nil).Once()

	resp, err := app.Test(httptest.NewRequest("GET", "/items/price?q=5057", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.Item.Price)
	assert.Equal(t, 150, body.Item.Price.NQ.World.Price)
}

func TestHandleSetEmoji(t *testing.T) {
	app, _ := setupTestApp(t, ironIngot())

	put := func(path, payload string) int {
		req := httptest.NewRequest("PUT", path, strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, 200, put("/items/5057/emoji", `{"emoji":":anvil:"}`))
	assert.Equal(t, 400, put("/items/5057/emoji", `{"emoji":"not valid"}`))
	assert.Equal(t, 400, put("/items/abc/emoji", `{"emoji":"anvil"}`))
	assert.Equal(t, 404, put("/items/1/emoji", `{"emoji":"anvil"}`))
}
