package lookup

import (
	"context"
	"strings"
	"testing"

	"tataru/core/models"
	"tataru/core/remote"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHydrateAll(t *testing.T) {
	svc, src, _ := newTestService(t,
		ironIngot(),
		models.Item{ID: 5111, Name: "Iron Ore", Emoji: "rock"},
		models.Item{ID: 42, Name: "Removed Item"},
		models.Item{ID: 43, Name: "Flaky Item"},
	)
	src.On("FetchByID", mock.Anything, 5111).Return(models.Item{ID: 5111, Name: "Iron Ore", Category: "Stone", Hydrated: true}, nil)
	src.On("FetchByID", mock.Anything, 42).Return(nil, remote.ErrNotFound)
	src.On("FetchByID", mock.Anything, 43).Return(nil, remote.ErrSourceUnavailable)

	report, err := svc.HydrateAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, HydrateReport{Checked: 3, Hydrated: 1, Missing: 1, Unavailable: 1}, report)

	ore, err := svc.Store().Get(5111)
	require.NoError(t, err)
	assert.True(t, ore.Hydrated)
	assert.Equal(t, "Stone", ore.Category)
	assert.Equal(t, "rock", ore.Emoji)

	flaky, _ := svc.Store().Get(43)
	assert.False(t, flaky.Hydrated)
	src.AssertNotCalled(t, "FetchByID", mock.Anything, 5057)
}

func TestHydrateAllCancelled(t *testing.T) {
	svc, src, _ := newTestService(t, models.Item{ID: 1, Name: "Maple Log"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.HydrateAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	src.AssertNotCalled(t, "FetchByID", mock.Anything, mock.Anything)
}

func TestImport(t *testing.T) {
	svc, _, backend := newTestService(t,
		ironIngot(),
		models.Item{ID: 5111, Name: "Iron Ore", Hydrated: true},
	)
	csvData := strings.Join([]string{
		"item_name,item_id,emoji,category,icon_url",
		"Iron Ingot,5057,anvil,Metal,",
		"Iron Ore,5111,:rock:,Stone,",
		"Maple Log,5380,log,Lumber,https://xivapi.com/i/022000/022413.png",
		"Broken,abc,,,",
		",12,,,",
		"Maple Log,5380,dup,Lumber,",
	}, "\n")

	report, err := svc.Import(context.Background(), strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, ImportReport{Rows: 6, Written: 2, Skipped: 4}, report)

	ingot, _ := svc.Store().Get(5057)
	assert.Equal(t, "hammer", ingot.Emoji)

	ore, _ := svc.Store().Get(5111)
	assert.Equal(t, "rock", ore.Emoji)
	assert.True(t, ore.Hydrated)

	log, ok := backend.Item(5380)
	require.True(t, ok)
	assert.False(t, log.Hydrated)
	assert.Equal(t, "Lumber", log.Category)
	assert.Equal(t, "https://xivapi.com/i/022000/022413.png", log.IconURL)
}

func TestImportMalformed(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.Import(context.Background(), strings.NewReader("name,\"unterminated\n"))
	assert.Error(t, err)
	assert.Zero(t, svc.Store().Len())
}
