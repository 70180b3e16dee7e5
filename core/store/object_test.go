package store

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"tataru/core/models"
	"tataru/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestObjectBackendLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing bucket and object start empty", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "tataru").Return(false, nil)
		client.On("MakeBucket", ctx, "tataru", minio.MakeBucketOptions{Region: "us-east-1"}).Return(nil)
		client.On("GetObject", ctx, "tataru", "cache/items.json", mock.Anything).
			Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

		backend := NewObjectBackend(client, "tataru", "us-east-1", "")
		items, err := backend.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)
		client.AssertExpectations(t)
	})

	t.Run("Existing snapshot", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "tataru").Return(true, nil)
		doc := `{"version":1,"items":[{"id":5057,"name":"Iron Ingot","emoji":"hammer","hydrated":true}]}`
		client.On("GetObject", ctx, "tataru", "cache/items.json", mock.Anything).
			Return(io.NopCloser(strings.NewReader(doc)), nil)

		s, err := Open(ctx, NewObjectBackend(client, "tataru", "", "cache/items.json"), zap.NewNop())
		require.NoError(t, err)
		it, err := s.Get(5057)
		require.NoError(t, err)
		assert.Equal(t, "hammer", it.Emoji)
		assert.True(t, it.Hydrated)
	})

	t.Run("Corrupt snapshot", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "tataru").Return(true, nil)
		client.On("GetObject", ctx, "tataru", "cache/items.json", mock.Anything).
			Return(io.NopCloser(strings.NewReader("{not json")), nil)

		_, err := NewObjectBackend(client, "tataru", "", "").Load(ctx)
		assert.Error(t, err)
	})

	t.Run("Bucket check fails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "tataru").Return(false, errors.New("connection refused"))

		_, err := Open(ctx, NewObjectBackend(client, "tataru", "", ""), zap.NewNop())
		assert.True(t, IsStorageError(err))
	})
}

func TestObjectBackendPersist(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "tataru").Return(true, nil)
	client.On("GetObject", mock.Anything, "tataru", "cache/items.json", mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

	var written snapshotDocument
	client.On("PutObject", mock.Anything, "tataru", "cache/items.json", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			data, err := io.ReadAll(args.Get(3).(io.Reader))
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(data, &written))
		}).
		Return(minio.UploadInfo{}, nil)

	s, err := Open(ctx, NewObjectBackend(client, "tataru", "", ""), zap.NewNop())
	require.NoError(t, err)

	_, err = s.Upsert(ctx, models.Item{ID: 2, Name: "Tin Ore"})
	require.NoError(t, err)
	_, err = s.Upsert(ctx, models.Item{ID: 1, Name: "Copper Ore"})
	require.NoError(t, err)

	assert.Equal(t, 1, written.Version)
	require.Len(t, written.Items, 2)
	assert.Equal(t, 1, written.Items[0].ID)
	assert.Equal(t, 2, written.Items[1].ID)

	_, err = s.UpsertMany(ctx, []models.Item{{ID: 3, Name: "Bronze Ingot"}})
	require.NoError(t, err)
	assert.Len(t, written.Items, 3)
}

func TestObjectBackendUploadFailure(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	client.On("BucketExists", ctx, "tataru").Return(true, nil)
	client.On("GetObject", ctx, "tataru", "cache/items.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(`{"version":1,"items":[{"id":1,"name":"Copper Ore"}]}`)), nil)
	client.On("PutObject", mock.Anything, "tataru", "cache/items.json", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("access denied"))

	s, err := Open(ctx, NewObjectBackend(client, "tataru", "", ""), zap.NewNop())
	require.NoError(t, err)

	_, err = s.SetField(ctx, 1, FieldEmoji, "ore")
	assert.True(t, IsStorageError(err))
	it, _ := s.Get(1)
	assert.Empty(t, it.Emoji)
}
