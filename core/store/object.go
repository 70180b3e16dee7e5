package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"sync"

	"tataru/core/models"
	"tataru/core/storage"

	"github.com/minio/minio-go/v7"
)

const snapshotVersion = 1

// snapshotDocument is the JSON document written by ObjectBackend.
type snapshotDocument struct {
	Version int           `json:"version"`
	Items   []models.Item `json:"items"`
}

// ObjectBackend stores the whole cache as one JSON document in object storage.
type ObjectBackend struct {
	client storage.Client
	bucket string
	region string
	key    string

	mu      sync.Mutex
	current map[int]models.Item
}

// NewObjectBackend creates a backend writing to bucket/key.
func NewObjectBackend(client storage.Client, bucket, region, key string) *ObjectBackend {
	if key == "" {
		key = "cache/items.json"
	}
	return &ObjectBackend{
		client:  client,
		bucket:  bucket,
		region:  region,
		key:     key,
		current: make(map[int]models.Item),
	}
}

// Bucket returns the bucket the snapshot lives in.
func (b *ObjectBackend) Bucket() string { return b.bucket }

// Region returns the region used when the bucket is created.
func (b *ObjectBackend) Region() string { return b.region }

// Key returns the object name of the snapshot.
func (b *ObjectBackend) Key() string { return b.key }

// Client returns the storage client used by the backend.
func (b *ObjectBackend) Client() storage.Client { return b.client }

func (b *ObjectBackend) Name() string { return BackendObject }

func (b *ObjectBackend) Load(ctx context.Context) ([]models.Item, error) {
	if err := storage.EnsureBucket(ctx, b.client, b.bucket, b.region); err != nil {
		return nil, err
	}

	obj, err := b.client.GetObject(ctx, b.bucket, b.key, minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s: %w", b.key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		// minio reports a missing key on first read
		if storage.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", b.key, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var doc snapshotDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", b.key, err)
	}
	if doc.Version != snapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d in %s", doc.Version, b.key)
	}

	b.mu.Lock()
	b.current = make(map[int]models.Item, len(doc.Items))
	for _, it := range doc.Items {
		b.current[it.ID] = it
	}
	b.mu.Unlock()
	return doc.Items, nil
}

func (b *ObjectBackend) Persist(ctx context.Context, item models.Item, snapshot func() []models.Item) error {
	var items []models.Item
	if snapshot != nil {
		items = snapshot()
	} else {
		items = b.merged([]models.Item{item})
	}
	return b.write(ctx, items)
}

func (b *ObjectBackend) Sync(ctx context.Context, items []models.Item) error {
	return b.write(ctx, b.merged(items))
}

func (b *ObjectBackend) Close() error { return nil }

func (b *ObjectBackend) merged(changed []models.Item) []models.Item {
	b.mu.Lock()
	defer b.mu.Unlock()
	all := make(map[int]models.Item, len(b.current)+len(changed))
	for id, it := range b.current {
		all[id] = it
	}
	for _, it := range changed {
		all[it.ID] = it
	}
	out := make([]models.Item, 0, len(all))
	for _, it := range all {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (b *ObjectBackend) write(ctx context.Context, items []models.Item) error {
	data, err := json.Marshal(snapshotDocument{Version: snapshotVersion, Items: items})
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	_, err = b.client.PutObject(ctx, b.bucket, b.key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", b.key, err)
	}

	b.mu.Lock()
	b.current = make(map[int]models.Item, len(items))
	for _, it := range items {
		b.current[it.ID] = it.Clone()
	}
	b.mu.Unlock()
	return nil
}
