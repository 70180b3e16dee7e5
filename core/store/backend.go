package store

import (
	"context"
	"sort"
	"sync"

	"tataru/core/models"
)

// Backend persists the item cache. Implementations must make Persist atomic per item:
// either the whole record (including its recipe) is durable or none of it is.
type Backend interface {
	// Name identifies the backend in logs and reports.
	Name() string
	// Load returns every persisted item.
	Load(ctx context.Context) ([]models.Item, error)
	// Persist durably writes one changed item. snapshot returns the full cache
	// with the change applied, for backends that store a single document.
	Persist(ctx context.Context, item models.Item, snapshot func() []models.Item) error
	// Sync durably writes every given item in one operation.
	Sync(ctx context.Context, items []models.Item) error
	// Close releases backend resources.
	Close() error
}

// MemoryBackend keeps persisted items in memory. It backs the "memory" store
// backend and tests.
type MemoryBackend struct {
	mu    sync.Mutex
	items map[int]models.Item
	// Writes counts successful Persist and Sync calls.
	Writes int
}

// NewMemoryBackend creates a MemoryBackend seeded with items.
func NewMemoryBackend(items ...models.Item) *MemoryBackend {
	b := &MemoryBackend{items: make(map[int]models.Item, len(items))}
	for _, it := range items {
		b.items[it.ID] = it.Clone()
	}
	return b
}

func (b *MemoryBackend) Name() string { return BackendMemory }

func (b *MemoryBackend) Load(ctx context.Context) ([]models.Item, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.Item, 0, len(b.items))
	for _, it := range b.items {
		out = append(out, it.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (b *MemoryBackend) Persist(ctx context.Context, item models.Item, _ func() []models.Item) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items[item.ID] = item.Clone()
	b.Writes++
	return nil
}

func (b *MemoryBackend) Sync(ctx context.Context, items []models.Item) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, it := range items {
		b.items[it.ID] = it.Clone()
	}
	b.Writes++
	return nil
}

func (b *MemoryBackend) Close() error { return nil }

// Item returns the persisted copy of an item.
func (b *MemoryBackend) Item(id int) (models.Item, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	it, ok := b.items[id]
	return it.Clone(), ok
}
