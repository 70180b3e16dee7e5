package store

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"tataru/core/models"
	"tataru/core/utils"

	"go.uber.org/zap"
)

// Field names a single mutable attribute accepted by SetField.
type Field string

const (
	FieldEmoji Field = "emoji"
	FieldPrice Field = "price"
)

// Store is the authoritative local item cache.
// Reads run concurrently; writes are serialized and applied to memory only
// after the backend has persisted them.
type Store struct {
	mu     sync.RWMutex
	writes sync.Mutex
	items  map[int]models.Item
	byName map[string][]int

	backend Backend
	logger  *zap.Logger
	now     func() time.Time
}

// Open loads every persisted item from backend and returns a ready store.
func Open(ctx context.Context, backend Backend, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	items, err := backend.Load(ctx)
	if err != nil {
		return nil, &StorageError{Op: "load", Err: err}
	}
	s := &Store{
		items:   make(map[int]models.Item, len(items)),
		byName:  make(map[string][]int, len(items)),
		backend: backend,
		logger:  logger,
		now:     time.Now,
	}
	for _, it := range items {
		if it.ID <= 0 {
			logger.Warn("Skipping persisted item with invalid id", zap.Int("id", it.ID), zap.String("name", it.Name))
			continue
		}
		s.put(it)
	}
	logger.Info("Item cache loaded", zap.String("backend", backend.Name()), zap.Int("items", len(s.items)))
	return s, nil
}

// Backend returns the persistence backend of the store.
func (s *Store) Backend() Backend {
	return s.backend
}

// Get returns a copy of the item with the given ID.
func (s *Store) Get(id int) (models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.items[id]
	if !ok {
		return models.Item{}, ErrNotFound
	}
	return it.Clone(), nil
}

// GetByNameExact returns the item whose normalized name equals name.
// When several items share the name the lowest ID wins.
func (s *Store) GetByNameExact(name string) (models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.byName[utils.NormalizeName(name)]
	if len(ids) == 0 {
		return models.Item{}, ErrNotFound
	}
	return s.items[ids[0]].Clone(), nil
}

// AllNames returns a snapshot of (name, id) pairs sorted by ID.
func (s *Store) AllNames() []models.NameID {
	s.mu.RLock()
	out := make([]models.NameID, 0, len(s.items))
	for id, it := range s.items {
		out = append(out, models.NameID{Name: it.Name, ID: id})
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// All returns copies of every cached item sorted by ID.
func (s *Store) All() []models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Len returns the number of cached items.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Upsert inserts or replaces a record. Writing a record equal to the cached
// one is a no-op, so repeated upserts leave the store unchanged.
func (s *Store) Upsert(ctx context.Context, item models.Item) (models.Item, error) {
	if item.ID <= 0 || item.Name == "" {
		return models.Item{}, fmt.Errorf("%w: id %d name %q", ErrInvalidItem, item.ID, item.Name)
	}
	s.writes.Lock()
	defer s.writes.Unlock()

	s.mu.RLock()
	prev, exists := s.items[item.ID]
	s.mu.RUnlock()
	if exists && sameContent(prev, item.Clone()) {
		return prev.Clone(), nil
	}
	next := item.Clone()
	next.UpdatedAt = s.now().UTC()
	if err := s.commit(ctx, "upsert", next); err != nil {
		return models.Item{}, err
	}
	return next.Clone(), nil
}

// UpsertMany writes a batch of records through a single backend sync.
// Nothing is applied in memory when the sync fails.
func (s *Store) UpsertMany(ctx context.Context, items []models.Item) (int, error) {
	s.writes.Lock()
	defer s.writes.Unlock()

	now := s.now().UTC()
	changed := make([]models.Item, 0, len(items))
	s.mu.RLock()
	for _, it := range items {
		if it.ID <= 0 || it.Name == "" {
			s.mu.RUnlock()
			return 0, fmt.Errorf("%w: id %d name %q", ErrInvalidItem, it.ID, it.Name)
		}
		if prev, ok := s.items[it.ID]; ok && sameContent(prev, it.Clone()) {
			continue
		}
		next := it.Clone()
		next.UpdatedAt = now
		changed = append(changed, next)
	}
	s.mu.RUnlock()
	if len(changed) == 0 {
		return 0, nil
	}

	if err := s.backend.Sync(context.WithoutCancel(ctx), changed); err != nil {
		s.logger.Error("Failed to persist item batch", zap.Int("items", len(changed)), zap.Error(err))
		return 0, &StorageError{Op: "sync", Err: err}
	}
	s.mu.Lock()
	for _, it := range changed {
		s.put(it)
	}
	s.mu.Unlock()
	s.logger.Info("Item batch written", zap.Int("items", len(changed)))
	return len(changed), nil
}

// SetField updates one attribute of an existing item.
// FieldEmoji takes a string, FieldPrice takes a models.Price or *models.Price.
func (s *Store) SetField(ctx context.Context, id int, field Field, value any) (models.Item, error) {
	var apply func(*models.Item)
	switch field {
	case FieldEmoji:
		v, ok := value.(string)
		if !ok {
			return models.Item{}, fmt.Errorf("%w: %s expects string, got %T", ErrInvalidField, field, value)
		}
		apply = func(it *models.Item) { it.Emoji = v }
	case FieldPrice:
		var p models.Price
		switch v := value.(type) {
		case models.Price:
			p = v.Clone()
		case *models.Price:
			if v == nil {
				return models.Item{}, fmt.Errorf("%w: nil price", ErrInvalidField)
			}
			p = v.Clone()
		default:
			return models.Item{}, fmt.Errorf("%w: %s expects price, got %T", ErrInvalidField, field, value)
		}
		apply = func(it *models.Item) { it.Price = &p }
	default:
		return models.Item{}, fmt.Errorf("%w: %q", ErrInvalidField, field)
	}
	return s.Update(ctx, id, func(it *models.Item) error {
		apply(it)
		return nil
	})
}

// Update applies fn to a copy of the item and commits the result.
// The ID cannot be changed through fn. Returning an error from fn aborts the write.
func (s *Store) Update(ctx context.Context, id int, fn func(*models.Item) error) (models.Item, error) {
	s.writes.Lock()
	defer s.writes.Unlock()

	s.mu.RLock()
	prev, ok := s.items[id]
	s.mu.RUnlock()
	if !ok {
		return models.Item{}, ErrNotFound
	}
	next := prev.Clone()
	if err := fn(&next); err != nil {
		return models.Item{}, err
	}
	next.ID = id
	if next.Name == "" {
		return models.Item{}, fmt.Errorf("%w: empty name for id %d", ErrInvalidItem, id)
	}
	if sameContent(prev, next) {
		return prev.Clone(), nil
	}
	next.UpdatedAt = s.now().UTC()
	if err := s.commit(ctx, "update", next); err != nil {
		return models.Item{}, err
	}
	return next.Clone(), nil
}

// Close flushes the full cache to the backend and releases it.
func (s *Store) Close(ctx context.Context) error {
	s.writes.Lock()
	defer s.writes.Unlock()
	s.mu.RLock()
	all := s.snapshotLocked()
	s.mu.RUnlock()

	var syncErr error
	if len(all) > 0 {
		if err := s.backend.Sync(context.WithoutCancel(ctx), all); err != nil {
			syncErr = &StorageError{Op: "flush", Err: err}
		}
	}
	if err := s.backend.Close(); err != nil && syncErr == nil {
		return &StorageError{Op: "close", Err: err}
	}
	return syncErr
}

// commit persists next and then publishes it. Callers hold the write mutex.
func (s *Store) commit(ctx context.Context, op string, next models.Item) error {
	snapshot := func() []models.Item {
		s.mu.RLock()
		defer s.mu.RUnlock()
		out := make([]models.Item, 0, len(s.items)+1)
		for id, it := range s.items {
			if id != next.ID {
				out = append(out, it.Clone())
			}
		}
		out = append(out, next.Clone())
		sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
		return out
	}
	if err := s.backend.Persist(context.WithoutCancel(ctx), next, snapshot); err != nil {
		s.logger.Error("Failed to persist item",
			zap.String("op", op),
			zap.Int("id", next.ID),
			zap.Error(err),
		)
		return &StorageError{Op: op, ID: next.ID, Err: err}
	}

	s.mu.Lock()
	s.put(next)
	s.mu.Unlock()
	s.logger.Debug("Item written", zap.String("op", op), zap.Int("id", next.ID), zap.String("name", next.Name))
	return nil
}

// put replaces the item in memory and keeps the name index sorted. Callers hold mu.
func (s *Store) put(it models.Item) {
	if prev, ok := s.items[it.ID]; ok {
		s.unindex(prev)
	}
	s.items[it.ID] = it
	key := utils.NormalizeName(it.Name)
	ids := append(s.byName[key], it.ID)
	sort.Ints(ids)
	s.byName[key] = ids
}

func (s *Store) unindex(it models.Item) {
	key := utils.NormalizeName(it.Name)
	ids := s.byName[key]
	for i, id := range ids {
		if id == it.ID {
			ids = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(ids) == 0 {
		delete(s.byName, key)
		return
	}
	s.byName[key] = ids
}

func (s *Store) snapshotLocked() []models.Item {
	out := make([]models.Item, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// sameContent compares two records ignoring UpdatedAt.
func sameContent(a, b models.Item) bool {
	a.UpdatedAt = time.Time{}
	b.UpdatedAt = time.Time{}
	return reflect.DeepEqual(a, b)
}
