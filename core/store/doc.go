// Package store is the authoritative local item cache.
//
// A Store keeps every known item in memory, indexed by ID and by normalized name, and
// writes changes through a pluggable Backend. Reads run concurrently under a read lock.
// Writes are serialized and follow a persist-then-apply order: the backend must accept
// the change before it becomes visible, so a failed write leaves the last persisted
// state in place and returns a *StorageError.
//
// Persistence runs on a context detached from the caller's cancellation. A write that
// has started will complete even if the request that triggered it goes away.
//
// # Backends
//
//   - DatabaseBackend: gorm tables "items" and "recipe_ingredients" (MySQL or SQLite).
//     Each item is upserted together with its recipe slots in one transaction.
//   - ObjectBackend: the whole cache as a versioned JSON document in object storage.
//     A missing document means an empty cache.
//   - MemoryBackend: process memory only.
//
// # Usage
//
//	backend, _ := store.NewDatabaseBackend(db)
//	s, err := store.Open(ctx, backend, logger)
//	item, err := s.GetByNameExact("Iron Ingot")
//	item, err = s.SetField(ctx, item.ID, store.FieldEmoji, "hammer")
package store
