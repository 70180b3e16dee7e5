// Package lookup resolves user queries to items.
//
// A query is either a numeric item ID or a free-text name. The Service walks a small
// state machine:
//
//   - ID mode: serve the cached record when it is fully populated. Legacy records
//     are completed from the remote source first. Unknown IDs are fetched from the
//     source and written back to the store.
//   - Name mode: fuzzy-match the query against every cached name. A match continues
//     in ID mode. When nothing matches the search falls back to an exact-name search
//     at the source before failing with the near matches attached.
//
// Prices are volatile: a price lookup always calls the source once and stores the
// new price, leaving the other fields untouched. Names and recipes are never
// re-fetched once a record is hydrated.
//
// # Errors
//
//   - ErrItemNotFound: neither the cache nor the source knows the item.
//   - ErrTemporaryFailure: the source was unreachable; nothing was cached.
//   - fuzzy.ErrNoMatch: wrapped alongside the above with suggestions.
//   - store.StorageError: the write-back failed; the cache is unchanged.
//
// # HTTP Endpoints
//
//   - GET /items/search?q= : resolve an item.
//   - GET /items/price?q= : resolve an item and refresh its price.
//   - PUT /items/:id/emoji : set the emoji annotation.
//
// # Maintenance
//
// Import loads the legacy items.csv file as unhydrated records. HydrateAll completes
// them from the source with bounded concurrency.
package lookup
