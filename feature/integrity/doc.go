// Package integrity provides health checks for the item cache.
//
// # Checks Provided
//
//   - Cache: every record is stored under its own id, ids are positive, names are
//     not empty, recipe ingredients point at cached items and no recipe graph loops.
//   - Backend: for the database backend the cache tables are compared against the
//     gorm row types (columns and types). For the object backend the bucket must
//     exist; the snapshot object is reported when present.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/cache : Runs the cache check (supports ?fix=true to fetch missing ingredients).
//   - GET /integrity/backend : Runs the backend check (supports ?fix=true to migrate or create the bucket).
package integrity
