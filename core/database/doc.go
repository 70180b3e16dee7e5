// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to configure
// MySQL or SQLite connections based on the application's configuration. The item
// cache uses it when the store backend is "database".
//
// # Connect
//
// Connect opens the configured driver, applies pool settings and verifies the
// connection with a ping bounded by TimeoutSeconds. SQLite connections are limited
// to a single open connection so that ":memory:" databases survive between queries.
//
// # Schema Inspection
//
// GetTableColumns returns the columns of a table for both dialects. The integrity
// feature uses it to verify that the item cache tables carry every expected column.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "items")
package database
