// Package config provides configuration management for Tataru.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file (loaded through godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL or SQLite connection details for the item cache
//   - Storage: S3/MinIO credentials and bucket settings
//   - Store: which backend persists the item cache (database or object)
//   - Remote: XIVAPI and Universalis endpoints, market world, request timeout
//   - Lookup: fuzzy threshold, scorer, recipe depth and concurrency limits
//   - Log: Logging level and format
//
// Defaults live in the `default` struct tags of each section and every key can be
// overridden by an environment variable named SECTION_KEY (e.g. REMOTE_WORLD).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Remote.World)
package config
