package store

const (
	BackendDatabase = "database"
	BackendObject   = "object"
	BackendMemory   = "memory"
)

// Config selects where the item cache is persisted.
type Config struct {
	// Backend is one of database, object or memory.
	Backend string `mapstructure:"backend" default:"database"`
	// ObjectKey is the snapshot object name used by the object backend.
	ObjectKey string `mapstructure:"object_key" default:"cache/items.json"`
}

// IsValidBackend checks if the configured backend is supported.
func (c Config) IsValidBackend() bool {
	switch c.Backend {
	case BackendDatabase, BackendObject, BackendMemory:
		return true
	default:
		return false
	}
}
