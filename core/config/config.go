package config

import (
	"reflect"
	"strings"

	"tataru/core/database"
	"tataru/core/logger"
	"tataru/core/remote"
	"tataru/core/server"
	"tataru/core/storage"
	"tataru/core/store"
	"tataru/feature/lookup"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
	// Store selects where the item cache is persisted.
	Store store.Config `mapstructure:"store"`
	// Remote holds the game-data and market API endpoints.
	Remote remote.Config `mapstructure:"remote"`
	// Lookup tunes name resolution and recipe expansion.
	Lookup lookup.Config `mapstructure:"lookup"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env from the given directory, overriding the process environment
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	// 2. Register every key with its default
	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. REMOTE_WORLD -> remote.world)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 3. Decode into the typed sections
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// Work on the struct behind a pointer
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Untagged fields are not configuration
		if tag == "" {
			continue
		}

		// Sections prefix their keys (remote + world -> remote.world)
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// A nested section: recurse with the section key as prefix
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
