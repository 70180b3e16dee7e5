package remote

import "time"

// Config holds the game data and market API settings.
type Config struct {
	XIVAPIURL         string `mapstructure:"xivapi_url" default:"https://v2.xivapi.com"`
	UniversalisURL    string `mapstructure:"universalis_url" default:"https://universalis.app"`
	World             string `mapstructure:"world" default:"Twintania"`
	TimeoutSeconds    int    `mapstructure:"timeout_seconds" default:"10"`
	NotFoundCacheSize int    `mapstructure:"not_found_cache_size" default:"1024"`
	UserAgent         string `mapstructure:"user_agent" default:"tataru/1.0"`
}

// Timeout returns the per-call deadline, falling back to ten seconds.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
