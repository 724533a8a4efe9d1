package app

import (
	"feeboard/internal/config"
)

// Config holds the application configuration assembled from flags
type Config struct {
	// ConfigPath is an explicit configuration file layered on top of the
	// user and project files. Empty means none.
	ConfigPath string

	// BaseURL overrides backend.baseURL when set
	BaseURL string

	// Debug settings
	Debug bool

	// Loaded configuration
	Feeboard *config.FeeboardConfig
}

// NewConfig creates a new application configuration
func NewConfig(configPath, baseURL string, debug bool) *Config {
	return &Config{
		ConfigPath: configPath,
		BaseURL:    baseURL,
		Debug:      debug,
	}
}
