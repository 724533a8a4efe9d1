package config

import (
	"time"
)

// FeeboardConfig is the top-level configuration structure for feeboard.
type FeeboardConfig struct {
	Backend   BackendConfig   `yaml:"backend"`
	Live      LiveConfig      `yaml:"live"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Logging   LoggingConfig   `yaml:"logging"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// BackendConfig locates the fee-recommendation service.
type BackendConfig struct {
	BaseURL        string        `yaml:"baseURL,omitempty" default:"http://127.0.0.1:8000" validate:"required,url"`
	RequestTimeout time.Duration `yaml:"requestTimeout,omitempty" validate:"gte=0"` // zero means no timeout
}

// LiveConfig controls the live status poller.
type LiveConfig struct {
	PollInterval time.Duration `yaml:"pollInterval,omitempty" default:"3s" validate:"gt=0"`
}

// DashboardConfig holds the initial values of the dashboard controls.
// Miner fields are kept as raw text because they go through the same
// validator as user input.
type DashboardConfig struct {
	DefaultPriority string `yaml:"defaultPriority,omitempty" default:"fast" validate:"oneof=fast medium slow"`
	DefaultExplain  string `yaml:"defaultExplain,omitempty" validate:"omitempty,oneof=none llm"`
	MinerCount      string `yaml:"minerCount,omitempty" default:"3"`
	MinerFee        string `yaml:"minerFee,omitempty"`
	TargetBlocks    string `yaml:"targetBlocks,omitempty" default:"1"`
}

// LoggingConfig sets the minimum level written by pkg/logging.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty" default:"info" validate:"oneof=debug info warn error"`
}

// MetricsConfig enables the Prometheus endpoint of long-running commands.
type MetricsConfig struct {
	ListenAddr string `yaml:"listenAddr,omitempty"` // empty disables the endpoint
}
