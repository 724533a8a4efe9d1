package config

import (
	"fmt"
	"os"
	"path/filepath"

	"feeboard/pkg/logging"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/feeboard"
	projectConfigDir = ".feeboard"
	configFileName   = "config.yaml"
)

// LoadConfig loads the feeboard configuration by layering default, user,
// project and explicit settings. explicitPath may be empty; when set, the
// file must exist.
func LoadConfig(explicitPath string) (FeeboardConfig, error) {
	// 1. Start with the default configuration
	config := GetDefaultConfig()

	// 2. User-specific configuration
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		logging.Warn("Config", "Could not determine user config path: %v", err)
	} else if config, err = overlayIfExists(config, userConfigPath); err != nil {
		return FeeboardConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	// 3. Project-specific configuration
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn("Config", "Could not determine project config path: %v", err)
	} else if config, err = overlayIfExists(config, projectConfigPath); err != nil {
		return FeeboardConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	// 4. Explicit --config file
	if explicitPath != "" {
		explicitConfig, err := loadConfigFromFile(explicitPath)
		if err != nil {
			return FeeboardConfig{}, fmt.Errorf("error loading config from %s: %w", explicitPath, err)
		}
		config = mergeConfigs(config, explicitConfig)
	}

	if err := applyDefaults(&config); err != nil {
		return FeeboardConfig{}, fmt.Errorf("error applying config defaults: %w", err)
	}
	if err := Validate(config); err != nil {
		return FeeboardConfig{}, err
	}
	return config, nil
}

func overlayIfExists(base FeeboardConfig, path string) (FeeboardConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return base, err
	}
	logging.Debug("Config", "Loaded configuration layer %s", path)
	return mergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a FeeboardConfig from a YAML file.
func loadConfigFromFile(filePath string) (FeeboardConfig, error) {
	var config FeeboardConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return FeeboardConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return FeeboardConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Non-zero overlay
// fields win.
func mergeConfigs(base, overlay FeeboardConfig) FeeboardConfig {
	merged := base

	if overlay.Backend.BaseURL != "" {
		merged.Backend.BaseURL = overlay.Backend.BaseURL
	}
	if overlay.Backend.RequestTimeout != 0 {
		merged.Backend.RequestTimeout = overlay.Backend.RequestTimeout
	}

	if overlay.Live.PollInterval != 0 {
		merged.Live.PollInterval = overlay.Live.PollInterval
	}

	if overlay.Dashboard.DefaultPriority != "" {
		merged.Dashboard.DefaultPriority = overlay.Dashboard.DefaultPriority
	}
	if overlay.Dashboard.DefaultExplain != "" {
		merged.Dashboard.DefaultExplain = overlay.Dashboard.DefaultExplain
	}
	if overlay.Dashboard.MinerCount != "" {
		merged.Dashboard.MinerCount = overlay.Dashboard.MinerCount
	}
	if overlay.Dashboard.MinerFee != "" {
		merged.Dashboard.MinerFee = overlay.Dashboard.MinerFee
	}
	if overlay.Dashboard.TargetBlocks != "" {
		merged.Dashboard.TargetBlocks = overlay.Dashboard.TargetBlocks
	}

	if overlay.Logging.Level != "" {
		merged.Logging.Level = overlay.Logging.Level
	}

	if overlay.Metrics.ListenAddr != "" {
		merged.Metrics.ListenAddr = overlay.Metrics.ListenAddr
	}

	return merged
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
