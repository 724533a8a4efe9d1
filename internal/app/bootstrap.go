package app

import (
	"context"
	"fmt"
	"os"

	"feeboard/internal/api"
	"feeboard/internal/config"
	"feeboard/pkg/logging"
)

// Application bootstraps the backend client and the live poller shared by
// the dashboard, the one-shot commands and the watch command.
type Application struct {
	config   *Config
	services *Services
}

// NewApplication loads the configuration, applies flag overrides and
// initializes the services.
func NewApplication(cfg *Config) (*Application, error) {
	// CLI logging until a mode switches it; stderr keeps stdout clean for
	// JSON output and the MCP stdio transport.
	logging.InitForCLI(logLevel(cfg, logging.LevelInfo), os.Stderr)

	feeboardCfg, err := config.LoadConfig(cfg.ConfigPath)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to load feeboard configuration")
		return nil, fmt.Errorf("failed to load feeboard configuration: %w", err)
	}
	if cfg.BaseURL != "" {
		feeboardCfg.Backend.BaseURL = cfg.BaseURL
		if err := config.Validate(feeboardCfg); err != nil {
			return nil, fmt.Errorf("invalid --base-url: %w", err)
		}
	}
	cfg.Feeboard = &feeboardCfg

	level, err := logging.ParseLevel(feeboardCfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	logging.InitForCLI(logLevel(cfg, level), os.Stderr)
	logging.Debug("Bootstrap", "Using backend %s", feeboardCfg.Backend.BaseURL)

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

// logLevel lets --debug win over the configured level.
func logLevel(cfg *Config, configured logging.LogLevel) logging.LogLevel {
	if cfg.Debug {
		return logging.LevelDebug
	}
	return configured
}

// Settings returns the loaded configuration.
func (a *Application) Settings() config.FeeboardConfig {
	return *a.config.Feeboard
}

// FeeAPI returns the backend client.
func (a *Application) FeeAPI() api.FeeAPI {
	return a.services.Client
}

// RunDashboard runs the interactive dashboard until the user quits.
func (a *Application) RunDashboard(ctx context.Context) error {
	return runTUIMode(ctx, a.config, a.services)
}

// RunWatch polls the live status headlessly until ctx is done or the
// process receives SIGINT or SIGTERM.
func (a *Application) RunWatch(ctx context.Context, opts WatchOptions) error {
	return runWatchMode(ctx, a.config, a.services, opts)
}
