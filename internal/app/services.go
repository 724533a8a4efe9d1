package app

import (
	"errors"

	"feeboard/internal/api"
	"feeboard/internal/live"
)

// Services holds all the initialized services
type Services struct {
	Client *api.Client
	Poller *live.Poller
}

// InitializeServices creates the backend client and a live poller that
// has not been started yet.
func InitializeServices(cfg *Config) (*Services, error) {
	if cfg == nil || cfg.Feeboard == nil {
		return nil, errors.New("configuration not loaded")
	}
	client := api.NewClient(cfg.Feeboard.Backend.BaseURL, cfg.Feeboard.Backend.RequestTimeout)
	return &Services{
		Client: client,
		Poller: live.NewPoller(client, cfg.Feeboard.Live.PollInterval),
	}, nil
}
