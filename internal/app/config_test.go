package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig("/tmp/feeboard.yaml", "http://backend:8000", true)

	assert.Equal(t, "/tmp/feeboard.yaml", cfg.ConfigPath)
	assert.Equal(t, "http://backend:8000", cfg.BaseURL)
	assert.True(t, cfg.Debug)
	assert.Nil(t, cfg.Feeboard)
}
