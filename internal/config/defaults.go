package config

import (
	"errors"
	"fmt"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// GetDefaultConfig returns the configuration used when no file overrides anything.
func GetDefaultConfig() FeeboardConfig {
	var cfg FeeboardConfig
	// Only fails on malformed tags, which would be a programming error.
	if err := defaults.Set(&cfg); err != nil {
		panic(fmt.Sprintf("config: invalid default tags: %v", err))
	}
	return cfg
}

// applyDefaults fills every zero-valued field with its tagged default.
func applyDefaults(cfg *FeeboardConfig) error {
	return defaults.Set(cfg)
}

// Validate checks the merged configuration.
func Validate(cfg FeeboardConfig) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid configuration: %s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
