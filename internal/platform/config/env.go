package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every command setting read from the environment.
const EnvPrefix = "SPRAWLSHEET_"

// ParseEnv loads configuration from environment variables, reading each
// `env` tag as EnvPrefix followed by the tag name.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
