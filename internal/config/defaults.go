package config

import (
	"github.com/mrz1836/spacer/internal/constants"
)

// DefaultConfig returns a new Config with the built-in default values.
// These are the base layer that config files, environment variables, and
// CLI flags override.
func DefaultConfig() *Config {
	return &Config{
		After:   constants.DefaultAfter,
		Dash:    constants.DefaultDash,
		Padding: 0,
		Width:   0,
		Right:   false,
		Color:   constants.ColorAuto,
	}
}
