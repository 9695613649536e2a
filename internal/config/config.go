// Package config provides configuration management for spacer with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (bound into the Viper instance by internal/cli)
//  2. Environment variables (SPACER_* prefix)
//  3. Config file (~/.spacer/config.yaml, or the path given with --config)
//  4. Built-in defaults
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import other internal packages.
package config

import "time"

// Config is the root configuration structure for spacer.
type Config struct {
	// After is the idle time after which a spacer is printed.
	// Accepts float seconds (1.5) or a duration string (1500ms).
	// Default: 1s
	After time.Duration `yaml:"after" mapstructure:"after"`

	// Dash is the single fill character of the spacer line.
	// Default: "━"
	Dash string `yaml:"dash" mapstructure:"dash"`

	// Padding is the number of blank lines printed before and after a spacer.
	// Default: 0, Valid range: 0-100
	Padding int `yaml:"padding" mapstructure:"padding"`

	// Width fixes the total spacer width in columns. 0 means use the
	// terminal width.
	// Default: 0
	Width int `yaml:"width" mapstructure:"width"`

	// Right puts the timestamp on the right side of the spacer.
	// Default: false
	Right bool `yaml:"right" mapstructure:"right"`

	// Timezone is an IANA zone name for the timestamp. Empty means local time.
	// Unknown names fall back to local time with a warning.
	Timezone string `yaml:"timezone" mapstructure:"timezone"`

	// Color is one of "auto", "never", "always".
	// Default: "auto"
	Color string `yaml:"color" mapstructure:"color"`

	// Log contains settings for diagnostic logging on stderr.
	Log LogConfig `yaml:"log" mapstructure:"log"`
}

// LogConfig contains settings for diagnostic logging.
// Spacer output goes to stdout; logs only ever go to stderr and the optional file.
type LogConfig struct {
	// File is an optional path of a rotating log file.
	// Default: "" (no file)
	File string `yaml:"file" mapstructure:"file"`
}
