// Package constants provides centralized constant values used throughout spacer.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// Application identity.
const (
	// AppName is the binary and configuration namespace.
	AppName = "spacer"

	// EnvPrefix is the prefix for environment variable overrides (SPACER_AFTER, ...).
	EnvPrefix = "SPACER"
)

// Spacer defaults.
const (
	// DefaultAfter is the idle time after which a spacer is printed.
	DefaultAfter = 1 * time.Second

	// DefaultDash is the fill character of the spacer line.
	DefaultDash = "━"

	// DefaultWidth is the spacer width used when the terminal width is unknown.
	DefaultWidth = 80

	// MaxPadding caps the number of blank lines around a spacer.
	MaxPadding = 100
)

// Scheduling constants of the spacer clock.
const (
	// MinCountingSleep bounds how short a single wait of the spacer clock may be,
	// so a line arriving just before the threshold does not cause spinning.
	MinCountingSleep = 10 * time.Millisecond

	// ElapsedDisplayThreshold is the minimum time since the previous spacer
	// for the elapsed delta to be printed.
	ElapsedDisplayThreshold = 100 * time.Millisecond
)

// Color modes accepted in configuration.
const (
	ColorAuto   = "auto"
	ColorNever  = "never"
	ColorAlways = "always"
)
