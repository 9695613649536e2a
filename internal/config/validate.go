package config

import (
	"unicode/utf8"

	"github.com/mrz1836/spacer/internal/constants"
	"github.com/mrz1836/spacer/internal/errors"
)

// Validate checks the configuration for invalid values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - after must be positive
//   - dash must be exactly one character
//   - padding must be between 0 and 100
//   - width must not be negative
//   - color must be auto, never, or always
//
// The timezone is not validated here: an unknown zone is recoverable and is
// reported when the spacer renderer is built.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if cfg.After <= 0 {
		return errors.Wrapf(errors.ErrValueOutOfRange,
			"after must be positive, got %s", cfg.After)
	}

	if utf8.RuneCountInString(cfg.Dash) != 1 {
		return errors.Wrapf(errors.ErrInvalidDash,
			"dash must be a single character, got %q", cfg.Dash)
	}

	if cfg.Padding < 0 || cfg.Padding > constants.MaxPadding {
		return errors.Wrapf(errors.ErrValueOutOfRange,
			"padding must be between 0 and %d, got %d", constants.MaxPadding, cfg.Padding)
	}

	if cfg.Width < 0 {
		return errors.Wrapf(errors.ErrValueOutOfRange,
			"width cannot be negative, got %d", cfg.Width)
	}

	switch cfg.Color {
	case constants.ColorAuto, constants.ColorNever, constants.ColorAlways:
	default:
		return errors.Wrapf(errors.ErrValueOutOfRange,
			"color must be one of auto, never, always, got %q", cfg.Color)
	}

	return nil
}
