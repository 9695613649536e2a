package spacer

import (
	"time"
	"unicode/utf8"

	"github.com/mrz1836/spacer/internal/config"
	"github.com/mrz1836/spacer/internal/constants"
)

// Config is the resolved, immutable configuration shared by the relay,
// the clock, and the renderer.
type Config struct {
	// After is the idle threshold.
	After time.Duration

	// Dash is the fill character.
	Dash rune

	// Padding is the number of blank lines before and after a spacer.
	Padding int

	// Width is the fixed total spacer width. 0 uses the terminal width.
	Width int

	// Right places the timestamp after the fill run.
	Right bool

	// Timezone is an IANA zone name. Empty means local time.
	Timezone string
}

// FromConfig converts a validated application config.
func FromConfig(cfg *config.Config) Config {
	dash, _ := utf8.DecodeRuneInString(cfg.Dash)
	if dash == utf8.RuneError {
		dash, _ = utf8.DecodeRuneInString(constants.DefaultDash)
	}

	return Config{
		After:    cfg.After,
		Dash:     dash,
		Padding:  cfg.Padding,
		Width:    cfg.Width,
		Right:    cfg.Right,
		Timezone: cfg.Timezone,
	}
}
