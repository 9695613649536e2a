// Package tui provides terminal presentation helpers for spacer.
//
// This package owns the color palette of the spacer line (built on Lip Gloss),
// the color-mode policy (--no-color, --force-color, NO_COLOR, TERM=dumb),
// terminal width detection, and the humanized elapsed-time format.
//
// # Palette
//
// The spacer prefix mirrors the classic terminal palette:
//   - Date: green
//   - Time: yellow
//   - Elapsed delta: blue
//   - Fill run: faint
//
// Basic ANSI colors are used on purpose: AdaptiveColor would query the
// terminal background, and spacer shares the terminal with the command it
// decorates.
package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorMode selects whether spacer output is colorized.
type ColorMode int

const (
	// ColorAuto colorizes when the output supports it.
	ColorAuto ColorMode = iota
	// ColorNever disables color (--no-color).
	ColorNever
	// ColorAlways forces color even when the output is not a TTY (--force-color).
	ColorAlways
)

// String returns the flag-style name of the mode.
func (m ColorMode) String() string {
	switch m {
	case ColorNever:
		return "never"
	case ColorAlways:
		return "always"
	default:
		return "auto"
	}
}

// ColorModeFromFlags maps the two mutually exclusive color flags to a mode.
// Callers are expected to have rejected noColor && forceColor already.
func ColorModeFromFlags(noColor, forceColor bool) ColorMode {
	switch {
	case noColor:
		return ColorNever
	case forceColor:
		return ColorAlways
	default:
		return ColorAuto
	}
}

// ParseColorMode maps a configuration value ("auto", "never", "always") to
// a mode. Unknown values select ColorAuto.
func ParseColorMode(s string) ColorMode {
	switch s {
	case ColorNever.String():
		return ColorNever
	case ColorAlways.String():
		return ColorAlways
	default:
		return ColorAuto
	}
}

//nolint:gochecknoglobals // Intentional package-level constants for spacer styling
var (
	// ColorDate is green, used for the date segment.
	ColorDate = lipgloss.Color("2")

	// ColorTime is yellow, used for the time segment.
	ColorTime = lipgloss.Color("3")

	// ColorElapsed is blue, used for the elapsed delta.
	ColorElapsed = lipgloss.Color("4")
)

// Palette holds the styles used to render one spacer line.
// Styles are bound to a renderer for the output they are written to, so
// color detection follows that output rather than the process stdout.
type Palette struct {
	Date    lipgloss.Style
	Time    lipgloss.Style
	Elapsed lipgloss.Style
	Fill    lipgloss.Style

	mode ColorMode
}

// NewPalette creates a palette for output written to w.
func NewPalette(w io.Writer, mode ColorMode) *Palette {
	r := lipgloss.NewRenderer(w)

	switch mode {
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case ColorAuto:
		if !HasColorSupport() {
			r.SetColorProfile(termenv.Ascii)
		}
	}

	return &Palette{
		Date:    r.NewStyle().Foreground(ColorDate),
		Time:    r.NewStyle().Foreground(ColorTime),
		Elapsed: r.NewStyle().Foreground(ColorElapsed),
		Fill:    r.NewStyle().Faint(true),
		mode:    mode,
	}
}

// Mode returns the color mode the palette was built with.
func (p *Palette) Mode() ColorMode {
	return p.mode
}

// HasColorSupport returns true unless the environment opts out of color.
// Returns false if NO_COLOR is set (any value including empty string) or TERM=dumb.
// This follows the NO_COLOR standard: https://no-color.org/
func HasColorSupport() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}

	if os.Getenv("TERM") == "dumb" {
		return false
	}

	return true
}
