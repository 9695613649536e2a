package tui

import (
	"os"

	"golang.org/x/term"

	"github.com/mrz1836/spacer/internal/constants"
	"github.com/mrz1836/spacer/internal/errors"
)

// DefaultWidth is the spacer width used when the terminal size is unknown.
const DefaultWidth = constants.DefaultWidth

// WidthFunc reports the current terminal width in columns.
type WidthFunc func() (int, error)

// TerminalWidth returns a WidthFunc that queries the terminal attached to f.
// The size is read on every call so resizes are picked up between spacers.
func TerminalWidth(f *os.File) WidthFunc {
	return func() (int, error) {
		width, _, err := term.GetSize(int(f.Fd())) //nolint:gosec // G115: file descriptors fit in int
		if err != nil {
			return 0, errors.Wrap(errors.ErrTerminalSize, err.Error())
		}
		if width <= 0 {
			return 0, errors.ErrTerminalSize
		}
		return width, nil
	}
}

// FixedWidth returns a WidthFunc that always reports width.
func FixedWidth(width int) WidthFunc {
	return func() (int, error) {
		return width, nil
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: file descriptors fit in int
}
