// Package errors provides centralized error handling for spacer.
//
// Sentinel errors identify each failure kind so callers can branch with
// errors.Is(), Wrap/Wrapf add context at package boundaries, and
// UserMessage/Actionable turn an error into the one-line diagnostic the
// CLI prints on stderr.
//
// Import rules:
//   - CAN import: std lib only
//   - MUST NOT import: internal packages
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrInputRead indicates that reading a line from the input stream failed.
	ErrInputRead = errors.New("input read failed")

	// ErrOutputWrite indicates that writing a relayed line or a spacer to the
	// output stream failed. A half-written line cannot be resumed, so this
	// is always fatal.
	ErrOutputWrite = errors.New("output write failed")

	// ErrTerminalSize indicates that the terminal width could not be detected.
	// Callers recover by substituting the default width.
	ErrTerminalSize = errors.New("terminal size unavailable")

	// ErrUnknownTimezone indicates that a timezone name could not be resolved.
	// Callers recover by falling back to local time.
	ErrUnknownTimezone = errors.New("unknown timezone")

	// ErrConflictingFlags indicates that mutually exclusive flags were specified.
	ErrConflictingFlags = errors.New("conflicting flags specified")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrValueOutOfRange indicates that a value is outside the allowed range.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrInvalidDash indicates that the fill character is empty or longer
	// than a single character.
	ErrInvalidDash = errors.New("invalid fill character")

	// ErrInvalidDuration indicates that a duration format is invalid.
	ErrInvalidDuration = errors.New("invalid duration format")

	// ErrConfigExists indicates that config init would overwrite an existing file.
	ErrConfigExists = errors.New("config file already exists")

	// ErrUnsupportedOutputFormat indicates that an unsupported output format was specified.
	ErrUnsupportedOutputFormat = errors.New("unsupported output format")
)

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
