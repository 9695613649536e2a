package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/spacer/internal/constants"
	"github.com/mrz1836/spacer/internal/errors"
	"github.com/mrz1836/spacer/internal/signal"
	"github.com/mrz1836/spacer/internal/tui"
)

// Exit codes for the CLI.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0
	// ExitError indicates a general error.
	ExitError = 1
	// ExitInvalidInput indicates invalid user input.
	ExitInvalidInput = 2
	// ExitInterrupted indicates the run was canceled, as by SIGINT (128 + 2).
	ExitInterrupted = 130
)

// RootFlags holds the flags of the spacer command. They are persistent so
// 'spacer config show' reflects them.
type RootFlags struct {
	After      float64
	Dash       string
	Padding    int
	Width      int
	NoColor    bool
	ForceColor bool
	Right      bool
	Timezone   string

	// ConfigFile is an explicit config file path.
	ConfigFile string
	// LogFile is an optional rotating log file.
	LogFile string
	// Verbose enables debug-level logging.
	Verbose bool
	// Quiet suppresses non-essential output (warn level only).
	Quiet bool
}

// flagKeys maps flag names to configuration keys.
//
//nolint:gochecknoglobals // Static flag-to-key table
var flagKeys = []struct {
	flag string
	key  string
}{
	{flag: "after", key: "after"},
	{flag: "dash", key: "dash"},
	{flag: "padding", key: "padding"},
	{flag: "width", key: "width"},
	{flag: "right", key: "right"},
	{flag: "timezone", key: "timezone"},
	{flag: "log-file", key: "log.file"},
}

// AddRootFlags adds the spacer flags to a command.
func AddRootFlags(cmd *cobra.Command, flags *RootFlags) {
	pf := cmd.PersistentFlags()

	pf.Float64VarP(&flags.After, "after", "a", constants.DefaultAfter.Seconds(), "idle seconds before a spacer is printed")
	pf.StringVarP(&flags.Dash, "dash", "d", constants.DefaultDash, "fill character of the spacer line")
	pf.IntVarP(&flags.Padding, "padding", "p", 0, "blank lines before and after each spacer")
	pf.IntVarP(&flags.Width, "width", "w", 0, "fixed total spacer width (default: terminal width)")
	pf.BoolVar(&flags.NoColor, "no-color", false, "never colorize the spacer")
	pf.BoolVar(&flags.ForceColor, "force-color", false, "always colorize the spacer")
	pf.BoolVar(&flags.Right, "right", false, "put the timestamp on the right side")
	pf.StringVar(&flags.Timezone, "timezone", "", "IANA timezone for the timestamp (e.g. Europe/London)")

	pf.StringVar(&flags.ConfigFile, "config", "", "config file (default ~/.spacer/config.yaml)")
	pf.StringVar(&flags.LogFile, "log-file", "", "also write logs to this rotating file")
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false, "enable debug logging on stderr")
	pf.BoolVarP(&flags.Quiet, "quiet", "q", false, "only log warnings and errors")

	cmd.MarkFlagsMutuallyExclusive("no-color", "force-color")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

// BindFlags binds the spacer flags to Viper so they take precedence over
// SPACER_* environment variables, the config file, and defaults.
// The color flags collapse into the single "color" key.
func BindFlags(v *viper.Viper, cmd *cobra.Command, flags *RootFlags) error {
	// Use Root().PersistentFlags() to find flags defined on the root command,
	// even when called from a subcommand's PersistentPreRunE.
	rootFlags := cmd.Root().PersistentFlags()

	for _, fk := range flagKeys {
		if err := v.BindPFlag(fk.key, rootFlags.Lookup(fk.flag)); err != nil {
			return err
		}
	}

	if mode := tui.ColorModeFromFlags(flags.NoColor, flags.ForceColor); mode != tui.ColorAuto {
		v.Set("color", mode.String())
	}

	return nil
}

// InterruptedError reports that the run was stopped by a signal.
type InterruptedError struct {
	Signal os.Signal
}

// Error implements the error interface.
func (e *InterruptedError) Error() string {
	return fmt.Sprintf("interrupted by %s", e.Signal)
}

// Unwrap returns context.Canceled so callers can treat it as cancellation.
func (e *InterruptedError) Unwrap() error {
	return context.Canceled
}

// ExitCodeForError returns the appropriate exit code for the given error.
// Returns ExitSuccess (0) for nil errors, ExitInvalidInput (2) for user input
// errors (invalid flags, bad values), 128+n for a run stopped by signal n,
// ExitInterrupted for other cancellations, and ExitError (1) for all other
// errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var interrupted *InterruptedError
	if stderrors.As(err, &interrupted) {
		return signal.ExitCode(interrupted.Signal)
	}
	if stderrors.Is(err, context.Canceled) {
		return ExitInterrupted
	}

	// Check for our custom exit code 2 error wrapper
	if errors.IsExitCode2Error(err) {
		return ExitInvalidInput
	}

	if isInvalidValueError(err) {
		return ExitInvalidInput
	}

	// Check for Cobra flag parsing errors (mutually exclusive flags, unknown flags, etc.)
	if isInvalidInputError(err.Error()) {
		return ExitInvalidInput
	}

	return ExitError
}

// isInvalidValueError reports whether err carries a configuration sentinel.
func isInvalidValueError(err error) bool {
	for _, sentinel := range []error{
		errors.ErrConflictingFlags,
		errors.ErrValueOutOfRange,
		errors.ErrInvalidDash,
		errors.ErrInvalidDuration,
		errors.ErrUnsupportedOutputFormat,
	} {
		if stderrors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// isInvalidInputError checks if an error message indicates invalid user input.
// This catches Cobra's built-in flag validation errors.
func isInvalidInputError(errMsg string) bool {
	invalidInputPatterns := []string{
		"unknown flag",
		"unknown shorthand flag",
		"flag needs an argument",
		"invalid argument",
		"if any flags in the group",
		"required flag",
		"unknown command",
		"accepts 0 arg(s)",
	}

	for _, pattern := range invalidInputPatterns {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}
	return false
}

// wrapFlagGroupError tags Cobra's mutually-exclusive flag error with
// ErrConflictingFlags so it gets a user-facing message.
func wrapFlagGroupError(err error) error {
	if err != nil && strings.Contains(err.Error(), "if any flags in the group") {
		return fmt.Errorf("%w: %w", errors.ErrConflictingFlags, err)
	}
	return err
}
