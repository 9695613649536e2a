// Package cli provides the command-line interface for spacer.
package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/spacer/internal/config"
	"github.com/mrz1836/spacer/internal/signal"
	"github.com/mrz1836/spacer/internal/spacer"
	"github.com/mrz1836/spacer/internal/tui"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// globalLogger stores the initialized logger for use by subcommands.
// This is set during PersistentPreRunE and should be accessed via GetLogger.
// Access is protected by globalLoggerMu for thread safety.
var (
	globalLogger   zerolog.Logger //nolint:gochecknoglobals // CLI logger requires global access
	globalLoggerMu sync.RWMutex   //nolint:gochecknoglobals // Protects globalLogger
)

// GetLogger returns the initialized logger for use by subcommands.
//
// IMPORTANT: This function MUST only be called after the root command's
// PersistentPreRunE has executed. Calling it before initialization will
// return a zero-value logger that discards all log output.
//
// This function is safe for concurrent use.
func GetLogger() zerolog.Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}

func setLogger(logger zerolog.Logger) {
	globalLoggerMu.Lock()
	globalLogger = logger
	globalLoggerMu.Unlock()
}

// newRootCmd creates and returns the root command for the spacer CLI.
// This function-based approach avoids package-level globals, making the
// code more testable and avoiding gochecknoglobals linter warnings.
func newRootCmd(flags *RootFlags, info BuildInfo) *cobra.Command {
	v := config.NewViper()

	// activeLogFile is the log file the logger was built with before the
	// config file was read.
	var activeLogFile string

	cmd := &cobra.Command{
		Use:   "spacer",
		Short: "Insert a spacer line when command output pauses",
		Long: `spacer copies standard input to standard output line by line and prints a
timestamped spacer line whenever the input has been idle for a while.

Pipe any bursty output through it to see where one burst ends and the next
begins, and how long the pause between them was.`,
		Example: `  tail -f app.log | spacer
  make 2>&1 | spacer --after 0.5 --dash '='
  spacer --right --timezone Europe/London < events.log`,
		Version: formatVersion(info),
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Bind flags to Viper
			if err := BindFlags(v, cmd, flags); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			activeLogFile = v.GetString("log.file")
			logger := InitLogger(flags.Verbose, flags.Quiet, activeLogFile)
			setLogger(logger)
			cmd.SetContext(logger.WithContext(cmd.Context()))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSpacer(cmd.Context(), cmd, v, flags, activeLogFile)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			CloseLogFile()
		},
		// SilenceUsage prevents printing usage on error
		// (we handle our own error messages)
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	AddRootFlags(cmd, flags)

	AddConfigCommand(cmd, v, flags)
	AddVersionCommand(cmd, info)

	return cmd
}

// runSpacer loads the configuration and relays stdin to stdout until end of
// input or a signal.
func runSpacer(ctx context.Context, cmd *cobra.Command, v *viper.Viper, flags *RootFlags, activeLogFile string) error {
	cfg, err := config.Load(ctx, v, flags.ConfigFile)
	if err != nil {
		return err
	}

	// A log file named only in the config file is attached now.
	if cfg.Log.File != activeLogFile {
		logger := InitLogger(flags.Verbose, flags.Quiet, cfg.Log.File)
		setLogger(logger)
		ctx = logger.WithContext(ctx)
	}

	h := signal.NewHandler(ctx)
	defer h.Stop()

	out := cmd.OutOrStdout()
	stats, err := spacer.Run(h.Context(), cmd.InOrStdin(), out, spacer.FromConfig(cfg), spacer.Options{
		Palette: tui.NewPalette(out, tui.ParseColorMode(cfg.Color)),
		Width:   outputWidth(out),
		Stderr:  cmd.ErrOrStderr(),
	})

	zerolog.Ctx(ctx).Debug().
		Int64("lines", stats.Lines).
		Int64("spacers", stats.Spacers).
		Msg("spacer exited")

	if sig := h.Signal(); sig != nil && stderrors.Is(err, context.Canceled) {
		return &InterruptedError{Signal: sig}
	}
	return err
}

// outputWidth returns a width query for the terminal behind out, or nil
// when out is not a file.
func outputWidth(out io.Writer) tui.WidthFunc {
	if f, ok := out.(*os.File); ok {
		return tui.TerminalWidth(f)
	}
	return nil
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command with the provided context and build info.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &RootFlags{}
	//nolint:contextcheck // Cobra command pattern uses cmd.Context() internally
	cmd := newRootCmd(flags, info)
	return wrapFlagGroupError(cmd.ExecuteContext(ctx))
}
