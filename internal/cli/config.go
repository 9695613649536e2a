package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/spacer/internal/config"
)

// AddConfigCommand adds the config command group to the root command.
func AddConfigCommand(rootCmd *cobra.Command, v *viper.Viper, flags *RootFlags) {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and create the spacer configuration",
		Long: `Inspect and create the spacer configuration file.

Settings are resolved in this order (highest precedence first):
  1. Command-line flags
  2. SPACER_* environment variables (SPACER_AFTER, SPACER_LOG_FILE, ...)
  3. The config file (~/.spacer/config.yaml, or --config)
  4. Built-in defaults`,
		Args: cobra.NoArgs,
	}

	AddConfigShowCommand(configCmd, v, flags)
	AddConfigInitCommand(configCmd, flags)

	rootCmd.AddCommand(configCmd)
}

// ConfigInitFlags holds flags specific to the config init command.
type ConfigInitFlags struct {
	// Force overwrites an existing config file.
	Force bool
}

// AddConfigInitCommand adds the init subcommand to the config command.
func AddConfigInitCommand(configCmd *cobra.Command, rootFlags *RootFlags) {
	flags := &ConfigInitFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Long: `Write a config file with the default settings to ~/.spacer/config.yaml,
or to the path given with --config.

An existing file is left untouched unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd.Context(), cmd.OutOrStdout(), rootFlags.ConfigFile, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.Force, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(cmd)
}

// runConfigInit writes the default configuration to path, or to the
// default config path when path is empty.
func runConfigInit(ctx context.Context, w io.Writer, path string, flags *ConfigInitFlags) error {
	// Check cancellation at entry
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if path == "" {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			return err
		}
		path = defaultPath
	}

	if err := config.WriteFile(path, config.DefaultConfig(), flags.Force); err != nil {
		return err
	}

	success := lipgloss.NewRenderer(w).NewStyle().Foreground(lipgloss.Color("2"))
	_, _ = fmt.Fprintln(w, success.Render("✓ Wrote "+path))
	return nil
}
