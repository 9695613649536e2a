package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/spacer/internal/config"
	"github.com/mrz1836/spacer/internal/constants"
	"github.com/mrz1836/spacer/internal/errors"
)

// ConfigShowFlags holds flags specific to the config show command.
type ConfigShowFlags struct {
	// OutputFormat specifies the output format (yaml or json).
	OutputFormat string
}

// AddConfigShowCommand adds the show subcommand to the config command.
func AddConfigShowCommand(configCmd *cobra.Command, v *viper.Viper, rootFlags *RootFlags) {
	flags := &ConfigShowFlags{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the effective spacer configuration with source annotations.

Shows the current configuration values and indicates where each value comes from:
  - flag: From a command-line flag
  - env: From a SPACER_* environment variable
  - file: From the config file
  - default: Built-in default value

Examples:
  spacer config show                  # Display config with sources
  spacer config show --output json    # Display config in JSON format
  spacer config show --after 2        # See how a flag changes the result`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd.Context(), cmd.OutOrStdout(), v, rootFlags.ConfigFile, changedFlagKeys(cmd.Flags().Changed), flags)
		},
	}

	cmd.Flags().StringVarP(&flags.OutputFormat, "output", "o", "yaml", "output format (yaml or json)")
	configCmd.AddCommand(cmd)
}

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates the value came from a command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates the value came from an environment variable.
	SourceEnv ConfigSource = "env"
	// SourceFile indicates the value came from the config file.
	SourceFile ConfigSource = "file"
	// SourceDefault indicates the value is a built-in default.
	SourceDefault ConfigSource = "default"
)

// ConfigValueWithSource represents a configuration value with its source.
type ConfigValueWithSource struct {
	Key    string       `json:"key" yaml:"key"`
	Value  any          `json:"value" yaml:"value"`
	Source ConfigSource `json:"source" yaml:"source"`
}

// AnnotatedConfig is the effective configuration with source annotations.
type AnnotatedConfig struct {
	File   string                  `json:"file,omitempty"`
	Values []ConfigValueWithSource `json:"values"`
}

// configShowStyles contains styling for the config show command output.
type configShowStyles struct {
	header     lipgloss.Style
	key        lipgloss.Style
	value      lipgloss.Style
	sourceFlag lipgloss.Style
	sourceEnv  lipgloss.Style
	sourceFile lipgloss.Style
	sourceDef  lipgloss.Style
	dim        lipgloss.Style
}

// newConfigShowStyles creates styles for config show output written to w.
func newConfigShowStyles(w io.Writer) *configShowStyles {
	r := lipgloss.NewRenderer(w)
	return &configShowStyles{
		header: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6")),
		key:        r.NewStyle().Foreground(lipgloss.Color("6")),
		value:      r.NewStyle(),
		sourceFlag: r.NewStyle().Foreground(lipgloss.Color("5")), // Magenta for flags (highest precedence)
		sourceEnv:  r.NewStyle().Foreground(lipgloss.Color("1")), // Red for env
		sourceFile: r.NewStyle().Foreground(lipgloss.Color("2")), // Green for file
		sourceDef:  r.NewStyle().Faint(true),
		dim:        r.NewStyle().Faint(true),
	}
}

// runConfigShow executes the config show command.
func runConfigShow(ctx context.Context, w io.Writer, v *viper.Viper, configFile string, flagKeysSet map[string]bool, flags *ConfigShowFlags) error {
	// Check cancellation at entry
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	format := strings.ToLower(flags.OutputFormat)
	if format != "yaml" && format != "json" {
		return fmt.Errorf("%w: %s (use yaml or json)", errors.ErrUnsupportedOutputFormat, flags.OutputFormat)
	}

	cfg, err := config.Load(ctx, v, configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	annotated := buildAnnotatedConfig(cfg, v, flagKeysSet)

	if format == "json" {
		return outputJSON(w, annotated)
	}
	return outputText(w, annotated)
}

// changedFlagKeys returns the configuration keys set by command-line flags.
// changed reports whether the named flag was given.
func changedFlagKeys(changed func(name string) bool) map[string]bool {
	keys := make(map[string]bool)
	for _, fk := range flagKeys {
		if changed(fk.flag) {
			keys[fk.key] = true
		}
	}
	if changed("no-color") || changed("force-color") {
		keys["color"] = true
	}
	return keys
}

// buildAnnotatedConfig pairs every configuration value with its source.
func buildAnnotatedConfig(cfg *config.Config, v *viper.Viper, flagKeysSet map[string]bool) *AnnotatedConfig {
	view := config.NewView(cfg)

	values := []struct {
		key   string
		value any
	}{
		{key: "after", value: view.After},
		{key: "dash", value: view.Dash},
		{key: "padding", value: view.Padding},
		{key: "width", value: view.Width},
		{key: "right", value: view.Right},
		{key: "timezone", value: view.Timezone},
		{key: "color", value: view.Color},
		{key: "log.file", value: view.Log.File},
	}

	annotated := &AnnotatedConfig{File: v.ConfigFileUsed()}
	for _, kv := range values {
		annotated.Values = append(annotated.Values, ConfigValueWithSource{
			Key:    kv.key,
			Value:  kv.value,
			Source: determineSource(kv.key, v, flagKeysSet),
		})
	}
	return annotated
}

// determineSource determines where a configuration value came from.
func determineSource(key string, v *viper.Viper, flagKeysSet map[string]bool) ConfigSource {
	if flagKeysSet[key] {
		return SourceFlag
	}

	envKey := constants.EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if envVal := os.Getenv(envKey); envVal != "" {
		return SourceEnv
	}

	if v.InConfig(key) {
		return SourceFile
	}

	return SourceDefault
}

// outputJSON outputs the configuration in JSON format.
func outputJSON(w io.Writer, annotated *AnnotatedConfig) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(annotated)
}

// outputText outputs the configuration as YAML-style lines with source
// comments.
func outputText(w io.Writer, annotated *AnnotatedConfig) error {
	styles := newConfigShowStyles(w)

	_, _ = fmt.Fprintln(w, styles.header.Render("Effective spacer configuration"))
	_, _ = fmt.Fprintln(w, styles.dim.Render("Sources: ")+
		styles.sourceFlag.Render("flag")+" > "+
		styles.sourceEnv.Render("env")+" > "+
		styles.sourceFile.Render("file")+" > "+
		styles.sourceDef.Render("default"))
	_, _ = fmt.Fprintln(w)

	section := ""
	for _, vs := range annotated.Values {
		key := vs.Key
		if parent, child, nested := strings.Cut(key, "."); nested {
			if parent != section {
				section = parent
				_, _ = fmt.Fprintln(w, styles.key.Render(parent+":"))
			}
			key = "  " + child
		}
		printConfigValue(w, styles, key, vs)
	}
	_, _ = fmt.Fprintln(w)

	if annotated.File != "" {
		_, _ = fmt.Fprintln(w, styles.dim.Render("Config file: ")+styles.sourceFile.Render(annotated.File))
	} else {
		_, _ = fmt.Fprintln(w, styles.dim.Render("Config file: (none)"))
	}
	return nil
}

// printConfigValue prints a configuration value with its source annotation.
func printConfigValue(w io.Writer, styles *configShowStyles, key string, vs ConfigValueWithSource) {
	_, _ = fmt.Fprintf(w, "%s: %s  %s\n",
		styles.key.Render(key),
		styles.value.Render(formatConfigValue(vs.Value)),
		getSourceStyle(vs.Source, styles).Render("# "+string(vs.Source)))
}

// formatConfigValue converts a configuration value to a displayable string.
func formatConfigValue(value any) string {
	switch v := value.(type) {
	case string:
		if v == "" {
			return "(not set)"
		}
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// getSourceStyle returns the appropriate style for a config source.
func getSourceStyle(source ConfigSource, styles *configShowStyles) lipgloss.Style {
	switch source {
	case SourceFlag:
		return styles.sourceFlag
	case SourceEnv:
		return styles.sourceEnv
	case SourceFile:
		return styles.sourceFile
	case SourceDefault:
		return styles.sourceDef
	default:
		return styles.sourceDef
	}
}
