package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrz1836/spacer/internal/constants"
)

// AddVersionCommand adds the version command to the root command.
func AddVersionCommand(rootCmd *cobra.Command, info BuildInfo) {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", constants.AppName, formatVersion(info))
		},
	})
}
