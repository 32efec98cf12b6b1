// Package cli implements the awsmock command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information, set from main via SetVersion.
var (
	version = "dev"
	commit  = "unknown"
)

// SetVersion records build-time version information for the version command.
func SetVersion(v, c string) {
	if v != "" {
		version = v
	}
	if c != "" {
		commit = c
	}
}

var rootCmd = &cobra.Command{
	Use:   "awsmock",
	Short: "awsmock is a local mock of AWS service APIs for testing",
	Long: `awsmock serves AWS service APIs from in-memory state so test suites can
run against localhost instead of real AWS. Currently implemented:
Comprehend entity recognizers (create, describe, list, stop-training,
delete, tagging).

State is partitioned by region and account id the way real AWS is, and
lives only for the lifetime of the process.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "awsmock %s (%s)\n", version, commit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
