package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "fieldops",
	Short: "fieldops - field-operations console for solar installations",
	Long: `fieldops is the field-operations console for a solar-installation
business. Employees see their provisioning tasks on a status board, move
tasks through the pipeline, and submit stage-specific records such as
payments, document bundles, and installation reports.

Task statuses only move forward (pending, in-progress, completed) and each
work type resolves to its own interaction panel with its own required
fields and documents.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fieldops %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
