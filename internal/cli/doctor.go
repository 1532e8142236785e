package cli

import (
	"fmt"

	"github.com/ariel-frischer/claudekit/internal/health"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run health checks for claudekit dependencies",
	Long: `Run health checks to verify an install can succeed.

This command checks:
  - a transport tool (curl or wget) is available
  - git presence (optional; gates the .gitignore step)
  - the home directory resolves (required for --global)
  - the current directory is writable (required for project installs)

Each check displays a ✓ if passed or ✗ with an error message if failed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		report := health.RunHealthChecks()
		fmt.Fprint(cmd.OutOrStdout(), health.FormatReport(report))

		if !report.Passed {
			return fmt.Errorf("health checks failed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
