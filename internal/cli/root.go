// Package cli provides Cobra-based CLI commands for the claudekit
// installer. The root command itself performs a project-mode install so
// that a bare `claudekit` invocation matches the original one-line
// installer; subcommands cover uninstall, doctor, manifest listing, and
// version information.
package cli

import (
	"github.com/ariel-frischer/claudekit/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "claudekit",
	Short: "Install Claude Code guideline files",
	Long: `claudekit installs a curated set of Claude Code guideline files
(coding standards, security checklists, commit/merge/issue skills) from a
hosted GitHub repository into your project.

Running claudekit with no arguments installs into the current directory:
CLAUDE.md at the project root and the guideline files under .claude/.
With --global the files install under ~/.claude/ instead, where Claude Code
picks them up for every project.

The source repository is configurable via .claudekit/config.json or the
CLAUDEKIT_SOURCE_ACCOUNT, CLAUDEKIT_SOURCE_REPO, and CLAUDEKIT_SOURCE_BRANCH
environment variables.`,
	Example: `  # Install into the current project
  claudekit

  # Install into ~/.claude for all projects
  claudekit --global

  # Install from a fork's branch
  CLAUDEKIT_SOURCE_ACCOUNT=acme CLAUDEKIT_SOURCE_BRANCH=v2 claudekit

  # Check that curl/wget and destinations are usable
  claudekit doctor`,
	Args:          cobra.NoArgs,
	RunE:          runInstall,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("global", "g", false, "Install into the home directory layout (~/.claude)")
	rootCmd.PersistentFlags().StringP("config", "c", config.LocalConfigPath, "Path to local config file")
}
