package cli

import (
	"fmt"
	"runtime"

	"github.com/ariel-frischer/claudekit/internal/build"
	"github.com/ariel-frischer/claudekit/internal/update"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Long:  "Display version, commit, build date, and Go version information for claudekit",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "claudekit version %s\n", build.Version)
		fmt.Fprintf(cmd.OutOrStdout(), "Built from commit: %s\n", build.Commit)
		fmt.Fprintf(cmd.OutOrStdout(), "Build date: %s\n", build.BuildDate)
		fmt.Fprintf(cmd.OutOrStdout(), "Go version: %s\n", runtime.Version())

		checkUpdate, _ := cmd.Flags().GetBool("check-update")
		if !checkUpdate {
			return nil
		}

		checker := update.NewChecker(0)
		check, err := checker.CheckForUpdate(cmd.Context(), build.Version)
		if err != nil {
			return fmt.Errorf("checking for updates: %w", err)
		}

		if check.UpdateAvailable {
			fmt.Fprintf(cmd.OutOrStdout(), "\nUpdate available: %s -> %s\n", check.CurrentVersion, check.LatestVersion)
			if check.ReleaseURL != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Release notes: %s\n", check.ReleaseURL)
			}
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "\nclaudekit is up to date")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().Bool("check-update", false, "Check GitHub for a newer release")
}
