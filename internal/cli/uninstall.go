package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/ariel-frischer/claudekit/internal/install"
	"github.com/ariel-frischer/claudekit/internal/manifest"
	"github.com/ariel-frischer/claudekit/internal/uninstall"
	"github.com/spf13/cobra"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the installed guideline files",
	Long: `Remove the guideline files a previous install wrote, and nothing
else: files you added under .claude/ yourself are untouched, and directories
are only deleted once empty.

Use --dry-run to preview what would be removed without making changes.
Use --yes to skip the confirmation prompt.

Note: the .gitignore entry added during install is left in place; it is
still correct advice even without the guideline files.`,
	Example: `  # Preview what would be removed
  claudekit uninstall --dry-run

  # Remove the project install
  claudekit uninstall

  # Remove the global install without confirmation
  claudekit uninstall --global --yes`,
	RunE: runUninstall,
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
	uninstallCmd.Flags().BoolP("dry-run", "n", false, "Show what would be removed without removing")
	uninstallCmd.Flags().BoolP("yes", "y", false, "Skip confirmation prompt")
}

func runUninstall(cmd *cobra.Command, args []string) error {
	global, _ := cmd.Flags().GetBool("global")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	yes, _ := cmd.Flags().GetBool("yes")

	mode := manifest.ModeProject
	if global {
		mode = manifest.ModeGlobal
	}

	destRoot, err := install.DefaultRoot(mode)
	if err != nil {
		return err
	}

	targets := uninstall.Targets(mode, destRoot)
	present := 0
	for _, target := range targets {
		if target.Exists {
			present++
		}
	}

	if present == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Nothing to remove under %s\n", destRoot)
		return nil
	}

	if !dryRun && !yes {
		fmt.Fprintf(cmd.OutOrStdout(), "Remove %d installed files under %s? [y/N] ", present, destRoot)
		reader := bufio.NewReader(cmd.InOrStdin())
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
			return nil
		}
	}

	results := uninstall.Run(mode, destRoot, dryRun)

	removed := 0
	var failed []uninstall.Result
	for _, result := range results {
		if result.Err != nil {
			failed = append(failed, result)
			continue
		}
		if result.Removed {
			removed++
			verb := "removed"
			if dryRun {
				verb = "would remove"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  - %s (%s)\n", result.Target.Rel, verb)
		}
	}

	for _, result := range failed {
		fmt.Fprintf(cmd.ErrOrStderr(), "failed to remove %s: %v\n", result.Target.Rel, result.Err)
	}

	if dryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "\nWould remove %d files\n", removed)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nRemoved %d files\n", removed)
	if len(failed) > 0 {
		return fmt.Errorf("%d files could not be removed", len(failed))
	}
	return nil
}
