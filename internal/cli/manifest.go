package cli

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/ariel-frischer/claudekit/internal/manifest"
	"github.com/spf13/cobra"
)

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "List the files claudekit installs and where they go",
	Long: `List every file in the install manifest with its destination for
the selected mode. The manifest is fixed at build time; this command shows
exactly which paths an install will write and an uninstall will remove.`,
	RunE: runManifest,
}

func init() {
	rootCmd.AddCommand(manifestCmd)
}

func runManifest(cmd *cobra.Command, args []string) error {
	global, _ := cmd.Flags().GetBool("global")

	mode := manifest.ModeProject
	root := "."
	if global {
		mode = manifest.ModeGlobal
		root = "~"
	}

	if err := manifest.Validate(); err != nil {
		return fmt.Errorf("manifest is invalid: %w", err)
	}

	entries := manifest.Entries()
	fmt.Fprintf(cmd.OutOrStdout(), "%d files (%s mode):\n\n", len(entries), mode)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "REMOTE\tDESTINATION")
	for _, entry := range entries {
		dest := filepath.Join(root, entry.Dest(mode))
		fmt.Fprintf(w, "%s\t%s\n", filepath.ToSlash(entry.Remote), filepath.ToSlash(dest))
	}
	return w.Flush()
}
