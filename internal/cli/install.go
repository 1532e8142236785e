package cli

import (
	"fmt"
	"time"

	"github.com/ariel-frischer/claudekit/internal/config"
	"github.com/ariel-frischer/claudekit/internal/fetch"
	"github.com/ariel-frischer/claudekit/internal/install"
	"github.com/ariel-frischer/claudekit/internal/manifest"
	"github.com/ariel-frischer/claudekit/internal/progress"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the guideline files (same as running claudekit with no arguments)",
	Long: `Install the guideline files into the current project, or with
--global into ~/.claude/.

Files are fetched one at a time in a fixed order and written in place,
overwriting previous versions. The install halts at the first failed
transfer; re-running it is always safe and re-fetches everything.

In project mode, if the project has a .gitignore it gains an entry for
.claude/settings.local.json (Claude Code's per-machine settings file),
added at most once.`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
}

// detectTransport is swapped in command tests.
var detectTransport = fetch.Detect

func runInstall(cmd *cobra.Command, args []string) error {
	global, _ := cmd.Flags().GetBool("global")
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	mode := manifest.ModeProject
	if global {
		mode = manifest.ModeGlobal
	}

	// The transport probe runs before anything touches the filesystem.
	fetcher, err := detectTransport(cfg.Transport)
	if err != nil {
		return err
	}

	destRoot, err := install.DefaultRoot(mode)
	if err != nil {
		return err
	}

	opts := install.Options{
		Mode:     mode,
		BaseURL:  cfg.ResolvedBaseURL(),
		DestRoot: destRoot,
		Fetcher:  fetcher,
		Timeout:  time.Duration(cfg.Timeout) * time.Second,
	}

	var display *progress.Display
	if cfg.ShowProgress {
		display = progress.NewDisplay(progress.DetectTerminalCapabilities())
		display.SetOutput(cmd.OutOrStdout())
		defer display.Stop()
		opts.Reporter = display
	}

	installer, err := install.New(opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Installing Claude guidelines from %s (%s mode)\n", opts.BaseURL, mode)

	result, err := installer.Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nInstalled %d files to %s\n", len(result.Installed), destRoot)
	if result.GitignoreUpdated {
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s to .gitignore\n", install.GitignoreEntry)
	}

	return nil
}
