// Package install copies the manifest's guideline files from the configured
// source repository into a local directory tree. Transfers run strictly in
// manifest order, one at a time, and the run halts on the first failure.
// There is no rollback: a partial install is recovered by re-running, which
// overwrites every file it fetches.
package install

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ariel-frischer/claudekit/internal/fetch"
	"github.com/ariel-frischer/claudekit/internal/manifest"
	"github.com/ariel-frischer/claudekit/internal/progress"
)

// Reporter receives per-file install events. progress.Display satisfies it.
type Reporter interface {
	StartFile(info progress.FileInfo) error
	CompleteFile(info progress.FileInfo)
	FailFile(info progress.FileInfo, err error)
}

// Options configures a single install run.
type Options struct {
	// Mode selects the destination layout.
	Mode manifest.Mode
	// BaseURL is the URL prefix remote paths are joined to.
	BaseURL string
	// DestRoot is the directory destinations are resolved against
	// (the project directory or the user's home).
	DestRoot string
	// Fetcher performs the transfers.
	Fetcher fetch.Fetcher
	// Timeout bounds each individual transfer. Zero means no bound beyond
	// the transport tool's own defaults.
	Timeout time.Duration
	// Reporter, when set, receives progress events.
	Reporter Reporter
}

// Result summarizes a successful install run.
type Result struct {
	// Installed lists destination-relative paths in install order.
	Installed []string
	// GitignoreUpdated is true when the .gitignore append step wrote.
	GitignoreUpdated bool
}

// Installer performs install runs over the static manifest.
type Installer struct {
	opts Options
}

// New validates the options and returns an Installer.
func New(opts Options) (*Installer, error) {
	if !opts.Mode.Valid() {
		return nil, fmt.Errorf("invalid install mode %q", opts.Mode)
	}
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if opts.DestRoot == "" {
		return nil, fmt.Errorf("destination root is required")
	}
	if opts.Fetcher == nil {
		return nil, fmt.Errorf("fetcher is required")
	}
	return &Installer{opts: opts}, nil
}

// Run installs every manifest entry. It returns a *TransferError on the
// first failed entry and never continues past it.
func (in *Installer) Run(ctx context.Context) (*Result, error) {
	entries := manifest.Entries()
	result := &Result{Installed: make([]string, 0, len(entries))}

	for i, entry := range entries {
		dest := entry.Dest(in.opts.Mode)
		info := progress.FileInfo{Path: dest, Number: i + 1, Total: len(entries)}

		if in.opts.Reporter != nil {
			if err := in.opts.Reporter.StartFile(info); err != nil {
				return nil, err
			}
		}

		if err := in.installEntry(ctx, entry, dest); err != nil {
			if in.opts.Reporter != nil {
				in.opts.Reporter.FailFile(info, err)
			}
			return nil, &TransferError{Path: dest, Err: err}
		}

		if in.opts.Reporter != nil {
			in.opts.Reporter.CompleteFile(info)
		}
		result.Installed = append(result.Installed, dest)
	}

	if in.opts.Mode == manifest.ModeProject {
		updated, err := EnsureGitignore(in.opts.DestRoot)
		if err != nil {
			return nil, fmt.Errorf("updating .gitignore: %w", err)
		}
		result.GitignoreUpdated = updated
	}

	return result, nil
}

// installEntry fetches one remote file and writes it to its destination,
// creating parent directories first.
func (in *Installer) installEntry(ctx context.Context, entry manifest.Entry, dest string) error {
	target := filepath.Join(in.opts.DestRoot, dest)
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	fetchCtx := ctx
	if in.opts.Timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, in.opts.Timeout)
		defer cancel()
	}

	data, err := in.opts.Fetcher.Fetch(fetchCtx, in.remoteURL(entry))
	if err != nil {
		return err
	}

	if err := os.WriteFile(target, data, 0644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}

	return nil
}

// remoteURL joins the base URL with an entry's remote path.
func (in *Installer) remoteURL(entry manifest.Entry) string {
	return in.opts.BaseURL + "/" + filepath.ToSlash(entry.Remote)
}

// DefaultRoot returns the destination root for a mode: the current working
// directory for project installs, the user's home directory for global ones.
func DefaultRoot(mode manifest.Mode) (string, error) {
	switch mode {
	case manifest.ModeGlobal:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		return home, nil
	case manifest.ModeProject:
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		return cwd, nil
	default:
		return "", fmt.Errorf("invalid install mode %q", mode)
	}
}
