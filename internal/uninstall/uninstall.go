// Package uninstall removes the files claudekit installed. It only ever
// touches the manifest's destination paths plus directories they leave
// empty, so user files sharing .claude/ survive an uninstall.
package uninstall

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ariel-frischer/claudekit/internal/manifest"
)

// Target represents one installed file to be removed
type Target struct {
	// Rel is the destination-relative path, for display.
	Rel string
	// Path is the absolute path on disk.
	Path string
	// Exists reports whether the target is currently on disk.
	Exists bool
}

// Result represents the outcome of removing one target
type Result struct {
	Target  Target
	Removed bool
	Err     error
}

// Targets returns the manifest's installed paths for the given mode under
// root, with Exists populated.
func Targets(mode manifest.Mode, root string) []Target {
	entries := manifest.Entries()
	targets := make([]Target, 0, len(entries))

	for _, entry := range entries {
		rel := entry.Dest(mode)
		abs := filepath.Join(root, rel)
		info, err := os.Stat(abs)
		targets = append(targets, Target{
			Rel:    rel,
			Path:   abs,
			Exists: err == nil && info.Mode().IsRegular(),
		})
	}

	return targets
}

// Run removes every existing target. With dryRun set it reports what would
// be removed without touching the filesystem. Unlike the installer, removal
// is best-effort: one failed removal does not stop the rest.
func Run(mode manifest.Mode, root string, dryRun bool) []Result {
	targets := Targets(mode, root)
	results := make([]Result, 0, len(targets))

	for _, target := range targets {
		if !target.Exists {
			results = append(results, Result{Target: target})
			continue
		}
		if dryRun {
			results = append(results, Result{Target: target, Removed: true})
			continue
		}

		err := os.Remove(target.Path)
		results = append(results, Result{
			Target:  target,
			Removed: err == nil,
			Err:     err,
		})
	}

	if !dryRun {
		pruneEmptyDirs(mode, root)
	}

	return results
}

// pruneEmptyDirs removes the directories the install created, deepest
// first, stopping silently at any directory that still has content.
func pruneEmptyDirs(mode manifest.Mode, root string) {
	seen := map[string]bool{}
	var dirs []string

	for _, entry := range manifest.Entries() {
		dir := filepath.Dir(entry.Dest(mode))
		for dir != "." && dir != string(filepath.Separator) {
			if !seen[dir] {
				seen[dir] = true
				dirs = append(dirs, dir)
			}
			dir = filepath.Dir(dir)
		}
	}

	// Deepest paths first so children go before parents.
	sort.Slice(dirs, func(i, j int) bool {
		return strings.Count(dirs[i], string(filepath.Separator)) > strings.Count(dirs[j], string(filepath.Separator))
	})

	for _, dir := range dirs {
		// Remove fails on non-empty directories, which is exactly the
		// guard needed here.
		os.Remove(filepath.Join(root, dir))
	}
}
