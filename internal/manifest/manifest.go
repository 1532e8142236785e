// Package manifest defines the fixed set of guideline files claudekit
// installs and where each one lands for a given install mode. The table is
// hardcoded on purpose: the installer never discovers files at runtime, so
// the set of paths it touches is knowable from this package alone.
package manifest

import (
	"fmt"
	"path/filepath"
)

// Mode selects the destination layout for an install.
type Mode string

const (
	// ModeProject installs into the current working directory
	// (./CLAUDE.md and ./.claude/...).
	ModeProject Mode = "project"
	// ModeGlobal installs into the user's home directory under ~/.claude/.
	ModeGlobal Mode = "global"
)

// String returns the mode name.
func (m Mode) String() string {
	return string(m)
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeProject || m == ModeGlobal
}

// Entry maps one remote file to its destination in each mode. All paths are
// relative; the destination root (cwd or home) is supplied by the caller.
type Entry struct {
	// Remote is the path appended to the source base URL.
	Remote string
	// Project is the destination relative to the project root.
	Project string
	// Global is the destination relative to the user's home directory.
	Global string
}

// Dest returns the entry's destination path for the given mode, relative to
// that mode's destination root.
func (e Entry) Dest(mode Mode) string {
	if mode == ModeGlobal {
		return e.Global
	}
	return e.Project
}

// guidelines are the flat Markdown files installed under the .claude
// directory (project) or ~/.claude/.claude (global).
var guidelines = []string{
	"security.md",
	"security-review.md",
	"testing.md",
	"api-design.md",
	"structure.md",
	"database.md",
	"standards.md",
}

// skills are the Claude Code skills installed one file per subdirectory.
var skills = []string{
	"commit",
	"merge",
	"issue",
}

// Entries returns the full manifest in install order: the top-level
// CLAUDE.md first, then guidelines, then skills. The order is stable so
// that a failed install always halts at a predictable point.
func Entries() []Entry {
	entries := make([]Entry, 0, 1+len(guidelines)+len(skills))

	entries = append(entries, Entry{
		Remote:  "CLAUDE.md",
		Project: "CLAUDE.md",
		Global:  filepath.Join(".claude", "CLAUDE.md"),
	})

	for _, name := range guidelines {
		entries = append(entries, Entry{
			Remote:  filepath.Join(".claude", name),
			Project: filepath.Join(".claude", name),
			Global:  filepath.Join(".claude", ".claude", name),
		})
	}

	for _, skill := range skills {
		rel := filepath.Join("skills", skill, "SKILL.md")
		entries = append(entries, Entry{
			Remote:  filepath.Join(".claude", rel),
			Project: filepath.Join(".claude", rel),
			Global:  filepath.Join(".claude", rel),
		})
	}

	return entries
}

// Validate checks the manifest invariants: every entry has a remote path and
// exactly one destination per mode, and no two entries collide on a
// destination. It exists so tests and doctor can assert the table is sound.
func Validate() error {
	seen := map[Mode]map[string]string{
		ModeProject: {},
		ModeGlobal:  {},
	}

	for _, e := range Entries() {
		if e.Remote == "" {
			return fmt.Errorf("manifest entry with empty remote path")
		}
		for _, mode := range []Mode{ModeProject, ModeGlobal} {
			dest := e.Dest(mode)
			if dest == "" {
				return fmt.Errorf("entry %s has no %s destination", e.Remote, mode)
			}
			if prev, ok := seen[mode][dest]; ok {
				return fmt.Errorf("entries %s and %s collide on %s destination %s", prev, e.Remote, mode, dest)
			}
			seen[mode][dest] = e.Remote
		}
	}

	return nil
}
