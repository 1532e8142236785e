package install

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ariel-frischer/claudekit/internal/git"
)

// GitignoreEntry is the path Claude Code writes per-machine settings to;
// it never belongs in version control.
const GitignoreEntry = ".claude/settings.local.json"

const gitignoreComment = "# Claude Code local settings"

// isGitRepository is swapped in tests to avoid depending on the git binary.
var isGitRepository = git.IsGitRepository

// EnsureGitignore appends the settings entry to root/.gitignore. It only
// writes when root is a git checkout, the file already exists, and the
// entry is not already present, so repeated runs never duplicate it.
// Returns true when the file was modified.
func EnsureGitignore(root string) (bool, error) {
	if !isGitRepository(root) {
		return false, nil
	}

	path := filepath.Join(root, ".gitignore")
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		// No .gitignore means the project made a choice; don't create one.
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if strings.Contains(string(data), GitignoreEntry) {
		return false, nil
	}

	block := gitignoreComment + "\n" + GitignoreEntry + "\n"
	if len(data) > 0 && !bytes.HasSuffix(data, []byte("\n")) {
		block = "\n" + block
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return false, err
	}
	defer f.Close()

	if _, err := f.WriteString(block); err != nil {
		return false, err
	}

	return true, nil
}
