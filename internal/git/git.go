// Package git provides the small set of Git queries claudekit needs: the
// installer only touches .gitignore when the destination actually is a git
// checkout.
package git

import (
	"os/exec"
	"strings"
)

// IsGitRepository checks if the given directory is within a git repository
func IsGitRepository(dir string) bool {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	cmd.Dir = dir
	return cmd.Run() == nil
}

// RepositoryRoot returns the absolute path to the repository root containing
// dir, or an error when dir is not inside a repository.
func RepositoryRoot(dir string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}
