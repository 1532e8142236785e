package install

import (
	"testing"

	"github.com/ariel-frischer/claudekit/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureGitignoreAppends(t *testing.T) {
	inGitRepo(t)

	root := t.TempDir()
	testutil.WriteFile(t, root, ".gitignore", "node_modules/\n")

	updated, err := EnsureGitignore(root)
	require.NoError(t, err)
	assert.True(t, updated)

	content := testutil.ReadFile(t, root, ".gitignore")
	assert.Equal(t, "node_modules/\n# Claude Code local settings\n.claude/settings.local.json\n", content)
}

func TestEnsureGitignoreMissingTrailingNewline(t *testing.T) {
	inGitRepo(t)

	root := t.TempDir()
	testutil.WriteFile(t, root, ".gitignore", "node_modules/")

	updated, err := EnsureGitignore(root)
	require.NoError(t, err)
	assert.True(t, updated)

	content := testutil.ReadFile(t, root, ".gitignore")
	assert.Contains(t, content, "node_modules/\n# Claude Code local settings\n")
}

func TestEnsureGitignoreAlreadyPresent(t *testing.T) {
	inGitRepo(t)

	root := t.TempDir()
	original := "bin/\n.claude/settings.local.json\n"
	testutil.WriteFile(t, root, ".gitignore", original)

	updated, err := EnsureGitignore(root)
	require.NoError(t, err)
	assert.False(t, updated)
	assert.Equal(t, original, testutil.ReadFile(t, root, ".gitignore"))
}

func TestEnsureGitignoreNoFile(t *testing.T) {
	inGitRepo(t)

	root := t.TempDir()
	updated, err := EnsureGitignore(root)
	require.NoError(t, err)
	assert.False(t, updated)
	assert.False(t, testutil.FileExists(t, root, ".gitignore"))
}

func TestEnsureGitignoreNotARepo(t *testing.T) {
	noGitRepo(t)

	root := t.TempDir()
	testutil.WriteFile(t, root, ".gitignore", "bin/\n")

	updated, err := EnsureGitignore(root)
	require.NoError(t, err)
	assert.False(t, updated)
	assert.Equal(t, "bin/\n", testutil.ReadFile(t, root, ".gitignore"))
}

func TestEnsureGitignoreEmptyFile(t *testing.T) {
	inGitRepo(t)

	root := t.TempDir()
	testutil.WriteFile(t, root, ".gitignore", "")

	updated, err := EnsureGitignore(root)
	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, "# Claude Code local settings\n.claude/settings.local.json\n", testutil.ReadFile(t, root, ".gitignore"))
}
