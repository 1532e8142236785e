package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateHome points HOME at an empty temp directory so a developer's real
// ~/.claudekit/config.json can't leak into tests.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestLoadDefaults(t *testing.T) {
	isolateHome(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "ariel-frischer", cfg.SourceAccount)
	assert.Equal(t, "claude-guidelines", cfg.SourceRepo)
	assert.Equal(t, "main", cfg.SourceBranch)
	assert.Equal(t, "auto", cfg.Transport)
	assert.Equal(t, 120, cfg.Timeout)
	assert.True(t, cfg.ShowProgress)
}

func TestLoadEnvOverrides(t *testing.T) {
	isolateHome(t)
	t.Setenv("CLAUDEKIT_SOURCE_ACCOUNT", "acme")
	t.Setenv("CLAUDEKIT_SOURCE_REPO", "house-rules")
	t.Setenv("CLAUDEKIT_SOURCE_BRANCH", "v2")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "acme", cfg.SourceAccount)
	assert.Equal(t, "house-rules", cfg.SourceRepo)
	assert.Equal(t, "v2", cfg.SourceBranch)
	assert.Equal(t, "https://raw.githubusercontent.com/acme/house-rules/v2", cfg.ResolvedBaseURL())
}

func TestLoadLocalConfig(t *testing.T) {
	isolateHome(t)

	dir := t.TempDir()
	localPath := filepath.Join(dir, "config.json")
	content := `{"source_branch": "release", "transport": "wget", "timeout": 30}`
	require.NoError(t, os.WriteFile(localPath, []byte(content), 0644))

	cfg, err := Load(localPath)
	require.NoError(t, err)

	assert.Equal(t, "release", cfg.SourceBranch)
	assert.Equal(t, "wget", cfg.Transport)
	assert.Equal(t, 30, cfg.Timeout)
	// Untouched keys keep their defaults.
	assert.Equal(t, "ariel-frischer", cfg.SourceAccount)
}

func TestLoadGlobalConfig(t *testing.T) {
	home := isolateHome(t)

	globalDir := filepath.Join(home, ".claudekit")
	require.NoError(t, os.MkdirAll(globalDir, 0755))
	content := `{"source_account": "global-org"}`
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, "config.json"), []byte(content), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "global-org", cfg.SourceAccount)
}

func TestLoadPriorityEnvBeatsLocal(t *testing.T) {
	isolateHome(t)

	dir := t.TempDir()
	localPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(localPath, []byte(`{"source_branch": "local"}`), 0644))
	t.Setenv("CLAUDEKIT_SOURCE_BRANCH", "env")

	cfg, err := Load(localPath)
	require.NoError(t, err)
	assert.Equal(t, "env", cfg.SourceBranch)
}

func TestLoadValidation(t *testing.T) {
	tests := map[string]struct {
		env map[string]string
	}{
		"empty branch": {
			env: map[string]string{"CLAUDEKIT_SOURCE_BRANCH": ""},
		},
		"bad transport": {
			env: map[string]string{"CLAUDEKIT_TRANSPORT": "fetchmail"},
		},
		"bad base url": {
			env: map[string]string{"CLAUDEKIT_BASE_URL": "not a url"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			isolateHome(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestResolvedBaseURLOverride(t *testing.T) {
	t.Parallel()

	cfg := &Configuration{
		SourceAccount: "a",
		SourceRepo:    "r",
		SourceBranch:  "b",
		BaseURL:       "https://mirror.example.com/guidelines/",
	}
	assert.Equal(t, "https://mirror.example.com/guidelines", cfg.ResolvedBaseURL())
}
