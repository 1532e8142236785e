package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to dir/rel, creating parent directories.
func WriteFile(t *testing.T, dir, rel, content string) string {
	t.Helper()

	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", rel, err)
	}
	return path
}

// ReadFile reads dir/rel and fails the test on error.
func ReadFile(t *testing.T, dir, rel string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(dir, rel))
	if err != nil {
		t.Fatalf("failed to read %s: %v", rel, err)
	}
	return string(data)
}

// FileExists reports whether dir/rel exists as a regular file.
func FileExists(t *testing.T, dir, rel string) bool {
	t.Helper()

	info, err := os.Stat(filepath.Join(dir, rel))
	if err != nil {
		if os.IsNotExist(err) {
			return false
		}
		t.Fatalf("failed to stat %s: %v", rel, err)
	}
	return info.Mode().IsRegular()
}

// ListFiles returns all regular files under dir, as sorted dir-relative
// slash paths. Useful for asserting a run wrote exactly the expected tree.
func ListFiles(t *testing.T, dir string) []string {
	t.Helper()

	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("failed to walk %s: %v", dir, err)
	}
	return files
}
