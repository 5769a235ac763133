package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func TestScanDirectoryRecursive(t *testing.T) {
	root := writeTree(t, map[string]string{
		"app.py":              "",
		"api/routes.py":       "",
		"api/deep/more.py":    "",
		"README.md":           "",
		"api/notes.txt":       "",
		"__pycache__/junk.py": "",
		".git/hooks.py":       "",
		"venv/lib.py":         "",
	})

	files, err := NewDirectoryScanner().Scan([]string{root})
	require.NoError(t, err)

	want := []string{
		filepath.Join(root, "api/deep/more.py"),
		filepath.Join(root, "api/routes.py"),
		filepath.Join(root, "app.py"),
	}
	assert.Equal(t, want, files)
}

func TestScanExplicitFile(t *testing.T) {
	root := writeTree(t, map[string]string{"single.py": ""})
	path := filepath.Join(root, "single.py")

	files, err := NewDirectoryScanner().Scan([]string{path})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestScanDeduplicates(t *testing.T) {
	root := writeTree(t, map[string]string{"app.py": ""})
	path := filepath.Join(root, "app.py")

	files, err := NewDirectoryScanner().Scan([]string{path, root, path})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestScanMissingInput(t *testing.T) {
	_, err := NewDirectoryScanner().Scan([]string{filepath.Join(t.TempDir(), "gone")})
	assert.Error(t, err)
}
