package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Tree describes a directory layout. Keys are slash separated paths
// relative to the tree root.
type Tree struct {
	// Files maps a path to its content
	Files map[string]string
	// Binary maps a path to raw bytes
	Binary map[string][]byte
	// Dirs lists empty directories
	Dirs []string
	// Symlinks maps a link path to its target, written verbatim
	Symlinks map[string]string
}

// WriteTree creates tree under a fresh temp dir and returns its root.
func WriteTree(t *testing.T, tree Tree) string {
	t.Helper()
	root := t.TempDir()
	WriteTreeAt(t, root, tree)
	return root
}

// WriteTreeAt creates tree under root.
func WriteTreeAt(t *testing.T, root string, tree Tree) {
	t.Helper()

	for _, dir := range tree.Dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.FromSlash(dir)), 0755))
	}
	for name, content := range tree.Files {
		writeFile(t, filepath.Join(root, filepath.FromSlash(name)), []byte(content))
	}
	for name, data := range tree.Binary {
		writeFile(t, filepath.Join(root, filepath.FromSlash(name)), data)
	}
	for name, target := range tree.Symlinks {
		link := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(link), 0755))
		require.NoError(t, os.Symlink(target, link))
	}
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, data, 0644))
}

// ReadFile returns the content of a file, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
