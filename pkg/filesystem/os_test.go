//go:build unix

package filesystem

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/icontheme/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fs := NewOS()
	assert.NotNil(t, fs)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "icon.svg")
	testContent := []byte("<svg/>")

	require.NoError(t, fs.WriteFile(testFile, testContent, 0644))

	info, err := fs.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "icon.svg", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	subDir := filepath.Join(tmpDir, "scalable", "apps")
	require.NoError(t, fs.MkdirAll(subDir, 0755))

	entries, err := fs.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	err = fs.Mkdir(subDir, 0755)
	assert.True(t, os.IsExist(err), "Mkdir on an existing directory should fail")
}

func TestOSFS_OpenCreate(t *testing.T) {
	fs := NewOS()
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "src.png")
	dst := filepath.Join(tmpDir, "dst.png")
	require.NoError(t, os.WriteFile(src, []byte{0x89, 'P', 'N', 'G'}, 0600))

	in, err := fs.Open(src)
	require.NoError(t, err)
	out, err := fs.Create(dst, 0600)
	require.NoError(t, err)
	_, err = io.Copy(out, in)
	require.NoError(t, err)
	require.NoError(t, in.Close())
	require.NoError(t, out.Close())

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, got)
}

func TestOSFS_Symlinks(t *testing.T) {
	fs := NewOS()
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "real.svg")
	link := filepath.Join(tmpDir, "alias.svg")
	require.NoError(t, os.WriteFile(target, []byte("<svg/>"), 0644))

	require.NoError(t, fs.Symlink("real.svg", link))

	got, err := fs.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, "real.svg", got)

	info, err := fs.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	canonical, err := fs.Canonicalize(link)
	require.NoError(t, err)
	wantTarget, err := filepath.EvalSymlinks(target)
	require.NoError(t, err)
	assert.Equal(t, wantTarget, canonical)

	assert.True(t, symlinksSupported)

	// An existing destination is a plain OS error, not an unsupported platform
	err = fs.Symlink(target, link)
	require.Error(t, err)
	assert.True(t, os.IsExist(err))
	assert.False(t, errors.IsErrorCode(err, errors.ErrSymlinkUnsupported))
}
