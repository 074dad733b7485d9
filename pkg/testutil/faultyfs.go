package testutil

import (
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/arthur-debert/icontheme/pkg/types"
)

// Operation names understood by FaultyFS
const (
	OpStat         = "stat"
	OpLstat        = "lstat"
	OpReadFile     = "readfile"
	OpWriteFile    = "writefile"
	OpOpen         = "open"
	OpCreate       = "create"
	OpWrite        = "write"
	OpMkdir        = "mkdir"
	OpMkdirAll     = "mkdirall"
	OpReadDir      = "readdir"
	OpSymlink      = "symlink"
	OpReadlink     = "readlink"
	OpCanonicalize = "canonicalize"
)

// ErrInjected is returned by operations FaultyFS was told to fail
var ErrInjected = errors.New("injected failure")

// FaultyFS wraps a types.FS and fails selected operations on paths whose
// base name matches a glob pattern.
type FaultyFS struct {
	types.FS

	mu     sync.Mutex
	faults map[string]string
	calls  map[string]int
}

// NewFaultyFS wraps base
func NewFaultyFS(base types.FS) *FaultyFS {
	return &FaultyFS{
		FS:     base,
		faults: make(map[string]string),
		calls:  make(map[string]int),
	}
}

// FailOn makes op fail for any path whose base name matches pattern.
func (f *FaultyFS) FailOn(op, pattern string) *FaultyFS {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.faults[op] = pattern
	return f
}

// Calls returns how many times op was invoked
func (f *FaultyFS) Calls(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *FaultyFS) check(op, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++

	pattern, ok := f.faults[op]
	if !ok {
		return nil
	}
	if matched, _ := filepath.Match(pattern, filepath.Base(name)); matched {
		return &fs.PathError{Op: op, Path: name, Err: ErrInjected}
	}
	return nil
}

func (f *FaultyFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.check(OpStat, name); err != nil {
		return nil, err
	}
	return f.FS.Stat(name)
}

func (f *FaultyFS) Lstat(name string) (fs.FileInfo, error) {
	if err := f.check(OpLstat, name); err != nil {
		return nil, err
	}
	return f.FS.Lstat(name)
}

func (f *FaultyFS) ReadFile(name string) ([]byte, error) {
	if err := f.check(OpReadFile, name); err != nil {
		return nil, err
	}
	return f.FS.ReadFile(name)
}

func (f *FaultyFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := f.check(OpWriteFile, name); err != nil {
		return err
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *FaultyFS) Open(name string) (io.ReadCloser, error) {
	if err := f.check(OpOpen, name); err != nil {
		return nil, err
	}
	return f.FS.Open(name)
}

// Create fails up front for OpCreate, or hands back a writer that fails on
// its first Write for OpWrite.
func (f *FaultyFS) Create(name string, perm fs.FileMode) (io.WriteCloser, error) {
	if err := f.check(OpCreate, name); err != nil {
		return nil, err
	}
	w, err := f.FS.Create(name, perm)
	if err != nil {
		return nil, err
	}
	if err := f.check(OpWrite, name); err != nil {
		return &failingWriter{WriteCloser: w, err: err}, nil
	}
	return w, nil
}

func (f *FaultyFS) Mkdir(path string, perm fs.FileMode) error {
	if err := f.check(OpMkdir, path); err != nil {
		return err
	}
	return f.FS.Mkdir(path, perm)
}

func (f *FaultyFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.check(OpMkdirAll, path); err != nil {
		return err
	}
	return f.FS.MkdirAll(path, perm)
}

func (f *FaultyFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.check(OpReadDir, name); err != nil {
		return nil, err
	}
	return f.FS.ReadDir(name)
}

func (f *FaultyFS) Symlink(oldname, newname string) error {
	if err := f.check(OpSymlink, newname); err != nil {
		return err
	}
	return f.FS.Symlink(oldname, newname)
}

func (f *FaultyFS) Readlink(name string) (string, error) {
	if err := f.check(OpReadlink, name); err != nil {
		return "", err
	}
	return f.FS.Readlink(name)
}

func (f *FaultyFS) Canonicalize(name string) (string, error) {
	if err := f.check(OpCanonicalize, name); err != nil {
		return "", err
	}
	return f.FS.Canonicalize(name)
}

type failingWriter struct {
	io.WriteCloser
	err error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	return 0, w.err
}
