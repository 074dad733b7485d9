// Package walk traverses a directory tree through types.FS.
//
// Entries are visited depth first, parents before children, with siblings
// in lexical order. The root is always resolved if it is a symlink. Below
// the root, symlinks are either reported as links (the default) or followed,
// in which case a link that leads back to a directory already on the current
// path fails the walk with a TRAVERSAL error.
package walk

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/icontheme/pkg/errors"
	"github.com/arthur-debert/icontheme/pkg/types"
)

// Options controls traversal
type Options struct {
	// FollowSymlinks descends into linked directories and reports linked
	// files with their target's info.
	FollowSymlinks bool
}

// Entry is a single visited path
type Entry struct {
	// Path is the logical path, rooted at the walk root as given
	Path string
	// Rel is Path relative to the root; "." for the root itself
	Rel string
	// Info is Lstat info when not following symlinks, Stat info otherwise
	Info fs.FileInfo
	// IsSymlink is set when Path itself is a symlink
	IsSymlink bool
}

// IsDir reports whether the entry is walked into
func (e Entry) IsDir() bool {
	return e.Info.IsDir()
}

// Func is called once per entry. A non-nil error stops the walk and is
// returned unchanged.
type Func func(entry Entry) error

type walker struct {
	fs        types.FS
	opts      Options
	fn        Func
	root      string
	ancestors []fs.FileInfo
}

// Walk visits root and everything beneath it.
func Walk(fsys types.FS, root string, opts Options, fn Func) error {
	info, err := fsys.Stat(root)
	if err != nil {
		return errors.Wrapf(err, errors.ErrTraversal, "cannot access %s", root).
			WithDetail(errors.DetailPath, root)
	}

	w := &walker{fs: fsys, opts: opts, fn: fn, root: root}
	return w.visit(Entry{Path: root, Rel: ".", Info: info})
}

func (w *walker) visit(entry Entry) error {
	if err := w.fn(entry); err != nil {
		return err
	}
	if !entry.IsDir() {
		return nil
	}

	w.ancestors = append(w.ancestors, entry.Info)
	defer func() { w.ancestors = w.ancestors[:len(w.ancestors)-1] }()

	children, err := w.fs.ReadDir(entry.Path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrTraversal, "cannot read directory %s", entry.Path).
			WithDetail(errors.DetailPath, entry.Path)
	}
	sort.Slice(children, func(i, j int) bool { return children[i].Name() < children[j].Name() })

	for _, child := range children {
		childEntry, err := w.entryFor(filepath.Join(entry.Path, child.Name()))
		if err != nil {
			return err
		}
		if err := w.visit(childEntry); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) entryFor(path string) (Entry, error) {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return Entry{}, errors.Wrapf(err, errors.ErrInternal, "cannot relate %s to %s", path, w.root)
	}

	info, err := w.fs.Lstat(path)
	if err != nil {
		return Entry{}, errors.Wrapf(err, errors.ErrTraversal, "cannot access %s", path).
			WithDetail(errors.DetailPath, path)
	}
	entry := Entry{Path: path, Rel: rel, Info: info, IsSymlink: info.Mode()&fs.ModeSymlink != 0}
	if !entry.IsSymlink || !w.opts.FollowSymlinks {
		return entry, nil
	}

	target, err := w.fs.Stat(path)
	if err != nil {
		return Entry{}, errors.Wrapf(err, errors.ErrTraversal, "cannot follow symlink %s", path).
			WithDetail(errors.DetailPath, path)
	}
	if target.IsDir() {
		for _, ancestor := range w.ancestors {
			if os.SameFile(ancestor, target) {
				return Entry{}, errors.Newf(errors.ErrTraversal, "symlink loop: %s points to an ancestor directory", path).
					WithDetail(errors.DetailPath, path)
			}
		}
	}
	entry.Info = target
	return entry, nil
}
