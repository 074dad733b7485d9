package exporter

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/icontheme/pkg/colors"
	"github.com/arthur-debert/icontheme/pkg/errors"
	"github.com/arthur-debert/icontheme/pkg/filesystem"
	"github.com/arthur-debert/icontheme/pkg/logging"
	"github.com/arthur-debert/icontheme/pkg/paths"
	"github.com/arthur-debert/icontheme/pkg/types"
	"github.com/arthur-debert/icontheme/pkg/walk"
	"github.com/rs/zerolog"
)

// Permissions for created entries. Copied files keep their source mode.
const (
	dirPerm       fs.FileMode = 0755
	rewrittenPerm fs.FileMode = 0644
)

// Options holds the inputs of a single export
type Options struct {
	// SourceDir is the tree to export
	SourceDir string
	// ThemeName is the directory created under IconsDir
	ThemeName string
	// Mappings are applied in order to every matching file
	Mappings []types.ColorMapping
	// IconsDir overrides the install root; empty means paths.IconsDir
	IconsDir string
	// Extension selects the files to rewrite, without the dot
	Extension string
}

// Exporter writes themes through a types.FS
type Exporter struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewExporter creates an exporter over the OS filesystem
func NewExporter() *Exporter {
	return NewExporterWithFS(filesystem.NewOS())
}

// NewExporterWithFS creates an exporter over the given filesystem
func NewExporterWithFS(fs types.FS) *Exporter {
	return &Exporter{
		fs:     fs,
		logger: logging.GetLogger("exporter"),
	}
}

// ExportTheme exports sourceDir as themeName under the default icons dir.
func ExportTheme(sourceDir, themeName string, mappings []types.ColorMapping) (*types.ExportResult, error) {
	return NewExporter().Export(Options{
		SourceDir: sourceDir,
		ThemeName: themeName,
		Mappings:  mappings,
	})
}

// Export runs one export.
func (e *Exporter) Export(opts Options) (*types.ExportResult, error) {
	ext := opts.Extension
	if ext == "" {
		ext = types.DefaultExtension
	}

	outputDir, err := paths.ThemeDir(opts.IconsDir, opts.ThemeName)
	if err != nil {
		return nil, err
	}

	e.logger.Debug().
		Str("source", opts.SourceDir).
		Str("output", outputDir).
		Int("mappings", len(opts.Mappings)).
		Msg("Exporting theme")

	info, err := e.fs.Stat(opts.SourceDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotADirectory, "'%s' is not a directory", opts.SourceDir).
			WithDetail(errors.DetailPath, opts.SourceDir)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrNotADirectory, "'%s' is not a directory", opts.SourceDir).
			WithDetail(errors.DetailPath, opts.SourceDir)
	}

	if err := e.checkOutsideSource(opts.SourceDir, outputDir); err != nil {
		return nil, err
	}

	if err := e.createThemeDir(opts.ThemeName, outputDir); err != nil {
		return nil, err
	}

	result := &types.ExportResult{OutputDir: outputDir}
	err = walk.Walk(e.fs, opts.SourceDir, walk.Options{}, func(entry walk.Entry) error {
		if entry.Rel == "." {
			return nil
		}
		dest := filepath.Join(outputDir, entry.Rel)

		switch {
		case entry.IsSymlink:
			if err := e.linkEntry(entry, dest); err != nil {
				return err
			}
			result.SymlinksLinked++
		case entry.IsDir():
			if err := e.fs.MkdirAll(dest, dirPerm); err != nil {
				return errors.PathError(err, "mkdir", dest)
			}
		case types.HasExtension(entry.Path, ext):
			if err := e.rewriteEntry(entry, dest, opts.Mappings); err != nil {
				return err
			}
			result.MatchingFiles++
		default:
			if err := e.copyEntry(entry, dest); err != nil {
				return err
			}
			result.OtherFiles++
		}
		return nil
	})
	if err != nil {
		e.logger.Error().
			Err(err).
			Str("output", outputDir).
			Msg("Export aborted, partial output left in place")
		return nil, err
	}

	e.logger.Info().
		Str("output", outputDir).
		Int("rewritten", result.MatchingFiles).
		Int("copied", result.OtherFiles).
		Int("symlinks", result.SymlinksLinked).
		Msg("Theme exported")
	return result, nil
}

// createThemeDir creates the output directory, failing if anything already
// occupies its path. The final Mkdir is not recursive, so a theme created
// concurrently is still reported as existing.
func (e *Exporter) createThemeDir(themeName, outputDir string) error {
	if _, err := e.fs.Lstat(outputDir); err == nil {
		return alreadyExists(themeName, outputDir)
	} else if !os.IsNotExist(err) {
		return errors.PathError(err, "stat", outputDir)
	}

	parent := filepath.Dir(outputDir)
	if err := e.fs.MkdirAll(parent, dirPerm); err != nil {
		return errors.PathError(err, "mkdir", parent)
	}
	if err := e.fs.Mkdir(outputDir, dirPerm); err != nil {
		if os.IsExist(err) {
			return alreadyExists(themeName, outputDir)
		}
		return errors.PathError(err, "mkdir", outputDir)
	}
	return nil
}

// checkOutsideSource rejects an output directory that the walk of the
// source tree would reach, which would otherwise copy the theme into itself.
func (e *Exporter) checkOutsideSource(sourceDir, outputDir string) error {
	src, err := e.fs.Canonicalize(sourceDir)
	if err != nil {
		return errors.PathError(err, "canonicalize", sourceDir)
	}
	out, err := e.resolveExisting(outputDir)
	if err != nil {
		return errors.PathError(err, "canonicalize", outputDir)
	}

	rel, err := filepath.Rel(src, out)
	if err != nil {
		return nil
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil
	}
	return errors.Newf(errors.ErrInvalidInput, "output directory %s is inside source %s", outputDir, sourceDir).
		WithDetail(errors.DetailPath, outputDir)
}

// resolveExisting canonicalizes the longest existing prefix of path and
// appends the components that do not exist yet.
func (e *Exporter) resolveExisting(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	missing := ""
	for dir := abs; ; dir = filepath.Dir(dir) {
		if real, err := e.fs.Canonicalize(dir); err == nil {
			return filepath.Join(real, missing), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return abs, nil
		}
		missing = filepath.Join(filepath.Base(dir), missing)
	}
}

func alreadyExists(themeName, outputDir string) error {
	return errors.Newf(errors.ErrAlreadyExists, "theme '%s' already exists at %s", themeName, outputDir).
		WithDetail(errors.DetailPath, outputDir)
}

func (e *Exporter) ensureParent(dest string) error {
	parent := filepath.Dir(dest)
	if err := e.fs.MkdirAll(parent, dirPerm); err != nil {
		return errors.PathError(err, "mkdir", parent)
	}
	return nil
}

func (e *Exporter) linkEntry(entry walk.Entry, dest string) error {
	target, err := e.fs.Readlink(entry.Path)
	if err != nil {
		return errors.PathError(err, "readlink", entry.Path)
	}
	if err := e.ensureParent(dest); err != nil {
		return err
	}
	if err := e.fs.Symlink(target, dest); err != nil {
		if errors.IsErrorCode(err, errors.ErrSymlinkUnsupported) {
			return err
		}
		return errors.PathError(err, "symlink", dest)
	}
	e.logger.Trace().Str("link", dest).Str("target", target).Msg("Recreated symlink")
	return nil
}

func (e *Exporter) rewriteEntry(entry walk.Entry, dest string, mappings []types.ColorMapping) error {
	data, err := e.fs.ReadFile(entry.Path)
	if err != nil {
		return errors.PathError(err, "read", entry.Path)
	}
	if !utf8.Valid(data) {
		return errors.Newf(errors.ErrIO, "read %s: file is not valid UTF-8", entry.Path).
			WithDetail(errors.DetailOp, "read").
			WithDetail(errors.DetailPath, entry.Path)
	}
	if err := e.ensureParent(dest); err != nil {
		return err
	}

	out := colors.ApplyMappings(string(data), mappings)
	if err := e.fs.WriteFile(dest, []byte(out), rewrittenPerm); err != nil {
		return errors.PathError(err, "write", dest)
	}
	return nil
}

func (e *Exporter) copyEntry(entry walk.Entry, dest string) error {
	if !entry.Info.Mode().IsRegular() {
		return errors.Newf(errors.ErrIO, "copy %s: not a regular file", entry.Path).
			WithDetail(errors.DetailOp, "copy").
			WithDetail(errors.DetailPath, entry.Path)
	}
	if err := e.ensureParent(dest); err != nil {
		return err
	}

	if err := e.copyFile(entry.Path, dest, entry.Info.Mode().Perm()); err != nil {
		return errors.PathError(err, "copy", entry.Path)
	}
	return nil
}

func (e *Exporter) copyFile(src, dest string, perm fs.FileMode) (err error) {
	in, err := e.fs.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := e.fs.Create(dest, perm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}
