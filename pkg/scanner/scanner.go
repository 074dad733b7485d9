package scanner

import (
	"sort"
	"unicode/utf8"

	"github.com/arthur-debert/icontheme/pkg/errors"
	"github.com/arthur-debert/icontheme/pkg/filesystem"
	"github.com/arthur-debert/icontheme/pkg/logging"
	"github.com/arthur-debert/icontheme/pkg/types"
	"github.com/arthur-debert/icontheme/pkg/walk"
	"github.com/rs/zerolog"
)

// DefaultPreviewLimit is the number of previews returned by a scan
const DefaultPreviewLimit = 5

// Options configures a Scanner
type Options struct {
	// Extension is the file type counted as matching, without the dot
	Extension string
	// PreviewLimit caps the previews returned; zero or less means the default
	PreviewLimit int
}

// Scanner counts and previews matching files in a directory tree
type Scanner struct {
	fs           types.FS
	extension    string
	previewLimit int
	logger       zerolog.Logger
}

type candidate struct {
	path string
	size uint64
}

// NewScanner creates a scanner over the OS filesystem
func NewScanner(opts Options) *Scanner {
	return NewScannerWithFS(opts, filesystem.NewOS())
}

// NewScannerWithFS creates a scanner over the given filesystem
func NewScannerWithFS(opts Options, fs types.FS) *Scanner {
	ext := opts.Extension
	if ext == "" {
		ext = types.DefaultExtension
	}
	limit := opts.PreviewLimit
	if limit <= 0 {
		limit = DefaultPreviewLimit
	}
	return &Scanner{
		fs:           fs,
		extension:    ext,
		previewLimit: limit,
		logger:       logging.GetLogger("scanner"),
	}
}

// Scan scans path with the default options on the OS filesystem
func Scan(path string) (*types.ScanResult, error) {
	return NewScanner(Options{}).Scan(path)
}

// Scan walks path and builds its summary.
func (s *Scanner) Scan(path string) (*types.ScanResult, error) {
	s.logger.Debug().
		Str("path", path).
		Str("extension", s.extension).
		Msg("Scanning directory")

	info, err := s.fs.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotADirectory, "'%s' is not a directory", path).
			WithDetail(errors.DetailPath, path)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrNotADirectory, "'%s' is not a directory", path).
			WithDetail(errors.DetailPath, path)
	}

	seen := make(map[string]bool)
	var matches []candidate
	nonMatching := 0

	err = walk.Walk(s.fs, path, walk.Options{FollowSymlinks: true}, func(e walk.Entry) error {
		if e.IsDir() {
			return nil
		}
		if !types.HasExtension(e.Path, s.extension) {
			nonMatching++
			return nil
		}

		canonical, err := s.fs.Canonicalize(e.Path)
		if err != nil {
			return errors.PathError(err, "canonicalize", e.Path)
		}
		if seen[canonical] {
			s.logger.Trace().
				Str("path", e.Path).
				Str("canonical", canonical).
				Msg("Skipping alias of a file already counted")
			return nil
		}
		seen[canonical] = true

		matches = append(matches, candidate{path: e.Path, size: uint64(e.Info.Size())})
		return nil
	})
	if err != nil {
		return nil, err
	}

	previews, err := s.previews(matches)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("path", path).
		Int("matching", len(matches)).
		Int("nonMatching", nonMatching).
		Int("previews", len(previews)).
		Msg("Scan complete")

	return &types.ScanResult{
		SourceDir:     path,
		PreviewItems:  previews,
		TotalMatching: len(matches),
		NonMatching:   nonMatching,
	}, nil
}

// previews reads the largest candidates. The slice is reordered in place.
func (s *Scanner) previews(matches []candidate) ([]types.PreviewItem, error) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].size > matches[j].size
	})
	if len(matches) > s.previewLimit {
		matches = matches[:s.previewLimit]
	}

	items := make([]types.PreviewItem, 0, len(matches))
	for _, m := range matches {
		data, err := s.fs.ReadFile(m.path)
		if err != nil {
			return nil, errors.PathError(err, "read", m.path)
		}
		if !utf8.Valid(data) {
			s.logger.Debug().
				Str("path", m.path).
				Msg("Leaving non UTF-8 file out of previews")
			continue
		}
		items = append(items, types.PreviewItem{
			Path:    m.path,
			Size:    m.size,
			Content: string(data),
		})
	}
	return items, nil
}
