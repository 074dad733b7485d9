// Package exporter installs a recolored copy of an icon source tree as a
// new theme.
//
// The theme is written to <icons dir>/<theme name>, where the icons dir is
// ~/.local/share/icons unless overridden. An existing theme is never
// touched: the export fails with ALREADY_EXISTS if anything is present at
// the output path.
//
// The source is walked without following symlinks:
//   - directories are recreated
//   - symlinks are recreated with their target text unchanged
//   - matching files (svg by default) are rewritten through the color
//     mappings
//   - every other regular file is copied byte for byte
//
// The first failure aborts the export. Whatever was written up to that
// point is left in place.
package exporter
