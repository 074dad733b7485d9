// Package scanner summarizes an icon source directory.
//
// A scan walks the tree following symlinks, counts files that carry the
// target extension (svg by default) and files that do not, and returns the
// text of the largest matching files as previews. Matching files reachable
// through several symlinked paths are counted once, keyed by their
// canonical path. Non-matching files are only counted.
//
// Previews are ordered by size, largest first; files of equal size keep the
// order in which the walk found them. Files that are not valid UTF-8 are
// left out of the previews but still counted.
//
// Scanning never writes to disk.
package scanner
