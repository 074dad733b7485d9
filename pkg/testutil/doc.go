// Package testutil provides helpers for tests that work on real directory
// trees.
//
// Key components:
//   - WriteTree: declarative setup of files and symlinks under a temp dir
//   - FaultyFS: a types.FS wrapper that fails chosen operations
//   - Checksum helpers for byte-for-byte comparisons
//
// Trees are always created under t.TempDir so each test is isolated and
// cleaned up by the testing package.
package testutil
