// Package filesystem provides the OS implementation of types.FS.
//
// Symlink creation is platform specific: on Unix it maps to os.Symlink, on
// other platforms it fails with a SYMLINK_UNSUPPORTED error instead of copying
// the link target.
package filesystem
