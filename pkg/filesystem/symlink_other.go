//go:build !unix

package filesystem

// Exports from these platforms fail at the first symlink in the source tree.
const symlinksSupported = false
