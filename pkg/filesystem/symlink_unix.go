//go:build unix

package filesystem

const symlinksSupported = true
