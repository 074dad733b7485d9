package types

import (
	"path/filepath"
	"strings"
)

// DefaultExtension is the vector image extension matched by default
const DefaultExtension = "svg"

// Extension returns the part of the base name after its last dot. A dot that
// starts the name does not begin an extension, so ".svg" has none.
func Extension(path string) (string, bool) {
	name := filepath.Base(path)
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 {
		return "", false
	}
	return name[idx+1:], true
}

// HasExtension reports whether path has extension ext, ignoring ASCII case.
// ext is given without its leading dot.
func HasExtension(path, ext string) bool {
	got, ok := Extension(path)
	return ok && strings.EqualFold(got, strings.TrimPrefix(ext, "."))
}
