package paths

import (
	"strings"

	"github.com/arthur-debert/icontheme/pkg/errors"
)

// ValidateThemeName ensures a theme name names a single directory.
// Theme names must:
// - Not be empty
// - Not contain path separators
// - Not be reserved names (. or ..)
// - Not contain control characters
func ValidateThemeName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New(errors.ErrInvalidInput, "theme name cannot be empty")
	}

	if strings.ContainsAny(name, "/\\") {
		return errors.Newf(errors.ErrInvalidInput, "theme name %q cannot contain path separators", name)
	}

	if name == "." || name == ".." {
		return errors.New(errors.ErrInvalidInput, "theme name cannot be '.' or '..'")
	}

	for _, r := range name {
		if r < 32 || r == 127 {
			return errors.New(errors.ErrInvalidInput, "theme name contains control characters")
		}
	}

	return nil
}
