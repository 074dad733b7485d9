package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/icontheme/pkg/errors"
)

// Environment variable names
const (
	// EnvIconsDir overrides the icon install root
	EnvIconsDir = "ICONTHEME_ICONS_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// AppName names the application's XDG subdirectories
const AppName = "icontheme"

// ConfigFileName is the user configuration file inside the XDG config dir
const ConfigFileName = "config.toml"

// iconsSubdir is the install root relative to the user's home
var iconsSubdir = filepath.Join(".local", "share", "icons")

// GetHomeDirectory returns the user's home directory.
func GetHomeDirectory() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	if xdg.Home != "" {
		return xdg.Home, nil
	}
	return "", errors.New(errors.ErrHomeDirUnavailable, "could not determine home directory")
}

// IconsDir returns the root that themes are installed into.
func IconsDir() (string, error) {
	home, err := GetHomeDirectory()
	if err != nil {
		return iconsDir(os.Getenv(EnvIconsDir), "")
	}
	return iconsDir(os.Getenv(EnvIconsDir), home)
}

func iconsDir(override, home string) (string, error) {
	if override != "" {
		return expandHome(override, home), nil
	}
	if home == "" {
		return "", errors.New(errors.ErrHomeDirUnavailable, "could not determine home directory")
	}
	return filepath.Join(home, iconsSubdir), nil
}

// ThemeDir joins a validated theme name onto root. An empty root resolves
// to IconsDir.
func ThemeDir(root, themeName string) (string, error) {
	if err := ValidateThemeName(themeName); err != nil {
		return "", err
	}
	if root == "" {
		var err error
		if root, err = IconsDir(); err != nil {
			return "", err
		}
	}
	return filepath.Join(root, themeName), nil
}

// ConfigFilePath returns the user configuration file if one exists.
func ConfigFilePath() (string, bool) {
	path, err := xdg.SearchConfigFile(filepath.Join(AppName, ConfigFileName))
	if err != nil {
		return "", false
	}
	return path, true
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	home, err := GetHomeDirectory()
	if err != nil {
		return path
	}
	return expandHome(path, home)
}

func expandHome(path, home string) string {
	if path == "" || path[0] != '~' || home == "" {
		return path
	}
	if len(path) == 1 {
		return home
	}
	// Handle both ~/ and ~
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(home, path[2:])
	}
	// ~something (not the user's home)
	return path
}
