// Package paths resolves where themes are installed.
//
// Themes are installed under the per-user icon directory,
// <home>/.local/share/icons, one directory per theme name. The ICONTHEME_ICONS_DIR
// environment variable replaces that root.
package paths
