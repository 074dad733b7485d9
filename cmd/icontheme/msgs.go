package icontheme

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Build icon themes from a directory of icons"
	MsgScanShort       = "Count icons in a directory and preview the largest"
	MsgScanLong        = "Scan walks DIR following symlinks, counts matching and other files, and shows the largest matching files. Icons reachable through several symlinks are counted once."
	MsgExportShort     = "Install a recolored copy of a directory as a theme"
	MsgExportLong      = "Export copies DIR into the icons directory as THEME, rewriting colors in matching files with the given mappings. The export fails if THEME already exists."
	MsgColorsShort     = "List the colors used by the largest icons"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgVersionFormat = "icontheme %s (commit %s, built %s)"

	// Error messages
	MsgErrNoCommand = "no command specified"
	MsgErrScan      = "failed to scan %s: %w"
	MsgErrExport    = "failed to export %s: %w"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Read settings from this file instead of the XDG config file"
	MsgFlagFormat    = "Output format: auto, term, text or json"
	MsgFlagNoColor   = "Disable colored output"
	MsgFlagExtension = "File extension treated as an icon"
	MsgFlagLimit     = "Number of largest icons to preview"
	MsgFlagContent   = "Print the content of previewed icons"
	MsgFlagMap       = "Color mapping FROM=TO, may be repeated; applied after --mappings"
	MsgFlagMappings  = "TOML or YAML file with color mappings"
	MsgFlagIconsDir  = "Install root for themes (default ~/.local/share/icons)"
)

// Long messages loaded from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
