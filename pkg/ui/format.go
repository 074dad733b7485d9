package ui

import (
	"os"
	"strings"

	"github.com/arthur-debert/icontheme/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how scan, export and palette results are written
type Format int

const (
	// FormatAuto picks terminal or text output from the writer's capabilities
	FormatAuto Format = iota
	// FormatTerminal styles output with lipgloss, pterm tables and glamour code blocks
	FormatTerminal
	// FormatText writes unstyled, line oriented output suitable for pipes
	FormatText
	// FormatJSON writes one JSON document per result or error
	FormatJSON
)

// canonical names, as accepted by --format and output.format
var formatNames = map[Format]string{
	FormatAuto:     "auto",
	FormatTerminal: "term",
	FormatText:     "text",
	FormatJSON:     "json",
}

// accepted spellings, including aliases
var formatAliases = map[string]Format{
	"":         FormatAuto,
	"auto":     FormatAuto,
	"term":     FormatTerminal,
	"terminal": FormatTerminal,
	"text":     FormatText,
	"plain":    FormatText,
	"json":     FormatJSON,
}

// String returns the canonical name of the format
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFormat parses a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s).
		WithDetail("format", s)
}

// DetectFormat chooses between terminal and text output for output.
// NO_COLOR, TERM=dumb, a non-tty writer or a writer without color support
// all yield text.
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return FormatText
	}

	fd := output.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return FormatText
	}

	// Profile of this writer, not of stdout: errors are rendered to stderr
	if termenv.NewOutput(output).ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}

// Resolve picks the concrete format for output. noColor downgrades
// terminal output to plain text; JSON is never affected.
func Resolve(format Format, noColor bool, output *os.File) Format {
	if format == FormatAuto {
		format = DetectFormat(output)
	}
	if noColor && format == FormatTerminal {
		return FormatText
	}
	return format
}
