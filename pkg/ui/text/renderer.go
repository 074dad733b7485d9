// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/icontheme/pkg/types"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output      io.Writer
	showContent bool
}

// New creates a new text renderer
func New(output io.Writer, showContent bool) (*Renderer, error) {
	return &Renderer{
		output:      output,
		showContent: showContent,
	}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	var b strings.Builder

	switch v := result.(type) {
	case *types.ScanResult:
		r.writeScan(&b, v)
	case *types.ExportResult:
		fmt.Fprintf(&b, "Exported theme to %s\n", v.OutputDir)
		fmt.Fprintf(&b, "  rewritten: %d\n", v.MatchingFiles)
		fmt.Fprintf(&b, "  copied:    %d\n", v.OtherFiles)
		fmt.Fprintf(&b, "  symlinks:  %d\n", v.SymlinksLinked)
	case *types.PaletteResult:
		if len(v.Colors) == 0 {
			fmt.Fprintf(&b, "No colors found in %s\n", v.SourceDir)
			break
		}
		fmt.Fprintf(&b, "Colors in %s (darkest first):\n", v.SourceDir)
		for _, c := range v.Colors {
			fmt.Fprintf(&b, "  %s\n", c)
		}
	default:
		// For unknown types, just print them
		fmt.Fprintf(&b, "%+v\n", result)
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

func (r *Renderer) writeScan(b *strings.Builder, v *types.ScanResult) {
	fmt.Fprintf(b, "Source: %s\n", v.SourceDir)
	fmt.Fprintf(b, "  matching files: %d\n", v.TotalMatching)
	fmt.Fprintf(b, "  other files:    %d\n", v.NonMatching)
	if len(v.PreviewItems) == 0 {
		return
	}

	fmt.Fprintf(b, "Largest files:\n")
	for _, item := range v.PreviewItems {
		fmt.Fprintf(b, "  %10d  %s\n", item.Size, item.Path)
	}
	if !r.showContent {
		return
	}
	for _, item := range v.PreviewItems {
		fmt.Fprintf(b, "\n--- %s\n%s\n", item.Path, strings.TrimRight(item.Content, "\n"))
	}
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
