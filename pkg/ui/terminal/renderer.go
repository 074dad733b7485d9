// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/arthur-debert/icontheme/pkg/errors"
	"github.com/arthur-debert/icontheme/pkg/logging"
	"github.com/arthur-debert/icontheme/pkg/types"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

// Renderer provides rich terminal output using lipgloss and pterm
type Renderer struct {
	output      io.Writer
	styles      styles
	showContent bool
}

// New creates a new terminal renderer
func New(w io.Writer, showContent bool) (*Renderer, error) {
	r := lipgloss.NewRenderer(w)
	logger := logging.GetLogger("ui.terminal")
	logger.Debug().
		Str("colorProfile", fmt.Sprintf("%v", r.ColorProfile())).
		Msg("Lipgloss renderer created")

	return &Renderer{
		output:      w,
		styles:      newStyles(r),
		showContent: showContent,
	}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	var (
		out string
		err error
	)

	switch v := result.(type) {
	case *types.ScanResult:
		out, err = r.scan(v)
	case *types.ExportResult:
		out = r.export(v)
	case *types.PaletteResult:
		out = r.palette(v)
	default:
		// For unknown types, just print them
		out = fmt.Sprintf("%+v\n", result)
	}
	if err != nil {
		return err
	}

	_, err = io.WriteString(r.output, out)
	return err
}

func (r *Renderer) field(label string, value interface{}) string {
	return r.styles.label.Render(label) + r.styles.value.Render(fmt.Sprint(value)) + "\n"
}

func (r *Renderer) scan(v *types.ScanResult) (string, error) {
	var b strings.Builder
	b.WriteString(r.styles.title.Render("Scanned "+v.SourceDir) + "\n")
	b.WriteString(r.field("matching files", v.TotalMatching))
	b.WriteString(r.field("other files", v.NonMatching))

	if len(v.PreviewItems) == 0 {
		return b.String(), nil
	}

	data := pterm.TableData{{"Size", "Path"}}
	for _, item := range v.PreviewItems {
		data = append(data, []string{formatSize(item.Size), item.Path})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", fmt.Errorf("failed to render preview table: %w", err)
	}
	b.WriteString("\n" + table + "\n")

	if r.showContent {
		for _, item := range v.PreviewItems {
			b.WriteString("\n" + r.styles.path.Render(item.Path) + "\n")
			b.WriteString(renderSource(item.Content))
		}
	}
	return b.String(), nil
}

func (r *Renderer) export(v *types.ExportResult) string {
	var b strings.Builder
	b.WriteString(r.styles.success.Sprint("✓") + " " + r.styles.title.Render("Theme installed") + "\n")
	b.WriteString(r.field("location", v.OutputDir))
	b.WriteString(r.field("rewritten", v.MatchingFiles))
	b.WriteString(r.field("copied", v.OtherFiles))
	b.WriteString(r.field("symlinks", v.SymlinksLinked))
	return b.String()
}

func (r *Renderer) palette(v *types.PaletteResult) string {
	var b strings.Builder
	if len(v.Colors) == 0 {
		b.WriteString(r.styles.muted.Render("No colors found in "+v.SourceDir) + "\n")
		return b.String()
	}

	b.WriteString(r.styles.title.Render(fmt.Sprintf("%d colors in %s", len(v.Colors), v.SourceDir)) + "\n")
	for _, c := range v.Colors {
		swatch := r.styles.swatch.Background(lipgloss.Color(c)).Render("")
		b.WriteString(swatch + " " + c + "\n")
	}
	return b.String()
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	var b strings.Builder
	b.WriteString(r.styles.errLabel.Render("Error:") + " " + err.Error() + "\n")

	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(r.styles.muted.Render(fmt.Sprintf("  %s: %v", k, details[k])) + "\n")
	}

	_, werr := io.WriteString(r.output, b.String())
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := io.WriteString(r.output, r.styles.title.Render(msg)+"\n")
	return err
}

// renderSource shows file content as a highlighted code block, falling
// back to the raw text when glamour cannot render it.
func renderSource(content string) string {
	md := "```xml\n" + strings.TrimRight(content, "\n") + "\n```\n"

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		return content + "\n"
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return content + "\n"
	}
	return rendered
}

func formatSize(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
