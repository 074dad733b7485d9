package colors

import (
	"regexp"
	"sort"

	"github.com/arthur-debert/icontheme/pkg/logging"
	"github.com/arthur-debert/icontheme/pkg/types"
	"github.com/beevik/etree"
)

var hexRun = regexp.MustCompile(`#[0-9a-fA-F]+`)

// Fallbacks for documents etree cannot parse
var (
	namedViewSelfClosing = regexp.MustCompile(`<sodipodi:namedview[^>]*/>`)
	namedViewBlock       = regexp.MustCompile(`(?s)<sodipodi:namedview.*?</sodipodi:namedview>`)
	metadataBlock        = regexp.MustCompile(`(?s)<metadata.*?</metadata>`)
)

// ExtractColors returns the distinct colors used in an SVG document,
// normalized to #rrggbb and ordered from darkest to lightest. Inkscape's
// editor state (sodipodi:namedview) and metadata blocks are ignored, since
// their colors never reach the rendered image.
func ExtractColors(svg string) []string {
	var colors []string
	seen := make(map[string]bool)
	collectColors(stripEditorMetadata(svg), seen, &colors)
	sortByLuminance(colors)
	return colors
}

// ExtractColorsFromPreviews merges the palettes of several preview items.
func ExtractColorsFromPreviews(items []types.PreviewItem) []string {
	var colors []string
	seen := make(map[string]bool)
	for _, item := range items {
		for _, c := range ExtractColors(item.Content) {
			if !seen[c] {
				seen[c] = true
				colors = append(colors, c)
			}
		}
	}
	sortByLuminance(colors)
	return colors
}

func collectColors(text string, seen map[string]bool, colors *[]string) {
	for _, loc := range hexRun.FindAllStringIndex(text, -1) {
		literal := text[loc[0]:loc[1]]
		if len(literal) != 4 && len(literal) != 7 {
			continue
		}
		c := normalizeLiteral(literal)
		if !seen[c] {
			seen[c] = true
			*colors = append(*colors, c)
		}
	}
}

func sortByLuminance(colors []string) {
	sort.SliceStable(colors, func(i, j int) bool {
		return Luminance(colors[i]) < Luminance(colors[j])
	})
}

func stripEditorMetadata(svg string) string {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(svg); err != nil || doc.Root() == nil {
		logger := logging.GetLogger("colors.extract")
		logger.Trace().Err(err).Msg("Document did not parse as XML, stripping metadata by pattern")
		return stripEditorMetadataByPattern(svg)
	}

	pruneEditorMetadata(&doc.Element)

	out, err := doc.WriteToString()
	if err != nil {
		return stripEditorMetadataByPattern(svg)
	}
	return out
}

func pruneEditorMetadata(el *etree.Element) {
	for _, child := range el.ChildElements() {
		if isEditorMetadata(child) {
			el.RemoveChild(child)
			continue
		}
		pruneEditorMetadata(child)
	}
}

func isEditorMetadata(el *etree.Element) bool {
	if el.Space == "sodipodi" && el.Tag == "namedview" {
		return true
	}
	return el.Space == "" && el.Tag == "metadata"
}

func stripEditorMetadataByPattern(svg string) string {
	svg = namedViewSelfClosing.ReplaceAllString(svg, "")
	svg = namedViewBlock.ReplaceAllString(svg, "")
	return metadataBlock.ReplaceAllString(svg, "")
}
