package colors

import (
	"strings"

	"github.com/arthur-debert/icontheme/pkg/types"
)

// ApplyMappings rewrites content with each mapping in turn.
func ApplyMappings(content string, mappings []types.ColorMapping) string {
	for _, m := range mappings {
		content = ApplyMapping(content, m)
	}
	return content
}

// ApplyMapping rewrites the full form of m.From, then its shorthand when it
// has one. The shorthand is replaced with the shorthand of m.To, or with
// m.To itself when m.To has none.
func ApplyMapping(content string, m types.ColorMapping) string {
	content = ReplaceColor(content, m.From, m.To)

	shortFrom, ok := ShortHex(m.From)
	if !ok {
		return content
	}
	shortTo, ok := ShortHex(m.To)
	if !ok {
		shortTo = m.To
	}
	return ReplaceColor(content, shortFrom, shortTo)
}

// ReplaceColor replaces non-overlapping occurrences of from with to,
// ignoring ASCII case. A match immediately followed by a hex digit is left
// alone; only the following character is checked, never the preceding one.
// Text outside accepted matches is kept byte for byte.
func ReplaceColor(content, from, to string) string {
	if from == "" || len(from) > len(content) {
		return content
	}

	haystack := toLowerASCII(content)
	needle := toLowerASCII(from)

	var b strings.Builder
	last, pos := 0, 0
	for {
		idx := strings.Index(haystack[pos:], needle)
		if idx < 0 {
			break
		}
		start := pos + idx
		end := start + len(needle)
		pos = end

		if end < len(content) && isHexDigit(content[end]) {
			continue
		}
		b.WriteString(content[last:start])
		b.WriteString(to)
		last = end
	}

	if last == 0 {
		return content
	}
	b.WriteString(content[last:])
	return b.String()
}
