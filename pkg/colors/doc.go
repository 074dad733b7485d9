// Package colors rewrites and extracts hex color literals in vector image
// text.
//
// Rewriting is literal: each mapping replaces its source color wherever it
// appears, ignoring ASCII case, unless the match runs into a further hex
// digit. A mapping whose source has a three digit shorthand (#aabbcc and
// #abc) rewrites the shorthand too. Mappings apply in order, and each one
// sees the text produced by the ones before it.
package colors
