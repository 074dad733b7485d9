// Package types defines the data shared by the scanner, the exporter and the
// CLI: scan and export results, color mappings, the filesystem interface and
// the extension rule that decides which files are vector images.
package types
