// Package mappings builds ordered color mapping lists from command line
// pairs and mapping files.
//
// A mapping file is either TOML:
//
//	[[mappings]]
//	from = "#AABBCC"
//	to = "#112233"
//
// or YAML (.yaml, .yml):
//
//	mappings:
//	  - from: "#AABBCC"
//	    to: "#112233"
//
// Entries keep their file order. Colors are validated and normalized to
// lowercase #rrggbb.
package mappings
