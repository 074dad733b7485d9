package types

import "fmt"

// ColorMapping replaces one hex color with another.
type ColorMapping struct {
	From string `json:"from" toml:"from" yaml:"from"`
	To   string `json:"to" toml:"to" yaml:"to"`
}

// String returns the mapping as FROM=TO
func (m ColorMapping) String() string {
	return fmt.Sprintf("%s=%s", m.From, m.To)
}

// ColorMappings is applied in order; each mapping sees the output of the
// ones before it.
type ColorMappings []ColorMapping
