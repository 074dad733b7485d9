package colors

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/icontheme/pkg/errors"
)

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// toLowerASCII lowercases ASCII letters only, so byte offsets stay aligned
// with the input.
func toLowerASCII(s string) string {
	b := []byte(s)
	for i := range b {
		b[i] = lowerASCII(b[i])
	}
	return string(b)
}

// ValidHex reports whether s is a #RGB or #RRGGBB literal.
func ValidHex(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	return s[0] == '#' && isHexDigits(s[1:])
}

// Normalize returns the lowercase #rrggbb form of a #RGB or #RRGGBB literal.
func Normalize(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !ValidHex(s) {
		return "", errors.Newf(errors.ErrInvalidInput, "%q is not a #RGB or #RRGGBB color", s)
	}
	return normalizeLiteral(s), nil
}

func normalizeLiteral(s string) string {
	lower := toLowerASCII(s)
	if len(lower) == 4 {
		r, g, b := lower[1], lower[2], lower[3]
		return string([]byte{'#', r, r, g, g, b, b})
	}
	return lower
}

// ShortHex derives the #RGB shorthand of a #RRGGBB color whose channels
// each repeat one digit. Digits compare byte for byte, so #AaBbCc has no
// shorthand.
func ShortHex(hex string) (string, bool) {
	if len(hex) != 7 || hex[0] != '#' || !isHexDigits(hex[1:]) {
		return "", false
	}
	for i := 1; i < 7; i += 2 {
		if hex[i] != hex[i+1] {
			return "", false
		}
	}
	return string([]byte{'#', hex[1], hex[3], hex[5]}), true
}

// Luminance returns the perceived brightness of a #rrggbb color
// (0.299R + 0.587G + 0.114B), or 0 when it does not parse.
func Luminance(hex string) float64 {
	if len(hex) != 7 {
		return 0
	}
	channel := func(s string) float64 {
		v, err := strconv.ParseUint(s, 16, 8)
		if err != nil {
			return 0
		}
		return float64(v)
	}
	return 0.299*channel(hex[1:3]) + 0.587*channel(hex[3:5]) + 0.114*channel(hex[5:7])
}
