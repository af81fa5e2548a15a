// Package format renders chart values as short label text.
package format

import (
	"math"
	"strconv"
	"strings"
)

// Abbreviate formats v with a K (thousands) or M (millions) suffix and at
// most one decimal: 1500 → "1.5K", 2000000 → "2M", 12.25 → "12.3".
// Non-finite values format as the empty string.
func Abbreviate(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	a := math.Abs(v)
	switch {
	case a >= 1e6:
		return decimal(v/1e6) + "M"
	case a >= 1e3:
		return decimal(v/1e3) + "K"
	}
	return decimal(v)
}

// decimal rounds to one decimal place and drops a trailing ".0".
func decimal(v float64) string {
	s := strconv.FormatFloat(math.Round(v*10)/10, 'f', 1, 64)
	s = strings.TrimSuffix(s, ".0")
	if s == "-0" {
		return "0"
	}
	return s
}

// Truncate shortens s to fit within width pixels at the given font size,
// replacing the tail with an ellipsis. Glyph widths are estimated at 0.6em,
// which suits the sans-serif faces used by the sinks. It returns "" when not
// even one character and the ellipsis fit.
func Truncate(s string, width, size float64) string {
	if size <= 0 {
		return ""
	}
	runes := []rune(s)
	fit := int(width / (size * 0.6))
	if len(runes) <= fit {
		return s
	}
	if fit < 2 {
		return ""
	}
	return string(runes[:fit-1]) + "…"
}

// TextWidth estimates the rendered width of s at the given font size.
func TextWidth(s string, size float64) float64 {
	return float64(len([]rune(s))) * size * 0.6
}
