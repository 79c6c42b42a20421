package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const maxTextLength = 1000

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeCurrency rounds a dollar amount to two decimal places.
// NaN and infinite inputs normalize to 0.00.
func NormalizeCurrency(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// SanitizeText trims, collapses internal whitespace runs to a single space,
// strips characters outside the printable ASCII range, and caps the length.
// Applied to every free-text field the extractors capture; an unusable input
// yields the empty string.
func SanitizeText(s string) string {
	s = strings.TrimSpace(s)
	s = whitespaceRe.ReplaceAllString(s, " ")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 0x20 && r <= 0x7E {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if len(out) > maxTextLength {
		out = out[:maxTextLength]
	}
	return out
}

// parseAmount parses a captured decimal number after stripping thousands
// separators. A capture that fails to parse counts as "field not found",
// never as an error.
func parseAmount(capture string) (float64, bool) {
	cleaned := strings.ReplaceAll(capture, ",", "")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
