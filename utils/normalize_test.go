package utils

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCurrency(t *testing.T) {
	assert.Equal(t, 10.56, NormalizeCurrency(10.555))
	assert.Equal(t, 10.55, NormalizeCurrency(10.554))
	assert.Equal(t, 0.0, NormalizeCurrency(0))
	assert.Equal(t, -3.33, NormalizeCurrency(-3.333))
}

func TestNormalizeCurrencyIdempotent(t *testing.T) {
	v := NormalizeCurrency(1234.5678)
	assert.Equal(t, v, NormalizeCurrency(v))
}

func TestNormalizeCurrencyNonFinite(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeCurrency(math.NaN()))
	assert.Equal(t, 0.0, NormalizeCurrency(math.Inf(1)))
	assert.Equal(t, 0.0, NormalizeCurrency(math.Inf(-1)))
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "JOHN SMITH", SanitizeText("  JOHN \t\n SMITH  "))
	assert.Equal(t, "ACMEBODY", SanitizeText("ACME✓BODY"))
	assert.Equal(t, "", SanitizeText("   \n\t "))
	assert.Equal(t, "", SanitizeText(""))
}

func TestSanitizeTextCapsLength(t *testing.T) {
	long := strings.Repeat("A", 2000)
	assert.Len(t, SanitizeText(long), 1000)
}
