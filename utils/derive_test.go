package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hseinsb/estimate-analyzer/dto"
)

func TestRecomputeDerivedTotalLabor(t *testing.T) {
	totals := dto.Totals{
		BodyLabor:       330.60,
		PaintLabor:      100.00,
		MechanicalLabor: 110.00,
		FrameLabor:      45.00,
		TotalLabor:      999.99, // stale extractor sum, must be replaced
		Subtotal:        1500.00,
		GrandTotal:      1590.00,
	}

	RecomputeDerived(&totals, false)

	assert.InDelta(t, 585.60, totals.TotalLabor, 0.001)
	// Aggregates from the document are kept on the extraction path.
	assert.InDelta(t, 1500.00, totals.Subtotal, 0.001)
	assert.InDelta(t, 1590.00, totals.GrandTotal, 0.001)
}

func TestRecomputeDerivedAggregates(t *testing.T) {
	totals := dto.Totals{
		Parts:         850.00,
		BodyLabor:     330.60,
		PaintLabor:    100.00,
		PaintSupplies: 76.00,
		Miscellaneous: 25.00,
		SalesTax:      82.90,
		Subtotal:      1.00,
		GrandTotal:    1.00,
	}

	RecomputeDerived(&totals, true)

	assert.InDelta(t, 430.60, totals.TotalLabor, 0.001)
	assert.InDelta(t, 1381.60, totals.Subtotal, 0.001)
	assert.InDelta(t, 1464.50, totals.GrandTotal, 0.001)
}

func TestRecomputeDerivedNormalizesEveryField(t *testing.T) {
	totals := dto.Totals{
		Parts:     10.555,
		BodyLabor: 20.004,
	}

	RecomputeDerived(&totals, true)

	assert.Equal(t, 10.56, totals.Parts)
	assert.Equal(t, 20.0, totals.BodyLabor)
	assert.Equal(t, 20.0, totals.TotalLabor)
}

func TestEstimateProfit(t *testing.T) {
	totals := dto.Totals{
		Parts:      850.00,
		TotalLabor: 430.60,
		SalesTax:   82.90,
	}

	assert.InDelta(t, 430.60, EstimateProfit(totals), 0.001)
}
