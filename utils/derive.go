package utils

import "github.com/hseinsb/estimate-analyzer/dto"

// RecomputeDerived enforces the derived-field invariants on a totals block:
// totalLabor is always the sum of the four labor categories, exactly, after
// two-decimal normalization.
//
// When recomputeAggregates is true (manual entry and post-edit saves),
// subtotal and grandTotal are re-derived from components as well. The PDF
// path keeps the values read from the document; they are only cross-checked
// later by the optional validation pass.
func RecomputeDerived(t *dto.Totals, recomputeAggregates bool) {
	t.Parts = NormalizeCurrency(t.Parts)
	t.BodyLabor = NormalizeCurrency(t.BodyLabor)
	t.PaintLabor = NormalizeCurrency(t.PaintLabor)
	t.MechanicalLabor = NormalizeCurrency(t.MechanicalLabor)
	t.FrameLabor = NormalizeCurrency(t.FrameLabor)
	t.PaintSupplies = NormalizeCurrency(t.PaintSupplies)
	t.Miscellaneous = NormalizeCurrency(t.Miscellaneous)
	t.OtherCharges = NormalizeCurrency(t.OtherCharges)
	t.SalesTax = NormalizeCurrency(t.SalesTax)
	t.CustomerPay = NormalizeCurrency(t.CustomerPay)
	t.InsurancePay = NormalizeCurrency(t.InsurancePay)

	t.TotalLabor = NormalizeCurrency(t.BodyLabor + t.PaintLabor + t.MechanicalLabor + t.FrameLabor)

	if recomputeAggregates {
		t.Subtotal = NormalizeCurrency(t.Parts + t.TotalLabor + t.PaintSupplies + t.Miscellaneous + t.OtherCharges)
		t.GrandTotal = NormalizeCurrency(t.Subtotal + t.SalesTax)
	} else {
		t.Subtotal = NormalizeCurrency(t.Subtotal)
		t.GrandTotal = NormalizeCurrency(t.GrandTotal)
	}
}

// EstimateProfit is captured labor revenue alone. Parts, supplies, misc, and
// tax are treated as pass-through costs, not profit contributors.
func EstimateProfit(t dto.Totals) float64 {
	return t.TotalLabor
}
