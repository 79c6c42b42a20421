package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFinancialsLaborCategories(t *testing.T) {
	text := "Body Labor 6.0 hrs @ $ 55.10 /hr 330.60 " +
		"Paint Labor 2.0 hrs @ $ 50.00 /hr 100.00 " +
		"Mechanical Labor 1.0 hrs @ $ 110.00 /hr 110.00 " +
		"Frame Labor 0.5 hrs @ $ 90.00 /hr 45.00"

	totals := ExtractFinancials(text)

	assert.InDelta(t, 330.60, totals.BodyLabor, 0.001)
	assert.InDelta(t, 100.00, totals.PaintLabor, 0.001)
	assert.InDelta(t, 110.00, totals.MechanicalLabor, 0.001)
	assert.InDelta(t, 45.00, totals.FrameLabor, 0.001)
	assert.InDelta(t, 585.60, totals.TotalLabor, 0.001)
}

func TestExtractFinancialsSalesTaxPrimaryPattern(t *testing.T) {
	text := "Sales Tax $ 1,751.58 @ 6.0000 % 105.09"

	totals := ExtractFinancials(text)

	assert.InDelta(t, 105.09, totals.SalesTax, 0.001)
}

func TestExtractFinancialsSalesTaxFallbackPattern(t *testing.T) {
	text := "Sales Tax 105.09\nGrand Total $ 1,856.67"

	totals := ExtractFinancials(text)

	assert.InDelta(t, 105.09, totals.SalesTax, 0.001)
	assert.InDelta(t, 1856.67, totals.GrandTotal, 0.001)
}

func TestExtractFinancialsPaintSuppliesPatterns(t *testing.T) {
	primary := ExtractFinancials("Paint Supplies 2.0 hrs @ $ 38.00 /hr 76.00")
	assert.InDelta(t, 76.00, primary.PaintSupplies, 0.001)

	fallback := ExtractFinancials("Paint Supplies 76.00\n")
	assert.InDelta(t, 76.00, fallback.PaintSupplies, 0.001)
}

func TestExtractFinancialsThousandsSeparators(t *testing.T) {
	text := "Parts 1,234.56 Subtotal $ 12,345.67 Insurance Pay $ 13,000.00"

	totals := ExtractFinancials(text)

	assert.InDelta(t, 1234.56, totals.Parts, 0.001)
	assert.InDelta(t, 12345.67, totals.Subtotal, 0.001)
	assert.InDelta(t, 13000.00, totals.InsurancePay, 0.001)
}

func TestExtractFinancialsMissingFieldsStayZero(t *testing.T) {
	totals := ExtractFinancials("nothing useful on this page")

	assert.Zero(t, totals.Parts)
	assert.Zero(t, totals.TotalLabor)
	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.GrandTotal)
	assert.Zero(t, totals.InsurancePay)
}

func TestExtractFinancialsRepeatedLaborLinesKeepSum(t *testing.T) {
	// Two body labor lines: the category keeps the last cost, the running
	// sum keeps both.
	text := "Body Labor 2.0 hrs @ $ 50.00 /hr 100.00 " +
		"Body Labor 1.0 hrs @ $ 50.00 /hr 50.00"

	totals := ExtractFinancials(text)

	assert.InDelta(t, 50.00, totals.BodyLabor, 0.001)
	assert.InDelta(t, 150.00, totals.TotalLabor, 0.001)
}
