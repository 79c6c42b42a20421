package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hseinsb/estimate-analyzer/apperrors"
	"github.com/hseinsb/estimate-analyzer/logger"
)

func init() {
	logger.IsTest = true
}

func TestSegmentPagesFindsTotalsPage(t *testing.T) {
	pages := []string{
		"Customer Name JOHN SMITH Job Number: 4821",
		"Line items page",
		"ESTIMATE TOTALS Estimate Total $ 2,286.27",
	}

	seg, err := SegmentPages(pages)
	require.NoError(t, err)

	assert.Equal(t, pages[0], seg.IdentityText)
	assert.Equal(t, pages[2], seg.FinancialText)
	assert.Equal(t, 3, seg.FinancialPage)
	assert.Equal(t, 3, seg.PageCount)
	assert.False(t, seg.UsedFallback)
}

func TestSegmentPagesFallsBackToLastPage(t *testing.T) {
	pages := []string{
		"Customer Name JOHN SMITH",
		"Middle page",
		"Final page with Subtotal $ 100.00",
	}

	seg, err := SegmentPages(pages)
	require.NoError(t, err)

	assert.Equal(t, pages[2], seg.FinancialText)
	assert.Equal(t, 3, seg.FinancialPage)
	assert.True(t, seg.UsedFallback)
}

func TestSegmentPagesNoExtractableText(t *testing.T) {
	_, err := SegmentPages(nil)
	assert.ErrorIs(t, err, apperrors.ErrNoExtractableText)

	_, err = SegmentPages([]string{"   \n\t  ", "Subtotal $ 100.00"})
	assert.ErrorIs(t, err, apperrors.ErrNoExtractableText)
}

func TestSegmentPagesSinglePage(t *testing.T) {
	seg, err := SegmentPages([]string{"Customer Name JOHN SMITH Estimate Total $ 500.00"})
	require.NoError(t, err)

	assert.Equal(t, seg.IdentityText, seg.FinancialText)
	assert.Equal(t, 1, seg.FinancialPage)
	assert.False(t, seg.UsedFallback)
}

func TestParseEstimate(t *testing.T) {
	identity := "Customer Name JOHN SMITH Job Number: 4821 Written By Claim #: ABC123-01 " +
		"Insurance Company: STATE FARM INSURANCE " +
		"VEHICLE 2021 CHEVROLET SILVERADO 1500 Crew Cab VIN: 1GCUYDED5MZ123456"
	financial := "ESTIMATE TOTALS " +
		"Parts 850.00 " +
		"Body Labor 6.0 hrs @ $ 55.10 /hr 330.60 " +
		"Paint Labor 2.0 hrs @ $ 50.00 /hr 100.00 " +
		"Paint Supplies 2.0 hrs @ $ 38.00 /hr 76.00 " +
		"Miscellaneous 25.00 " +
		"Subtotal $ 1,381.60 " +
		"Sales Tax $ 1,381.60 @ 6.0000 % 82.90 " +
		"Grand Total $ 1,464.50 " +
		"Customer Pay $ 500.00 " +
		"Insurance Pay $ 964.50"

	seg, err := SegmentPages([]string{identity, financial})
	require.NoError(t, err)

	data := ParseEstimate(seg)

	assert.Equal(t, "JOHN SMITH", data.CustomerName)
	assert.Equal(t, "4821", data.JobNumber)
	assert.Equal(t, "ABC123-01", data.ClaimNumber)
	assert.Equal(t, "STATE FARM INSURANCE", data.InsuranceCompany)
	assert.Equal(t, "2021", data.Vehicle.Year)
	assert.Equal(t, "CHEVROLET", data.Vehicle.Make)
	assert.Equal(t, "SILVERADO 1500", data.Vehicle.Model)
	assert.Equal(t, "1GCUYDED5MZ123456", data.Vehicle.VIN)
	assert.Equal(t, 2, data.PageCount)

	assert.InDelta(t, 850.00, data.Totals.Parts, 0.001)
	assert.InDelta(t, 330.60, data.Totals.BodyLabor, 0.001)
	assert.InDelta(t, 100.00, data.Totals.PaintLabor, 0.001)
	assert.InDelta(t, 430.60, data.Totals.TotalLabor, 0.001)
	assert.InDelta(t, 76.00, data.Totals.PaintSupplies, 0.001)
	assert.InDelta(t, 25.00, data.Totals.Miscellaneous, 0.001)
	assert.InDelta(t, 1381.60, data.Totals.Subtotal, 0.001)
	assert.InDelta(t, 82.90, data.Totals.SalesTax, 0.001)
	assert.InDelta(t, 1464.50, data.Totals.GrandTotal, 0.001)
	assert.InDelta(t, 500.00, data.Totals.CustomerPay, 0.001)
	assert.InDelta(t, 964.50, data.Totals.InsurancePay, 0.001)
}
