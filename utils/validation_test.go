package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hseinsb/estimate-analyzer/dto"
)

func TestValidateEstimateDataClean(t *testing.T) {
	result := ValidateEstimateData(fullyExtracted())

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidateEstimateDataMissingRequiredFields(t *testing.T) {
	result := ValidateEstimateData(&dto.ExtractedData{})

	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "customer name is required")
	assert.Contains(t, result.Errors, "claim number is required")
	assert.Contains(t, result.Errors, "insurance company is required")
	assert.Contains(t, result.Errors, "insurance pay amount is missing or invalid")
}

func TestValidateEstimateDataSubtotalMismatch(t *testing.T) {
	data := fullyExtracted()
	data.Totals.Subtotal += 5.00
	data.Totals.InsurancePay += 5.00

	result := ValidateEstimateData(data)

	require.True(t, result.IsValid)
	assert.Contains(t, result.Warnings, "subtotal does not match sum of line items")
}

func TestValidateEstimateDataInsurancePayMismatch(t *testing.T) {
	data := fullyExtracted()
	data.Totals.InsurancePay += 1.00

	result := ValidateEstimateData(data)

	require.True(t, result.IsValid)
	assert.Contains(t, result.Warnings, "insurance pay does not match subtotal + tax")
}

func TestValidateEstimateDataToleratesACent(t *testing.T) {
	data := fullyExtracted()
	data.Totals.Subtotal += 0.01
	data.Totals.InsurancePay += 0.01

	result := ValidateEstimateData(data)

	assert.Empty(t, result.Warnings)
}

func TestValidateEstimateDataBadVIN(t *testing.T) {
	data := fullyExtracted()
	data.Vehicle.VIN = "INVALIDVIN0000000"

	result := ValidateEstimateData(data)

	assert.Contains(t, result.Warnings, "vehicle VIN format is invalid")
}

func TestValidVIN(t *testing.T) {
	assert.True(t, ValidVIN("1GCUYDED5MZ123456"))
	assert.True(t, ValidVIN("1gcuyded5mz123456"))
	assert.False(t, ValidVIN("1GCUYDED5MZ12345"))   // 16 chars
	assert.False(t, ValidVIN("IGCUYDED5MZ123456"))  // contains I
	assert.False(t, ValidVIN("OGCUYDED5MZ123456"))  // contains O
	assert.False(t, ValidVIN(""))
}

func TestDetectExtractionIssuesCleanText(t *testing.T) {
	text := "This estimate covers parts and labor for the customer claim with a " +
		"grand total shown below " + strings.Repeat("detail line ", 10)

	assert.Empty(t, DetectExtractionIssues(text))
}

func TestDetectExtractionIssuesShortText(t *testing.T) {
	issues := DetectExtractionIssues("estimate total parts labor customer claim")

	assert.Contains(t, issues, "text is too short - possible extraction failure")
}

func TestDetectExtractionIssuesArtifacts(t *testing.T) {
	text := "estimate ||| total parts labor customer claim " + strings.Repeat("x ", 40)

	issues := DetectExtractionIssues(text)

	assert.Contains(t, issues, "text contains possible OCR artifacts")
}

func TestDetectExtractionIssuesMissingKeywords(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor sit amet ", 10)

	issues := DetectExtractionIssues(text)

	assert.Contains(t, issues, "text missing common estimate keywords")
}
