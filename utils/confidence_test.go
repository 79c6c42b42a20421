package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hseinsb/estimate-analyzer/dto"
)

func fullyExtracted() *dto.ExtractedData {
	return &dto.ExtractedData{
		CustomerName:     "JOHN SMITH",
		JobNumber:        "4821",
		ClaimNumber:      "ABC123-01",
		InsuranceCompany: "STATE FARM INSURANCE",
		Vehicle:          dto.Vehicle{Year: "2021", Make: "CHEVROLET", Model: "SILVERADO 1500"},
		Totals: dto.Totals{
			Parts:        850.00,
			BodyLabor:    430.60,
			TotalLabor:   430.60,
			Subtotal:     1280.60,
			SalesTax:     76.84,
			GrandTotal:   1357.44,
			InsurancePay: 1357.44,
		},
	}
}

func TestCalculateConfidenceFullExtraction(t *testing.T) {
	assert.Equal(t, 1.0, CalculateConfidence(fullyExtracted()))
}

func TestCalculateConfidenceEmptyRecord(t *testing.T) {
	assert.Equal(t, 0.0, CalculateConfidence(&dto.ExtractedData{}))
}

func TestCalculateConfidenceMissingRequiredField(t *testing.T) {
	data := fullyExtracted()
	data.CustomerName = ""

	assert.InDelta(t, 0.80, CalculateConfidence(data), 0.001)
}

func TestCalculateConfidenceMissingOptionalField(t *testing.T) {
	data := fullyExtracted()
	data.JobNumber = ""

	assert.InDelta(t, 0.95, CalculateConfidence(data), 0.001)
}

func TestCalculateConfidenceMonotonic(t *testing.T) {
	data := fullyExtracted()
	prev := CalculateConfidence(data)

	data.Vehicle.Year = ""
	next := CalculateConfidence(data)
	assert.Less(t, next, prev)

	data.InsuranceCompany = ""
	assert.Less(t, CalculateConfidence(data), next)
}

func TestDetermineStatusParsed(t *testing.T) {
	data := fullyExtracted()
	validation := ValidateEstimateData(data)

	assert.Equal(t, dto.StatusParsed, DetermineStatus(data, validation))
}

func TestDetermineStatusMissingRequired(t *testing.T) {
	data := fullyExtracted()
	data.InsuranceCompany = ""

	assert.Equal(t, dto.StatusNeedsReview, DetermineStatus(data, nil))
}

func TestDetermineStatusZeroInsurancePay(t *testing.T) {
	data := fullyExtracted()
	data.Totals.InsurancePay = 0

	assert.Equal(t, dto.StatusNeedsReview, DetermineStatus(data, nil))
}

func TestDetermineStatusLowConfidence(t *testing.T) {
	// Required fields intact but every optional signal missing: score is
	// 80/100, below the acceptance threshold.
	data := fullyExtracted()
	data.JobNumber = ""
	data.Vehicle.Year = ""
	data.Totals.Parts = 0
	data.Totals.TotalLabor = 0

	assert.Equal(t, dto.StatusNeedsReview, DetermineStatus(data, nil))
}

func TestDetermineStatusTooManyWarnings(t *testing.T) {
	data := fullyExtracted()
	validation := &ValidationResult{
		IsValid:  true,
		Warnings: []string{"a", "b", "c"},
	}

	assert.Equal(t, dto.StatusNeedsReview, DetermineStatus(data, validation))
}

func TestDetermineStatusInvalidValidation(t *testing.T) {
	data := fullyExtracted()
	validation := &ValidationResult{IsValid: false, Errors: []string{"claim number is required"}}

	assert.Equal(t, dto.StatusNeedsReview, DetermineStatus(data, validation))
}
