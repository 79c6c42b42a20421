package utils

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/hseinsb/estimate-analyzer/dto"
)

const amountTolerance = 0.01

// ValidationResult separates hard failures, which block automatic
// acceptance, from soft warnings, which never block persistence but push the
// status toward needs_review when more than two accumulate.
type ValidationResult struct {
	IsValid  bool
	Errors   []string
	Warnings []string
}

// ValidateEstimateData runs the optional server-side validation pass over an
// extracted record: required fields, cross-sums within a cent, and
// missing-but-useful fields.
func ValidateEstimateData(data *dto.ExtractedData) *ValidationResult {
	result := &ValidationResult{IsValid: true}

	if strings.TrimSpace(data.CustomerName) == "" {
		result.Errors = append(result.Errors, "customer name is required")
		result.IsValid = false
	}
	if strings.TrimSpace(data.ClaimNumber) == "" {
		result.Errors = append(result.Errors, "claim number is required")
		result.IsValid = false
	}
	if strings.TrimSpace(data.InsuranceCompany) == "" {
		result.Errors = append(result.Errors, "insurance company is required")
		result.IsValid = false
	}

	if data.Totals.InsurancePay <= 0 {
		result.Errors = append(result.Errors, "insurance pay amount is missing or invalid")
		result.IsValid = false
	}

	amounts := []struct {
		name  string
		value float64
	}{
		{"parts", data.Totals.Parts},
		{"totalLabor", data.Totals.TotalLabor},
		{"paintSupplies", data.Totals.PaintSupplies},
		{"miscellaneous", data.Totals.Miscellaneous},
		{"otherCharges", data.Totals.OtherCharges},
		{"subtotal", data.Totals.Subtotal},
		{"salesTax", data.Totals.SalesTax},
	}
	for _, a := range amounts {
		if a.value < 0 {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s amount is missing or invalid", a.name))
		}
	}

	// Re-sum the line items independently and compare within a cent.
	calculatedSubtotal := data.Totals.Parts + data.Totals.TotalLabor +
		data.Totals.PaintSupplies + data.Totals.Miscellaneous + data.Totals.OtherCharges
	if math.Abs(calculatedSubtotal-data.Totals.Subtotal) > amountTolerance {
		result.Warnings = append(result.Warnings, "subtotal does not match sum of line items")
	}

	expectedTotal := data.Totals.Subtotal + data.Totals.SalesTax
	if math.Abs(expectedTotal-data.Totals.InsurancePay) > amountTolerance {
		result.Warnings = append(result.Warnings, "insurance pay does not match subtotal + tax")
	}

	if data.Vehicle.Year == "" {
		result.Warnings = append(result.Warnings, "vehicle year is missing")
	}
	if data.Vehicle.Make == "" {
		result.Warnings = append(result.Warnings, "vehicle make is missing")
	}
	if data.Vehicle.Model == "" {
		result.Warnings = append(result.Warnings, "vehicle model is missing")
	}
	if data.Vehicle.VIN != "" && !ValidVIN(data.Vehicle.VIN) {
		result.Warnings = append(result.Warnings, "vehicle VIN format is invalid")
	}

	if data.JobNumber == "" {
		result.Warnings = append(result.Warnings, "job number is missing (optional)")
	}

	return result
}

// VINs are 17 alphanumeric characters, excluding I, O, and Q.
var vinRe = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)

func ValidVIN(vin string) bool {
	return vinRe.MatchString(strings.ToUpper(vin))
}

var estimateKeywords = []string{"estimate", "total", "parts", "labor", "customer", "claim"}

// DetectExtractionIssues flags common symptoms of a bad text layer. The
// issues are diagnostics only; they never block processing.
func DetectExtractionIssues(text string) []string {
	var issues []string

	if len(text) < 100 {
		issues = append(issues, "text is too short - possible extraction failure")
	}

	if strings.Contains(text, "|||") || strings.Contains(text, "###") || strings.Contains(text, "...") {
		issues = append(issues, "text contains possible OCR artifacts")
	}

	if len(text) > 0 {
		special := 0
		for _, r := range text {
			if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') ||
				r == ' ' || r == '\t' || r == '\n' || r == '\r') {
				special++
			}
		}
		if float64(special)/float64(len(text)) > 0.3 {
			issues = append(issues, "text contains high ratio of special characters")
		}
	}

	lower := strings.ToLower(text)
	found := 0
	for _, kw := range estimateKeywords {
		if strings.Contains(lower, kw) {
			found++
		}
	}
	if found < 3 {
		issues = append(issues, "text missing common estimate keywords")
	}

	return issues
}
