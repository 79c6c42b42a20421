package utils

import "github.com/hseinsb/estimate-analyzer/dto"

// ConfidenceThreshold is the minimum score for automatic acceptance. The
// threshold and the weight table below are fixed business policy, not
// tunable defaults.
const ConfidenceThreshold = 0.85

// CalculateConfidence scores a completed record by which fields extracted
// successfully. Weights are points out of 100; points for absent signals
// are simply not earned.
func CalculateConfidence(data *dto.ExtractedData) float64 {
	score := 0
	total := 0

	// Required fields
	if data.CustomerName != "" {
		score += 20
	}
	total += 20

	if data.ClaimNumber != "" {
		score += 20
	}
	total += 20

	if data.InsuranceCompany != "" {
		score += 20
	}
	total += 20

	if data.Totals.InsurancePay > 0 {
		score += 20
	}
	total += 20

	// Optional but important fields
	if data.JobNumber != "" {
		score += 5
	}
	total += 5

	if data.Vehicle.Year != "" {
		score += 5
	}
	total += 5

	if data.Totals.Parts > 0 {
		score += 5
	}
	total += 5

	if data.Totals.TotalLabor > 0 {
		score += 5
	}
	total += 5

	if total == 0 {
		return 0
	}
	return float64(score) / float64(total)
}

// DetermineStatus maps a completed record (and the optional validation
// result) to parsed or needs_review. The error status is never a classifier
// output; it is assigned only when extraction fails before a record exists.
func DetermineStatus(data *dto.ExtractedData, validation *ValidationResult) dto.Status {
	if validation != nil && !validation.IsValid {
		return dto.StatusNeedsReview
	}

	if data.CustomerName == "" || data.InsuranceCompany == "" || data.Totals.InsurancePay <= 0 {
		return dto.StatusNeedsReview
	}

	if CalculateConfidence(data) < ConfidenceThreshold {
		return dto.StatusNeedsReview
	}

	if validation != nil && len(validation.Warnings) > 2 {
		return dto.StatusNeedsReview
	}

	return dto.StatusParsed
}
