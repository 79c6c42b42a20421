// Package utils implements the estimate-text extraction core: the page
// segmenter, the identity and financial field extractors, normalization,
// derived totals, and the confidence/status classifier.
package utils

import "github.com/hseinsb/estimate-analyzer/dto"

// ParseEstimate runs both extractors over the segmented text regions. The
// extractors are independent; neither reads the other's output. TotalLabor
// in the result still carries the extractor's running sum across all labor
// lines; callers apply RecomputeDerived before persisting.
func ParseEstimate(seg *Segments) *dto.ExtractedData {
	data := ExtractIdentity(seg.IdentityText)
	data.Totals = ExtractFinancials(seg.FinancialText)
	data.PageCount = seg.PageCount
	return data
}
