package dto

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// UploadResponse is returned after a PDF has been processed. The record is
// always persisted, including the needs_review and error outcomes.
type UploadResponse struct {
	Estimate           *Estimate `json:"estimate"`
	ValidationWarnings []string  `json:"validationWarnings,omitempty"`
	ExtractionIssues   []string  `json:"extractionIssues,omitempty"`
}

// ListEstimatesResponse wraps a list query result.
type ListEstimatesResponse struct {
	Estimates []*Estimate `json:"estimates"`
	Count     int         `json:"count"`
}
