package dto

import "time"

// Status is the three-way outcome of processing a document.
type Status string

const (
	StatusParsed      Status = "parsed"
	StatusNeedsReview Status = "needs_review"
	StatusError       Status = "error"
)

// Vehicle holds the vehicle identity pulled off page 1. Empty string means
// the field was not found; vehicle fields only contribute to confidence.
type Vehicle struct {
	Year  string `json:"year,omitempty"`
	Make  string `json:"make,omitempty"`
	Model string `json:"model,omitempty"`
	VIN   string `json:"vin,omitempty"`
}

// Totals is the itemized financial breakdown of an estimate. Every field is
// a non-negative dollar amount normalized to two decimals. A field the
// extractor could not find stays 0.00; absence and zero are deliberately
// indistinguishable.
type Totals struct {
	Parts           float64 `json:"parts"`
	BodyLabor       float64 `json:"bodyLabor"`
	PaintLabor      float64 `json:"paintLabor"`
	MechanicalLabor float64 `json:"mechanicalLabor"`
	FrameLabor      float64 `json:"frameLabor"`
	TotalLabor      float64 `json:"totalLabor"`
	PaintSupplies   float64 `json:"paintSupplies"`
	Miscellaneous   float64 `json:"miscellaneous"`
	OtherCharges    float64 `json:"otherCharges"`
	Subtotal        float64 `json:"subtotal"`
	SalesTax        float64 `json:"salesTax"`
	GrandTotal      float64 `json:"grandTotal"`
	CustomerPay     float64 `json:"customerPay"`
	InsurancePay    float64 `json:"insurancePay"`
}

// ExtractedData is the output of the extraction core for one document.
type ExtractedData struct {
	CustomerName     string  `json:"customerName"`
	JobNumber        string  `json:"jobNumber,omitempty"`
	ClaimNumber      string  `json:"claimNumber"`
	InsuranceCompany string  `json:"insuranceCompany"`
	Vehicle          Vehicle `json:"vehicle"`
	Totals           Totals  `json:"totals"`
	PageCount        int     `json:"pageCount"`
}

// Profits carries the derived profit figure plus the two manually tracked
// follow-up numbers filled in after the repair is done.
type Profits struct {
	EstimateProfit  float64  `json:"estimateProfit"`
	ActualPartsCost *float64 `json:"actualPartsCost"`
	ActualProfit    *float64 `json:"actualProfit"`
}

// Estimate is the persisted record: extracted data plus derived fields,
// scoring, and bookkeeping assigned at the persistence boundary.
type Estimate struct {
	ID                 string    `json:"id"`
	JobNumber          string    `json:"jobNumber,omitempty"`
	CustomerName       string    `json:"customerName"`
	ClaimNumber        string    `json:"claimNumber"`
	InsuranceCompany   string    `json:"insuranceCompany"`
	Vehicle            Vehicle   `json:"vehicle"`
	Totals             Totals    `json:"totals"`
	Profits            Profits   `json:"profits"`
	PDFURL             string    `json:"pdfUrl,omitempty"`
	FileName           string    `json:"fileName,omitempty"`
	Notes              string    `json:"notes,omitempty"`
	PageCount          int       `json:"pageCount,omitempty"`
	ParseConfidence    float64   `json:"parseConfidence"`
	Status             Status    `json:"status"`
	StatusError        string    `json:"error,omitempty"`
	ValidationWarnings []string  `json:"validationWarnings,omitempty"`
	SheetsError        string    `json:"sheetsError,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
