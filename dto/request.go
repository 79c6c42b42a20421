package dto

import "fmt"

// ManualEstimateRequest is the manual-entry form payload. It bypasses
// extraction entirely; derived totals are recomputed server-side and the
// record is persisted with full confidence.
type ManualEstimateRequest struct {
	CustomerName     string  `json:"customerName" binding:"required"`
	JobNumber        string  `json:"jobNumber"`
	ClaimNumber      string  `json:"claimNumber" binding:"required"`
	InsuranceCompany string  `json:"insuranceCompany" binding:"required"`
	Vehicle          Vehicle `json:"vehicle"`
	Totals           Totals  `json:"totals"`
	Notes            string  `json:"notes"`
}

func (r *ManualEstimateRequest) Validate() error {
	amounts := map[string]float64{
		"parts":           r.Totals.Parts,
		"bodyLabor":       r.Totals.BodyLabor,
		"paintLabor":      r.Totals.PaintLabor,
		"mechanicalLabor": r.Totals.MechanicalLabor,
		"frameLabor":      r.Totals.FrameLabor,
		"paintSupplies":   r.Totals.PaintSupplies,
		"miscellaneous":   r.Totals.Miscellaneous,
		"otherCharges":    r.Totals.OtherCharges,
		"salesTax":        r.Totals.SalesTax,
		"customerPay":     r.Totals.CustomerPay,
		"insurancePay":    r.Totals.InsurancePay,
	}
	for field, v := range amounts {
		if v < 0 {
			return fmt.Errorf("%s must not be negative", field)
		}
	}
	return nil
}

// UpdateEstimateRequest carries the editable fields of a persisted record.
// Derived totals in the payload are ignored and recomputed before saving.
type UpdateEstimateRequest struct {
	CustomerName     *string  `json:"customerName"`
	JobNumber        *string  `json:"jobNumber"`
	ClaimNumber      *string  `json:"claimNumber"`
	InsuranceCompany *string  `json:"insuranceCompany"`
	Vehicle          *Vehicle `json:"vehicle"`
	Totals           *Totals  `json:"totals"`
	Notes            *string  `json:"notes"`
	FileName         *string  `json:"fileName"`
	ActualPartsCost  *float64 `json:"actualPartsCost"`
}

// ListEstimatesQuery holds the supported list filters.
type ListEstimatesQuery struct {
	Status           string `form:"status"`
	InsuranceCompany string `form:"insurance_company"`
	Search           string `form:"search"`
	Limit            int    `form:"limit"`
}
