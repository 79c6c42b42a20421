package store

import (
	"encoding/json"
	"time"

	"github.com/hseinsb/estimate-analyzer/dto"
)

// Older documents were written with legacy field spellings: a single "labor"
// amount instead of "totalLabor", and "misc" instead of "miscellaneous".
// The canonical schema is the only one the rest of the code sees; this
// adapter accepts either spelling on read and always writes the canonical
// one.

type totalsDoc struct {
	Parts           float64  `json:"parts"`
	BodyLabor       float64  `json:"bodyLabor"`
	PaintLabor      float64  `json:"paintLabor"`
	MechanicalLabor float64  `json:"mechanicalLabor"`
	FrameLabor      float64  `json:"frameLabor"`
	TotalLabor      *float64 `json:"totalLabor,omitempty"`
	Labor           *float64 `json:"labor,omitempty"`
	PaintSupplies   float64  `json:"paintSupplies"`
	Miscellaneous   *float64 `json:"miscellaneous,omitempty"`
	Misc            *float64 `json:"misc,omitempty"`
	OtherCharges    float64  `json:"otherCharges"`
	Subtotal        float64  `json:"subtotal"`
	SalesTax        float64  `json:"salesTax"`
	GrandTotal      float64  `json:"grandTotal"`
	CustomerPay     float64  `json:"customerPay"`
	InsurancePay    float64  `json:"insurancePay"`
}

type estimateDoc struct {
	ID                 string      `json:"id"`
	JobNumber          string      `json:"jobNumber,omitempty"`
	CustomerName       string      `json:"customerName"`
	ClaimNumber        string      `json:"claimNumber"`
	InsuranceCompany   string      `json:"insuranceCompany"`
	Vehicle            dto.Vehicle `json:"vehicle"`
	Totals             totalsDoc   `json:"totals"`
	Profits            dto.Profits `json:"profits"`
	PDFURL             string      `json:"pdfUrl,omitempty"`
	FileName           string      `json:"fileName,omitempty"`
	Notes              string      `json:"notes,omitempty"`
	PageCount          int         `json:"pageCount,omitempty"`
	ParseConfidence    float64     `json:"parseConfidence"`
	Status             string      `json:"status"`
	StatusError        string      `json:"error,omitempty"`
	ValidationWarnings []string    `json:"validationWarnings,omitempty"`
	SheetsError        string      `json:"sheetsError,omitempty"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

func encodeEstimate(e *dto.Estimate) ([]byte, error) {
	totalLabor := e.Totals.TotalLabor
	miscellaneous := e.Totals.Miscellaneous
	doc := estimateDoc{
		ID:               e.ID,
		JobNumber:        e.JobNumber,
		CustomerName:     e.CustomerName,
		ClaimNumber:      e.ClaimNumber,
		InsuranceCompany: e.InsuranceCompany,
		Vehicle:          e.Vehicle,
		Totals: totalsDoc{
			Parts:           e.Totals.Parts,
			BodyLabor:       e.Totals.BodyLabor,
			PaintLabor:      e.Totals.PaintLabor,
			MechanicalLabor: e.Totals.MechanicalLabor,
			FrameLabor:      e.Totals.FrameLabor,
			TotalLabor:      &totalLabor,
			PaintSupplies:   e.Totals.PaintSupplies,
			Miscellaneous:   &miscellaneous,
			OtherCharges:    e.Totals.OtherCharges,
			Subtotal:        e.Totals.Subtotal,
			SalesTax:        e.Totals.SalesTax,
			GrandTotal:      e.Totals.GrandTotal,
			CustomerPay:     e.Totals.CustomerPay,
			InsurancePay:    e.Totals.InsurancePay,
		},
		Profits:            e.Profits,
		PDFURL:             e.PDFURL,
		FileName:           e.FileName,
		Notes:              e.Notes,
		PageCount:          e.PageCount,
		ParseConfidence:    e.ParseConfidence,
		Status:             string(e.Status),
		StatusError:        e.StatusError,
		ValidationWarnings: e.ValidationWarnings,
		SheetsError:        e.SheetsError,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
	return json.Marshal(doc)
}

func decodeEstimate(data []byte) (*dto.Estimate, error) {
	var doc estimateDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	totals := dto.Totals{
		Parts:           doc.Totals.Parts,
		BodyLabor:       doc.Totals.BodyLabor,
		PaintLabor:      doc.Totals.PaintLabor,
		MechanicalLabor: doc.Totals.MechanicalLabor,
		FrameLabor:      doc.Totals.FrameLabor,
		PaintSupplies:   doc.Totals.PaintSupplies,
		OtherCharges:    doc.Totals.OtherCharges,
		Subtotal:        doc.Totals.Subtotal,
		SalesTax:        doc.Totals.SalesTax,
		GrandTotal:      doc.Totals.GrandTotal,
		CustomerPay:     doc.Totals.CustomerPay,
		InsurancePay:    doc.Totals.InsurancePay,
	}
	switch {
	case doc.Totals.TotalLabor != nil:
		totals.TotalLabor = *doc.Totals.TotalLabor
	case doc.Totals.Labor != nil:
		totals.TotalLabor = *doc.Totals.Labor
	}
	switch {
	case doc.Totals.Miscellaneous != nil:
		totals.Miscellaneous = *doc.Totals.Miscellaneous
	case doc.Totals.Misc != nil:
		totals.Miscellaneous = *doc.Totals.Misc
	}

	return &dto.Estimate{
		ID:                 doc.ID,
		JobNumber:          doc.JobNumber,
		CustomerName:       doc.CustomerName,
		ClaimNumber:        doc.ClaimNumber,
		InsuranceCompany:   doc.InsuranceCompany,
		Vehicle:            doc.Vehicle,
		Totals:             totals,
		Profits:            doc.Profits,
		PDFURL:             doc.PDFURL,
		FileName:           doc.FileName,
		Notes:              doc.Notes,
		PageCount:          doc.PageCount,
		ParseConfidence:    doc.ParseConfidence,
		Status:             dto.Status(doc.Status),
		StatusError:        doc.StatusError,
		ValidationWarnings: doc.ValidationWarnings,
		SheetsError:        doc.SheetsError,
		CreatedAt:          doc.CreatedAt,
		UpdatedAt:          doc.UpdatedAt,
	}, nil
}
