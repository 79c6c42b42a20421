// Package client holds adapters for external collaborators. The sheets
// client mirrors every accepted estimate into a spreadsheet the shop's
// bookkeeper works from.
package client

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/hseinsb/estimate-analyzer/dto"
	"github.com/hseinsb/estimate-analyzer/logger"
)

const sheetName = "Estimates"

// The column order is a fixed contract with the bookkeeping sheet: three of
// the columns are left blank for spreadsheet-side formulas and manual entry.
var sheetHeaders = []string{
	"Date", "Job #", "Customer", "Claim #", "Insurance",
	"Year", "Make", "Model", "VIN",
	"Parts", "Labor (Total)", "Paint Supplies", "Misc", "Other",
	"Subtotal", "Sales Tax", "Grand Total",
	"Estimate Profit", "Actual Parts Cost", "Actual Profit",
	"PDF Link", "Status",
}

// SheetsClient appends estimate rows to an xlsx workbook.
type SheetsClient struct {
	path string
	mu   sync.Mutex
	log  *zap.SugaredLogger
}

func NewSheetsClient(path string) *SheetsClient {
	return &SheetsClient{
		path: path,
		log:  logger.GetLogger(),
	}
}

// AppendEstimate appends one row for the estimate. The workbook is created
// with a header row on first use.
func (c *SheetsClient) AppendEstimate(e *dto.Estimate) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	f, created, err := c.openWorkbook()
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return fmt.Errorf("read sheet %s: %w", sheetName, err)
	}
	row := len(rows) + 1

	for col, v := range RowValues(e) {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}

	if err := f.SaveAs(c.path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}

	c.log.Infow("appended estimate to spreadsheet",
		"estimate_id", e.ID, "row", row, "workbook_created", created)
	return nil
}

// RowValues reshapes an estimate into the fixed 22-column row. Exported so
// the column contract is testable on its own.
func RowValues(e *dto.Estimate) []any {
	link := e.PDFURL
	if link == "" {
		link = e.FileName
	}
	statusLabel := "Needs Review"
	if e.Status == dto.StatusParsed {
		statusLabel = "Parsed"
	}
	date := e.CreatedAt
	if date.IsZero() {
		date = time.Now()
	}

	return []any{
		date.Format("2006-01-02"),
		e.JobNumber,
		e.CustomerName,
		e.ClaimNumber,
		e.InsuranceCompany,
		e.Vehicle.Year,
		e.Vehicle.Make,
		e.Vehicle.Model,
		e.Vehicle.VIN,
		e.Totals.Parts,
		e.Totals.TotalLabor,
		e.Totals.PaintSupplies,
		e.Totals.Miscellaneous,
		e.Totals.OtherCharges,
		e.Totals.Subtotal,
		e.Totals.SalesTax,
		e.Totals.GrandTotal,
		"", // Estimate Profit (sheet formula)
		"", // Actual Parts Cost (manual)
		"", // Actual Profit (sheet formula)
		link,
		statusLabel,
	}
}

func (c *SheetsClient) openWorkbook() (*excelize.File, bool, error) {
	if _, err := os.Stat(c.path); err == nil {
		f, err := excelize.OpenFile(c.path)
		if err != nil {
			return nil, false, fmt.Errorf("open workbook %s: %w", c.path, err)
		}
		if idx, _ := f.GetSheetIndex(sheetName); idx == -1 {
			if _, err := f.NewSheet(sheetName); err != nil {
				_ = f.Close()
				return nil, false, err
			}
			if err := writeHeaders(f); err != nil {
				_ = f.Close()
				return nil, false, err
			}
		}
		return f, false, nil
	}

	f := excelize.NewFile()
	if _, err := f.NewSheet(sheetName); err != nil {
		_ = f.Close()
		return nil, false, err
	}
	// Drop the default sheet so the workbook only carries Estimates.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		_ = f.Close()
		return nil, false, err
	}
	if err := writeHeaders(f); err != nil {
		_ = f.Close()
		return nil, false, err
	}
	return f, true, nil
}

func writeHeaders(f *excelize.File) error {
	for i, h := range sheetHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}
	return nil
}
