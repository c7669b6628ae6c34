package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/paperfold/invoice-intel/internal/analysis"
)

// Row pairs a source file name with its analysis result.
type Row struct {
	FileName string
	Result   analysis.Result
}

// Service produces XLSX bytes for analysis exports.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// WorkbookXLSX returns an XLSX workbook (as bytes) with one row per
// analyzed document.
func (s *Service) WorkbookXLSX(rows []Row) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Analyses"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// drop the default sheet excelize creates
	if index, _ := f.GetSheetIndex("Sheet1"); index != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"File",
		"Doc Class",
		"Vendor",
		"Invoice #",
		"Date",
		"Total",
		"Tax",
		"Currency",
		"Risk",
		"Compliance",
		"Decision",
		"CO2e Estimate",
		"Flagged",
		"Flag Reason",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	rowIdx := 2
	for _, row := range rows {
		r := row.Result
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, rowIdx)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, row.FileName)
		write(2, string(r.DocClass))
		write(3, strOrDash(r.VendorName))
		write(4, strOrDash(r.InvoiceNumber))
		write(5, strOrDash(r.InvoiceDate))
		write(6, numOrEmpty(r.TotalAmount))
		write(7, numOrEmpty(r.TaxAmount))
		write(8, r.Currency)
		write(9, string(r.RiskScore))
		write(10, string(r.ComplianceStatus))
		write(11, string(r.Approval))
		write(12, numOrEmpty(r.CO2eEstimate))
		write(13, r.IsFlagged)
		write(14, r.FlagReason)

		rowIdx++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 32) // file
	_ = f.SetColWidth(sheet, "C", "C", 28) // vendor
	_ = f.SetColWidth(sheet, "D", "E", 16) // invoice #, date
	_ = f.SetColWidth(sheet, "F", "H", 12) // amounts
	_ = f.SetColWidth(sheet, "N", "N", 40) // flag reason

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func strOrDash(p *string) string {
	if p == nil || *p == "" {
		return "—"
	}
	return *p
}

func numOrEmpty(p *float64) any {
	if p == nil {
		return ""
	}
	return *p
}
