package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/atharva-patil-create/discharge-summary-generator/internal/summary"
)

// ExportSummaryXLSX returns an XLSX workbook (as bytes) with one row per
// recovered discharge-summary field, in canonical order.
func (s *Service) ExportSummaryXLSX(sum *summary.Summary) ([]byte, error) {
	if sum == nil || sum.Len() == 0 {
		return nil, fmt.Errorf("xlsx: %w", ErrEmptyDocument)
	}
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Discharge Summary"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if defIdx, _ := f.GetSheetIndex("Sheet1"); defIdx != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{"Field", "Value"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range sum.Rows() {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, string(r.Field))
		write(2, r.Value)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 28) // field label
	_ = f.SetColWidth(sheet, "B", "B", 80) // value

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", row-2,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
