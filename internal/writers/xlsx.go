// internal/writers/xlsx.go
package writers

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"mailgen/pkg/api"
)

func init() { Register("xlsx", WriteXLSX) }

// SheetName is the single sheet every workbook carries.
const SheetName = "Emails"

// WriteXLSX renders rows as a one-sheet workbook with a bold header.
func WriteXLSX(w io.Writer, rows []api.EntryV1, header, simple bool) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	rowIdx := 1
	if header {
		if err := setCells(f, rowIdx, headerRow(simple)); err != nil {
			return err
		}
		style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(len(headerRow(simple)), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(SheetName, "A1", last, style); err != nil {
			return err
		}
		rowIdx++
	}
	for _, r := range rows {
		if err := setCells(f, rowIdx, cells(r, simple)); err != nil {
			return err
		}
		rowIdx++
	}
	if err := f.SetColWidth(SheetName, "A", "B", 32); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setCells(f *excelize.File, row int, values []string) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, v); err != nil {
			return err
		}
	}
	return nil
}
