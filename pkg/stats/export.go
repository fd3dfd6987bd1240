package stats

import (
	"encoding/csv"
	"fmt"
	"io"

	xlsx "github.com/360EntSecGroup-Skylar/excelize/v2"
)

// WriteCSV writes t as comma separated text, header first.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	return cw.Error()
}

// WriteXLSX writes t into a single sheet workbook.
func WriteXLSX(w io.Writer, t *Table, sheet string) error {
	wb := xlsx.NewFile()
	if sheet == "" {
		sheet = "Sheet1"
	}
	wb.SetSheetName(wb.GetSheetName(0), sheet)

	if err := setRow(wb, sheet, 1, t.Columns); err != nil {
		return err
	}
	for i, row := range t.Rows {
		if err := setRow(wb, sheet, i+2, row); err != nil {
			return err
		}
	}

	_, err := wb.WriteTo(w)
	return err
}

func setRow(wb *xlsx.File, sheet string, n int, row []string) error {
	cell, err := xlsx.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	values := make([]interface{}, len(row))
	for i, v := range row {
		values[i] = v
	}
	if err := wb.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", n, err)
	}
	return nil
}
