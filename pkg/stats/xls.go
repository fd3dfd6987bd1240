package stats

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	xlsx "github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/anrid/xls"
)

const utf8BOM = "\ufeff"

// ExtractDataFromFile calls handler with every row of the file, picking a
// reader by file extension. Anything that is not a spreadsheet is read as
// comma separated text.
func ExtractDataFromFile(f *File, handler func(r []string)) error {
	name := strings.ToLower(f.Name)
	switch {
	case strings.HasSuffix(name, ".xlsx"):
		return ExtractDataFromXLSX(f, handler)
	case strings.HasSuffix(name, ".xls"):
		return ExtractDataFromXLS(f, handler)
	default:
		return ExtractDataFromCSV(f, handler)
	}
}

func ExtractDataFromCSV(f *File, handler func(r []string)) error {
	reader := csv.NewReader(bytes.NewReader(f.Content))
	reader.FieldsPerRecord = -1

	first := true
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: could not read CSV file '%s': %s", ErrMalformedFile, f.Name, err.Error())
		}
		if first && len(row) > 0 {
			row[0] = strings.TrimPrefix(row[0], utf8BOM)
			first = false
		}
		handler(row)
	}
}

func ExtractDataFromXLS(f *File, handler func(r []string)) error {
	wb, err := xls.OpenReader(bytes.NewReader(f.Content), "utf-8")
	if err != nil {
		return fmt.Errorf("%w: could not read XLS file '%s': %s", ErrMalformedFile, f.Name, err.Error())
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return fmt.Errorf("%w: XLS file '%s' has no sheets", ErrMalformedFile, f.Name)
	}

	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		var cols []string
		for j := 0; j <= row.LastCol(); j++ {
			cols = append(cols, row.Col(j))
		}
		handler(cols)
	}
	return nil
}

func ExtractDataFromXLSX(f *File, handler func(r []string)) error {
	wb, err := xlsx.OpenReader(bytes.NewReader(f.Content))
	if err != nil {
		return fmt.Errorf("%w: could not read XLSX file '%s': %s", ErrMalformedFile, f.Name, err.Error())
	}

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return fmt.Errorf("%w: XLSX file '%s' has no sheets", ErrMalformedFile, f.Name)
	}
	defaultSheet := sheets[0]

	rows, err := wb.GetRows(defaultSheet)
	if err != nil {
		return fmt.Errorf("%w: could not get rows for default sheet '%s': %s", ErrMalformedFile, defaultSheet, err.Error())
	}

	for _, r := range rows {
		handler(r)
	}
	return nil
}
