// Package contacts turns uploaded CSV and Excel sheets into campaign contacts.
package contacts

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Cell is a non-empty value of a row together with its column header.
type Cell struct {
	Header string
	Value  string
}

// Row holds the non-empty cells of a sheet row in column order.
type Row []Cell

// ErrEmptySheet is returned when a file has no header row.
var ErrEmptySheet = errors.New("sheet has no header row")

// IsCSV reports whether the file name or URL points to a CSV file.
// Anything else is treated as an Excel workbook.
func IsCSV(name string) bool {
	return strings.Contains(strings.ToLower(name), ".csv")
}

// Parse reads rows from r. The first row is the header and rows without
// any value are dropped. Excel files are read from their first sheet.
func Parse(name string, r io.Reader) ([]Row, error) {
	var (
		records [][]string
		err     error
	)
	if IsCSV(name) {
		records, err = readCSV(r)
	} else {
		records, err = readExcel(r)
	}
	if err != nil {
		return nil, err
	}

	return toRows(records)
}

func readCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read csv: %w", err)
	}
	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], "\ufeff")
	}

	return records, nil
}

func readExcel(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptySheet
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %q: %w", sheets[0], err)
	}

	return rows, nil
}

func toRows(records [][]string) ([]Row, error) {
	if len(records) == 0 {
		return nil, ErrEmptySheet
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(h)
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		var row Row
		for i, v := range rec {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}

			var h string
			if i < len(header) {
				h = header[i]
			}
			row = append(row, Cell{Header: h, Value: v})
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}

	return rows, nil
}
