package record

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseCSV reads comma-separated rows. The first row names the keys, and
// every record carries them in header order.
func ParseCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return nil, &ParseError{Source: "csv", Index: pe.Line - 2, Err: err}
		}
		return nil, &ParseError{Source: "csv", Index: -1, Err: err}
	}
	return fromRows(rows), nil
}

// ParseXLSX reads one worksheet of an Excel workbook. sheet selects the
// worksheet by name; empty selects the first one. The first row names the
// keys.
func ParseXLSX(r io.Reader, sheet string) ([]Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &ParseError{Source: "xlsx", Index: -1, Err: err}
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, &ParseError{Source: "xlsx", Index: -1, Err: ErrNoSheet}
		}
		sheet = sheets[0]
	} else if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, &ParseError{Source: "xlsx:" + sheet, Index: -1, Err: ErrNoSheet}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &ParseError{Source: "xlsx:" + sheet, Index: -1, Err: err}
	}
	return fromRows(rows), nil
}

// fromRows converts a header row plus data rows into records. The header is
// the schema: each record has every named header key in file order, with ""
// for blank or missing cells. Header cells that are blank do not produce a
// key.
func fromRows(rows [][]string) []Record {
	if len(rows) == 0 {
		return nil
	}
	header := rows[0]
	out := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		var r Record
		for i, key := range header {
			key = strings.TrimSpace(key)
			if key == "" {
				continue
			}
			var v string
			if i < len(row) {
				v = row[i]
			}
			// A repeated header keeps its first non-blank value.
			if _, ok := r.Get(key); ok && v == "" {
				continue
			}
			r.Set(key, v)
		}
		out = append(out, r)
	}
	return out
}
