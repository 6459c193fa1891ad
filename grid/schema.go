package grid

import (
	"strconv"

	"github.com/iw2rmb/revealgrid/record"
)

// IDColumn is the reserved name of the synthetic leading column that holds
// each body row's 1-based ordinal.
const IDColumn = "#"

// DeriveColumns returns IDColumn followed by every record key in order of
// first appearance. Records are scanned in order, keys in record order.
//
// A record key equal to IDColumn still becomes its own data column after the
// synthetic one.
func DeriveColumns(records []record.Record) []string {
	cols := []string{IDColumn}
	seen := make(map[string]struct{})
	for _, r := range records {
		for _, k := range r.Keys() {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			cols = append(cols, k)
		}
	}
	return cols
}

// DeriveValues builds the body matrix for columns: one row per record, one
// stringified value per column, "" where the record lacks the key. Column 0
// is the row ordinal.
func DeriveValues(columns []string, records []record.Record) [][]string {
	if len(records) == 0 {
		return nil
	}
	out := make([][]string, len(records))
	for i, r := range records {
		row := make([]string, len(columns))
		for c, key := range columns {
			if c == 0 {
				row[c] = strconv.Itoa(i + 1)
				continue
			}
			row[c] = r.String(key)
		}
		out[i] = row
	}
	return out
}

// normalizeColumns guarantees IDColumn at index 0. Later entries are kept as
// given, so a data key named like IDColumn survives.
func normalizeColumns(columns []string) []string {
	if len(columns) > 0 && columns[0] == IDColumn {
		out := make([]string, len(columns))
		copy(out, columns)
		return out
	}
	out := make([]string, 0, len(columns)+1)
	out = append(out, IDColumn)
	return append(out, columns...)
}
