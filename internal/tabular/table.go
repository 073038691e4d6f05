// Package tabular abstracts the spreadsheet/table files the tools consume
// and produce. Cells are strings; a missing cell reads as "" so downstream
// code can compare without a separate null type.
package tabular

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Table is an ordered sequence of rows under a named-column header.
type Table struct {
	Header []string
	Rows   [][]string

	cols map[string]int
}

// New returns an empty table with the given header.
func New(header []string) *Table {
	t := &Table{Header: header}
	t.index()
	return t
}

func (t *Table) index() {
	t.cols = make(map[string]int, len(t.Header))
	for i, name := range t.Header {
		if _, dup := t.cols[name]; !dup {
			t.cols[name] = i
		}
	}
}

// Append adds one row. Short rows are fine; Cell pads with "".
func (t *Table) Append(row []string) { t.Rows = append(t.Rows, row) }

// Len reports the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// Col returns the index of a named column.
func (t *Table) Col(name string) (int, bool) {
	if t.cols == nil {
		t.index()
	}
	i, ok := t.cols[name]
	return i, ok
}

// Cell returns the value at (row, column name), or "" when the column is
// absent or the row is shorter than the header.
func (t *Table) Cell(row int, name string) string {
	i, ok := t.Col(name)
	if !ok || row < 0 || row >= len(t.Rows) || i >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][i]
}

// Missing reports which of the wanted columns the table lacks.
func (t *Table) Missing(wanted []string) []string {
	var out []string
	for _, name := range wanted {
		if _, ok := t.Col(name); !ok {
			out = append(out, name)
		}
	}
	return out
}

// Int parses a cell as a base-10 integer after trimming whitespace.
// External data is permissive by contract: anything unparseable reports
// ok=false so callers choose the default once, at this boundary.
func Int(s string) (v int, ok bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	return v, err == nil
}

// IntOr parses like Int, substituting def on failure.
func IntOr(s string, def int) int {
	if v, ok := Int(s); ok {
		return v
	}
	return def
}

// ReadFile loads a table, picking the codec from the file extension:
// .xlsx, .csv, or .tsv/.txt (tab-separated).
func ReadFile(path string) (*Table, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		return readXLSX(path)
	case ".csv":
		return readSV(path, ',')
	case ".tsv", ".txt":
		return readSV(path, '\t')
	default:
		return nil, fmt.Errorf("%s: unsupported table format %q", path, ext)
	}
}

// WriteFile stores a table, picking the codec from the file extension.
func WriteFile(path string, t *Table) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		return writeXLSX(path, t)
	case ".csv":
		return writeSV(path, t, ',')
	case ".tsv", ".txt":
		return writeSV(path, t, '\t')
	default:
		return fmt.Errorf("%s: unsupported table format %q", path, ext)
	}
}
