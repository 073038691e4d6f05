// Package repertoire loads one group's clonotype table and applies the row
// validity filter before any ranking happens.
package repertoire

import (
	"fmt"
	"strings"

	"github.com/msymeonides/TCRBuilder/internal/tabular"
)

// Required non-identity columns.
const (
	ColClonotypeID = "Clonotype_ID"
	ColCount       = "Count"
)

// Row is one clonotype observation. Count and ID are already parsed; the
// permissive string-to-int coercion happens once, at load time.
type Row struct {
	ID     int
	Count  int
	Fields []string // identity column values, whitespace-trimmed, in column order
}

// Key is the composite clonotype identity: the identity fields joined after
// case normalization. Two rows are the same clonotype iff their Keys are
// equal; this is structural equality, not biological similarity.
type Key string

// Key builds the identity key for the row.
func (r Row) Key() Key {
	parts := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		parts[i] = strings.ToLower(f)
	}
	return Key(strings.Join(parts, "\x1f"))
}

// Table is one validated (specimen, group) repertoire.
type Table struct {
	Columns []string // identity column names, in key order
	Rows    []Row
}

// MissingColumnsError aborts a single specimen's comparison; other specimens
// proceed.
type MissingColumnsError struct {
	Path    string
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s: missing required columns %v", e.Path, e.Columns)
}

// Load reads the file, verifies the schema, and drops invalid rows. A row is
// valid iff every identity field, trimmed and lowercased, is neither empty
// nor the literal "na". Dropped rows do not consume a rank position later.
func Load(path string, identityColumns []string) (*Table, error) {
	src, err := tabular.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromTable(src, path, identityColumns)
}

// FromTable applies schema checking and validation to an already-read table.
func FromTable(src *tabular.Table, path string, identityColumns []string) (*Table, error) {
	required := append([]string{ColClonotypeID, ColCount}, identityColumns...)
	if missing := src.Missing(required); len(missing) > 0 {
		return nil, &MissingColumnsError{Path: path, Columns: missing}
	}

	t := &Table{Columns: identityColumns}
	for i := 0; i < src.Len(); i++ {
		fields := make([]string, len(identityColumns))
		valid := true
		for j, col := range identityColumns {
			v := strings.TrimSpace(src.Cell(i, col))
			if v == "" || strings.ToLower(v) == "na" {
				valid = false
				break
			}
			fields[j] = v
		}
		if !valid {
			continue
		}
		t.Rows = append(t.Rows, Row{
			ID:     tabular.IntOr(src.Cell(i, ColClonotypeID), 0),
			Count:  tabular.IntOr(src.Cell(i, ColCount), 0),
			Fields: fields,
		})
	}
	return t, nil
}
