package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
)

func readSV(path string, comma rune) (*Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	r := csv.NewReader(fh)
	r.Comma = comma
	r.FieldsPerRecord = -1 // ragged rows are padded by Cell
	recs, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(recs) == 0 {
		return New(nil), nil
	}
	t := New(recs[0])
	t.Rows = recs[1:]
	return t, nil
}

func writeSV(path string, t *Table, comma rune) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(fh)
	w.Comma = comma
	if err := w.Write(t.Header); err != nil {
		_ = fh.Close()
		return err
	}
	if err := w.WriteAll(t.Rows); err != nil {
		_ = fh.Close()
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}
