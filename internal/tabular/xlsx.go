package tabular

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readXLSX loads the first sheet of a workbook as strings, the way the lab
// exports arrive.
func readXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("%s: workbook has no sheets", path)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(rows) == 0 {
		return New(nil), nil
	}
	t := New(rows[0])
	t.Rows = rows[1:]
	return t, nil
}

func writeXLSX(path string, t *Table) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	write := func(rowIdx int, cells []string) error {
		ref, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return err
		}
		vals := make([]interface{}, len(cells))
		for i, c := range cells {
			vals[i] = c
		}
		return f.SetSheetRow(sheet, ref, &vals)
	}

	if err := write(1, t.Header); err != nil {
		return err
	}
	for i, row := range t.Rows {
		if err := write(i+2, row); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
