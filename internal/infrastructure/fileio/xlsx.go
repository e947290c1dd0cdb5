package fileio

import (
	"io"

	excelize "github.com/xuri/excelize/v2"
)

// readXLSX reads the first sheet of a workbook.
func readXLSX(r io.Reader, headerRow int) ([]map[string]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	for i := range rows {
		for j := range rows[i] {
			rows[i][j] = normalizeCell(rows[i][j])
		}
	}
	h := pickHeader(rows, headerRow)
	return rowsToMaps(rows, h, headerRow), nil
}
