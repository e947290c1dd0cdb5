package fileio

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	xls "github.com/extrame/xls"
)

// Legacy workbooks exported by French accounting tools are mostly cp1252.
var xlsCharsets = []string{"windows-1252", "utf-8", "iso-8859-1"}

// computeMaxCols finds the table width by scanning cells; Row.LastCol is not
// reliable on files written by third-party tools.
func computeMaxCols(sheet *xls.WorkSheet) int {
	const scanMax = 256
	maxCols := 0
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		for j := maxCols; j < scanMax; j++ {
			if normalizeCell(row.Col(j)) != "" {
				maxCols = j + 1
			}
		}
	}
	if maxCols == 0 {
		maxCols = 1
	}
	return maxCols
}

// readXLS reads the first sheet of a BIFF workbook. The decoder panics on
// some malformed files; that is reported as an error.
func readXLS(r io.Reader, headerRow int) (out []map[string]string, err error) {
	defer func() {
		if p := recover(); p != nil {
			out, err = nil, fmt.Errorf("xls: malformed workbook: %v", p)
		}
	}()

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var (
		wb      *xls.WorkBook
		lastErr error
	)
	for _, charset := range xlsCharsets {
		wb, err = xls.OpenReader(bytes.NewReader(b), charset)
		if err == nil && wb != nil {
			break
		}
		lastErr = err
	}
	if wb == nil {
		if lastErr == nil {
			lastErr = errors.New("xls: failed to open workbook")
		}
		return nil, lastErr
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, nil
	}

	maxCols := computeMaxCols(sheet)
	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		cols := make([]string, maxCols)
		if row != nil {
			for j := 0; j < maxCols; j++ {
				cols[j] = normalizeCell(row.Col(j))
			}
		}
		rows = append(rows, cols)
	}

	h := pickHeader(rows, headerRow)
	return rowsToMaps(rows, h, headerRow), nil
}
