package stats

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// AnalyzeXLSX streams one worksheet through the same fold as delimited
// text input. The sheet is chosen by opt.SheetName, or by the 1-based
// opt.SheetIndex when no name is given.
func AnalyzeXLSX(path string, opt Options) (*Report, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheet := opt.SheetName
	if sheet == "" {
		idx := opt.SheetIndex
		if idx <= 0 {
			idx = 1
		}
		sheets := f.GetSheetList()
		if idx > len(sheets) {
			return nil, fmt.Errorf("sheet index %d out of range (workbook has %d sheets)", idx, len(sheets))
		}
		sheet = sheets[idx-1]
	}

	rows, err := f.Rows(sheet)
	if err != nil {
		return nil, fmt.Errorf("open sheet %q: %w", sheet, err)
	}
	defer rows.Close()

	rep, err := Analyze(&sheetSource{rows: rows})
	if err != nil {
		return nil, err
	}
	rep.Name = filepath.Base(path)
	return rep, nil
}

type sheetSource struct {
	rows *excelize.Rows
}

func (s *sheetSource) Next() ([]string, error) {
	if !s.rows.Next() {
		if err := s.rows.Error(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	return s.rows.Columns()
}
