package export_report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// workbook последовательно пишет строки в листы xlsx
type workbook struct {
	file         *excelize.File
	currentSheet string
	currentRow   int
}

func newWorkbook() *workbook {
	return &workbook{file: excelize.NewFile()}
}

// addSheet создаёт лист; первый лист переименовывает стандартный Sheet1
func (w *workbook) addSheet(name string) error {
	if w.currentSheet == "" {
		if err := w.file.SetSheetName("Sheet1", name); err != nil {
			return fmt.Errorf("rename sheet %s: %w", name, err)
		}
	} else {
		if _, err := w.file.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	w.currentSheet = name
	w.currentRow = 1
	return nil
}

func (w *workbook) writeHeader(columns []string) error {
	values := make([]interface{}, len(columns))
	for i, col := range columns {
		values[i] = col
	}
	if err := w.writeRow(values...); err != nil {
		return err
	}

	style, err := w.file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	startCell, _ := excelize.CoordinatesToCellName(1, w.currentRow-1)
	endCell, _ := excelize.CoordinatesToCellName(len(columns), w.currentRow-1)
	return w.file.SetCellStyle(w.currentSheet, startCell, endCell, style)
}

func (w *workbook) writeRow(values ...interface{}) error {
	if w.currentSheet == "" {
		return fmt.Errorf("no active sheet")
	}

	for i, val := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, w.currentRow)
		if err != nil {
			return err
		}
		if err := w.file.SetCellValue(w.currentSheet, cell, val); err != nil {
			return err
		}
	}

	w.currentRow++
	return nil
}

func (w *workbook) setColumnWidth(from, to string, width float64) error {
	return w.file.SetColWidth(w.currentSheet, from, to, width)
}

func (w *workbook) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := w.file.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (w *workbook) close() error {
	return w.file.Close()
}
