package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/justcomments/justcomments/internal/entities"
)

const xlsxSheet = "Comments"

// XLSX renders the records as a spreadsheet workbook with the same column
// projection as the text formats: a header row followed by one row per
// record.
func XLSX(records []entities.CommentRecord, cols []entities.Column) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(xlsxSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for i, col := range cols {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(xlsxSheet, cell, col.Header()); err != nil {
			return nil, err
		}
	}

	for rowIdx, r := range records {
		for colIdx, col := range cols {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)

			var value any = fieldValue(r, col)
			if col == entities.ColumnPage {
				value = r.Page
			}
			if err := f.SetCellValue(xlsxSheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	// Comment text is free-form, so that column gets most of the width.
	for i, col := range cols {
		name, _ := excelize.ColumnNumberToName(i + 1)
		width := 18.0
		if col == entities.ColumnComment {
			width = 60.0
		}
		if err := f.SetColWidth(xlsxSheet, name, name, width); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
