package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// WriteExcel serialises a report table to an xlsx workbook with a bold
// header row and a title row above it.
func WriteExcel(w io.Writer, table Table) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	sheet := "Report"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	row := 1
	if table.Title != "" {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, table.Title); err != nil {
			return err
		}
		titleStyle, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true, Size: 14},
		})
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, titleStyle); err != nil {
			return err
		}
		row += 2
	}

	headerRow := row
	for col, header := range table.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, headerRow)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}
	if len(table.Headers) > 0 {
		first, _ := excelize.CoordinatesToCellName(1, headerRow)
		last, _ := excelize.CoordinatesToCellName(len(table.Headers), headerRow)
		headerStyle, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true},
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDDDDD"}},
		})
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, first, last, headerStyle); err != nil {
			return err
		}
		row++
	}

	for _, record := range table.Rows {
		for col, value := range record {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
		row++
	}

	for col := range table.Headers {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, 18); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("export: write workbook: %w", err)
	}
	return nil
}
