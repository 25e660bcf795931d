package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Suke-go/technetope/internal/units"
)

// inventoryHeaders are the columns of the marker inventory sheet.
var inventoryHeaders = []string{
	"ID", "Row", "Column", "X (px)", "Y (px)", "Size (px)", "Size (mm)", "Dictionary", "Sheet run",
}

// WriteInventory exports a marker sheet's placements as an Excel workbook,
// one row per marker. Labs tracking many printed sheets use this to keep
// a register of which physical marker ids are in circulation.
func WriteInventory(path string, meta SheetMetadata) error {
	if len(meta.Markers) == 0 {
		return fmt.Errorf("no markers to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Markers"
	f.SetSheetName("Sheet1", sheet)

	for col, header := range inventoryHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(inventoryHeaders), 1)
		_ = f.SetCellStyle(sheet, "A1", last, style)
	}

	for i, m := range meta.Markers {
		sizeMM, err := units.ToMillimeters(m.SizePx, meta.DPI)
		if err != nil {
			return err
		}
		row := []any{
			m.ID, m.Row, m.Column, m.TopLeft[0], m.TopLeft[1], m.SizePx, sizeMM, meta.Dictionary, meta.RunID,
		}
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save inventory workbook: %w", err)
	}
	return nil
}
