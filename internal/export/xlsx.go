// Package export renders coffee records as a spreadsheet.
package export

import (
	"fmt"
	"io"

	"barista/internal/domain"

	"github.com/xuri/excelize/v2"
)

const sheet = "Coffees"

var header = []any{"ID", "Name", "Origin", "Roast level", "Grind size", "Water temperature (°C)", "Coffee amount (g)", "Notes", "Rating", "Added"}

// WriteXLSX writes records as a single-sheet workbook to w.
func WriteXLSX(w io.Writer, records []domain.CoffeeRecord) error {
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, r := range records {
		row := []any{
			r.ID, r.Name, r.Origin, string(r.RoastLevel),
			optional(r.GrindSize), optional(r.WaterTemperature), optional(r.CoffeeAmount),
			optional(r.Notes), optional(r.Rating),
			r.CreatedAt.Format("2006-01-02 15:04"),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}
	if err := f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return err
	}
	_, err := f.WriteTo(w)
	return err
}

// optional dereferences p, yielding nil (an empty cell) when absent.
func optional[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
