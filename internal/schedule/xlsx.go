package schedule

import (
	"fmt"

	"github.com/Thenmitch/pad-foundation-tool/internal/repo"
	"github.com/xuri/excelize/v2"
)

// SummaryWorkbook builds the pad schedule summary table: one row per pad
// with the adopted geometry and design figures.
func SummaryWorkbook(pads []repo.SavedPad) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	header := []any{"Pad", "Width (m)", "Depth (m)", "Design load (kN)", "Utilisation (%)", "Volume (m3)"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, p := range pads {
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("Pad %d", i+1)
		}
		row := []any{name, p.WidthM, p.DepthM, p.DesignLoadKN, p.Utilisation * 100, p.VolumeM3}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}
	return f, nil
}
