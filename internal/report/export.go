package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportSheetName is the single worksheet of the exported workbook.
const ExportSheetName = "Resultados"

// ExportMIMEType is the content type of the exported workbook.
const ExportMIMEType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportXLSX serializes the displayed view to an xlsx byte stream,
// formatted columns included. There is no separate raw export path.
func ExportXLSX(view View) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheetName); err != nil {
		return nil, fmt.Errorf("failed to name export sheet: %w", err)
	}

	header := make([]interface{}, len(view.Columns))
	for i, col := range view.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(ExportSheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write export header: %w", err)
	}

	for i, row := range view.Rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to compute export cell: %w", err)
		}
		if err := f.SetSheetRow(ExportSheetName, axis, &cells); err != nil {
			return nil, fmt.Errorf("failed to write export row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize export workbook: %w", err)
	}
	return buf.Bytes(), nil
}
