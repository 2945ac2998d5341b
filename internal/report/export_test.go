package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestExportXLSXWritesDisplayedView(t *testing.T) {
	view := View{
		Columns: []string{"BENEFICIARIO", "importe"},
		Rows: [][]string{
			{"ACME", "$ 1,000.00"},
			{"TOTAL", "$ 1,000.00"},
		},
	}

	data, err := ExportXLSX(view)
	assert.NoError(t, err)
	assert.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{ExportSheetName}, f.GetSheetList())

	rows, err := f.GetRows(ExportSheetName)
	assert.NoError(t, err)
	assert.Equal(t, [][]string{
		{"BENEFICIARIO", "importe"},
		{"ACME", "$ 1,000.00"},
		{"TOTAL", "$ 1,000.00"},
	}, rows)
}
