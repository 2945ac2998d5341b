package dataset

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXSource reads both datasets from worksheets of local workbooks,
// mirroring the spreadsheet files the clerks already maintain.
type XLSXSource struct {
	PaymentsPath     string
	PaymentsSheet    string
	CommitmentsPath  string
	CommitmentsSheet string
}

func (s *XLSXSource) Load(ctx context.Context) (*Snapshot, error) {
	payments, err := readWorksheet(s.PaymentsPath, s.PaymentsSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments workbook: %v", err)
	}

	commitments, err := readWorksheet(s.CommitmentsPath, s.CommitmentsSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to load commitments workbook: %v", err)
	}

	return newSnapshot(payments, commitments), nil
}

func readWorksheet(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %v", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %v", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", sheet)
	}

	return FromRecords(rows), nil
}
