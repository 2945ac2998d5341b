package dataset

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsSource reads both datasets from a Google spreadsheet, one named
// sheet per dataset, authenticated with a service account.
type SheetsSource struct {
	SpreadsheetID      string
	PaymentsRange      string
	CommitmentsRange   string
	ServiceAccountPath string
}

func (s *SheetsSource) Load(ctx context.Context) (*Snapshot, error) {
	service, err := s.createSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	payments, err := s.readRange(ctx, service, s.PaymentsRange)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments sheet: %w", err)
	}

	commitments, err := s.readRange(ctx, service, s.CommitmentsRange)
	if err != nil {
		return nil, fmt.Errorf("failed to load commitments sheet: %w", err)
	}

	return newSnapshot(payments, commitments), nil
}

func (s *SheetsSource) readRange(ctx context.Context, service *sheets.Service, readRange string) (*Table, error) {
	resp, err := service.Spreadsheets.Values.Get(s.SpreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to read range %s: %w", readRange, err)
	}
	if len(resp.Values) == 0 {
		return nil, fmt.Errorf("range %s is empty", readRange)
	}

	records := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, fmt.Sprint(cell))
		}
		records = append(records, cells)
	}

	return FromRecords(records), nil
}

func (s *SheetsSource) createSheetsService(ctx context.Context) (*sheets.Service, error) {
	jsonKey, err := os.ReadFile(s.ServiceAccountPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read service account key file: %w", err)
	}

	jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service account key: %w", err)
	}

	return sheets.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
}
