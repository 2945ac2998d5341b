package dataset

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"golang.org/x/text/encoding/charmap"
)

// CSVSource reads both datasets from local CSV exports.
type CSVSource struct {
	PaymentsPath    string
	CommitmentsPath string
	Delimiter       rune
}

func (s *CSVSource) Load(ctx context.Context) (*Snapshot, error) {
	payments, err := s.readFile(s.PaymentsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments csv: %v", err)
	}

	commitments, err := s.readFile(s.CommitmentsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load commitments csv: %v", err)
	}

	return newSnapshot(payments, commitments), nil
}

func (s *CSVSource) readFile(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %v", path, err)
	}
	defer file.Close()

	delim := s.Delimiter
	if delim == 0 {
		delim = ','
	}
	return readCSVTable(file, delim)
}

func readCSVTable(r io.Reader, delim rune) (*Table, error) {
	// Using Windows1252 because it is the encoding used by the finance
	// system's CSV exports
	decoded := charmap.Windows1252.NewDecoder().Reader(r)
	df := dataframe.ReadCSV(decoded, dataframe.WithDelimiter(delim), dataframe.WithLazyQuotes(true))
	if df.Error() != nil {
		return nil, fmt.Errorf("failed to decode csv: %v", df.Error())
	}
	if df.Nrow() == 0 {
		return nil, fmt.Errorf("dataframe is empty")
	}

	return FromRecords(df.Records()), nil
}
