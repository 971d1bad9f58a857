package internal

import (
	"encoding/csv"
	"fmt"
	"os"
)

// ParseCSV reads subscriptions from a comma-separated file with the same
// header layout as the spreadsheet sources.
func ParseCSV(path string, ing Ingestor) ([]Subscription, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // rows may omit trailing optional cells
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	return ing.RowsToSubscriptions(rows)
}

func init() {
	RegisterParser("csv", ParserFunc(ParseCSV))
}
