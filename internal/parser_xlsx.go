package internal

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ParseXLSX reads subscriptions from the first sheet of an Excel workbook.
// The sheet must carry a header row with the standard subscription columns
// (name, amount, currency, frequency, day of month, color, logo,
// start date, optional end date).
func ParseXLSX(path string, ing Ingestor) ([]Subscription, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in file")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet: %w", err)
	}

	return ing.RowsToSubscriptions(rows)
}

func init() {
	RegisterParser("xlsx", ParserFunc(ParseXLSX))
}
