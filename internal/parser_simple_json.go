package internal

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

// SimpleJSONFormat is a minimal JSON format for importing subscriptions
// without a spreadsheet. Example:
//
//	{
//	  "subscriptions": [
//	    {"name": "Netflix", "amount": 4.33, "currency": "€",
//	     "frequency": "monthly", "dayOfMonth": 7, "startDate": "2021-01-01"}
//	  ]
//	}
type SimpleJSONFormat struct {
	Subscriptions []SimpleJSONSubscription `json:"subscriptions"`
}

type SimpleJSONSubscription struct {
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	Frequency  string  `json:"frequency"`
	DayOfMonth int     `json:"dayOfMonth"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate,omitempty"`
	Color      string  `json:"color,omitempty"`
	Logo       string  `json:"logo,omitempty"`
}

// ParseSimpleJSON parses a JSON file in the simple JSON format. Entries
// with a non-positive amount or an out-of-range day of month are dropped
// with a warning, mirroring the row-based sources.
func ParseSimpleJSON(path string, ing Ingestor) ([]Subscription, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var jsonData SimpleJSONFormat
	if err := json.Unmarshal(data, &jsonData); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	var subs []Subscription
	for i, js := range jsonData.Subscriptions {
		if js.Name == "" || js.Amount <= 0 || js.DayOfMonth < 1 || js.DayOfMonth > 31 || js.StartDate == "" {
			log.Warn().Int("entry", i+1).Msg("subscription entry has invalid data, skipping")
			continue
		}
		sub := Subscription{
			ID:         i,
			Name:       js.Name,
			Amount:     decimal.NewFromFloat(js.Amount),
			Currency:   js.Currency,
			Frequency:  NormalizeFrequency(js.Frequency),
			DayOfMonth: js.DayOfMonth,
			StartDate:  ParseDate(js.StartDate, ing.Locale, ing.Now),
			Color:      js.Color,
			Logo:       js.Logo,
		}
		if js.EndDate != "" {
			sub.EndDate = ParseDate(js.EndDate, ing.Locale, ing.Now)
		}
		subs = append(subs, sub)
	}

	if len(subs) == 0 {
		return nil, fmt.Errorf("no valid subscriptions found in %s", path)
	}
	return subs, nil
}

func init() {
	RegisterParser("simple-json", ParserFunc(ParseSimpleJSON))
}
