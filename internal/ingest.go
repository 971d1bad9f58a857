package internal

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// columnIndexes locates the named columns in a header row. Matching is
// case-insensitive and ignores spaces, so "Day of Month", "dayofmonth" and
// "DayOfMonth" all resolve to the same column.
type columnIndexes struct {
	name, amount, currency, frequency, dayOfMonth int
	color, logo, startDate, endDate               int
}

func findColumns(header []string) (columnIndexes, error) {
	idx := func(names ...string) int {
		for i, cell := range header {
			key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(cell)), " ", "")
			for _, name := range names {
				if key == name {
					return i
				}
			}
		}
		return -1
	}

	cols := columnIndexes{
		name:       idx("name"),
		amount:     idx("amount"),
		currency:   idx("currency"),
		frequency:  idx("frequency"),
		dayOfMonth: idx("dayofmonth"),
		color:      idx("color"),
		logo:       idx("logo"),
		startDate:  idx("startdate"),
		endDate:    idx("enddate"), // optional
	}

	var missing []string
	for _, c := range []struct {
		name string
		idx  int
	}{
		{"name", cols.name},
		{"amount", cols.amount},
		{"currency", cols.currency},
		{"frequency", cols.frequency},
		{"day of month", cols.dayOfMonth},
		{"color", cols.color},
		{"logo", cols.logo},
		{"start date", cols.startDate},
	} {
		if c.idx == -1 {
			missing = append(missing, c.name)
		}
	}
	if len(missing) > 0 {
		return cols, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

// RowsToSubscriptions converts a header row plus data rows of raw strings
// into normalized Subscription records. One call is one full replacement of
// the subscription list; there are no partial updates.
//
// Rows missing a required field or failing numeric parse of amount or day
// of month are dropped with a warning naming the row index. Date cells go
// through ParseDate, so a malformed date degrades to the ingestion time
// rather than dropping the row. IDs are assigned by row position.
func (ing Ingestor) RowsToSubscriptions(rows [][]string) ([]Subscription, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("no data rows found (need a header row and at least one subscription)")
	}

	cols, err := findColumns(rows[0])
	if err != nil {
		return nil, err
	}

	var subs []Subscription
	for i, row := range rows[1:] {
		sub, ok := ing.rowToSubscription(row, cols, i)
		if !ok {
			continue
		}
		subs = append(subs, sub)
	}

	if len(subs) == 0 {
		return nil, fmt.Errorf("no valid subscription rows found")
	}
	return subs, nil
}

// Ingestor carries the ambient parameters of one ingestion pass: the locale
// used to disambiguate date cells and the wall-clock time used as the
// deterministic fallback for unparseable dates. Threading Now explicitly
// keeps the pipeline deterministic under test.
type Ingestor struct {
	Locale string
	Now    time.Time
}

func (ing Ingestor) rowToSubscription(row []string, cols columnIndexes, rowIdx int) (Subscription, bool) {
	cell := func(i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	name := cell(cols.name)
	amountRaw := cell(cols.amount)
	currencyRaw := cell(cols.currency)
	frequencyRaw := cell(cols.frequency)
	dayRaw := cell(cols.dayOfMonth)
	startRaw := cell(cols.startDate)

	if name == "" || amountRaw == "" || currencyRaw == "" || frequencyRaw == "" || dayRaw == "" || startRaw == "" {
		log.Warn().Int("row", rowIdx+1).Msg("row has missing data, skipping")
		return Subscription{}, false
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(amountRaw, ",", "."))
	if err != nil || !amount.IsPositive() {
		log.Warn().Int("row", rowIdx+1).Str("amount", amountRaw).Msg("row has invalid amount, skipping")
		return Subscription{}, false
	}

	day, err := strconv.Atoi(dayRaw)
	if err != nil || day < 1 || day > 31 {
		log.Warn().Int("row", rowIdx+1).Str("dayOfMonth", dayRaw).Msg("row has invalid day of month, skipping")
		return Subscription{}, false
	}

	sub := Subscription{
		ID:         rowIdx,
		Name:       name,
		Amount:     amount,
		Currency:   currencyRaw,
		Frequency:  NormalizeFrequency(frequencyRaw),
		DayOfMonth: day,
		StartDate:  ParseDate(startRaw, ing.Locale, ing.Now),
		Color:      cell(cols.color),
		Logo:       cell(cols.logo),
	}
	if endRaw := cell(cols.endDate); endRaw != "" {
		sub.EndDate = ParseDate(endRaw, ing.Locale, ing.Now)
	}
	return sub, true
}

// ValidateLocale checks that a locale tag is parseable, so a typo in config
// or flags is caught before it silently changes date disambiguation.
func ValidateLocale(locale string) error {
	if _, err := language.Parse(locale); err != nil {
		return fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return nil
}
