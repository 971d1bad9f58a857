package internal

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// frequencyAliases maps accepted raw spellings onto canonical codes.
// Anything not listed falls back to monthly so malformed spreadsheet data
// degrades gracefully instead of breaking rendering.
var frequencyAliases = map[string]Frequency{
	"yearly":        FreqYearly,
	"annual":        FreqYearly,
	"annually":      FreqYearly,
	"quarterly":     FreqQuarterly,
	"quarter":       FreqQuarterly,
	"biannually":    FreqBiannually,
	"semi-annually": FreqBiannually,
	"half-yearly":   FreqBiannually,
	"weekly":        FreqWeekly,
	"biweekly":      FreqBiweekly,
	"bi-weekly":     FreqBiweekly,
	"fortnightly":   FreqBiweekly,
	"daily":         FreqDaily,
	"monthly":       FreqMonthly,
}

// NormalizeFrequency maps a free-text frequency label onto a canonical
// code. Matching is case- and whitespace-insensitive; unknown labels
// default to monthly.
func NormalizeFrequency(raw string) Frequency {
	key := strings.ToLower(strings.TrimSpace(raw))
	if freq, ok := frequencyAliases[key]; ok {
		return freq
	}
	if key != "" && key != string(FreqMonthly) {
		log.Debug().Str("raw", raw).Msg("unknown frequency label, defaulting to monthly")
	}
	return FreqMonthly
}

// monthsPerCharge returns how many months one charge covers for the
// month-aligned frequencies, or 0 for sub-monthly ones.
func monthsPerCharge(freq Frequency) int {
	switch freq {
	case FreqYearly:
		return 12
	case FreqBiannually:
		return 6
	case FreqQuarterly:
		return 3
	case FreqMonthly:
		return 1
	default:
		return 0
	}
}

// MonthlyEquivalent converts a per-charge amount into its monthly-equivalent
// cost, used for comparing subscriptions with different frequencies.
func MonthlyEquivalent(amount decimal.Decimal, freq Frequency) decimal.Decimal {
	switch freq {
	case FreqDaily:
		// average days per month over a year
		return amount.Mul(decimal.NewFromFloat(30.42))
	case FreqWeekly:
		return amount.Mul(decimal.NewFromFloat(4.33))
	case FreqBiweekly:
		return amount.Mul(decimal.NewFromFloat(2.17))
	default:
		if n := monthsPerCharge(freq); n > 1 {
			return amount.Div(decimal.NewFromInt(int64(n))).Round(2)
		}
		return amount
	}
}

// DescribeFrequency returns a human-readable description of how a
// subscription charges, e.g. "€9.99 every 3 months (€3.33/mo)". Amounts are
// formatted for the subscription's currency in the given locale.
func DescribeFrequency(sub Subscription, cur Currency) string {
	amount := cur.FormatAmount(sub.Amount)
	monthly := cur.FormatAmount(MonthlyEquivalent(sub.Amount, sub.Frequency))

	switch sub.Frequency {
	case FreqYearly:
		return fmt.Sprintf("%s per year (%s/mo)", amount, monthly)
	case FreqQuarterly:
		return fmt.Sprintf("%s every 3 months (%s/mo)", amount, monthly)
	case FreqBiannually:
		return fmt.Sprintf("%s every 6 months (%s/mo)", amount, monthly)
	case FreqWeekly:
		return fmt.Sprintf("%s weekly (%s/mo)", amount, monthly)
	case FreqBiweekly:
		return fmt.Sprintf("%s every 2 weeks (%s/mo)", amount, monthly)
	case FreqDaily:
		return fmt.Sprintf("%s daily (%s/mo)", amount, monthly)
	default:
		return fmt.Sprintf("%s monthly", amount)
	}
}
