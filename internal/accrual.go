package internal

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChargesSinceStart counts the charge occurrences that have elapsed between
// the subscription's start date and now, exclusive of future charges and
// inclusive of a charge due today. The count never goes negative, even when
// now precedes the start date (clock skew, bad input).
//
// Month-aligned frequencies count elapsed months against the nominal charge
// day: the current month is excluded while its charge day has not been
// reached. Quarterly and biannual counts are whole elapsed cycles. Yearly
// counts elapsed years plus one once this year's anniversary has been
// reached. Sub-monthly frequencies count whole elapsed day periods.
func ChargesSinceStart(sub Subscription, now time.Time) int {
	end := now
	if !sub.EndDate.IsZero() && sub.EndDate.Before(now) {
		end = sub.EndDate
	}

	var count int
	switch sub.Frequency {
	case FreqYearly:
		count = end.Year() - sub.StartDate.Year()
		if anniversaryReached(sub, end) {
			count++
		}
	case FreqQuarterly:
		count = elapsedMonths(sub, end) / 3
	case FreqBiannually:
		count = elapsedMonths(sub, end) / 6
	case FreqDaily:
		count = elapsedDays(sub, end)
	case FreqWeekly:
		count = elapsedDays(sub, end) / 7
	case FreqBiweekly:
		count = elapsedDays(sub, end) / 14
	default: // monthly
		count = elapsedMonths(sub, end)
	}

	if count < 0 {
		return 0
	}
	return count
}

// TotalSpent is the cumulative amount paid from the start date up to now:
// elapsed charge count times the per-charge amount. Informational only; it
// is not reconciled against any ledger.
func TotalSpent(sub Subscription, now time.Time) decimal.Decimal {
	return sub.Amount.Mul(decimal.NewFromInt(int64(ChargesSinceStart(sub, now))))
}

// elapsedMonths is the whole-month difference from start to now, reduced by
// one while now sits before the (clamped) charge day of its month.
func elapsedMonths(sub Subscription, now time.Time) int {
	months := MonthsBetween(sub.StartDate, now)
	if now.Day() < ClampDay(sub.DayOfMonth, now.Month(), now.Year()) {
		months--
	}
	return months
}

// elapsedDays is the whole-day difference from the start date to now.
func elapsedDays(sub Subscription, now time.Time) int {
	return int(today(now).Sub(today(sub.StartDate)).Hours() / 24)
}

// anniversaryReached reports whether this year's charge (start month,
// clamped charge day) has been reached or passed.
func anniversaryReached(sub Subscription, now time.Time) bool {
	month := sub.StartDate.Month()
	if now.Month() != month {
		return now.Month() > month
	}
	return now.Day() >= ClampDay(sub.DayOfMonth, month, now.Year())
}
