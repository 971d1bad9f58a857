package internal

import "time"

// OccursInMonth reports whether a subscription with the given frequency and
// start date charges at least once in the given month.
//
// Monthly and sub-monthly frequencies charge every month at or after the
// start; sub-monthly ones are not projected onto individual weeks or days
// here, only flagged as active for the month. Yearly charges recur in the
// start month, quarterly and biannual charges are phase-aligned to the
// start month's position within their 3- or 6-month cycle. Unknown
// frequencies fail open so unrecognized subscriptions stay visible.
func OccursInMonth(freq Frequency, start time.Time, month time.Month, year int) bool {
	monthsDiff := (year-start.Year())*12 + int(month) - int(start.Month())
	if monthsDiff < 0 {
		return false
	}

	switch freq {
	case FreqMonthly, FreqWeekly, FreqBiweekly, FreqDaily:
		return true
	case FreqYearly:
		return month == start.Month() && monthsDiff%12 == 0
	case FreqQuarterly:
		return monthsDiff%3 == 0
	case FreqBiannually:
		return monthsDiff%6 == 0
	default:
		return true
	}
}

// SubscriptionOccursInMonth applies OccursInMonth plus the end-date cutoff:
// a subscription whose end date precedes its (clamped) charge day in the
// month no longer charges there.
func SubscriptionOccursInMonth(sub Subscription, month time.Month, year int) bool {
	if !OccursInMonth(sub.Frequency, sub.StartDate, month, year) {
		return false
	}
	if sub.EndDate.IsZero() {
		return true
	}
	charge := ChargeDateInMonth(sub, month, year)
	return !charge.After(sub.EndDate)
}

// ChargeDateInMonth returns the concrete date a subscription would charge in
// the given month, with the nominal day clamped to the month's length.
// It does not check whether the subscription actually occurs in that month.
func ChargeDateInMonth(sub Subscription, month time.Month, year int) time.Time {
	day := ClampDay(sub.DayOfMonth, month, year)
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// NextChargeDate computes the next concrete date the subscription charges,
// relative to now. A charge due today counts as upcoming. The second return
// is false when the subscription has ended before its next charge.
func NextChargeDate(sub Subscription, now time.Time) (time.Time, bool) {
	var next time.Time

	switch sub.Frequency {
	case FreqYearly:
		// same month as the start date, this year or next
		next = chargeOn(sub, now.Year(), sub.StartDate.Month())
		if next.Before(today(now)) {
			next = chargeOn(sub, now.Year()+1, sub.StartDate.Month())
		}
	case FreqQuarterly:
		next = nextPhaseAligned(sub, now, 3)
	case FreqBiannually:
		next = nextPhaseAligned(sub, now, 6)
	case FreqDaily:
		next = today(now)
	case FreqWeekly, FreqBiweekly:
		next = nextSubMonthly(sub, now)
	default: // monthly
		next = chargeOn(sub, now.Year(), now.Month())
		if next.Before(today(now)) {
			next = chargeOn(sub, now.Year(), now.Month()+1)
		}
	}

	if sub.StartDate.After(next) {
		// subscription has not started yet; first charge is the start date
		next = today(sub.StartDate)
	}
	if sub.Ended(next) {
		return time.Time{}, false
	}
	return next, true
}

// nextPhaseAligned finds the next charge for quarterly (cycle=3) or
// biannual (cycle=6) subscriptions. The start month's position within its
// cycle is the phase; charges land on phase-aligned months, advancing a
// whole cycle when this cycle's slot has already passed.
func nextPhaseAligned(sub Subscription, now time.Time, cycle int) time.Time {
	phase := (int(sub.StartDate.Month()) - 1) % cycle
	currentCycle := (int(now.Month()) - 1) / cycle
	monthInCycle := (int(now.Month()) - 1) % cycle

	targetMonth := currentCycle*cycle + phase
	if monthInCycle > phase ||
		(monthInCycle == phase && now.Day() > ClampDay(sub.DayOfMonth, now.Month(), now.Year())) {
		targetMonth += cycle
	}

	year := now.Year() + targetMonth/12
	month := time.Month(targetMonth%12 + 1)
	return chargeOn(sub, year, month)
}

// nextSubMonthly steps in whole periods from the start date until the
// candidate is not in the past.
func nextSubMonthly(sub Subscription, now time.Time) time.Time {
	period := 7
	if sub.Frequency == FreqBiweekly {
		period = 14
	}
	start := today(sub.StartDate)
	days := int(today(now).Sub(start).Hours() / 24)
	if days < 0 {
		return start
	}
	elapsed := days / period
	next := start.AddDate(0, 0, elapsed*period)
	if next.Before(today(now)) {
		next = next.AddDate(0, 0, period)
	}
	return next
}

func chargeOn(sub Subscription, year int, month time.Month) time.Time {
	// normalize month overflow (e.g. December + 1) before clamping the day
	base := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return ChargeDateInMonth(sub, base.Month(), base.Year())
}

func today(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
