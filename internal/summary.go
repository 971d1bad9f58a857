package internal

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DaySummary groups the subscriptions charging on one day of a month with
// their combined amount.
type DaySummary struct {
	Day           int
	Subscriptions []Subscription
	Total         decimal.Decimal
}

// MonthSummary is the per-day breakdown of a displayed month. Recomputed on
// every render; nothing here is cached.
type MonthSummary struct {
	Month time.Month
	Year  int
	Days  []DaySummary
	Total decimal.Decimal
}

// TrendSummary compares the displayed month's total against its neighbors.
// The next month's value is a projection; change percentages are relative
// to the earlier month of each pair.
type TrendSummary struct {
	PrevMonth     time.Month
	PrevYear      int
	PrevTotal     decimal.Decimal
	CurrentMonth  time.Month
	CurrentYear   int
	CurrentTotal  decimal.Decimal
	NextMonth     time.Month
	NextYear      int
	NextTotal     decimal.Decimal
	PrevToCurrent float64 // percent
	CurrentToNext float64 // percent
}

// ChartSegment is one subscription's share of a month's spend, expressed as
// a percentage and an arc of the full circle. Derived on demand for chart
// rendering; zero-amount subscriptions are excluded.
type ChartSegment struct {
	Subscription Subscription
	Percentage   float64
	StartAngle   float64
	EndAngle     float64
}

// MonthlyTotal sums the amounts of all subscriptions that charge in the
// given month.
func MonthlyTotal(subs []Subscription, month time.Month, year int) decimal.Decimal {
	total := decimal.Zero
	for _, sub := range subs {
		if SubscriptionOccursInMonth(sub, month, year) {
			total = total.Add(sub.Amount)
		}
	}
	return total
}

// SummarizeMonth groups a month's charges by day, ascending, with per-day
// and whole-month totals.
func SummarizeMonth(subs []Subscription, month time.Month, year int) MonthSummary {
	byDay := make(map[int][]Subscription)
	for _, sub := range subs {
		if !SubscriptionOccursInMonth(sub, month, year) {
			continue
		}
		day := ClampDay(sub.DayOfMonth, month, year)
		byDay[day] = append(byDay[day], sub)
	}

	days := make([]int, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Ints(days)

	summary := MonthSummary{Month: month, Year: year, Total: decimal.Zero}
	for _, day := range days {
		total := decimal.Zero
		for _, sub := range byDay[day] {
			total = total.Add(sub.Amount)
		}
		summary.Days = append(summary.Days, DaySummary{
			Day:           day,
			Subscriptions: byDay[day],
			Total:         total,
		})
		summary.Total = summary.Total.Add(total)
	}
	return summary
}

// SummarizeTrend computes totals for the displayed month and its two
// neighbors, with month-over-month change percentages.
func SummarizeTrend(subs []Subscription, month time.Month, year int) TrendSummary {
	prev := time.Date(year, month-1, 1, 0, 0, 0, 0, time.UTC)
	next := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)

	t := TrendSummary{
		PrevMonth:    prev.Month(),
		PrevYear:     prev.Year(),
		CurrentMonth: month,
		CurrentYear:  year,
		NextMonth:    next.Month(),
		NextYear:     next.Year(),
	}
	t.PrevTotal = MonthlyTotal(subs, t.PrevMonth, t.PrevYear)
	t.CurrentTotal = MonthlyTotal(subs, month, year)
	t.NextTotal = MonthlyTotal(subs, t.NextMonth, t.NextYear)
	t.PrevToCurrent = changePercent(t.PrevTotal, t.CurrentTotal)
	t.CurrentToNext = changePercent(t.CurrentTotal, t.NextTotal)
	return t
}

// BuildChartSegments converts a month's charging subscriptions into
// share-of-spend segments, largest first.
func BuildChartSegments(subs []Subscription, month time.Month, year int) []ChartSegment {
	var active []Subscription
	for _, sub := range subs {
		if sub.Amount.IsPositive() && SubscriptionOccursInMonth(sub, month, year) {
			active = append(active, sub)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].Amount.GreaterThan(active[j].Amount)
	})

	total := decimal.Zero
	for _, sub := range active {
		total = total.Add(sub.Amount)
	}
	if total.IsZero() {
		return nil
	}

	segments := make([]ChartSegment, 0, len(active))
	cumulative := 0.0
	for _, sub := range active {
		share, _ := sub.Amount.Div(total).Float64()
		start := cumulative * 360
		cumulative += share
		segments = append(segments, ChartSegment{
			Subscription: sub,
			Percentage:   share * 100,
			StartAngle:   start,
			EndAngle:     cumulative * 360,
		})
	}
	return segments
}

func changePercent(from, to decimal.Decimal) float64 {
	if from.IsZero() {
		if to.IsZero() {
			return 0
		}
		return 100
	}
	pct, _ := to.Sub(from).Div(from).Float64()
	return pct * 100
}
