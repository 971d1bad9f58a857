package internal

import "time"

// GridCells is the fixed size of the month grid: six full weeks.
const GridCells = 42

// BuildGrid produces the 6x7 grid of day cells for the given month,
// including spillover days from the adjacent months so every week row is
// complete. The split point between previous-month spillover and day 1 is
// governed by the locale's first-day-of-week convention. At most one cell
// carries IsToday, and only when today falls inside the displayed month
// itself; spillover cells are never marked.
func BuildGrid(month time.Month, year int, locale string, today time.Time) []CalendarDay {
	first := FirstDayOfWeek(locale)
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	// number of leading cells taken by the previous month
	lead := AdjustWeekday(int(firstOfMonth.Weekday()), first)

	grid := make([]CalendarDay, 0, GridCells)
	start := firstOfMonth.AddDate(0, 0, -lead)
	todayY, todayM, todayD := today.Date()

	for i := 0; i < GridCells; i++ {
		d := start.AddDate(0, 0, i)
		y, m, day := d.Date()
		cell := CalendarDay{
			Day:   day,
			Month: m,
			Year:  y,
		}
		switch {
		case m == month && y == year:
			cell.IsCurrentMonth = true
			// spillover cells never carry the today marker
			cell.IsToday = y == todayY && m == todayM && day == todayD
		case d.Before(firstOfMonth):
			cell.IsPrevMonth = true
		default:
			cell.IsNextMonth = true
		}
		grid = append(grid, cell)
	}

	return grid
}

// SubscriptionsForDay returns the subscriptions charging on the given day
// of the displayed month. A subscription matches when its clamped charge
// day equals the day and its frequency places a charge in this month.
func SubscriptionsForDay(subs []Subscription, day int, month time.Month, year int) []Subscription {
	var out []Subscription
	for _, sub := range subs {
		if ClampDay(sub.DayOfMonth, month, year) != day {
			continue
		}
		if SubscriptionOccursInMonth(sub, month, year) {
			out = append(out, sub)
		}
	}
	return out
}
