package internal

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// OutputOptions controls how the month view is displayed.
type OutputOptions struct {
	Locale   string
	Currency Currency
}

// DisplayCurrency picks the currency used for totals: the explicit override
// if set, else the first subscription's currency, else EUR.
func DisplayCurrency(subs []Subscription, override string, locale string) Currency {
	if override != "" {
		return GetCurrency(override, locale)
	}
	if len(subs) > 0 {
		return GetCurrency(subs[0].Currency, locale)
	}
	return GetCurrency("EUR", locale)
}

// RenderCalendar writes the 6x7 month grid as a table: weekday headers
// reordered for the locale, day numbers with the charging subscriptions'
// logos underneath, spillover days dimmed and today highlighted.
func RenderCalendar(w io.Writer, subs []Subscription, month time.Month, year int, opts OutputOptions, today time.Time) {
	grid := BuildGrid(month, year, opts.Locale, today)
	firstDay := FirstDayOfWeek(opts.Locale)
	labels := ReorderWeekdayLabels(DefaultWeekdayLabels, firstDay)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("%s %d", month, year))

	header := table.Row{}
	for _, label := range labels {
		header = append(header, label)
	}
	t.AppendHeader(header)

	for week := 0; week < GridCells/7; week++ {
		row := table.Row{}
		for dow := 0; dow < 7; dow++ {
			row = append(row, renderCell(grid[week*7+dow], subs))
		}
		t.AppendRow(row)
	}

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Render()
}

func renderCell(cell CalendarDay, subs []Subscription) string {
	day := fmt.Sprintf("%2d", cell.Day)
	if !cell.IsCurrentMonth {
		return text.FgHiBlack.Sprint(day)
	}
	if cell.IsToday {
		day = text.Bold.Sprint(text.FgGreen.Sprint(day))
	}

	charging := SubscriptionsForDay(subs, cell.Day, cell.Month, cell.Year)
	if len(charging) == 0 {
		return day
	}

	logos := make([]string, 0, len(charging))
	for _, sub := range charging {
		logo := sub.Logo
		if logo == "" {
			logo = initial(sub.Name)
		}
		logos = append(logos, logo)
	}
	return day + "\n" + strings.Join(logos, " ")
}

// initial is the fallback logo: the upper-cased first rune of the name.
func initial(name string) string {
	for _, r := range name {
		return strings.ToUpper(string(r))
	}
	return "?"
}

// RenderMonthlySummary writes the per-day charge table for a month with a
// monthly total footer.
func RenderMonthlySummary(w io.Writer, subs []Subscription, month time.Month, year int, opts OutputOptions) {
	summary := SummarizeMonth(subs, month, year)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Monthly Summary")
	t.AppendHeader(table.Row{"Day", "Subscriptions", "Amount"})

	if len(summary.Days) == 0 {
		t.AppendRow(table.Row{"", "No subscriptions this month", ""})
	}
	for _, day := range summary.Days {
		names := make([]string, 0, len(day.Subscriptions))
		for _, sub := range day.Subscriptions {
			names = append(names, sub.Name)
		}
		t.AppendRow(table.Row{
			day.Day,
			strings.Join(names, ", "),
			opts.Currency.FormatAmount(day.Total),
		})
	}

	t.AppendSeparator()
	t.AppendFooter(table.Row{"", text.Bold.Sprint("Monthly Total"),
		text.Bold.Sprint(opts.Currency.FormatAmount(summary.Total))})

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
	})
	t.Render()
}

// RenderTrend writes the previous/current/next month totals with
// month-over-month change markers.
func RenderTrend(w io.Writer, subs []Subscription, month time.Month, year int, opts OutputOptions) {
	trend := SummarizeTrend(subs, month, year)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Spending Trends")
	t.AppendHeader(table.Row{
		fmt.Sprintf("%s %d", trend.PrevMonth, trend.PrevYear),
		fmt.Sprintf("%s %d", trend.CurrentMonth, trend.CurrentYear),
		fmt.Sprintf("%s %d (Projected)", trend.NextMonth, trend.NextYear),
	})
	t.AppendRow(table.Row{
		opts.Currency.FormatAmount(trend.PrevTotal),
		fmt.Sprintf("%s %s", opts.Currency.FormatAmount(trend.CurrentTotal), changeMarker(trend.PrevToCurrent)),
		fmt.Sprintf("%s %s", opts.Currency.FormatAmount(trend.NextTotal), changeMarker(trend.CurrentToNext)),
	})

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Render()
}

func changeMarker(pct float64) string {
	switch {
	case pct > 0:
		return text.FgRed.Sprintf("▲ %.1f%%", pct)
	case pct < 0:
		return text.FgGreen.Sprintf("▼ %.1f%%", -pct)
	default:
		return text.FgHiBlack.Sprint("•")
	}
}

// RenderSubscriptionDetails writes one row per subscription: schedule
// description, next charge date and cumulative spend.
func RenderSubscriptionDetails(w io.Writer, subs []Subscription, opts OutputOptions, now time.Time) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Subscriptions")
	t.AppendHeader(table.Row{"Name", "Schedule", "Day", "Since", "Next Charge", "Total Spent"})

	for _, sub := range subs {
		cur := opts.Currency
		if cur.Code == "" {
			cur = GetCurrency(sub.Currency, opts.Locale)
		}

		nextStr := text.FgHiBlack.Sprint("ended")
		if next, ok := NextChargeDate(sub, now); ok {
			nextStr = FormatISO(next)
		}

		t.AppendRow(table.Row{
			sub.Name,
			DescribeFrequency(sub, cur),
			sub.DayOfMonth,
			FormatISO(sub.StartDate),
			nextStr,
			cur.FormatAmount(TotalSpent(sub, now)),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 6, Align: text.AlignRight},
	})
	t.Render()
}

// JSONOutput is the root JSON output object.
type JSONOutput struct {
	Month         string             `json:"month"`
	Subscriptions []JSONSubscription `json:"subscriptions"`
	Summary       JSONSummary        `json:"summary"`
}

// JSONSummary contains the aggregate view of the displayed month.
type JSONSummary struct {
	Count         int     `json:"count"`
	MonthlyTotal  float64 `json:"monthly_total"`
	PrevTotal     float64 `json:"prev_month_total"`
	NextTotal     float64 `json:"next_month_total"`
	PrevToCurrent float64 `json:"prev_to_current_pct"`
	CurrentToNext float64 `json:"current_to_next_pct"`
	Currency      string  `json:"currency"`
}

// JSONSubscription is the JSON output format for one subscription.
type JSONSubscription struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Frequency   string  `json:"frequency"`
	DayOfMonth  int     `json:"day_of_month"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date,omitempty"`
	ChargesThis bool    `json:"charges_this_month"`
	NextCharge  string  `json:"next_charge,omitempty"`
	TotalSpent  float64 `json:"total_spent"`
}

// PrintJSON outputs the month view in JSON format.
func PrintJSON(w io.Writer, subs []Subscription, month time.Month, year int, opts OutputOptions, now time.Time) error {
	trend := SummarizeTrend(subs, month, year)

	out := JSONOutput{
		Month: fmt.Sprintf("%04d-%02d", year, int(month)),
		Summary: JSONSummary{
			Count:         len(subs),
			MonthlyTotal:  trend.CurrentTotal.InexactFloat64(),
			PrevTotal:     trend.PrevTotal.InexactFloat64(),
			NextTotal:     trend.NextTotal.InexactFloat64(),
			PrevToCurrent: trend.PrevToCurrent,
			CurrentToNext: trend.CurrentToNext,
			Currency:      opts.Currency.Code,
		},
	}

	for _, sub := range subs {
		js := JSONSubscription{
			ID:          sub.ID,
			Name:        sub.Name,
			Amount:      sub.Amount.InexactFloat64(),
			Currency:    CanonicalCurrencyCode(sub.Currency),
			Frequency:   string(sub.Frequency),
			DayOfMonth:  sub.DayOfMonth,
			StartDate:   FormatISO(sub.StartDate),
			ChargesThis: SubscriptionOccursInMonth(sub, month, year),
			TotalSpent:  TotalSpent(sub, now).InexactFloat64(),
		}
		if !sub.EndDate.IsZero() {
			js.EndDate = FormatISO(sub.EndDate)
		}
		if next, ok := NextChargeDate(sub, now); ok {
			js.NextCharge = FormatISO(next)
		}
		out.Subscriptions = append(out.Subscriptions, js)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

