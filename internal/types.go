package internal

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency is a canonical recurrence code. Raw spreadsheet values are
// mapped onto this closed set by NormalizeFrequency.
type Frequency string

const (
	FreqDaily      Frequency = "daily"
	FreqWeekly     Frequency = "weekly"
	FreqBiweekly   Frequency = "biweekly"
	FreqMonthly    Frequency = "monthly"
	FreqQuarterly  Frequency = "quarterly"
	FreqBiannually Frequency = "biannually"
	FreqYearly     Frequency = "yearly"
)

// Subscription is one recurring charge, normalized from a spreadsheet row.
// Records are immutable once built; the occurrence and accrual code never
// mutates them.
type Subscription struct {
	ID         int
	Name       string
	Amount     decimal.Decimal
	Currency   string // source value as-is; "€" is canonicalized only when formatting
	Frequency  Frequency
	DayOfMonth int
	StartDate  time.Time
	EndDate    time.Time // zero means no end date
	Color      string    // presentation only
	Logo       string    // presentation only
}

// Ended reports whether the subscription has an end date at or before the
// given charge date.
func (s Subscription) Ended(chargeDate time.Time) bool {
	return !s.EndDate.IsZero() && chargeDate.After(s.EndDate)
}

// CalendarDay is one cell of the 6x7 month grid. Exactly one of the three
// membership flags is set.
type CalendarDay struct {
	Day            int
	Month          time.Month
	Year           int
	IsCurrentMonth bool
	IsPrevMonth    bool
	IsNextMonth    bool
	IsToday        bool
}

// Date returns the cell's date at midnight UTC.
func (d CalendarDay) Date() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}
