package internal

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestBuildGridShape(t *testing.T) {
	months := []struct {
		month time.Month
		year  int
	}{
		{time.February, 2024}, // leap February
		{time.February, 2023},
		{time.June, 2024},
		{time.December, 2024},
		{time.January, 2024},
	}
	locales := []string{"en-US", "sv-SE", "de-DE"}

	for _, m := range months {
		for _, locale := range locales {
			grid := BuildGrid(m.month, m.year, locale, date("2024-06-10"))

			if len(grid) != GridCells {
				t.Fatalf("BuildGrid(%v %d, %s): %d cells, want %d", m.month, m.year, locale, len(grid), GridCells)
			}

			current := 0
			for i, cell := range grid {
				flags := 0
				for _, f := range []bool{cell.IsCurrentMonth, cell.IsPrevMonth, cell.IsNextMonth} {
					if f {
						flags++
					}
				}
				if flags != 1 {
					t.Errorf("cell %d has %d membership flags set", i, flags)
				}
				if cell.IsCurrentMonth {
					current++
				}
			}
			if want := DaysInMonth(m.month, m.year); current != want {
				t.Errorf("BuildGrid(%v %d, %s): %d current-month cells, want %d", m.month, m.year, locale, current, want)
			}
		}
	}
}

func TestBuildGridLocaleSplit(t *testing.T) {
	// June 2024 starts on a Saturday. In a Sunday-first locale day 1 sits at
	// index 6; in a Monday-first locale at index 5.
	tests := []struct {
		locale    string
		firstOfMo int
	}{
		{"en-US", 6},
		{"sv-SE", 5},
		{"de-DE", 5},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			grid := BuildGrid(time.June, 2024, tt.locale, time.Time{})
			for i, cell := range grid {
				if cell.IsCurrentMonth && cell.Day == 1 {
					if i != tt.firstOfMo {
						t.Errorf("day 1 at index %d, want %d", i, tt.firstOfMo)
					}
					return
				}
			}
			t.Fatal("day 1 not found in grid")
		})
	}
}

func TestBuildGridSpillover(t *testing.T) {
	grid := BuildGrid(time.June, 2024, "en-US", time.Time{})

	// leading cells are late May, trailing cells early July
	if first := grid[0]; !first.IsPrevMonth || first.Month != time.May || first.Day != 26 {
		t.Errorf("first cell = %d %v prev=%v, want May 26 spillover", first.Day, first.Month, first.IsPrevMonth)
	}
	if last := grid[GridCells-1]; !last.IsNextMonth || last.Month != time.July || last.Day != 6 {
		t.Errorf("last cell = %d %v next=%v, want July 6 spillover", last.Day, last.Month, last.IsNextMonth)
	}
}

func TestBuildGridToday(t *testing.T) {
	countToday := func(grid []CalendarDay) (int, CalendarDay) {
		var n int
		var hit CalendarDay
		for _, cell := range grid {
			if cell.IsToday {
				n++
				hit = cell
			}
		}
		return n, hit
	}

	grid := BuildGrid(time.June, 2024, "en-US", date("2024-06-10"))
	n, hit := countToday(grid)
	if n != 1 {
		t.Fatalf("%d cells flagged today, want 1", n)
	}
	if hit.Day != 10 || hit.Month != time.June || !hit.IsCurrentMonth {
		t.Errorf("today cell = %d %v, want June 10", hit.Day, hit.Month)
	}

	// viewing a different month: no cell is today
	grid = BuildGrid(time.September, 2024, "en-US", date("2024-06-10"))
	if n, _ := countToday(grid); n != 0 {
		t.Errorf("%d cells flagged today in a distant month, want 0", n)
	}

	// today outside the displayed month stays unmarked even when its date
	// appears as a spillover cell
	grid = BuildGrid(time.July, 2024, "en-US", date("2024-06-30"))
	if n, hit := countToday(grid); n != 0 {
		t.Errorf("spillover cell %d %v flagged today; no cell may be", hit.Day, hit.Month)
	}
}

func TestSubscriptionsForDay(t *testing.T) {
	subs := []Subscription{
		{Name: "Netflix", Amount: decimal.NewFromFloat(4.33), Frequency: FreqMonthly, DayOfMonth: 7, StartDate: date("2021-01-01")},
		{Name: "Prime", Amount: decimal.NewFromFloat(7.99), Frequency: FreqMonthly, DayOfMonth: 30, StartDate: date("2021-11-20")},
		{Name: "Airbnb", Amount: decimal.NewFromFloat(12.99), Frequency: FreqYearly, DayOfMonth: 12, StartDate: date("2022-07-12")},
		{Name: "Future", Amount: decimal.NewFromInt(1), Frequency: FreqMonthly, DayOfMonth: 7, StartDate: date("2030-01-01")},
	}

	got := SubscriptionsForDay(subs, 7, time.June, 2024)
	if len(got) != 1 || got[0].Name != "Netflix" {
		t.Errorf("June 7: got %v, want only Netflix", names(got))
	}

	// yearly sub shows up in its anniversary month
	got = SubscriptionsForDay(subs, 12, time.July, 2024)
	if len(got) != 1 || got[0].Name != "Airbnb" {
		t.Errorf("July 12: got %v, want only Airbnb", names(got))
	}

	// day-30 sub lands on Feb 29 in a leap year via clamping
	got = SubscriptionsForDay(subs, 29, time.February, 2024)
	if len(got) != 1 || got[0].Name != "Prime" {
		t.Errorf("Feb 29: got %v, want only Prime", names(got))
	}
	if got := SubscriptionsForDay(subs, 30, time.February, 2024); len(got) != 0 {
		t.Errorf("Feb 30: got %v, want nothing", names(got))
	}
}

func names(subs []Subscription) []string {
	out := make([]string, 0, len(subs))
	for _, s := range subs {
		out = append(out, s.Name)
	}
	return out
}
