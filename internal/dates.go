package internal

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// genericLayouts are tried, in order, when a raw date matches none of the
// structured formats. Covers the looser values seen in real spreadsheets.
var genericLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2006/01/02",
}

// ParseDate converts a raw date string plus a locale hint into a calendar
// date. It is total: unparseable input falls back to now (with a warning)
// rather than propagating an error, so a single malformed cell never breaks
// the month view.
//
// Priority order:
//  1. YYYY-MM-DD is locale-independent and always wins.
//  2. Dot separators are parsed day-first (D.M.YYYY, European convention).
//  3. Slash separators are month-first for en-US locales, day-first
//     otherwise. Locale alone cannot disambiguate slash dates, so the US
//     bias is applied only for en-US; that policy is deliberate and tested.
//  4. A handful of generic layouts.
//  5. Fallback to now.
func ParseDate(raw string, locale string, now time.Time) time.Time {
	raw = strings.TrimSpace(raw)

	if isoDatePattern.MatchString(raw) {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			return t
		}
	}

	if strings.Contains(raw, ".") {
		if t, ok := parseDayMonthYear(strings.Split(raw, ".")); ok {
			return t
		}
	}

	if strings.Contains(raw, "/") {
		parts := strings.Split(raw, "/")
		if strings.HasPrefix(locale, "en-US") {
			if t, ok := parseMonthDayYear(parts); ok {
				return t
			}
		} else {
			if t, ok := parseDayMonthYear(parts); ok {
				return t
			}
		}
	}

	for _, layout := range genericLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}

	log.Warn().
		Str("raw", raw).
		Str("locale", locale).
		Msg("could not parse date, falling back to current date")
	return now
}

// FormatISO renders a date as zero-padded YYYY-MM-DD. For dates built from
// that format by ParseDate, this is an exact round trip.
func FormatISO(t time.Time) string {
	return t.Format("2006-01-02")
}

// MonthsBetween returns the whole-month difference from a to b:
// (yearDiff)*12 + monthDiff. Negative when b is in a month before a.
func MonthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(month time.Month, year int) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampDay bounds a nominal day-of-month to what the target month actually
// has, so a day-31 subscription charges on Feb 28/29 rather than producing
// an invalid date. This is the single overflow policy used by occurrence,
// accrual and grid lookups alike.
func ClampDay(day int, month time.Month, year int) int {
	if day < 1 {
		return 1
	}
	if last := DaysInMonth(month, year); day > last {
		return last
	}
	return day
}

func parseDayMonthYear(parts []string) (time.Time, bool) {
	if len(parts) != 3 {
		return time.Time{}, false
	}
	day, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	month, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	year, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	return makeDate(year, month, day)
}

func parseMonthDayYear(parts []string) (time.Time, bool) {
	if len(parts) != 3 {
		return time.Time{}, false
	}
	month, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	day, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	year, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	return makeDate(year, month, day)
}

func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}
