package internal

import (
	"strings"

	"golang.org/x/text/language"
)

// mondayFirstPrefixes lists language prefixes whose calendar convention
// starts the week on Monday: most of continental Europe, East Asia and a
// few others. Everything else defaults to Sunday-first.
var mondayFirstPrefixes = map[string]bool{
	"de": true, "fr": true, "es": true, "it": true, "pt": true, "nl": true,
	"be": true, "dk": true, "fi": true, "is": true, "no": true, "se": true,
	"al": true, "ba": true, "bg": true, "hr": true, "cz": true, "gr": true,
	"hu": true, "pl": true, "ro": true, "ru": true, "sk": true, "si": true,
	"rs": true, "ua": true, "tr": true, "cy": true, "il": true, "cn": true,
	"jp": true, "kr": true,
}

// FirstDayOfWeek maps a locale tag to the index of the week's first day:
// 0 for Sunday, 1 for Monday. The locale is treated as an opaque string
// matched by its language prefix.
func FirstDayOfWeek(locale string) int {
	prefix := strings.ToLower(locale)
	if idx := strings.IndexAny(prefix, "-_"); idx != -1 {
		prefix = prefix[:idx]
	}
	if mondayFirstPrefixes[prefix] {
		return 1
	}
	return 0
}

// ReorderWeekdayLabels rotates a Sunday-ordered 7-element label sequence so
// it starts at the given first-day index.
func ReorderWeekdayLabels(labels []string, firstDay int) []string {
	if firstDay <= 0 || firstDay >= len(labels) {
		out := make([]string, len(labels))
		copy(out, labels)
		return out
	}
	out := make([]string, 0, len(labels))
	out = append(out, labels[firstDay:]...)
	out = append(out, labels[:firstDay]...)
	return out
}

// AdjustWeekday converts a Sunday-based day-of-week index (0=Sunday, as
// returned by time.Weekday) into a column index of a grid whose first
// column is the locale's first day of week.
func AdjustWeekday(dayOfWeek, firstDay int) int {
	return (dayOfWeek + 7 - firstDay) % 7
}

// DefaultWeekdayLabels is the Sunday-ordered label sequence used when no
// caller-supplied labels are given.
var DefaultWeekdayLabels = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// SystemLocale returns the OS-level locale as a BCP 47 tag ("sv_SE.UTF-8"
// becomes "sv-SE"), or empty when no usable locale can be detected.
func SystemLocale() string {
	raw := detectSystemLocale()
	if raw == "" {
		return ""
	}

	// strip encoding and modifier suffixes
	if idx := strings.Index(raw, "."); idx != -1 {
		raw = raw[:idx]
	}
	if idx := strings.Index(raw, "@"); idx != -1 {
		raw = raw[:idx]
	}

	tag, err := language.Parse(strings.Replace(raw, "_", "-", 1))
	if err != nil {
		return ""
	}
	return tag.String()
}
