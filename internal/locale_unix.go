//go:build !windows && !darwin

package internal

import "os"

// detectSystemLocale returns the system locale string on Unix-like systems.
// Calendar conventions and date formats are what we need it for, so the
// priority is: LC_TIME (most specific), LC_ALL, LANG.
// Returns empty string if no valid locale is found.
func detectSystemLocale() string {
	for _, envVar := range []string{"LC_TIME", "LC_ALL", "LANG"} {
		locale := os.Getenv(envVar)
		if locale != "" && locale != "C" && locale != "POSIX" {
			return locale
		}
	}
	return ""
}
