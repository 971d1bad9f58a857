//go:build windows

package internal

import (
	"os"
	"syscall"
	"unsafe"
)

var (
	kernel32                 = syscall.NewLazyDLL("kernel32.dll")
	procGetUserDefaultLocale = kernel32.NewProc("GetUserDefaultLocaleName")
)

// detectSystemLocale returns the system locale string on Windows.
// First checks environment variables (for testing and WSL compatibility),
// then falls back to the GetUserDefaultLocaleName API.
// Returns empty string if detection fails.
func detectSystemLocale() string {
	// Check env vars first (for testing and cross-platform consistency)
	for _, envVar := range []string{"LC_TIME", "LC_ALL", "LANG"} {
		locale := os.Getenv(envVar)
		if locale != "" && locale != "C" && locale != "POSIX" {
			return locale
		}
	}

	const maxLen = 85 // LOCALE_NAME_MAX_LENGTH

	buf := make([]uint16, maxLen)
	ret, _, _ := procGetUserDefaultLocale.Call(
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(maxLen),
	)

	if ret == 0 {
		return ""
	}

	return syscall.UTF16ToString(buf)
}
