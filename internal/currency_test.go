package internal

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCanonicalCurrencyCode(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"€", "EUR"},
		{"$", "USD"},
		{"£", "GBP"},
		{"¥", "JPY"},
		{"EUR", "EUR"},
		{"eur", "EUR"},
		{" sek ", "SEK"},
		{"XYZ", "XYZ"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := CanonicalCurrencyCode(tt.raw); got != tt.expected {
				t.Errorf("CanonicalCurrencyCode(%q) = %q, want %q", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		locale   string
		amount   float64
		expected string
	}{
		{"usd prefixes symbol", "USD", "en-US", 4.33, "$4.33"},
		{"usd from dollar sign", "$", "en-US", 9.99, "$9.99"},
		{"eur suffixes symbol", "EUR", "en-US", 4.33, "4.33 €"},
		{"sek uses kr override", "SEK", "en-US", 99, "99.00 kr"},
		{"two fraction digits always", "USD", "en-US", 5, "$5.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cur := GetCurrency(tt.raw, tt.locale)
			if got := cur.FormatAmount(decimal.NewFromFloat(tt.amount)); got != tt.expected {
				t.Errorf("FormatAmount(%v) = %q, want %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestGetCurrencyUnknownCode(t *testing.T) {
	cur := GetCurrency("XYZ", "en-US")
	if cur.Code != "XYZ" {
		t.Errorf("Code = %q, want XYZ", cur.Code)
	}
	// unknown codes format with the code itself as the symbol
	got := cur.FormatAmount(decimal.NewFromFloat(3.5))
	if !strings.Contains(got, "XYZ") {
		t.Errorf("FormatAmount = %q, want the raw code as symbol", got)
	}
}

func TestGetCurrencyBadLocaleFallsBack(t *testing.T) {
	cur := GetCurrency("USD", "not a locale")
	if got := cur.FormatAmount(decimal.NewFromFloat(1.5)); got != "$1.50" {
		t.Errorf("FormatAmount with bad locale = %q, want $1.50", got)
	}
}

func TestCurrencyFromLocale(t *testing.T) {
	tests := []struct {
		locale   string
		expected string
		ok       bool
	}{
		{"en-US", "USD", true},
		{"de-AT", "EUR", true},
		{"sv-SE", "SEK", true},
		{"ja-JP", "JPY", true},
		{"en", "", false}, // no region
		{"not a locale", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			got, ok := CurrencyFromLocale(tt.locale)
			if ok != tt.ok || got != tt.expected {
				t.Errorf("CurrencyFromLocale(%q) = %q, %v; want %q, %v", tt.locale, got, ok, tt.expected, tt.ok)
			}
		})
	}
}
