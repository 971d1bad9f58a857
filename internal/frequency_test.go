package internal

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNormalizeFrequency(t *testing.T) {
	tests := []struct {
		raw      string
		expected Frequency
	}{
		{"yearly", FreqYearly},
		{"annual", FreqYearly},
		{"Annually", FreqYearly},
		{"quarterly", FreqQuarterly},
		{"quarter", FreqQuarterly},
		{"biannually", FreqBiannually},
		{"semi-annually", FreqBiannually},
		{"half-yearly", FreqBiannually},
		{"weekly", FreqWeekly},
		{"biweekly", FreqBiweekly},
		{"bi-weekly", FreqBiweekly},
		{"fortnightly", FreqBiweekly},
		{"daily", FreqDaily},
		{"monthly", FreqMonthly},
		{"MONTHLY", FreqMonthly},
		{"  Yearly  ", FreqYearly},
		{"", FreqMonthly},
		{"every now and then", FreqMonthly},
		{"per-month", FreqMonthly},
	}

	for _, tt := range tests {
		if got := NormalizeFrequency(tt.raw); got != tt.expected {
			t.Errorf("NormalizeFrequency(%q) = %q, want %q", tt.raw, got, tt.expected)
		}
	}
}

func TestNormalizeFrequencyIdempotent(t *testing.T) {
	for raw := range frequencyAliases {
		canonical := NormalizeFrequency(raw)
		if again := NormalizeFrequency(string(canonical)); again != canonical {
			t.Errorf("NormalizeFrequency(%q) = %q, but normalizing that again gives %q",
				raw, canonical, again)
		}
	}
}

func TestMonthlyEquivalent(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		freq     Frequency
		expected string
	}{
		{"monthly passes through", 9.99, FreqMonthly, "9.99"},
		{"yearly divides by 12", 120, FreqYearly, "10"},
		{"quarterly divides by 3", 30, FreqQuarterly, "10"},
		{"biannual divides by 6", 60, FreqBiannually, "10"},
		{"weekly multiplies by 4.33", 10, FreqWeekly, "43.3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyEquivalent(decimal.NewFromFloat(tt.amount), tt.freq)
			if !got.Equal(decimal.RequireFromString(tt.expected)) {
				t.Errorf("MonthlyEquivalent(%v, %s) = %s, want %s", tt.amount, tt.freq, got, tt.expected)
			}
		})
	}
}

func TestDescribeFrequency(t *testing.T) {
	cur := GetCurrency("USD", "en-US")
	tests := []struct {
		name     string
		sub      Subscription
		expected string
	}{
		{
			name:     "monthly",
			sub:      Subscription{Amount: decimal.NewFromFloat(4.33), Frequency: FreqMonthly},
			expected: "$4.33 monthly",
		},
		{
			name:     "quarterly includes monthly equivalent",
			sub:      Subscription{Amount: decimal.NewFromInt(30), Frequency: FreqQuarterly},
			expected: "$30.00 every 3 months ($10.00/mo)",
		},
		{
			name:     "yearly",
			sub:      Subscription{Amount: decimal.NewFromInt(120), Frequency: FreqYearly},
			expected: "$120.00 per year ($10.00/mo)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DescribeFrequency(tt.sub, cur); got != tt.expected {
				t.Errorf("DescribeFrequency = %q, want %q", got, tt.expected)
			}
		})
	}
}
