package internal

import (
	"time"

	"github.com/shopspring/decimal"
)

// DemoSubscriptions returns the built-in sample data used when no source is
// connected or demo mode is on.
func DemoSubscriptions() []Subscription {
	d := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
	return []Subscription{
		{
			ID: 1, Name: "Netflix",
			Amount: decimal.NewFromFloat(4.33), Currency: "€",
			Frequency: FreqMonthly, DayOfMonth: 7,
			Color: "#E50914", Logo: "N",
			StartDate: d("2021-01-01"),
		},
		{
			ID: 2, Name: "Spotify",
			Amount: decimal.NewFromFloat(9.99), Currency: "€",
			Frequency: FreqMonthly, DayOfMonth: 12,
			Color: "#1DB954", Logo: "S",
			StartDate: d("2022-03-15"),
		},
		{
			ID: 3, Name: "Amazon Prime",
			Amount: decimal.NewFromFloat(7.99), Currency: "€",
			Frequency: FreqMonthly, DayOfMonth: 30,
			Color: "#FF9900", Logo: "a",
			StartDate: d("2021-11-20"),
		},
		{
			ID: 4, Name: "LinkedIn",
			Amount: decimal.NewFromFloat(29.99), Currency: "€",
			Frequency: FreqMonthly, DayOfMonth: 24,
			Color: "#0077B5", Logo: "in",
			StartDate: d("2023-05-01"),
		},
		{
			ID: 5, Name: "Airbnb",
			Amount: decimal.NewFromFloat(12.99), Currency: "€",
			Frequency: FreqYearly, DayOfMonth: 7,
			Color: "#FF5A5F", Logo: "A",
			StartDate: d("2022-07-12"),
		},
	}
}
