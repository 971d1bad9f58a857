package internal

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency formats subscription amounts for a locale. The engine keeps the
// source currency value untouched; canonicalization happens only here, at
// the formatting boundary.
type Currency struct {
	Code    string // canonical ISO-ish code, e.g. "EUR", "USD"
	unit    currency.Unit
	printer *message.Printer
}

// symbolToCode canonicalizes currency symbols found in spreadsheet cells to
// ISO codes for formatting purposes.
var symbolToCode = map[string]string{
	"€": "EUR",
	"$": "USD",
	"£": "GBP",
	"¥": "JPY",
}

// symbolOverrides provides custom symbols where the x/text defaults aren't
// ideal.
var symbolOverrides = map[string]string{
	"SEK": "kr",
	"NOK": "kr",
	"DKK": "kr",
	"ISK": "kr",
}

// CanonicalCurrencyCode maps a raw currency cell value ("€", "eur", "EUR")
// onto an ISO code usable for formatting. Unknown values pass through
// upper-cased.
func CanonicalCurrencyCode(raw string) string {
	raw = strings.TrimSpace(raw)
	if code, ok := symbolToCode[raw]; ok {
		return code
	}
	return strings.ToUpper(raw)
}

// GetCurrency returns the Currency for a raw currency value, formatted for
// the given locale. An unparsable locale falls back to English; an unknown
// currency code keeps its code as the symbol.
func GetCurrency(raw string, locale string) Currency {
	code := CanonicalCurrencyCode(raw)

	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		// fallback unit for number formatting only
		unit = currency.USD
		symbolOverrides[code] = code
	}

	return Currency{
		Code:    code,
		unit:    unit,
		printer: message.NewPrinter(tag),
	}
}

// CurrencyFromLocale derives the home currency of a locale's region, e.g.
// "de-AT" -> EUR, "en-US" -> USD. Returns false when the locale carries no
// usable region.
func CurrencyFromLocale(locale string) (string, bool) {
	tag, err := language.Parse(locale)
	if err != nil {
		return "", false
	}
	_, _, region := tag.Raw()
	if region.String() == "" || region.String() == "ZZ" {
		return "", false
	}
	unit, ok := currency.FromRegion(region)
	if !ok {
		return "", false
	}
	return unit.String(), true
}

// getSymbol returns the currency symbol, using overrides where needed.
func (c Currency) getSymbol() string {
	if sym, ok := symbolOverrides[c.Code]; ok {
		return sym
	}
	return c.printer.Sprint(currency.NarrowSymbol(c.unit))
}

// isPrefix reports whether the symbol is conventionally placed before the
// amount. x/text/currency doesn't expose CLDR symbol positioning, so this
// list is maintained manually.
func (c Currency) isPrefix() bool {
	switch c.Code {
	case "USD", "GBP", "JPY", "CAD", "AUD", "MXN", "HKD", "SGD", "NZD", "ZAR":
		return true
	default:
		return false
	}
}

// FormatAmount formats a subscription amount with the currency symbol and
// locale-aware digit grouping, keeping two fraction digits.
func (c Currency) FormatAmount(amount decimal.Decimal) string {
	f, _ := amount.Float64()
	formatted := c.printer.Sprint(number.Decimal(f,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	symbol := c.getSymbol()

	if c.isPrefix() {
		return symbol + formatted
	}
	return formatted + " " + symbol
}
