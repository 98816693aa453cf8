package money

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/faktura/invoice-creator/internal/model"
)

// String2 renders an amount with exactly two decimals, locale-free.
// This is the precision for totals and line totals in the structured
// document.
func String2(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// String4 renders an amount with exactly four decimals, locale-free.
// Unit prices keep sub-cent precision in the structured document.
func String4(d decimal.Decimal) string {
	return d.StringFixed(4)
}

// CompactDate renders an ISO date string as YYYYMMDD, the compact form
// the trade document standard mandates (format code 102). The "today"
// sentinel resolves to the current date at render time.
func CompactDate(date string, now time.Time) string {
	if date == "" || date == model.ServiceDateToday {
		return now.Format("20060102")
	}
	return strings.ReplaceAll(date, "-", "")
}

// FormatCurrency renders an amount as a locale- and currency-aware string
// for the human-readable document. It is never used inside the structured
// document, which is strictly locale-free.
func FormatCurrency(d decimal.Decimal, currencyCode, locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.German
	}
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		unit = currency.EUR
	}
	// Conversion to float happens at the display boundary only.
	value, _ := d.Round(2).Float64()
	p := message.NewPrinter(tag)
	return p.Sprint(currency.Symbol(unit.Amount(value)))
}

// FormatDate renders an ISO date string for the given locale. The "today"
// sentinel and the empty string resolve to the current date; an unparsable
// string is returned verbatim.
func FormatDate(date, locale string, now time.Time) string {
	t := now
	if date != "" && date != model.ServiceDateToday {
		parsed, err := time.Parse(model.DateLayout, date)
		if err != nil {
			return date
		}
		t = parsed
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.German
	}
	base, _ := tag.Base()
	switch base.String() {
	case "de":
		return t.Format("02.01.2006")
	case "en":
		return t.Format("01/02/2006")
	default:
		return t.Format(model.DateLayout)
	}
}
