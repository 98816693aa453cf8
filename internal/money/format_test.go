package money_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/faktura/invoice-creator/internal/money"
)

var fixedNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func TestString2(t *testing.T) {
	assert.Equal(t, "43.70", money.String2(dec("43.7")))
	assert.Equal(t, "0.00", money.String2(dec("0")))
	assert.Equal(t, "273.70", money.String2(dec("273.7")))
	assert.Equal(t, "1234.57", money.String2(dec("1234.567")))
}

func TestString4(t *testing.T) {
	assert.Equal(t, "800.0000", money.String4(dec("800")))
	assert.Equal(t, "0.1235", money.String4(dec("0.12345")))
	assert.Equal(t, "-20.0000", money.String4(dec("-20")))
}

func TestCompactDate(t *testing.T) {
	assert.Equal(t, "20250301", money.CompactDate("2025-03-01", fixedNow))
	assert.Equal(t, "20250314", money.CompactDate("today", fixedNow))
	assert.Equal(t, "20250314", money.CompactDate("", fixedNow))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "01.03.2025", money.FormatDate("2025-03-01", "de-DE", fixedNow))
	assert.Equal(t, "03/01/2025", money.FormatDate("2025-03-01", "en-US", fixedNow))
	assert.Equal(t, "2025-03-01", money.FormatDate("2025-03-01", "fr-FR", fixedNow))

	// "today" resolves at render time
	assert.Equal(t, "14.03.2025", money.FormatDate("today", "de-DE", fixedNow))

	// unparsable input passes through
	assert.Equal(t, "soon", money.FormatDate("soon", "de-DE", fixedNow))
}

func TestFormatCurrency(t *testing.T) {
	got := money.FormatCurrency(dec("1234.5"), "EUR", "de-DE")
	assert.Contains(t, got, "€")

	// unknown locale and currency fall back rather than fail
	got = money.FormatCurrency(dec("10"), "???", "no-such-locale")
	assert.NotEmpty(t, got)
}
