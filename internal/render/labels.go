package render

import "golang.org/x/text/language"

// labels holds the static strings of the human-readable document. Only
// the base language matters; unsupported locales fall back to English.
type labels struct {
	invoice         string
	date            string
	serviceDate     string
	billedTo        string
	pos             string
	description     string
	quantity        string
	unitPrice       string
	lineTotal       string
	subtotal        string
	discounts       string
	netTotal        string
	vat             string
	grossTotal      string
	paymentFallback string
	taxID           string
	vatID           string
}

var labelsDE = labels{
	invoice:         "RECHNUNG",
	date:            "Datum",
	serviceDate:     "Leistungsdatum",
	billedTo:        "RECHNUNG AN",
	pos:             "Pos.",
	description:     "Beschreibung",
	quantity:        "Menge",
	unitPrice:       "Einzelpreis",
	lineTotal:       "Gesamt",
	subtotal:        "Zwischensumme",
	discounts:       "Rabatte",
	netTotal:        "Nettobetrag",
	vat:             "USt.",
	grossTotal:      "Gesamtbetrag",
	paymentFallback: "Zahlbar bis",
	taxID:           "Steuernummer",
	vatID:           "USt-IdNr.",
}

var labelsEN = labels{
	invoice:         "INVOICE",
	date:            "Date",
	serviceDate:     "Service date",
	billedTo:        "BILLED TO",
	pos:             "Pos.",
	description:     "Description",
	quantity:        "Qty",
	unitPrice:       "Unit price",
	lineTotal:       "Total",
	subtotal:        "Subtotal",
	discounts:       "Discounts",
	netTotal:        "Net total",
	vat:             "VAT",
	grossTotal:      "Total due",
	paymentFallback: "Payable until",
	taxID:           "Tax number",
	vatID:           "VAT ID",
}

func labelsFor(locale string) labels {
	tag, err := language.Parse(locale)
	if err != nil {
		return labelsEN
	}
	base, _ := tag.Base()
	if base.String() == "de" {
		return labelsDE
	}
	return labelsEN
}
