package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultSettings returns the settings a fresh invoice starts with.
func DefaultSettings() InvoiceSettings {
	return InvoiceSettings{
		Locale:              "de-DE",
		VATRate:             decimal.NewFromInt(19),
		Currency:            "EUR",
		PaymentDays:         14,
		InvoiceNumberFormat: "YYYY-MM-<number>",
		PaymentText:         "Bitte überweisen Sie den Betrag bis zum Fälligkeitsdatum auf das unten angegebene Konto.",
	}
}

// DefaultInvoice returns a fresh invoice seeded for a new editing session.
// The payment date is derived from the issue date plus the payment term.
func DefaultInvoice(number string, now time.Time) *Invoice {
	settings := DefaultSettings()
	return &Invoice{
		ID:          uuid.NewString(),
		Number:      number,
		Date:        now.Format(DateLayout),
		ServiceDate: ServiceDateToday,
		PaymentDate: now.AddDate(0, 0, settings.PaymentDays).Format(DateLayout),
		Sender: Sender{
			Address: Address{
				Name:   "Max Mustermann",
				Street: "Musterstraße 123",
				Zip:    "12345",
				City:   "Musterstadt",
			},
		},
		Customer: Address{
			Company: "Musterfirma GmbH",
			Name:    "Erika Mustermann",
			Street:  "Beispielstraße 456",
			Zip:     "54321",
			City:    "München",
		},
		Articles: []Article{
			{
				ID:           uuid.NewString(),
				Description:  "Webentwicklung",
				PricePerUnit: decimal.NewFromInt(800),
				Amount:       decimal.NewFromInt(1),
			},
		},
		Discounts: []Discount{},
		Settings:  settings,
		Message:   "Vielen Dank für Ihren Auftrag!",
	}
}

// NewArticle returns an empty article with a fresh id, as added by the editor.
func NewArticle() Article {
	return Article{
		ID:     uuid.NewString(),
		Amount: decimal.NewFromInt(1),
	}
}

// NewDiscount returns an empty discount with a fresh id.
func NewDiscount() Discount {
	return Discount{ID: uuid.NewString()}
}
