// Package invoicegen provides a public API for building EN 16931
// e-invoices.
//
// This package exposes the core types and operations for validating an
// invoice, computing its totals and producing the structured XML and PDF
// outputs.
//
// Example usage:
//
//	gen := invoicegen.New()
//	inv := invoicegen.DefaultInvoice("2025-03-1", time.Now())
//	if report := gen.Validate(inv); !report.Valid() {
//	    log.Fatal(report)
//	}
//	xml := gen.GenerateXML(inv)
//	fmt.Println(xml)
package invoicegen

import (
	"time"

	"github.com/faktura/invoice-creator/internal/model"
	"github.com/faktura/invoice-creator/internal/money"
	"github.com/faktura/invoice-creator/internal/validate"
)

// Re-export core types for public API
type (
	Invoice         = model.Invoice
	InvoiceSettings = model.InvoiceSettings
	Sender          = model.Sender
	Address         = model.Address
	ContactInfo     = model.ContactInfo
	BankDetails     = model.BankDetails
	Article         = model.Article
	Discount        = model.Discount
	Totals          = money.Totals
	Report          = validate.Report
)

// Re-export date handling constants
const (
	DateLayout       = model.DateLayout
	ServiceDateToday = model.ServiceDateToday
)

// DefaultInvoice returns a fresh invoice seeded with example data,
// carrying the given display number and dated at now.
func DefaultInvoice(number string, now time.Time) *Invoice {
	return model.DefaultInvoice(number, now)
}

// DefaultSettings returns the default invoice settings.
func DefaultSettings() InvoiceSettings {
	return model.DefaultSettings()
}

// NewArticle returns an empty article line with a fresh identifier.
func NewArticle() Article {
	return model.NewArticle()
}

// NewDiscount returns an empty discount line with a fresh identifier.
func NewDiscount() Discount {
	return model.NewDiscount()
}
