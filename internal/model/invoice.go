// Package model defines the invoice document model: the value objects the
// editor produces and the calculation engine and document generators consume.
//
// The types carry no behavior. Monetary fields use shopspring decimals so
// totals are exact regardless of summation order; display rounding happens
// at the formatting boundary, never here.
package model

import (
	"github.com/shopspring/decimal"
)

// Date handling constants shared across the module.
const (
	// DateLayout is the ISO layout used for all invoice date strings.
	DateLayout = "2006-01-02"

	// ServiceDateToday is the sentinel that resolves to the current date
	// at render time, not at invoice creation time.
	ServiceDateToday = "today"

	// DefaultCountry is applied when an address carries no country code.
	DefaultCountry = "DE"
)

// Address is a postal address, used for both sender and customer.
type Address struct {
	Company string `json:"company,omitempty"`
	Name    string `json:"name"`
	Street  string `json:"street"`
	Zip     string `json:"zip"`
	City    string `json:"city"`
	Country string `json:"country,omitempty"`
}

// DisplayName returns the company name if present, else the contact name.
func (a Address) DisplayName() string {
	if a.Company != "" {
		return a.Company
	}
	return a.Name
}

// CountryCode returns the country, falling back to DefaultCountry.
func (a Address) CountryCode() string {
	if a.Country != "" {
		return a.Country
	}
	return DefaultCountry
}

// ContactInfo holds optional contact channels. Each field is independently
// optional; format checks live in the validate package.
type ContactInfo struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
}

// BankDetails holds optional payment and tax registration data.
type BankDetails struct {
	BankName string `json:"bankName,omitempty"`
	IBAN     string `json:"iban,omitempty"`
	BIC      string `json:"bic,omitempty"`
	TaxID    string `json:"taxId,omitempty"`
	VATID    string `json:"vatId,omitempty"`
}

// Sender is the invoicing party: an address plus contact and bank details.
type Sender struct {
	Address
	ContactInfo
	BankDetails
}

// Article is a billed line item.
type Article struct {
	ID           string          `json:"id"`
	Description  string          `json:"description"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
	Amount       decimal.Decimal `json:"amount"`
	Summary      string          `json:"summary,omitempty"`
}

// Discount is a fixed absolute reduction, never a percentage. A discount
// can never push the net total below zero; the calculation engine clamps.
type Discount struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceSettings groups the per-invoice configuration.
type InvoiceSettings struct {
	Locale              string          `json:"locale"`
	VATRate             decimal.Decimal `json:"vatRate"`
	Currency            string          `json:"currency"`
	PaymentDays         int             `json:"paymentDays"`
	InvoiceNumberFormat string          `json:"invoiceNumberFormat"`
	LogoPath            string          `json:"logoPath,omitempty"`
	PaymentText         string          `json:"paymentText,omitempty"`
	TaxNote             string          `json:"taxNote,omitempty"`
}

// Invoice is the canonical invoice document. The editor mutates it in
// place; once document generation starts it is treated as an immutable
// snapshot.
type Invoice struct {
	ID     string `json:"id"`
	Number string `json:"number"`

	// Date and PaymentDate are ISO dates (DateLayout). ServiceDate is
	// either an ISO date or the ServiceDateToday sentinel.
	Date        string `json:"date"`
	ServiceDate string `json:"serviceDate"`
	PaymentDate string `json:"paymentDate"`

	Sender   Sender  `json:"sender"`
	Customer Address `json:"customer"`

	Articles  []Article  `json:"articles"`
	Discounts []Discount `json:"discounts"`

	Settings InvoiceSettings `json:"settings"`

	Message string `json:"message,omitempty"`
}
