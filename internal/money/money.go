// Package money is the calculation engine: pure functions deriving the
// invoice totals from articles, discounts and the VAT rate.
//
// Every function is total over finite inputs and never returns an error.
// Sums are exact decimals, so the result does not depend on the order of
// articles or discounts. The single policy decision lives in NetTotal:
// discounts can never push the net total below zero.
package money

import (
	"github.com/shopspring/decimal"

	"github.com/faktura/invoice-creator/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Totals aggregates the derived amounts of one invoice.
type Totals struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	DiscountTotal decimal.Decimal `json:"discountTotal"`
	NetTotal      decimal.Decimal `json:"netTotal"`
	VAT           decimal.Decimal `json:"vat"`
	GrossTotal    decimal.Decimal `json:"grossTotal"`
}

// ArticleTotal returns pricePerUnit × amount. No rounding is applied at
// the line level; rendering decides the precision.
func ArticleTotal(a model.Article) decimal.Decimal {
	return a.PricePerUnit.Mul(a.Amount)
}

// Subtotal sums the article totals.
func Subtotal(articles []model.Article) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range articles {
		sum = sum.Add(ArticleTotal(a))
	}
	return sum
}

// DiscountTotal sums the fixed discount amounts.
func DiscountTotal(discounts []model.Discount) decimal.Decimal {
	sum := decimal.Zero
	for _, d := range discounts {
		sum = sum.Add(d.Amount)
	}
	return sum
}

// NetTotal returns subtotal minus discounts, clamped at zero.
func NetTotal(articles []model.Article, discounts []model.Discount) decimal.Decimal {
	net := Subtotal(articles).Sub(DiscountTotal(discounts))
	if net.IsNegative() {
		return decimal.Zero
	}
	return net
}

// VAT returns net × (ratePercent / 100).
func VAT(net, ratePercent decimal.Decimal) decimal.Decimal {
	return net.Mul(ratePercent).Div(hundred)
}

// GrossTotal returns net plus VAT.
func GrossTotal(net, vat decimal.Decimal) decimal.Decimal {
	return net.Add(vat)
}

// Calculate derives all totals for an invoice snapshot.
func Calculate(inv *model.Invoice) Totals {
	subtotal := Subtotal(inv.Articles)
	discountTotal := DiscountTotal(inv.Discounts)
	net := NetTotal(inv.Articles, inv.Discounts)
	vat := VAT(net, inv.Settings.VATRate)
	return Totals{
		Subtotal:      subtotal,
		DiscountTotal: discountTotal,
		NetTotal:      net,
		VAT:           vat,
		GrossTotal:    GrossTotal(net, vat),
	}
}
