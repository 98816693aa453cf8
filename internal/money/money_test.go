package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/faktura/invoice-creator/internal/model"
	"github.com/faktura/invoice-creator/internal/money"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleArticles() []model.Article {
	return []model.Article{
		{ID: "1", Description: "Item 1", PricePerUnit: dec("100"), Amount: dec("2")},
		{ID: "2", Description: "Item 2", PricePerUnit: dec("50"), Amount: dec("1")},
	}
}

func TestArticleTotal(t *testing.T) {
	a := model.Article{PricePerUnit: dec("100"), Amount: dec("2")}
	assert.True(t, money.ArticleTotal(a).Equal(dec("200")))
}

func TestSubtotal(t *testing.T) {
	assert.True(t, money.Subtotal(sampleArticles()).Equal(dec("250")))
}

func TestSubtotal_Empty(t *testing.T) {
	assert.True(t, money.Subtotal(nil).IsZero())
}

func TestSubtotal_OrderIndependent(t *testing.T) {
	articles := []model.Article{
		{PricePerUnit: dec("0.1"), Amount: dec("3")},
		{PricePerUnit: dec("19.99"), Amount: dec("7")},
		{PricePerUnit: dec("1234.5678"), Amount: dec("2")},
		{PricePerUnit: dec("0.0001"), Amount: dec("9999")},
	}
	forward := money.Subtotal(articles)

	reversed := make([]model.Article, len(articles))
	for i, a := range articles {
		reversed[len(articles)-1-i] = a
	}
	assert.True(t, forward.Equal(money.Subtotal(reversed)),
		"subtotal must not depend on article order")
}

func TestDiscountTotal(t *testing.T) {
	discounts := []model.Discount{{ID: "1", Description: "Loyalty", Amount: dec("20")}}
	assert.True(t, money.DiscountTotal(discounts).Equal(dec("20")))
}

func TestNetTotal(t *testing.T) {
	discounts := []model.Discount{{Amount: dec("20")}}
	assert.True(t, money.NetTotal(sampleArticles(), discounts).Equal(dec("230")))
}

func TestNetTotal_ClampsAtZero(t *testing.T) {
	discounts := []model.Discount{
		{Amount: dec("300")},
		{Amount: dec("200")},
	}
	net := money.NetTotal(sampleArticles(), discounts)
	assert.True(t, net.IsZero(), "net total must never be negative, got %s", net)
}

func TestVAT(t *testing.T) {
	tests := []struct {
		name string
		net  string
		rate string
		want string
	}{
		{"19 percent", "100", "19", "19"},
		{"19 percent of 230", "230", "19", "43.7"},
		{"zero rate", "100", "0", "0"},
		{"zero net", "0", "19", "0"},
		{"fractional rate", "100", "7.5", "7.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := money.VAT(dec(tt.net), dec(tt.rate))
			assert.True(t, got.Equal(dec(tt.want)), "want %s, got %s", tt.want, got)
		})
	}
}

func TestGrossTotal(t *testing.T) {
	assert.True(t, money.GrossTotal(dec("100"), dec("19")).Equal(dec("119")))
}

func TestCalculate(t *testing.T) {
	inv := &model.Invoice{
		Articles:  sampleArticles(),
		Discounts: []model.Discount{{Amount: dec("20")}},
		Settings:  model.InvoiceSettings{VATRate: dec("19")},
	}

	totals := money.Calculate(inv)

	assert.True(t, totals.Subtotal.Equal(dec("250")))
	assert.True(t, totals.DiscountTotal.Equal(dec("20")))
	assert.True(t, totals.NetTotal.Equal(dec("230")))
	assert.True(t, totals.VAT.Equal(dec("43.70")))
	assert.True(t, totals.GrossTotal.Equal(dec("273.70")))
}

func TestCalculate_DiscountsExceedSubtotal(t *testing.T) {
	inv := &model.Invoice{
		Articles:  sampleArticles(),
		Discounts: []model.Discount{{Amount: dec("500")}},
		Settings:  model.InvoiceSettings{VATRate: dec("19")},
	}

	totals := money.Calculate(inv)

	assert.True(t, totals.NetTotal.IsZero())
	assert.True(t, totals.VAT.IsZero())
	assert.True(t, totals.GrossTotal.IsZero())
}

func TestCalculate_GrossIsNetPlusVAT(t *testing.T) {
	for _, rate := range []string{"0", "7", "19", "21.5"} {
		inv := &model.Invoice{
			Articles: sampleArticles(),
			Settings: model.InvoiceSettings{VATRate: dec(rate)},
		}
		totals := money.Calculate(inv)
		assert.True(t, totals.GrossTotal.Equal(totals.NetTotal.Add(totals.VAT)),
			"rate %s: gross != net + vat", rate)
	}
}

func TestCalculate_EmptyInvoice(t *testing.T) {
	inv := &model.Invoice{Settings: model.InvoiceSettings{VATRate: dec("19")}}
	totals := money.Calculate(inv)
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.GrossTotal.IsZero())
}
