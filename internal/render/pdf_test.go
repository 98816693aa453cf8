package render_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faktura/invoice-creator/internal/model"
	"github.com/faktura/invoice-creator/internal/render"
)

func testInvoice() *model.Invoice {
	inv := model.DefaultInvoice("2025-03-1", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	inv.Sender.Email = "max@example.com"
	inv.Sender.IBAN = "DE02120300000000202051"
	inv.Sender.BIC = "BYLADEM1001"
	inv.Articles[0].Summary = "Umsetzung laut Angebot"
	inv.Discounts = []model.Discount{
		{ID: "d1", Description: "Treuerabatt", Amount: decimal.NewFromInt(50)},
	}
	return inv
}

func TestRender(t *testing.T) {
	data, err := render.NewRenderer().Render(testInvoice())
	require.NoError(t, err)

	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRender_EmptyInvoiceSections(t *testing.T) {
	inv := testInvoice()
	inv.Articles = nil
	inv.Discounts = nil
	inv.Message = ""
	inv.Settings.PaymentText = ""
	inv.Sender.IBAN = ""

	data, err := render.NewRenderer().Render(inv)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestRender_EnglishLocale(t *testing.T) {
	inv := testInvoice()
	inv.Settings.Locale = "en-US"
	inv.Settings.Currency = "USD"

	data, err := render.NewRenderer().Render(inv)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
