package invoicegen

import (
	"github.com/faktura/invoice-creator/internal/money"
	"github.com/faktura/invoice-creator/internal/render"
	"github.com/faktura/invoice-creator/internal/validate"
	"github.com/faktura/invoice-creator/internal/zugferd"
)

// Creator bundles the invoice operations behind one handle. A Creator is
// safe for concurrent use.
type Creator struct {
	validator *validate.Validator
	renderer  *render.Renderer
}

// New returns a ready-to-use Creator.
func New() *Creator {
	return &Creator{
		validator: validate.New(),
		renderer:  render.NewRenderer(),
	}
}

// Validate checks the invoice for completeness and correct field formats.
// The returned report maps field paths such as "sender.email" or
// "articles.0.amount" to messages; an empty report means the invoice is
// valid.
func (c *Creator) Validate(inv *Invoice) Report {
	return c.validator.Invoice(inv)
}

// Calculate computes subtotal, discount total, net total, VAT and gross
// total. The net total is clamped at zero.
func (c *Creator) Calculate(inv *Invoice) Totals {
	return money.Calculate(inv)
}

// GenerateXML produces the EN 16931 cross-industry invoice document.
func (c *Creator) GenerateXML(inv *Invoice) string {
	return zugferd.Generate(inv)
}

// RenderPDF produces a PDF rendering of the invoice, formatted for the
// invoice's locale setting.
func (c *Creator) RenderPDF(inv *Invoice) ([]byte, error) {
	return c.renderer.Render(inv)
}
