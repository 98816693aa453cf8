// Package render produces the human-readable invoice document as a PDF.
// Unlike the structured trade document, everything here is locale-aware:
// amounts and dates are formatted for the invoice's locale and currency.
package render

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/faktura/invoice-creator/internal/model"
	"github.com/faktura/invoice-creator/internal/money"
)

var (
	colorAccent = &props.Color{Red: 30, Green: 60, Blue: 110}
	colorGray   = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Renderer builds the PDF rendering of an invoice.
type Renderer struct{}

// NewRenderer returns a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render lays out the invoice and returns the PDF bytes.
func (r *Renderer) Render(inv *model.Invoice) ([]byte, error) {
	now := time.Now()
	totals := money.Calculate(inv)
	l := labelsFor(inv.Settings.Locale)

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(l.invoice+" "+inv.Number, true).
		WithAuthor(inv.Sender.DisplayName(), true).
		Build()

	m := maroto.New(cfg)

	if inv.Settings.LogoPath != "" {
		m.AddRows(image.NewFromFileRow(18, inv.Settings.LogoPath, props.Rect{Percent: 80}))
	}

	m.AddRows(headerRow(inv, l, now))
	m.AddRows(line.NewRow(2, props.Line{Color: colorAccent, Thickness: 0.4}))
	m.AddRows(customerRow(inv.Customer, l))

	m.AddRows(tableHeaderRow(l))
	for _, tr := range articleRows(inv, now) {
		m.AddRows(tr)
	}
	for _, tr := range discountRows(inv) {
		m.AddRows(tr)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalsRow(inv, totals, l))

	for _, tr := range footerRows(inv, l, now) {
		m.AddRows(tr)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

// amount formats a monetary value for the invoice's locale and currency.
func amount(inv *model.Invoice, d decimal.Decimal) string {
	return money.FormatCurrency(d, inv.Settings.Currency, inv.Settings.Locale)
}

func headerRow(inv *model.Invoice, l labels, now time.Time) core.Row {
	locale := inv.Settings.Locale
	sender := inv.Sender

	left := col.New(7).Add(
		text.New(sender.DisplayName(), props.Text{
			Style: fontstyle.Bold, Size: 13, Color: colorAccent, Top: 1,
		}),
		text.New(sender.Street+", "+sender.Zip+" "+sender.City, props.Text{
			Size: 8, Top: 9, Color: colorGray,
		}),
		text.New(contactLine(sender.ContactInfo), props.Text{
			Size: 8, Top: 13, Color: colorGray,
		}),
	)
	right := col.New(5).Add(
		text.New(l.invoice, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorAccent, Top: 1,
		}),
		text.New(inv.Number, props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
		}),
		text.New(l.date+": "+money.FormatDate(inv.Date, locale, now), props.Text{
			Size: 8, Align: align.Right, Top: 13, Color: colorGray,
		}),
		text.New(l.serviceDate+": "+money.FormatDate(inv.ServiceDate, locale, now), props.Text{
			Size: 8, Align: align.Right, Top: 17, Color: colorGray,
		}),
	)
	return row.New(24).Add(left, right)
}

func contactLine(c model.ContactInfo) string {
	s := ""
	for _, part := range []string{c.Email, c.Phone, c.Website} {
		if part == "" {
			continue
		}
		if s != "" {
			s += "  |  "
		}
		s += part
	}
	return s
}

func customerRow(customer model.Address, l labels) core.Row {
	address := customer.Street + ", " + customer.Zip + " " + customer.City
	cols := []core.Component{
		text.New(l.billedTo, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorAccent, Top: 1,
		}),
		text.New(customer.DisplayName(), props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
		text.New(address, props.Text{Size: 8, Top: 12, Color: colorGray}),
	}
	return row.New(18).Add(col.New(12).Add(cols...))
}

func tableHeaderRow(l labels) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorAccent, Top: 2,
		}))
	}
	return row.New(8).Add(
		h(l.pos, 1, align.Center),
		h(l.description, 5, align.Left),
		h(l.quantity, 1, align.Center),
		h(l.unitPrice, 2, align.Right),
		h(l.lineTotal, 3, align.Right),
	)
}

func articleRows(inv *model.Invoice, now time.Time) []core.Row {
	rows := make([]core.Row, 0, len(inv.Articles))
	for i, a := range inv.Articles {
		height := 7.0
		desc := []core.Component{
			text.New(a.Description, props.Text{Size: 8, Top: 1}),
		}
		if a.Summary != "" {
			height = 11
			desc = append(desc, text.New(a.Summary, props.Text{
				Size: 7, Top: 5, Color: colorGray,
			}))
		}
		rows = append(rows, row.New(height).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", i+1), props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(5).Add(desc...),
			col.New(1).Add(text.New(a.Amount.String(), props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(2).Add(text.New(amount(inv, a.PricePerUnit), props.Text{
				Size: 8, Align: align.Right, Top: 1,
			})),
			col.New(3).Add(text.New(amount(inv, money.ArticleTotal(a)), props.Text{
				Size: 8, Align: align.Right, Top: 1,
			})),
		))
	}
	return rows
}

func discountRows(inv *model.Invoice) []core.Row {
	rows := make([]core.Row, 0, len(inv.Discounts))
	for i, d := range inv.Discounts {
		rows = append(rows, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", len(inv.Articles)+i+1), props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(5).Add(text.New(d.Description, props.Text{Size: 8, Top: 1})),
			col.New(1).Add(text.New("1", props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(amount(inv, d.Amount.Neg()), props.Text{
				Size: 8, Align: align.Right, Top: 1,
			})),
			col.New(3).Add(text.New(amount(inv, d.Amount.Neg()), props.Text{
				Size: 8, Align: align.Right, Top: 1,
			})),
		))
	}
	return rows
}

func totalsRow(inv *model.Invoice, totals money.Totals, l labels) core.Row {
	type entry struct {
		label string
		value string
		grand bool
	}
	entries := []entry{
		{label: l.subtotal, value: amount(inv, totals.Subtotal)},
	}
	if len(inv.Discounts) > 0 {
		entries = append(entries, entry{label: l.discounts, value: amount(inv, totals.DiscountTotal.Neg())})
	}
	entries = append(entries,
		entry{label: l.netTotal, value: amount(inv, totals.NetTotal)},
		entry{label: fmt.Sprintf("%s (%s%%)", l.vat, inv.Settings.VATRate.String()), value: amount(inv, totals.VAT)},
		entry{label: l.grossTotal, value: amount(inv, totals.GrossTotal), grand: true},
	)

	labelsCol := col.New(4)
	valuesCol := col.New(3)
	top := 1.0
	for _, e := range entries {
		style := props.Text{Size: 9, Align: align.Right, Top: top, Right: 2}
		if e.grand {
			style.Style = fontstyle.Bold
			style.Size = 10
			style.Color = colorAccent
		}
		labelsCol.Add(text.New(e.label, style))
		valuesCol.Add(text.New(e.value, style))
		top += 5
	}
	return row.New(top + 5).Add(col.New(5), labelsCol, valuesCol)
}

func footerRows(inv *model.Invoice, l labels, now time.Time) []core.Row {
	rows := []core.Row{line.NewRow(4)}

	if inv.Message != "" {
		rows = append(rows, row.New(7).Add(col.New(12).Add(
			text.New(inv.Message, props.Text{Size: 9, Top: 1}),
		)))
	}

	payment := inv.Settings.PaymentText
	if payment == "" {
		payment = l.paymentFallback + " " + money.FormatDate(inv.PaymentDate, inv.Settings.Locale, now)
	}
	rows = append(rows, row.New(7).Add(col.New(12).Add(
		text.New(payment, props.Text{Size: 8, Top: 1, Color: colorGray}),
	)))

	if bank := bankLine(inv.Sender.BankDetails); bank != "" {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(bank, props.Text{Size: 8, Top: 1, Color: colorGray}),
		)))
	}

	if inv.Settings.TaxNote != "" {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(inv.Settings.TaxNote, props.Text{Size: 8, Top: 1, Color: colorGray}),
		)))
	}

	if ids := taxLine(inv.Sender.BankDetails, l); ids != "" {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(ids, props.Text{Size: 8, Top: 1, Color: colorGray}),
		)))
	}
	return rows
}

func bankLine(b model.BankDetails) string {
	if b.IBAN == "" {
		return ""
	}
	s := ""
	if b.BankName != "" {
		s = b.BankName + "  |  "
	}
	s += "IBAN: " + b.IBAN
	if b.BIC != "" {
		s += "  |  BIC: " + b.BIC
	}
	return s
}

func taxLine(b model.BankDetails, l labels) string {
	s := ""
	if b.TaxID != "" {
		s = l.taxID + ": " + b.TaxID
	}
	if b.VATID != "" {
		if s != "" {
			s += "  |  "
		}
		s += l.vatID + ": " + b.VATID
	}
	return s
}
