// Package zugferd generates the machine-readable trade document: it maps
// a validated invoice and its derived totals onto the EN16931
// cross-industry invoice tree and serializes it to XML.
//
// The element order is fixed by the standard and semantically meaningful.
// Discounts are modelled as negative line items, so the header-level
// charge and allowance totals stay at zero; the line total and the
// tax-basis total both carry the net amount. Optional sections are
// omitted entirely when their source field is empty.
package zugferd

import (
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/faktura/invoice-creator/internal/model"
	"github.com/faktura/invoice-creator/internal/money"
)

// indentSpaces pins the serialization settings in one place so that
// parsing the output and re-indenting with the same width reproduces it
// byte for byte.
const indentSpaces = 2

// Generate returns the serialized trade document for a validated invoice,
// starting with the XML declaration. It is total: any invoice that passed
// the validation gate produces a well-formed document.
func Generate(inv *model.Invoice) string {
	out, _ := Build(inv).WriteToString()
	return out
}

// Build constructs the document tree without serializing it.
func Build(inv *model.Invoice) *etree.Document {
	totals := money.Calculate(inv)

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("rsm:CrossIndustryInvoice")
	root.CreateAttr("xmlns:rsm", NamespaceRSM)
	root.CreateAttr("xmlns:qdt", NamespaceQDT)
	root.CreateAttr("xmlns:ram", NamespaceRAM)
	root.CreateAttr("xmlns:udt", NamespaceUDT)

	writeContext(root)
	writeHeader(root, inv)

	tx := root.CreateElement("rsm:SupplyChainTradeTransaction")
	writeAgreement(tx, inv)
	writeSettlement(tx, inv, totals)
	writeLineItems(tx, inv)

	doc.Indent(indentSpaces)
	return doc
}

// write adds a child element with text content and returns it.
func write(parent *etree.Element, tag, value string) *etree.Element {
	e := parent.CreateElement(tag)
	e.SetText(value)
	return e
}

func writeContext(root *etree.Element) {
	ctx := root.CreateElement("rsm:ExchangedDocumentContext")
	guideline := ctx.CreateElement("ram:GuidelineSpecifiedDocumentContextParameter")
	write(guideline, "ram:ID", GuidelineID)
}

func writeHeader(root *etree.Element, inv *model.Invoice) {
	header := root.CreateElement("rsm:ExchangedDocument")

	// The note is always present; an invoice without a message carries
	// an empty content element.
	note := header.CreateElement("ram:IncludedNote")
	write(note, "ram:Content", inv.Message)

	write(header, "ram:ID", inv.Number)
	write(header, "ram:TypeCode", TypeCodeInvoice)

	issue := header.CreateElement("ram:IssueDateTime")
	writeCompactDate(issue, inv.Date)
}

// writeCompactDate adds the qualified YYYYMMDD date string element.
func writeCompactDate(parent *etree.Element, date string) {
	e := write(parent, "udt:DateTimeString", money.CompactDate(date, time.Now()))
	e.CreateAttr("format", DateFormatCompact)
}

func writeAgreement(tx *etree.Element, inv *model.Invoice) {
	agreement := tx.CreateElement("ram:ApplicableHeaderTradeAgreement")
	writeSellerParty(agreement, inv.Sender)
	writeBuyerParty(agreement, inv.Customer)
}

func writeSellerParty(agreement *etree.Element, sender model.Sender) {
	seller := agreement.CreateElement("ram:SellerTradeParty")
	write(seller, "ram:Name", sender.DisplayName())
	writePostalAddress(seller, sender.Address)

	// Zero, one or two registrations depending on which ids are set.
	if sender.TaxID != "" {
		writeTaxRegistration(seller, SchemeTaxID, sender.TaxID)
	}
	if sender.VATID != "" {
		writeTaxRegistration(seller, SchemeVATID, sender.VATID)
	}
}

func writeBuyerParty(agreement *etree.Element, customer model.Address) {
	buyer := agreement.CreateElement("ram:BuyerTradeParty")
	write(buyer, "ram:Name", customer.DisplayName())
	writePostalAddress(buyer, customer)
}

func writePostalAddress(party *etree.Element, a model.Address) {
	addr := party.CreateElement("ram:PostalTradeAddress")
	write(addr, "ram:PostcodeCode", a.Zip)
	write(addr, "ram:LineOne", a.Street)
	write(addr, "ram:CityName", a.City)
	write(addr, "ram:CountryID", a.CountryCode())
}

func writeTaxRegistration(party *etree.Element, scheme, id string) {
	reg := party.CreateElement("ram:SpecifiedTaxRegistration")
	write(reg, "ram:ID", id).CreateAttr("schemeID", scheme)
}

func writeSettlement(tx *etree.Element, inv *model.Invoice, totals money.Totals) {
	settlement := tx.CreateElement("ram:ApplicableHeaderTradeSettlement")
	write(settlement, "ram:InvoiceCurrencyCode", inv.Settings.Currency)

	writeTaxSummary(settlement, inv, totals)
	writeMonetarySummation(settlement, inv, totals)
	writePaymentMeans(settlement, inv.Sender)
	writePaymentTerms(settlement, inv)
}

func writeTaxSummary(settlement *etree.Element, inv *model.Invoice, totals money.Totals) {
	tax := settlement.CreateElement("ram:ApplicableTradeTax")
	write(tax, "ram:CalculatedAmount", money.String2(totals.VAT))
	write(tax, "ram:TypeCode", TaxTypeVAT)
	write(tax, "ram:BasisAmount", money.String2(totals.NetTotal))
	write(tax, "ram:CategoryCode", TaxCategoryStandard)
	write(tax, "ram:RateApplicablePercent", inv.Settings.VATRate.String())
}

// writeMonetarySummation emits the header totals. The line total is the
// sum of line net amounts; because discounts are negative line items the
// charge and allowance totals are fixed at zero, and the tax basis equals
// the line total.
func writeMonetarySummation(settlement *etree.Element, inv *model.Invoice, totals money.Totals) {
	sum := settlement.CreateElement("ram:SpecifiedTradeSettlementHeaderMonetarySummation")
	write(sum, "ram:LineTotalAmount", money.String2(totals.NetTotal))
	write(sum, "ram:ChargeTotalAmount", money.String2(decimal.Zero))
	write(sum, "ram:AllowanceTotalAmount", money.String2(decimal.Zero))
	write(sum, "ram:TaxBasisTotalAmount", money.String2(totals.NetTotal))
	write(sum, "ram:TaxTotalAmount", money.String2(totals.VAT)).
		CreateAttr("currencyID", inv.Settings.Currency)
	write(sum, "ram:GrandTotalAmount", money.String2(totals.GrossTotal))
	write(sum, "ram:TotalPrepaidAmount", money.String2(decimal.Zero))
	write(sum, "ram:DuePayableAmount", money.String2(totals.GrossTotal))
}

// writePaymentMeans emits the SEPA credit transfer block when the sender
// has an IBAN. The institution element is only present with a BIC.
func writePaymentMeans(settlement *etree.Element, sender model.Sender) {
	if sender.IBAN == "" {
		return
	}
	means := settlement.CreateElement("ram:SpecifiedTradeSettlementPaymentMeans")
	write(means, "ram:TypeCode", PaymentMeansSEPACredit)
	write(means, "ram:Information", PaymentInformation)

	account := means.CreateElement("ram:PayeePartyCreditorFinancialAccount")
	write(account, "ram:IBANID", sender.IBAN)
	write(account, "ram:AccountName", sender.DisplayName())

	if sender.BIC != "" {
		inst := means.CreateElement("ram:PayeeSpecifiedCreditorFinancialInstitution")
		write(inst, "ram:BICID", sender.BIC)
	}
}

func writePaymentTerms(settlement *etree.Element, inv *model.Invoice) {
	terms := settlement.CreateElement("ram:SpecifiedTradePaymentTerms")
	due := terms.CreateElement("ram:DueDateDateTime")
	writeCompactDate(due, inv.PaymentDate)
}

// writeLineItems emits one line item per article, then one per discount.
// Discount lines continue the numbering and carry negative amounts.
func writeLineItems(tx *etree.Element, inv *model.Invoice) {
	for i, a := range inv.Articles {
		writeArticleLine(tx, inv, a, i+1)
	}
	for i, d := range inv.Discounts {
		writeDiscountLine(tx, inv, d, len(inv.Articles)+i+1)
	}
}

func writeArticleLine(tx *etree.Element, inv *model.Invoice, a model.Article, lineID int) {
	li := tx.CreateElement("ram:IncludedSupplyChainTradeLineItem")

	doc := li.CreateElement("ram:AssociatedDocumentLineDocument")
	write(doc, "ram:LineID", strconv.Itoa(lineID))

	product := li.CreateElement("ram:SpecifiedTradeProduct")
	write(product, "ram:Name", a.Description)

	agreement := li.CreateElement("ram:SpecifiedLineTradeAgreement")
	price := agreement.CreateElement("ram:NetPriceProductTradePrice")
	write(price, "ram:ChargeAmount", money.String4(a.PricePerUnit))

	delivery := li.CreateElement("ram:SpecifiedLineTradeDelivery")
	write(delivery, "ram:BilledQuantity", a.Amount.String()).
		CreateAttr("unitCode", UnitPiece)

	settlement := li.CreateElement("ram:SpecifiedLineTradeSettlement")
	writeLineTax(settlement, inv)
	writeLineTotal(settlement, money.ArticleTotal(a))
}

func writeDiscountLine(tx *etree.Element, inv *model.Invoice, d model.Discount, lineID int) {
	li := tx.CreateElement("ram:IncludedSupplyChainTradeLineItem")

	doc := li.CreateElement("ram:AssociatedDocumentLineDocument")
	write(doc, "ram:LineID", strconv.Itoa(lineID))

	product := li.CreateElement("ram:SpecifiedTradeProduct")
	write(product, "ram:Name", d.Description)

	agreement := li.CreateElement("ram:SpecifiedLineTradeAgreement")
	price := agreement.CreateElement("ram:NetPriceProductTradePrice")
	write(price, "ram:ChargeAmount", money.String4(d.Amount.Neg()))

	delivery := li.CreateElement("ram:SpecifiedLineTradeDelivery")
	write(delivery, "ram:BilledQuantity", "1").CreateAttr("unitCode", UnitPiece)

	// Discounts are taxed at the same rate as the goods they reduce.
	settlement := li.CreateElement("ram:SpecifiedLineTradeSettlement")
	writeLineTax(settlement, inv)
	writeLineTotal(settlement, d.Amount.Neg())
}

func writeLineTax(settlement *etree.Element, inv *model.Invoice) {
	tax := settlement.CreateElement("ram:ApplicableTradeTax")
	write(tax, "ram:TypeCode", TaxTypeVAT)
	write(tax, "ram:CategoryCode", TaxCategoryStandard)
	write(tax, "ram:RateApplicablePercent", inv.Settings.VATRate.String())
}

func writeLineTotal(settlement *etree.Element, total decimal.Decimal) {
	sum := settlement.CreateElement("ram:SpecifiedTradeSettlementLineMonetarySummation")
	write(sum, "ram:LineTotalAmount", money.String2(total))
}
