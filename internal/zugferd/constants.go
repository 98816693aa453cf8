package zugferd

// Constants mandated by the EN16931 cross-industry invoice schema. They
// revise independently of the business logic, so they live here rather
// than inline in the builder.
const (
	// Namespace declarations carried by the document root.
	NamespaceRSM = "urn:un:unece:uncefact:data:standard:CrossIndustryInvoice:100"
	NamespaceQDT = "urn:un:unece:uncefact:data:standard:QualifiedDataType:100"
	NamespaceRAM = "urn:un:unece:uncefact:data:standard:ReusableAggregateBusinessInformationEntity:100"
	NamespaceUDT = "urn:un:unece:uncefact:data:standard:UnqualifiedDataType:100"

	// GuidelineID identifies the EN16931 compliance profile.
	GuidelineID = "urn:cen.eu:en16931:2017"

	// TypeCodeInvoice is the UNTDID 1001 document type for a commercial
	// invoice.
	TypeCodeInvoice = "380"

	// DateFormatCompact is the qualifier for YYYYMMDD date strings.
	DateFormatCompact = "102"

	// Tax registration scheme identifiers: FC for the domestic tax
	// number, VA for the VAT id.
	SchemeTaxID = "FC"
	SchemeVATID = "VA"

	// UnitPiece is the UN/ECE rec 20 code for "piece" quantities.
	UnitPiece = "H87"

	// Per-line and header tax classification.
	TaxTypeVAT          = "VAT"
	TaxCategoryStandard = "S"

	// PaymentMeansSEPACredit is the UNTDID 4461 code for a SEPA credit
	// transfer.
	PaymentMeansSEPACredit = "58"

	// PaymentInformation is the free-text note on the payment means.
	PaymentInformation = "Zahlung per SEPA Überweisung."
)
