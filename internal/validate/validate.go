// Package validate is the gate between raw editor input and the
// calculation/generation core. It checks structural and business rules
// and reports every violation at once, keyed by field path, so a caller
// can render all of them simultaneously.
package validate

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/faktura/invoice-creator/internal/model"
)

// Format constraints for optional fields. Kept deliberately permissive;
// country-aware IBAN checking is out of scope.
var (
	ibanRe  = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}(?: ?[0-9]{4}){4}(?: ?[0-9]{1,2})?$`)
	bicRe   = regexp.MustCompile(`^[A-Z]{6}[A-Z0-9]{2}([A-Z0-9]{3})?$`)
	phoneRe = regexp.MustCompile(`^\+?[(]?[0-9]{2,4}[)]?(?:[-\s.]?[0-9]{2,6}){2,4}$`)
)

// Report maps field paths ("sender.email", "articles.0.amount") to a
// human-readable message, one entry per invalid field. An empty report
// means the invoice passed the gate.
type Report map[string]string

// Valid reports whether no violations were recorded.
func (r Report) Valid() bool { return len(r) == 0 }

// Fields returns the violated field paths in stable order.
func (r Report) Fields() []string {
	fields := make([]string, 0, len(r))
	for f := range r {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

func (r Report) add(path, msg string) { r[path] = msg }

// requireString records a violation when a required string field is empty.
func (r Report) requireString(path, value, msg string) {
	if value == "" {
		r.add(path, msg)
	}
}

// Validator checks invoices against the document rules.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator with the iban, bic and phone rules registered.
func New() *Validator {
	v := validator.New()
	mustRegister(v, "iban", ibanRe)
	mustRegister(v, "bic", bicRe)
	mustRegister(v, "phone", phoneRe)
	return &Validator{v: v}
}

func mustRegister(v *validator.Validate, tag string, re *regexp.Regexp) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}

// Invoice checks the full invoice and returns a report of every
// violation. It never stops at the first failure and never panics.
func (val *Validator) Invoice(inv *model.Invoice) Report {
	r := Report{}
	if inv == nil {
		r.add("invoice", "invoice is required")
		return r
	}

	r.requireString("number", inv.Number, "invoice number is required")
	r.requireString("date", inv.Date, "date is required")
	r.requireString("serviceDate", inv.ServiceDate, "service date is required")
	r.requireString("paymentDate", inv.PaymentDate, "payment date is required")

	val.address(r, "sender", inv.Sender.Address)
	val.contactInfo(r, "sender", inv.Sender.ContactInfo)
	val.bankDetails(r, "sender", inv.Sender.BankDetails)
	val.address(r, "customer", inv.Customer)

	for i, a := range inv.Articles {
		prefix := fmt.Sprintf("articles.%d", i)
		r.requireString(prefix+".description", a.Description, "article description is required")
		if a.PricePerUnit.IsNegative() {
			r.add(prefix+".pricePerUnit", "price per unit must not be negative")
		}
		if a.Amount.LessThan(decimal.NewFromInt(1)) {
			r.add(prefix+".amount", "amount must be at least 1")
		}
	}

	for i, d := range inv.Discounts {
		prefix := fmt.Sprintf("discounts.%d", i)
		r.requireString(prefix+".description", d.Description, "discount description is required")
		if d.Amount.IsNegative() {
			r.add(prefix+".amount", "discount amount must not be negative")
		}
	}

	val.settings(r, inv.Settings)
	return r
}

func (val *Validator) address(r Report, prefix string, a model.Address) {
	r.requireString(prefix+".name", a.Name, "name is required")
	r.requireString(prefix+".street", a.Street, "street is required")
	r.requireString(prefix+".zip", a.Zip, "zip is required")
	r.requireString(prefix+".city", a.City, "city is required")
}

func (val *Validator) contactInfo(r Report, prefix string, c model.ContactInfo) {
	val.optionalFormat(r, prefix+".email", c.Email, "email", "invalid email address")
	val.optionalFormat(r, prefix+".phone", c.Phone, "phone", "invalid phone number")
	val.optionalFormat(r, prefix+".website", c.Website, "url", "invalid URL")
}

func (val *Validator) bankDetails(r Report, prefix string, b model.BankDetails) {
	val.optionalFormat(r, prefix+".iban", b.IBAN, "iban", "invalid IBAN")
	val.optionalFormat(r, prefix+".bic", b.BIC, "bic", "invalid BIC")
}

func (val *Validator) settings(r Report, s model.InvoiceSettings) {
	r.requireString("settings.locale", s.Locale, "locale is required")
	r.requireString("settings.currency", s.Currency, "currency is required")
	r.requireString("settings.invoiceNumberFormat", s.InvoiceNumberFormat, "invoice number format is required")
	if s.VATRate.IsNegative() {
		r.add("settings.vatRate", "VAT rate must not be negative")
	}
	if s.PaymentDays < 0 {
		r.add("settings.paymentDays", "payment days must not be negative")
	}
}

// optionalFormat applies a format rule to an optional field: the empty
// string always passes.
func (val *Validator) optionalFormat(r Report, path, value, rule, msg string) {
	if value == "" {
		return
	}
	if err := val.v.Var(value, rule); err != nil {
		r.add(path, msg)
	}
}
