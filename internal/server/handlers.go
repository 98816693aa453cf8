package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/faktura/invoice-creator/internal/model"
	"github.com/faktura/invoice-creator/internal/money"
	"github.com/faktura/invoice-creator/internal/zugferd"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// handleDefaults returns a fresh invoice for a new editing session. The
// locale comes from the lang cookie or the Accept-Language header; the
// remaining settings come from the server configuration.
func (s *Server) handleDefaults(c *gin.Context) {
	now := time.Now()

	num, err := s.numbers.Next(model.DefaultSettings().InvoiceNumberFormat, now)
	if err != nil {
		s.logger.Error().Err(err).Msg("allocate invoice number")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to allocate invoice number"})
		return
	}

	inv := model.DefaultInvoice(num, now)
	inv.Settings.Locale = s.detectLocale(c)
	if s.config.Defaults.Currency != "" {
		inv.Settings.Currency = s.config.Defaults.Currency
	}
	inv.Settings.VATRate = decimal.NewFromFloat(s.config.Defaults.VATRate)
	if s.config.Defaults.PaymentDays > 0 {
		inv.Settings.PaymentDays = s.config.Defaults.PaymentDays
		inv.PaymentDate = now.AddDate(0, 0, s.config.Defaults.PaymentDays).Format(model.DateLayout)
	}

	c.JSON(http.StatusOK, inv)
}

func (s *Server) handleValidate(c *gin.Context) {
	inv, ok := s.bindInvoice(c)
	if !ok {
		return
	}
	report := s.validator.Invoice(inv)
	c.JSON(http.StatusOK, ValidationResponse{Valid: report.Valid(), Errors: report})
}

func (s *Server) handleTotals(c *gin.Context) {
	inv, ok := s.bindValidInvoice(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, money.Calculate(inv))
}

func (s *Server) handleGenerate(c *gin.Context) {
	inv, ok := s.bindValidInvoice(c)
	if !ok {
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(zugferd.Generate(inv)))
}

func (s *Server) handleRender(c *gin.Context) {
	inv, ok := s.bindValidInvoice(c)
	if !ok {
		return
	}
	data, err := s.renderer.Render(inv)
	if err != nil {
		s.logger.Error().Err(err).Msg("render pdf")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to render PDF", Details: err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/pdf", data)
}

// bindInvoice reads the invoice from the request body. A malformed body
// answers 400 and returns ok=false.
func (s *Server) bindInvoice(c *gin.Context) (*model.Invoice, bool) {
	var inv model.Invoice
	if err := c.ShouldBindJSON(&inv); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid invoice payload", Details: err.Error()})
		return nil, false
	}
	return &inv, true
}

// bindValidInvoice additionally runs the validation gate; violations
// answer 422 with the field-keyed report.
func (s *Server) bindValidInvoice(c *gin.Context) (*model.Invoice, bool) {
	inv, ok := s.bindInvoice(c)
	if !ok {
		return nil, false
	}
	report := s.validator.Invoice(inv)
	if !report.Valid() {
		c.JSON(http.StatusUnprocessableEntity, ValidationResponse{Valid: false, Errors: report})
		return nil, false
	}
	return inv, true
}

var localeMatcher = language.NewMatcher([]language.Tag{
	language.German, // default
	language.English,
})

// detectLocale resolves the editing locale from the lang cookie, then
// the Accept-Language header, defaulting to German.
func (s *Server) detectLocale(c *gin.Context) string {
	if cookie, err := c.Cookie("lang"); err == nil {
		switch cookie {
		case "de":
			return "de-DE"
		case "en":
			return "en-US"
		}
	}

	tags, _, err := language.ParseAcceptLanguage(c.GetHeader("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return s.config.Defaults.Locale
	}
	tag, _, _ := localeMatcher.Match(tags...)
	base, _ := tag.Base()
	if base.String() == "en" {
		return "en-US"
	}
	return "de-DE"
}
