package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faktura/invoice-creator/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate invoice files",
	Long: `Validate one or more invoice JSON files for completeness and correctness.

Checks performed:
  - Required fields present (number, dates, sender, customer, line items)
  - Email, website, IBAN, BIC and phone number formats
  - Article and discount amounts (positive quantity, non-negative price)
  - VAT rate and payment terms

Examples:
  invoice-creator validate invoice.json
  invoice-creator validate drafts/*.json -f table`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// ValidationResult is the per-file outcome reported by the validate command.
type ValidationResult struct {
	File   string          `json:"file"`
	Valid  bool            `json:"valid"`
	Errors validate.Report `json:"errors,omitempty"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	validator := validate.New()
	results := make([]*ValidationResult, 0, len(args))
	allValid := true

	for _, file := range args {
		result := &ValidationResult{File: file, Valid: true}

		inv, err := loadInvoice(file)
		if err != nil {
			result.Valid = false
			result.Errors = validate.Report{"file": err.Error()}
		} else if report := validator.Invoice(inv); !report.Valid() {
			result.Valid = false
			result.Errors = report
		}

		if !result.Valid {
			allValid = false
		}
		results = append(results, result)
	}

	if outputFormat == "json" {
		if err := printJSON(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.Valid {
				fmt.Printf("✓ %s: VALID\n", r.File)
				continue
			}
			fmt.Printf("✗ %s: INVALID\n", r.File)
			for _, field := range r.Errors.Fields() {
				fmt.Printf("  - %s: %s\n", field, r.Errors[field])
			}
		}
	}

	if !allValid {
		return fmt.Errorf("validation failed for some files")
	}
	return nil
}
