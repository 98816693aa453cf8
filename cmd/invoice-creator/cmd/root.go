package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/faktura/invoice-creator/internal/model"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "invoice-creator",
	Short: "Create EN 16931 e-invoices (XML and PDF)",
	Long: `Invoice Creator builds electronic invoices from a JSON description.

Supports:
  - Structured XML output (EN 16931 cross-industry invoice)
  - PDF rendering with locale-aware amounts and dates
  - Validation of required fields, IBAN/BIC/email formats
  - Monthly sequential invoice numbering

Examples:
  # Write a fresh invoice skeleton to edit
  invoice-creator init invoice.json

  # Validate it
  invoice-creator validate invoice.json

  # Produce the XML and the PDF
  invoice-creator generate invoice.json -o invoice.xml
  invoice-creator render invoice.json -o invoice.pdf`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "json", "Output format (json, table)")
}

// loadInvoice reads an invoice description from a JSON file.
func loadInvoice(path string) (*model.Invoice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var inv model.Invoice
	if err := json.Unmarshal(data, &inv); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &inv, nil
}

// writeOutput writes data to the given file, or to stdout when path is "-"
// or empty.
func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "wrote %s (%d bytes)\n", path, len(data))
	}
	return nil
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
