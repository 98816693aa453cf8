package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faktura/invoice-creator/internal/validate"
	"github.com/faktura/invoice-creator/internal/zugferd"
)

var (
	generateOutput string
	generateForce  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <invoice.json>",
	Short: "Generate the structured XML invoice",
	Long: `Generate the EN 16931 cross-industry invoice XML for an invoice file.

The invoice is validated first; generation is refused while required
fields are missing unless --force is given.

Examples:
  invoice-creator generate invoice.json
  invoice-creator generate invoice.json -o invoice.xml`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output file (default: stdout)")
	generateCmd.Flags().BoolVar(&generateForce, "force", false, "Generate even when validation fails")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	inv, err := loadInvoice(args[0])
	if err != nil {
		return err
	}

	if !generateForce {
		if report := validate.New().Invoice(inv); !report.Valid() {
			return reportError(args[0], report)
		}
	}

	return writeOutput(generateOutput, []byte(zugferd.Generate(inv)))
}

func reportError(file string, report validate.Report) error {
	msg := fmt.Sprintf("%s is not valid:", file)
	for _, field := range report.Fields() {
		msg += fmt.Sprintf("\n  - %s: %s", field, report[field])
	}
	return fmt.Errorf("%s", msg)
}
