package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/faktura/invoice-creator/internal/render"
	"github.com/faktura/invoice-creator/internal/validate"
)

var (
	renderOutput string
	renderForce  bool
)

var renderCmd = &cobra.Command{
	Use:   "render <invoice.json>",
	Short: "Render the invoice as a PDF",
	Long: `Render an invoice file as a PDF document.

Amounts and dates are formatted for the invoice's locale setting.
The invoice is validated first unless --force is given.

Examples:
  invoice-creator render invoice.json
  invoice-creator render invoice.json -o rechnung.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file (default: <input>.pdf)")
	renderCmd.Flags().BoolVar(&renderForce, "force", false, "Render even when validation fails")
}

func runRender(cmd *cobra.Command, args []string) error {
	inv, err := loadInvoice(args[0])
	if err != nil {
		return err
	}

	if !renderForce {
		if report := validate.New().Invoice(inv); !report.Valid() {
			return reportError(args[0], report)
		}
	}

	pdf, err := render.NewRenderer().Render(inv)
	if err != nil {
		return err
	}

	output := renderOutput
	if output == "" {
		output = strings.TrimSuffix(args[0], ".json") + ".pdf"
	}
	return writeOutput(output, pdf)
}
