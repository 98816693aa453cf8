package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faktura/invoice-creator/internal/money"
)

var totalsCmd = &cobra.Command{
	Use:   "totals <invoice.json>",
	Short: "Compute the invoice totals",
	Long: `Compute subtotal, discount total, net total, VAT and gross total
for an invoice file.

The net total never drops below zero, however large the discounts are.

Examples:
  invoice-creator totals invoice.json
  invoice-creator totals invoice.json -f table`,
	Args: cobra.ExactArgs(1),
	RunE: runTotals,
}

func init() {
	rootCmd.AddCommand(totalsCmd)
}

func runTotals(cmd *cobra.Command, args []string) error {
	inv, err := loadInvoice(args[0])
	if err != nil {
		return err
	}

	totals := money.Calculate(inv)

	if outputFormat == "json" {
		return printJSON(totals)
	}

	currency := inv.Settings.Currency
	locale := inv.Settings.Locale
	fmt.Printf("Subtotal:   %s\n", money.FormatCurrency(totals.Subtotal, currency, locale))
	fmt.Printf("Discounts:  %s\n", money.FormatCurrency(totals.DiscountTotal.Neg(), currency, locale))
	fmt.Printf("Net total:  %s\n", money.FormatCurrency(totals.NetTotal, currency, locale))
	fmt.Printf("VAT (%s%%):  %s\n", money.String2(inv.Settings.VATRate), money.FormatCurrency(totals.VAT, currency, locale))
	fmt.Printf("Gross:      %s\n", money.FormatCurrency(totals.GrossTotal, currency, locale))
	return nil
}
