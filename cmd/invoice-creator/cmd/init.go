package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/faktura/invoice-creator/internal/model"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Write a fresh invoice skeleton",
	Long: `Write a new invoice JSON file seeded with example data and an
allocated invoice number. Edit the file, then validate and generate.

Examples:
  invoice-creator init invoice.json
  invoice-creator init --pattern "RE-YYYY-MM-<number>" invoice.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&numberPattern, "pattern", model.DefaultSettings().InvoiceNumberFormat, "Invoice number pattern")
	initCmd.Flags().StringVar(&counterPath, "counter", "", "Counter file (default: user config directory)")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing file")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	if path != "" && !initForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	gen, err := numberGenerator()
	if err != nil {
		return err
	}

	now := time.Now()
	num, err := gen.Next(numberPattern, now)
	if err != nil {
		return err
	}

	inv := model.DefaultInvoice(num, now)
	inv.Settings.InvoiceNumberFormat = numberPattern

	data, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return err
	}
	return writeOutput(path, append(data, '\n'))
}
