package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/faktura/invoice-creator/internal/config"
	"github.com/faktura/invoice-creator/internal/model"
	"github.com/faktura/invoice-creator/internal/number"
)

var (
	numberPattern string
	counterPath   string
)

var numberCmd = &cobra.Command{
	Use:   "number",
	Short: "Manage invoice numbers",
	Long: `Allocate and reset sequential invoice numbers.

Numbers follow a pattern with YYYY, MM and <number> placeholders.
The sequence restarts at 1 each month and is persisted in a counter
file so numbers survive restarts.`,
}

var numberNextCmd = &cobra.Command{
	Use:   "next",
	Short: "Allocate the next invoice number",
	Example: `  invoice-creator number next
  invoice-creator number next --pattern "RE-YYYY-<number>"`,
	RunE: runNumberNext,
}

var numberResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the current month's sequence",
	RunE:  runNumberReset,
}

func init() {
	rootCmd.AddCommand(numberCmd)
	numberCmd.AddCommand(numberNextCmd)
	numberCmd.AddCommand(numberResetCmd)

	numberCmd.PersistentFlags().StringVar(&numberPattern, "pattern", model.DefaultSettings().InvoiceNumberFormat, "Invoice number pattern")
	numberCmd.PersistentFlags().StringVar(&counterPath, "counter", "", "Counter file (default: user config directory)")
}

func numberGenerator() (*number.Generator, error) {
	path := counterPath
	if path == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		path = cfg.Counter.Path
	}
	return number.NewGenerator(number.NewFileCounter(path)), nil
}

func runNumberNext(cmd *cobra.Command, args []string) error {
	gen, err := numberGenerator()
	if err != nil {
		return err
	}

	n, err := gen.Next(numberPattern, time.Now())
	if err != nil {
		return err
	}
	fmt.Println(n)
	return nil
}

func runNumberReset(cmd *cobra.Command, args []string) error {
	gen, err := numberGenerator()
	if err != nil {
		return err
	}
	return gen.Reset(time.Now())
}
