package main

import (
	"fmt"

	"github.com/jonathan/kyp-analysis/internal/funds"
	"github.com/jonathan/kyp-analysis/internal/observability"
	"github.com/spf13/cobra"
)

var fundsCmd = &cobra.Command{
	Use:   "funds",
	Short: "List the fund catalog",
	Long:  "Prints the equities and fixed income funds available for selection, in form order.",
	RunE:  runFunds,
}

var fundsCategory string

func init() {
	fundsCmd.Flags().StringVarP(&fundsCategory, "category", "c", "", "Only list one category (equities or fixed_income)")
	rootCmd.AddCommand(fundsCmd)
}

func runFunds(cmd *cobra.Command, _ []string) error {
	category := funds.Category(fundsCategory)
	if category != "" && !category.Valid() {
		return fmt.Errorf("unknown category %q: must be %s or %s", fundsCategory, funds.Equities, funds.FixedIncome)
	}

	catalog, err := funds.Default()
	if err != nil {
		return err
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintCatalog(catalog, category)
	return nil
}
