package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"outlay/internal/engine"
	"outlay/internal/model"
)

var (
	flagFilterCategory string
	flagFilterFrom     string
	flagFilterTo       string
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Search expenses by category or date range",
	Long: "Search expenses by one of two modes:\n" +
		"  --category LABEL        match one category\n" +
		"  --from DATE --to DATE   match an inclusive date range\n" +
		"The modes are mutually exclusive.",
	RunE: runFilter,
}

func init() {
	filterCmd.Flags().StringVarP(&flagFilterCategory, "category", "c", "", "Category to match (Food, Travel, Study, Other)")
	filterCmd.Flags().StringVar(&flagFilterFrom, "from", "", "Start date, YYYY-MM-DD (inclusive)")
	filterCmd.Flags().StringVar(&flagFilterTo, "to", "", "End date, YYYY-MM-DD (inclusive)")
	rootCmd.AddCommand(filterCmd)
}

func runFilter(cmd *cobra.Command, _ []string) error {
	byCategory := flagFilterCategory != ""
	byRange := flagFilterFrom != "" || flagFilterTo != ""

	switch {
	case byCategory && byRange:
		return fmt.Errorf("--category and --from/--to are mutually exclusive")
	case !byCategory && !byRange:
		return fmt.Errorf("choose a filter: --category or --from/--to")
	case byRange && (flagFilterFrom == "" || flagFilterTo == ""):
		return fmt.Errorf("--from and --to must be given together")
	}

	src, cfg, _, err := openSource()
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	expenses, err := src.FetchAll(cmd.Context())
	if err != nil {
		return err
	}

	var view model.FilteredView
	if byCategory {
		view, err = engine.FilterByCategory(expenses, flagFilterCategory)
	} else {
		view, err = engine.FilterByDateRange(expenses, flagFilterFrom, flagFilterTo)
	}
	if err != nil {
		return err
	}

	if len(view.Expenses) == 0 {
		fmt.Println("\n  No expenses match your filter.")
		return nil
	}

	title := fmt.Sprintf("FILTER RESULTS  %d match(es)", len(view.Expenses))
	printExpenseTable(title, view.Expenses, cfg.General.Currency)
	return nil
}
