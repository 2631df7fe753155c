package cmd

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"outlay/internal/cli"
	"outlay/internal/model"
)

var (
	flagListCategory string
	flagListFrom     string
	flagListTo       string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded expenses, newest first",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&flagListCategory, "category", "c", "", "Only this category")
	listCmd.Flags().StringVar(&flagListFrom, "from", "", "Start date, YYYY-MM-DD (inclusive)")
	listCmd.Flags().StringVar(&flagListTo, "to", "", "End date, YYYY-MM-DD (inclusive)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	src, cfg, _, err := openSource()
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	ctx := cmd.Context()

	// The list filters push down to the store; the `filter` command is
	// the engine-side equivalent.
	var expenses []model.Expense
	switch {
	case flagListCategory != "":
		cat, err := model.ParseCategory(flagListCategory)
		if err != nil {
			return fmt.Errorf("category %q: %w", flagListCategory, err)
		}
		expenses, err = src.FetchByCategory(ctx, cat)
		if err != nil {
			return err
		}
	case flagListFrom != "" || flagListTo != "":
		if flagListFrom == "" || flagListTo == "" {
			return fmt.Errorf("--from and --to must be given together")
		}
		start, err := time.Parse(model.DateLayout, flagListFrom)
		if err != nil {
			return fmt.Errorf("start date %q: %w", flagListFrom, model.ErrBadDate)
		}
		end, err := time.Parse(model.DateLayout, flagListTo)
		if err != nil {
			return fmt.Errorf("end date %q: %w", flagListTo, model.ErrBadDate)
		}
		expenses, err = src.FetchByDateRange(ctx, start, end)
		if err != nil {
			return err
		}
	default:
		expenses, err = src.FetchAll(ctx)
		if err != nil {
			return err
		}
	}

	if len(expenses) == 0 {
		fmt.Println("\n  No expenses found.")
		return nil
	}

	currency := cfg.General.Currency
	printExpenseTable("EXPENSE HISTORY", expenses, currency)
	return nil
}

// printExpenseTable renders records newest-first with a grand total
// footer. Shared with the filter command.
func printExpenseTable(title string, expenses []model.Expense, currency string) {
	total := decimal.Zero
	rows := make([][]string, 0, len(expenses)+2)
	for _, e := range expenses {
		rows = append(rows, []string{
			e.Timestamp,
			string(e.Category),
			cli.FormatAmount(e.Amount, currency),
			cli.FormatNote(e.Note),
		})
		total = total.Add(e.Amount)
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", "", cli.FormatAmount(total, currency), ""})

	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date & Time", "Category", "Amount", "Note"},
		Rows:    rows,
	}))
	fmt.Printf("\n  %s across %s record(s)\n",
		cli.FormatAmount(total, currency), cli.FormatCount(int64(len(expenses))))
}
