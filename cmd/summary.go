package cmd

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"outlay/internal/cli"
	"outlay/internal/engine"
	"outlay/internal/model"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Spending overview: totals, current week and month",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	src, cfg, logger, err := openSource()
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	expenses, err := src.FetchAll(cmd.Context())
	if err != nil {
		return err
	}
	if len(expenses) == 0 {
		fmt.Println("\n  No expenses recorded yet.")
		fmt.Println("  Run `outlay add` to record your first one.")
		return nil
	}

	currency := cfg.General.Currency
	breakdown, rep := engine.Breakdown(expenses)
	periods, prep := engine.SumByPeriod(expenses)
	rep.BadTimestamps += prep.BadTimestamps

	now := time.Now()
	weekTotal := periodTotal(periods.Weekly, engine.WeekKey(now))
	monthTotal := periodTotal(periods.Monthly, engine.MonthKey(now))

	fmt.Println()
	fmt.Println(cli.RenderTitle("OUTLAY  Spending Overview"))
	fmt.Println()

	rows := [][]string{
		{"Records", cli.FormatCount(int64(breakdown.Count))},
		{"Total Spent", cli.FormatAmount(breakdown.GrandTotal, currency)},
		{"---"},
		{"This Week", cli.FormatAmount(weekTotal, currency)},
		{"This Month", cli.FormatAmount(monthTotal, currency)},
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	catRows := make([][]string, 0, len(breakdown.ByCategory))
	for _, ct := range breakdown.ByCategory {
		catRows = append(catRows, []string{
			string(ct.Category),
			cli.FormatAmount(ct.Total, currency),
		})
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "By Category",
		Headers: []string{"Category", "Total"},
		Rows:    catRows,
	}))

	reportSkips(logger, rep)
	return nil
}

// periodTotal looks up one bucket by key; zero when absent.
func periodTotal(totals []model.PeriodTotal, key string) decimal.Decimal {
	for _, pt := range totals {
		if pt.Key == key {
			return pt.Total
		}
	}
	return decimal.Zero
}
