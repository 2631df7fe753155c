package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"outlay/internal/cli"
	"outlay/internal/engine"
)

var hundred = decimal.NewFromInt(100)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Spending breakdown by category, with chart",
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
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
		fmt.Println("\n  No expense data available yet.")
		return nil
	}

	currency := cfg.General.Currency
	breakdown, rep := engine.Breakdown(expenses)

	fmt.Println()
	fmt.Println(cli.RenderTitle("SPENDING BY CATEGORY"))
	fmt.Println()

	rows := make([][]string, 0, len(breakdown.ByCategory)+2)
	for _, ct := range breakdown.ByCategory {
		share := ct.Total.Div(breakdown.GrandTotal).Mul(hundred)
		rows = append(rows, []string{
			string(ct.Category),
			cli.FormatAmount(ct.Total, currency),
			share.StringFixed(1) + "%",
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", cli.FormatAmount(breakdown.GrandTotal, currency), ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Total", "Share"},
		Rows:    rows,
	}))

	bars := make([]cli.Bar, 0, len(breakdown.ByCategory))
	for _, ct := range breakdown.ByCategory {
		bars = append(bars, cli.Bar{Label: string(ct.Category), Value: ct.Total})
	}
	fmt.Println()
	fmt.Print(cli.BarChart(bars, currency, 30, cli.ColorAccent))

	reportSkips(logger, rep)
	return nil
}
