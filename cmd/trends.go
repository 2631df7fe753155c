package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"outlay/internal/cli"
	"outlay/internal/engine"
	"outlay/internal/model"
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Weekly and monthly spending analysis",
	RunE:  runTrends,
}

func init() {
	rootCmd.AddCommand(trendsCmd)
}

func runTrends(cmd *cobra.Command, _ []string) error {
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
		fmt.Println("\n  Need some expense data first.")
		return nil
	}

	currency := cfg.General.Currency
	periods, rep := engine.SumByPeriod(expenses)

	fmt.Println()
	fmt.Println(cli.RenderTitle("SPENDING TRENDS"))

	printPeriodSection("Weekly", periods.Weekly, currency)
	printPeriodSection("Monthly", periods.Monthly, currency)

	if rep.Total() > 0 {
		fmt.Println()
		fmt.Println(cli.RenderWarning(cli.FormatSkips(rep.Total())))
	}
	reportSkips(logger, rep)
	return nil
}

func printPeriodSection(title string, totals []model.PeriodTotal, currency string) {
	if len(totals) == 0 {
		return
	}

	rows := make([][]string, 0, len(totals))
	bars := make([]cli.Bar, 0, len(totals))
	for _, pt := range totals {
		rows = append(rows, []string{pt.Key, cli.FormatAmount(pt.Total, currency)})
		bars = append(bars, cli.Bar{Label: pt.Key, Value: pt.Total})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   title,
		Headers: []string{"Period", "Total"},
		Rows:    rows,
	}))
	fmt.Println()
	fmt.Print(cli.BarChart(bars, currency, 30, cli.ColorBlue))
}
