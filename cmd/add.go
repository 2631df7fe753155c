package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"outlay/internal/cli"
	"outlay/internal/model"
)

var (
	flagAddCategory string
	flagAddAmount   string
	flagAddNote     string
	flagAddDate     string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new expense",
	Long: "Record a new expense. With --category and --amount the record is written directly;\n" +
		"otherwise an interactive form prompts for the details.",
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagAddCategory, "category", "c", "", "Expense category (Food, Travel, Study, Other)")
	addCmd.Flags().StringVarP(&flagAddAmount, "amount", "a", "", "Amount spent, e.g. 12.50")
	addCmd.Flags().StringVarP(&flagAddNote, "note", "m", "", "Optional note")
	addCmd.Flags().StringVar(&flagAddDate, "date", "", "Backdate the expense (YYYY-MM-DD or \"YYYY-MM-DD HH:MM:SS\")")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, _ []string) error {
	src, cfg, _, err := openSource()
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	catStr := flagAddCategory
	amountStr := flagAddAmount
	note := flagAddNote

	// Flag-driven when both required fields are present, interactive
	// otherwise.
	if catStr == "" || amountStr == "" {
		if err := runAddForm(&catStr, &amountStr, &note); err != nil {
			return err
		}
	}

	cat, err := model.ParseCategory(catStr)
	if err != nil {
		return fmt.Errorf("category %q: %w (choose from Food, Travel, Study, Other)", catStr, err)
	}

	amount, err := parseAmount(amountStr)
	if err != nil {
		return err
	}

	when := time.Now()
	if flagAddDate != "" {
		when, err = parseWhen(flagAddDate)
		if err != nil {
			return err
		}
	}

	id, err := src.Insert(cmd.Context(), model.New(when, cat, amount, strings.TrimSpace(note)))
	if err != nil {
		return err
	}

	fmt.Printf("\n  Saved expense #%d: %s on %s\n", id, cli.FormatAmount(amount, cfg.General.Currency), cat)
	return nil
}

// runAddForm collects the expense details interactively.
func runAddForm(catStr, amountStr, note *string) error {
	options := make([]huh.Option[string], 0, len(model.Categories()))
	for _, c := range model.Categories() {
		options = append(options, huh.NewOption(string(c), string(c)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category").
				Options(options...).
				Value(catStr),
			huh.NewInput().
				Title("Amount").
				Placeholder("12.50").
				Validate(func(s string) error {
					_, err := parseAmount(s)
					return err
				}).
				Value(amountStr),
			huh.NewInput().
				Title("Note").
				Description("Optional, press Enter to skip").
				CharLimit(model.MaxNoteLen).
				Value(note),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return errors.New("cancelled")
		}
		return err
	}
	return nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount %q is not a valid number", s)
	}
	if d.Sign() <= 0 {
		return decimal.Zero, model.ErrNonPositiveAmount
	}
	return d, nil
}

func parseWhen(s string) (time.Time, error) {
	if t, err := time.Parse(model.TimestampLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(model.DateLayout, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("date %q: %w", s, model.ErrBadDate)
}
