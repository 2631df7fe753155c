package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"outlay/internal/model"
)

// addValues backs the add-expense form fields.
type addValues struct {
	category string
	amount   string
	note     string
}

// expense validates the captured values into a record stamped with
// the given time.
func (v addValues) expense(now time.Time) (model.Expense, error) {
	cat, err := model.ParseCategory(v.category)
	if err != nil {
		return model.Expense{}, err
	}
	amount, err := parseAmount(v.amount)
	if err != nil {
		return model.Expense{}, err
	}
	return model.New(now, cat, amount, strings.TrimSpace(v.note)), nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, errors.New("not a valid number")
	}
	if d.Sign() <= 0 {
		return decimal.Zero, model.ErrNonPositiveAmount
	}
	return d, nil
}

// openAddForm resets the form state and builds a fresh huh form.
func (a *App) openAddForm() {
	a.addVals = addValues{}
	a.status = ""

	options := make([]huh.Option[string], 0, len(model.Categories()))
	for _, c := range model.Categories() {
		options = append(options, huh.NewOption(string(c), string(c)))
	}

	a.addForm = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category").
				Options(options...).
				Value(&a.addVals.category),
			huh.NewInput().
				Title("Amount").
				Placeholder("12.50").
				Validate(func(s string) error {
					_, err := parseAmount(s)
					return err
				}).
				Value(&a.addVals.amount),
			huh.NewInput().
				Title("Note").
				Description("Optional, press Enter to skip").
				CharLimit(model.MaxNoteLen).
				Value(&a.addVals.note),
		),
	)
}
