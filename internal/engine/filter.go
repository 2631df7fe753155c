package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"outlay/internal/model"
)

// FilterByCategory returns the records matching the given label plus
// their grand total, ordered newest-first. The label is canonicalized
// before matching; an unknown label is a usage error, never matched
// against data.
func FilterByCategory(expenses []model.Expense, label string) (model.FilteredView, error) {
	cat, err := model.ParseCategory(label)
	if err != nil {
		return model.FilteredView{}, fmt.Errorf("filter by category %q: %w", label, err)
	}

	var matched []model.Expense
	for _, e := range expenses {
		if e.Category == cat {
			matched = append(matched, e)
		}
	}
	return newView(matched), nil
}

// FilterByDateRange returns the records whose timestamp falls within
// the inclusive [start, end] date range, ordered newest-first. Bounds
// are date-only strings; the window runs from start 00:00:00 through
// end 23:59:59. Malformed bounds are a usage error.
//
// Matching compares raw timestamp strings: lexical order equals
// chronological order for the fixed layout, and records whose
// timestamp does not even parse cannot land inside the window.
func FilterByDateRange(expenses []model.Expense, start, end string) (model.FilteredView, error) {
	if _, err := time.Parse(model.DateLayout, start); err != nil {
		return model.FilteredView{}, fmt.Errorf("start date %q: %w", start, model.ErrBadDate)
	}
	if _, err := time.Parse(model.DateLayout, end); err != nil {
		return model.FilteredView{}, fmt.Errorf("end date %q: %w", end, model.ErrBadDate)
	}

	lo := start + " 00:00:00"
	hi := end + " 23:59:59"

	var matched []model.Expense
	for _, e := range expenses {
		if e.Timestamp >= lo && e.Timestamp <= hi {
			matched = append(matched, e)
		}
	}
	return newView(matched), nil
}

// newView sorts matches newest-first (ID descending as tie-break) and
// sums them. The grand total is zero for an empty match set.
func newView(matched []model.Expense) model.FilteredView {
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Timestamp != matched[j].Timestamp {
			return matched[i].Timestamp > matched[j].Timestamp
		}
		return matched[i].ID > matched[j].ID
	})

	total := decimal.Zero
	for _, e := range matched {
		total = total.Add(e.Amount)
	}
	return model.FilteredView{Expenses: matched, GrandTotal: total}
}
