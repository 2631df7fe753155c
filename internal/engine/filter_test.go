package engine

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"outlay/internal/model"
)

func TestFilterByCategory(t *testing.T) {
	expenses := []model.Expense{
		exp(t, "2024-03-01 09:00:00", model.CategoryFood, "10.00"),
		exp(t, "2024-03-02 12:30:00", model.CategoryTravel, "20.00"),
		exp(t, "2024-03-03 18:15:00", model.CategoryFood, "5.50"),
	}

	view, err := FilterByCategory(expenses, "Food")
	if err != nil {
		t.Fatalf("FilterByCategory: %v", err)
	}
	if len(view.Expenses) != 2 {
		t.Fatalf("matched %d records, want 2", len(view.Expenses))
	}
	if !view.GrandTotal.Equal(decimal.RequireFromString("15.50")) {
		t.Errorf("GrandTotal = %s, want 15.50", view.GrandTotal)
	}
	// Newest first
	if view.Expenses[0].Timestamp != "2024-03-03 18:15:00" {
		t.Errorf("first record = %q, want the newest", view.Expenses[0].Timestamp)
	}
	if view.Expenses[1].Timestamp != "2024-03-01 09:00:00" {
		t.Errorf("second record = %q, want the oldest", view.Expenses[1].Timestamp)
	}
}

func TestFilterByCategoryCanonicalizesLabel(t *testing.T) {
	expenses := []model.Expense{
		exp(t, "2024-03-01 09:00:00", model.CategoryFood, "10.00"),
	}

	for _, label := range []string{"food", "FOOD", "fOoD", "  food  "} {
		view, err := FilterByCategory(expenses, label)
		if err != nil {
			t.Fatalf("label %q: %v", label, err)
		}
		if len(view.Expenses) != 1 {
			t.Errorf("label %q matched %d records, want 1", label, len(view.Expenses))
		}
	}
}

func TestFilterByCategoryUnknownLabel(t *testing.T) {
	_, err := FilterByCategory(nil, "Groceries")
	if !errors.Is(err, model.ErrUnknownCategory) {
		t.Fatalf("err = %v, want ErrUnknownCategory", err)
	}
}

func TestFilterByDateRangeInclusiveBounds(t *testing.T) {
	expenses := []model.Expense{
		exp(t, "2024-01-01 00:00:00", model.CategoryFood, "1.00"),
		exp(t, "2024-01-15 12:00:00", model.CategoryFood, "2.00"),
		exp(t, "2024-01-31 23:59:59", model.CategoryFood, "4.00"),
		exp(t, "2024-02-01 00:00:00", model.CategoryFood, "8.00"),
		exp(t, "2023-12-31 23:59:59", model.CategoryFood, "16.00"),
	}

	view, err := FilterByDateRange(expenses, "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("FilterByDateRange: %v", err)
	}
	if len(view.Expenses) != 3 {
		t.Fatalf("matched %d records, want 3: %+v", len(view.Expenses), view.Expenses)
	}
	if !view.GrandTotal.Equal(decimal.RequireFromString("7.00")) {
		t.Errorf("GrandTotal = %s, want 7.00", view.GrandTotal)
	}
	for _, e := range view.Expenses {
		if e.Timestamp == "2024-02-01 00:00:00" || e.Timestamp == "2023-12-31 23:59:59" {
			t.Errorf("record %q should fall outside the window", e.Timestamp)
		}
	}
}

func TestFilterByDateRangeNewestFirst(t *testing.T) {
	expenses := []model.Expense{
		exp(t, "2024-01-02 09:00:00", model.CategoryFood, "1.00"),
		exp(t, "2024-01-05 09:00:00", model.CategoryFood, "2.00"),
		exp(t, "2024-01-03 09:00:00", model.CategoryFood, "3.00"),
	}

	view, err := FilterByDateRange(expenses, "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("FilterByDateRange: %v", err)
	}

	want := []string{"2024-01-05 09:00:00", "2024-01-03 09:00:00", "2024-01-02 09:00:00"}
	for i, ts := range want {
		if view.Expenses[i].Timestamp != ts {
			t.Errorf("position %d = %q, want %q", i, view.Expenses[i].Timestamp, ts)
		}
	}
}

func TestFilterByDateRangeBadBounds(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
	}{
		{"malformed start", "01/01/2024", "2024-01-31"},
		{"malformed end", "2024-01-01", "tomorrow"},
		{"timestamp as bound", "2024-01-01 00:00:00", "2024-01-31"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FilterByDateRange(nil, tc.start, tc.end)
			if !errors.Is(err, model.ErrBadDate) {
				t.Fatalf("err = %v, want ErrBadDate", err)
			}
		})
	}
}

func TestFilterByDateRangeEmptyMatch(t *testing.T) {
	expenses := []model.Expense{
		exp(t, "2024-06-01 09:00:00", model.CategoryFood, "1.00"),
	}

	view, err := FilterByDateRange(expenses, "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("FilterByDateRange: %v", err)
	}
	if len(view.Expenses) != 0 {
		t.Fatalf("matched %d records, want 0", len(view.Expenses))
	}
	if !view.GrandTotal.Equal(decimal.Zero) {
		t.Errorf("GrandTotal = %s, want 0", view.GrandTotal)
	}
}
