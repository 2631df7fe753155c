package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"outlay/internal/model"
)

func TestAddValuesExpense(t *testing.T) {
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	v := addValues{category: "food", amount: " 12.50 ", note: " lunch "}
	e, err := v.expense(now)
	if err != nil {
		t.Fatalf("expense: %v", err)
	}
	if e.Category != model.CategoryFood {
		t.Errorf("Category = %q, want Food", e.Category)
	}
	if !e.Amount.Equal(decimal.RequireFromString("12.50")) {
		t.Errorf("Amount = %s, want 12.50", e.Amount)
	}
	if e.Note != "lunch" {
		t.Errorf("Note = %q, want trimmed", e.Note)
	}
	if e.Timestamp != "2024-03-15 10:00:00" {
		t.Errorf("Timestamp = %q", e.Timestamp)
	}
}

func TestAddValuesExpenseErrors(t *testing.T) {
	now := time.Now()

	if _, err := (addValues{category: "snacks", amount: "5"}).expense(now); !errors.Is(err, model.ErrUnknownCategory) {
		t.Errorf("unknown category err = %v", err)
	}
	if _, err := (addValues{category: "food", amount: "abc"}).expense(now); err == nil {
		t.Error("expected error for non-numeric amount")
	}
	if _, err := (addValues{category: "food", amount: "-3"}).expense(now); !errors.Is(err, model.ErrNonPositiveAmount) {
		t.Errorf("negative amount err = %v", err)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"12.50", "12.50", false},
		{" 7 ", "7", false},
		{"0", "", true},
		{"-1.25", "", true},
		{"abc", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		got, err := parseAmount(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseAmount(%q) expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseAmount(%q): %v", tc.in, err)
			continue
		}
		if !got.Equal(decimal.RequireFromString(tc.want)) {
			t.Errorf("parseAmount(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
