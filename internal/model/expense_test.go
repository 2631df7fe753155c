package model

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"Food", CategoryFood, false},
		{"food", CategoryFood, false},
		{"FOOD", CategoryFood, false},
		{"fOoD", CategoryFood, false},
		{"  travel  ", CategoryTravel, false},
		{"study", CategoryStudy, false},
		{"other", CategoryOther, false},
		{"Groceries", "", true},
		{"", "", true},
		{"   ", "", true},
		{"Foods", "", true},
	}

	for _, tc := range tests {
		got, err := ParseCategory(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrUnknownCategory) {
				t.Errorf("ParseCategory(%q) err = %v, want ErrUnknownCategory", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCategory(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCategoriesClosedSet(t *testing.T) {
	cats := Categories()
	if len(cats) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(cats))
	}
	want := []Category{CategoryFood, CategoryTravel, CategoryStudy, CategoryOther}
	for i, c := range want {
		if cats[i] != c {
			t.Errorf("Categories()[%d] = %q, want %q", i, cats[i], c)
		}
	}
}

func TestNewStampsWireFormat(t *testing.T) {
	at := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	e := New(at, CategoryFood, decimal.RequireFromString("12.50"), "lunch")

	if e.Timestamp != "2024-03-15 10:00:00" {
		t.Errorf("Timestamp = %q, want %q", e.Timestamp, "2024-03-15 10:00:00")
	}
	got, err := e.Time()
	if err != nil {
		t.Fatalf("Time: %v", err)
	}
	if !got.Equal(at) {
		t.Errorf("round-trip time = %v, want %v", got, at)
	}
}

func TestValidate(t *testing.T) {
	valid := Expense{
		Timestamp: "2024-03-15 10:00:00",
		Category:  CategoryFood,
		Amount:    decimal.RequireFromString("12.50"),
		Note:      "lunch",
	}

	tests := []struct {
		name    string
		mutate  func(e *Expense)
		wantErr error
	}{
		{"valid", func(e *Expense) {}, nil},
		{"empty note ok", func(e *Expense) { e.Note = "" }, nil},
		{"bad timestamp", func(e *Expense) { e.Timestamp = "2024-03-15" }, ErrBadTimestamp},
		{"garbage timestamp", func(e *Expense) { e.Timestamp = "yesterday" }, ErrBadTimestamp},
		{"unknown category", func(e *Expense) { e.Category = "Groceries" }, ErrUnknownCategory},
		{"zero amount", func(e *Expense) { e.Amount = decimal.Zero }, ErrNonPositiveAmount},
		{"negative amount", func(e *Expense) { e.Amount = decimal.RequireFromString("-1") }, ErrNonPositiveAmount},
		{"note too long", func(e *Expense) { e.Note = strings.Repeat("x", MaxNoteLen+1) }, ErrNoteTooLong},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := valid
			tc.mutate(&e)
			err := e.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Validate err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}
