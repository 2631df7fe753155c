// Package model defines the expense record and the derived summary types.
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TimestampLayout is the wire format expense timestamps are stored in.
// Lexical order on this layout matches chronological order.
const TimestampLayout = "2006-01-02 15:04:05"

// DateLayout is the format for user-supplied date-only filter bounds.
const DateLayout = "2006-01-02"

// MaxNoteLen caps the free-text note on a record.
const MaxNoteLen = 200

// Category is one label from the fixed closed set classifying an expense.
type Category string

const (
	CategoryFood   Category = "Food"
	CategoryTravel Category = "Travel"
	CategoryStudy  Category = "Study"
	CategoryOther  Category = "Other"
)

// Categories returns the closed category set in display order.
func Categories() []Category {
	return []Category{CategoryFood, CategoryTravel, CategoryStudy, CategoryOther}
}

var (
	ErrUnknownCategory   = errors.New("unknown category")
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrBadTimestamp      = errors.New("invalid timestamp")
	ErrBadDate           = errors.New("invalid date, want YYYY-MM-DD")
	ErrNoteTooLong       = errors.New("note too long")
)

// ParseCategory canonicalizes a user-supplied label (trim, capitalize)
// and matches it against the closed set.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrUnknownCategory
	}
	canon := strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
	for _, c := range Categories() {
		if string(c) == canon {
			return c, nil
		}
	}
	return "", ErrUnknownCategory
}

// Expense is a single recorded spending event. Records are immutable
// once created: the system supports create and read only.
type Expense struct {
	ID        int64
	Timestamp string // raw wire form, TimestampLayout
	Category  Category
	Amount    decimal.Decimal
	Note      string // optional
}

// New builds an expense stamped with the given time.
func New(t time.Time, cat Category, amount decimal.Decimal, note string) Expense {
	return Expense{
		Timestamp: t.Format(TimestampLayout),
		Category:  cat,
		Amount:    amount,
		Note:      note,
	}
}

// Time parses the raw timestamp. Callers that can tolerate bad data
// (period aggregation) skip records where this fails.
func (e Expense) Time() (time.Time, error) {
	t, err := time.Parse(TimestampLayout, e.Timestamp)
	if err != nil {
		return time.Time{}, ErrBadTimestamp
	}
	return t, nil
}

// Validate enforces the creation-time invariants. It is applied on
// insert only; reads trust what the store returns.
func (e Expense) Validate() error {
	if _, err := e.Time(); err != nil {
		return err
	}
	if _, err := ParseCategory(string(e.Category)); err != nil {
		return err
	}
	if e.Amount.Sign() <= 0 {
		return ErrNonPositiveAmount
	}
	if len(e.Note) > MaxNoteLen {
		return ErrNoteTooLong
	}
	return nil
}
