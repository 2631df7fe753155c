package model

import "github.com/shopspring/decimal"

// CategoryTotal is the summed amount for one category present in a snapshot.
type CategoryTotal struct {
	Category Category
	Total    decimal.Decimal
}

// PeriodTotal is the summed amount for one calendar bucket. The key is
// a display label ("2024-W05", "2024-03 (March)"), not a storage key.
type PeriodTotal struct {
	Key   string
	Total decimal.Decimal
}

// FilteredView is the result of a filter query: the matching records
// plus their grand total. An empty view is not an error.
type FilteredView struct {
	Expenses   []Expense
	GrandTotal decimal.Decimal
}

// BreakdownSummary pairs the per-category totals with the size and
// grand total of the snapshot they were computed from.
type BreakdownSummary struct {
	ByCategory []CategoryTotal
	Count      int
	GrandTotal decimal.Decimal
}
