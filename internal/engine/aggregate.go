// Package engine computes aggregate summaries and filtered views over
// a snapshot of expense records. Every function is pure: it performs
// no I/O, holds no state across calls, and sees a stable record set
// for the duration of one call.
package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"outlay/internal/model"
)

// SkipReport counts records dropped by the lenient-skip policy.
// Skips are never an error; callers decide whether to log them.
type SkipReport struct {
	BadTimestamps      int
	NonPositiveAmounts int
}

// Total returns the number of records skipped.
func (r SkipReport) Total() int {
	return r.BadTimestamps + r.NonPositiveAmounts
}

// SumByCategory sums amounts per category. Only categories actually
// present appear in the result, ordered lexically by name. Records
// with a non-positive amount are skipped and counted; they cannot
// occur through the add flow but the engine does not trust the store.
func SumByCategory(expenses []model.Expense) ([]model.CategoryTotal, SkipReport) {
	var rep SkipReport
	totals := make(map[model.Category]decimal.Decimal)
	for _, e := range expenses {
		if e.Amount.Sign() <= 0 {
			rep.NonPositiveAmounts++
			continue
		}
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}

	out := make([]model.CategoryTotal, 0, len(totals))
	for cat, total := range totals {
		out = append(out, model.CategoryTotal{Category: cat, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Category < out[j].Category
	})
	return out, rep
}

// PeriodTotals holds the weekly and monthly totals computed in one
// pass over a snapshot. Both partition the same records, so their
// grand totals agree.
type PeriodTotals struct {
	Weekly  []model.PeriodTotal
	Monthly []model.PeriodTotal
}

// SumByPeriod buckets amounts by ISO week and by calendar month.
// Records with an unparseable timestamp or non-positive amount are
// skipped and counted. Results are in ascending key order; both key
// formats are year-prefixed and zero-padded, so lexical order is
// chronological order.
func SumByPeriod(expenses []model.Expense) (PeriodTotals, SkipReport) {
	var rep SkipReport
	weekly := make(map[string]decimal.Decimal)
	monthly := make(map[string]decimal.Decimal)

	for _, e := range expenses {
		t, err := e.Time()
		if err != nil {
			rep.BadTimestamps++
			continue
		}
		if e.Amount.Sign() <= 0 {
			rep.NonPositiveAmounts++
			continue
		}
		wk := WeekKey(t)
		mk := MonthKey(t)
		weekly[wk] = weekly[wk].Add(e.Amount)
		monthly[mk] = monthly[mk].Add(e.Amount)
	}

	return PeriodTotals{
		Weekly:  sortedTotals(weekly),
		Monthly: sortedTotals(monthly),
	}, rep
}

// WeekKey returns the ISO-8601 week bucket label for a time, e.g.
// "2024-W01". Late-December dates can belong to week 1 of the next
// ISO year and vice versa; time.ISOWeek handles both.
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// MonthKey returns the calendar month bucket label for a time, e.g.
// "2024-03 (March)".
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%d-%02d (%s)", t.Year(), int(t.Month()), t.Month())
}

// Breakdown composes SumByCategory with the snapshot size and grand
// total for rendering as text or chart.
func Breakdown(expenses []model.Expense) (model.BreakdownSummary, SkipReport) {
	byCategory, rep := SumByCategory(expenses)

	grand := decimal.Zero
	for _, ct := range byCategory {
		grand = grand.Add(ct.Total)
	}

	return model.BreakdownSummary{
		ByCategory: byCategory,
		Count:      len(expenses),
		GrandTotal: grand,
	}, rep
}

func sortedTotals(m map[string]decimal.Decimal) []model.PeriodTotal {
	out := make([]model.PeriodTotal, 0, len(m))
	for key, total := range m {
		out = append(out, model.PeriodTotal{Key: key, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})
	return out
}
