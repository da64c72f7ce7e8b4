// Package analytics derives read-only views from a snapshot of the
// transaction log. Every function here is pure: same snapshot and
// parameters in, structurally identical view out, no I/O and no clock.
// Callers hand in freshly built slices and must not mutate them while a
// computation runs; nothing else is required for safe concurrent use.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/Markwang0203/Money-Notes-App/internal/model"
)

// Totals is the income/expense/net rollup for a set of transactions.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// SumTotals computes totals over the given transactions. No filtering
// happens here; callers pre-filter the slice.
func SumTotals(txns []model.Transaction) Totals {
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range txns {
		if t.IsExpense() {
			expense = expense.Add(t.AmountPrimary)
		} else {
			income = income.Add(t.AmountPrimary)
		}
	}
	return Totals{
		Income:  income,
		Expense: expense,
		Net:     income.Sub(expense),
	}
}
