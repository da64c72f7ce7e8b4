package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Markwang0203/Money-Notes-App/internal/model"
)

// MonthSummary is one month's income/expense/net rollup.
type MonthSummary struct {
	Month   string // "YYYY-MM"
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// History groups transactions by month key and rolls up totals per
// month, newest month first. The fixed-width key makes descending
// string comparison a valid chronological ordering. Months with no
// transactions do not appear.
func History(txns []model.Transaction) []MonthSummary {
	byMonth := make(map[string]*MonthSummary)
	for _, t := range txns {
		key := t.MonthKey()
		ms, ok := byMonth[key]
		if !ok {
			ms = &MonthSummary{Month: key, Income: decimal.Zero, Expense: decimal.Zero}
			byMonth[key] = ms
		}
		if t.IsExpense() {
			ms.Expense = ms.Expense.Add(t.AmountPrimary)
		} else {
			ms.Income = ms.Income.Add(t.AmountPrimary)
		}
	}

	out := make([]MonthSummary, 0, len(byMonth))
	for _, ms := range byMonth {
		ms.Net = ms.Income.Sub(ms.Expense)
		out = append(out, *ms)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Month > out[j].Month
	})
	return out
}
