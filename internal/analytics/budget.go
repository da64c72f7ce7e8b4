package analytics

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Markwang0203/Money-Notes-App/internal/model"
)

// BudgetLine compares one category's current-month spending against its
// configured monthly limit.
type BudgetLine struct {
	Category      model.Category
	Limit         decimal.Decimal
	Spent         decimal.Decimal
	RawPercent    decimal.Decimal // spent/limit*100, unbounded above
	CappedPercent decimal.Decimal // raw clamped to 100 for display
	Over          bool
}

var hundred = decimal.NewFromInt(100)

// BudgetStatus reports usage for every category with a limit > 0
// against spending in the given month. The month key is caller-supplied
// rather than read from the clock, keeping the computation pure.
// Categories without a configured limit, or with a zero limit, are
// untracked and omitted rather than reported at 0%.
func BudgetStatus(txns []model.Transaction, budgets map[model.Category]decimal.Decimal, monthKey string) []BudgetLine {
	spent := make(map[model.Category]decimal.Decimal)
	for _, t := range txns {
		if !t.IsExpense() {
			continue
		}
		if !strings.HasPrefix(t.Date, monthKey) {
			continue
		}
		cat := model.NormalizeCategory(model.KindExpense, string(t.Category))
		spent[cat] = spent[cat].Add(t.AmountPrimary)
	}

	var out []BudgetLine
	for cat, limit := range budgets {
		if !limit.IsPositive() {
			continue
		}
		used := spent[cat]
		raw := used.Div(limit).Mul(hundred)
		capped := raw
		if capped.GreaterThan(hundred) {
			capped = hundred
		}
		out = append(out, BudgetLine{
			Category:      cat,
			Limit:         limit,
			Spent:         used,
			RawPercent:    raw,
			CappedPercent: capped,
			Over:          used.GreaterThan(limit),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if c := out[i].CappedPercent.Cmp(out[j].CappedPercent); c != 0 {
			return c > 0
		}
		if c := out[i].RawPercent.Cmp(out[j].RawPercent); c != 0 {
			return c > 0
		}
		return out[i].Category < out[j].Category
	})
	return out
}
