package analytics

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Markwang0203/Money-Notes-App/internal/model"
)

// CategoryTotal is one category's expense total within a filter scope.
type CategoryTotal struct {
	Category model.Category
	Total    decimal.Decimal
}

// Breakdown sums expense amounts per category, optionally restricted to
// one month key (empty key means all months). Labels outside the closed
// expense set roll into the Other bucket. Output is sorted by
// descending total, ties by category label, so identical input always
// produces identical output.
func Breakdown(txns []model.Transaction, monthKey string) []CategoryTotal {
	totals := make(map[model.Category]decimal.Decimal)
	for _, t := range txns {
		if !t.IsExpense() {
			continue
		}
		if monthKey != "" && !strings.HasPrefix(t.Date, monthKey) {
			continue
		}
		cat := model.NormalizeCategory(model.KindExpense, string(t.Category))
		totals[cat] = totals[cat].Add(t.AmountPrimary)
	}

	out := make([]CategoryTotal, 0, len(totals))
	for cat, total := range totals {
		out = append(out, CategoryTotal{Category: cat, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Total.Cmp(out[j].Total); c != 0 {
			return c > 0
		}
		return out[i].Category < out[j].Category
	})
	return out
}
