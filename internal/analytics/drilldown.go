package analytics

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Markwang0203/Money-Notes-App/internal/model"
)

// DefaultTolerance is the discrepancy threshold for detecting an
// unclassified remainder. A policy choice, so it stays configurable.
var DefaultTolerance = decimal.RequireFromString("0.1")

// ItemTotal is one named bucket in the drill-down.
type ItemTotal struct {
	Name  string
	Total decimal.Decimal
}

// DrillDown reconciles a category's itemized sub-records against its
// transaction totals. Input must already be filtered to one category
// (and optionally one month); FilterScope does that.
//
// For an itemized transaction, each item price lands in its name's
// bucket; when the transaction total exceeds the item sum by more than
// the tolerance, the exact positive remainder lands in the Unclassified
// bucket. Over-itemized transactions (items summing past the total)
// never produce a negative adjustment. Non-itemized transactions land
// wholly in Unclassified. The sum of all buckets therefore conserves
// the sum of transaction amounts, up to the tolerance used only for
// detection.
func DrillDown(txns []model.Transaction, tolerance decimal.Decimal) []ItemTotal {
	buckets := make(map[string]decimal.Decimal)
	unclassified := decimal.Zero

	for _, t := range txns {
		if len(t.Items) == 0 {
			unclassified = unclassified.Add(t.AmountPrimary)
			continue
		}

		itemsSum := decimal.Zero
		for _, it := range t.Items {
			buckets[it.Name] = buckets[it.Name].Add(it.Price)
			itemsSum = itemsSum.Add(it.Price)
		}

		remainder := t.AmountPrimary.Sub(itemsSum)
		if remainder.GreaterThan(tolerance) {
			unclassified = unclassified.Add(remainder)
		}
	}

	if unclassified.GreaterThan(tolerance) {
		buckets[model.Unclassified] = buckets[model.Unclassified].Add(unclassified)
	}

	out := make([]ItemTotal, 0, len(buckets))
	for name, total := range buckets {
		out = append(out, ItemTotal{Name: name, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Total.Cmp(out[j].Total); c != 0 {
			return c > 0
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// FilterScope narrows a snapshot to expense transactions of one
// category, optionally within one month key (empty means all months).
// The result is a fresh slice; the input is never modified.
func FilterScope(txns []model.Transaction, category model.Category, monthKey string) []model.Transaction {
	var out []model.Transaction
	for _, t := range txns {
		if !t.IsExpense() {
			continue
		}
		if model.NormalizeCategory(model.KindExpense, string(t.Category)) != category {
			continue
		}
		if monthKey != "" && !strings.HasPrefix(t.Date, monthKey) {
			continue
		}
		out = append(out, t)
	}
	return out
}
