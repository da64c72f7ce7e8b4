package analytics

import (
	"fmt"
	"sort"
	"strings"

	gocache "github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"

	"github.com/Markwang0203/Money-Notes-App/internal/model"
)

// Cache memoizes derived views keyed by (log version, operation,
// parameters). Referential transparency of the computations makes the
// cache invisible to callers; a new log version simply misses.
type Cache struct {
	views *gocache.Cache
}

// NewCache creates a Cache. Entries never expire on their own; stale
// versions are evicted wholesale via Flush when the caller chooses.
func NewCache() *Cache {
	return &Cache{views: gocache.New(gocache.NoExpiration, 0)}
}

// Flush drops all memoized views.
func (c *Cache) Flush() {
	c.views.Flush()
}

// Totals returns the memoized income/expense/net rollup.
func (c *Cache) Totals(version string, txns []model.Transaction) Totals {
	key := viewKey(version, "totals")
	if v, ok := c.views.Get(key); ok {
		return v.(Totals)
	}
	out := SumTotals(txns)
	c.views.Set(key, out, gocache.NoExpiration)
	return out
}

// History returns the memoized monthly rollup.
func (c *Cache) History(version string, txns []model.Transaction) []MonthSummary {
	key := viewKey(version, "history")
	if v, ok := c.views.Get(key); ok {
		return v.([]MonthSummary)
	}
	out := History(txns)
	c.views.Set(key, out, gocache.NoExpiration)
	return out
}

// Breakdown returns the memoized category breakdown for a month filter.
func (c *Cache) Breakdown(version string, txns []model.Transaction, monthKey string) []CategoryTotal {
	key := viewKey(version, "breakdown", monthKey)
	if v, ok := c.views.Get(key); ok {
		return v.([]CategoryTotal)
	}
	out := Breakdown(txns, monthKey)
	c.views.Set(key, out, gocache.NoExpiration)
	return out
}

// BudgetStatus returns the memoized budget usage for a month.
func (c *Cache) BudgetStatus(version string, txns []model.Transaction, budgets map[model.Category]decimal.Decimal, monthKey string) []BudgetLine {
	key := viewKey(version, "budget", monthKey, budgetFingerprint(budgets))
	if v, ok := c.views.Get(key); ok {
		return v.([]BudgetLine)
	}
	out := BudgetStatus(txns, budgets, monthKey)
	c.views.Set(key, out, gocache.NoExpiration)
	return out
}

// PriceWatch returns the memoized item price summary.
func (c *Cache) PriceWatch(version string, txns []model.Transaction) []ItemStats {
	key := viewKey(version, "prices")
	if v, ok := c.views.Get(key); ok {
		return v.([]ItemStats)
	}
	out := PriceWatch(txns)
	c.views.Set(key, out, gocache.NoExpiration)
	return out
}

// DrillDown returns the memoized itemized drill-down for a scope.
func (c *Cache) DrillDown(version string, txns []model.Transaction, category model.Category, monthKey string, tolerance decimal.Decimal) []ItemTotal {
	key := viewKey(version, "drilldown", string(category), monthKey, tolerance.String())
	if v, ok := c.views.Get(key); ok {
		return v.([]ItemTotal)
	}
	out := DrillDown(FilterScope(txns, category, monthKey), tolerance)
	c.views.Set(key, out, gocache.NoExpiration)
	return out
}

func viewKey(version, op string, params ...string) string {
	parts := append([]string{version, op}, params...)
	return strings.Join(parts, "|")
}

// budgetFingerprint serializes a budgets map deterministically so it
// can participate in a cache key.
func budgetFingerprint(budgets map[model.Category]decimal.Decimal) string {
	keys := make([]string, 0, len(budgets))
	for cat := range budgets {
		keys = append(keys, string(cat))
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%s;", k, budgets[model.Category(k)])
	}
	return b.String()
}
