package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Markwang0203/Money-Notes-App/internal/model"
)

func budgets(pairs ...string) map[model.Category]decimal.Decimal {
	m := make(map[model.Category]decimal.Decimal)
	for i := 0; i < len(pairs); i += 2 {
		m[model.Category(pairs[i])] = dec(pairs[i+1])
	}
	return m
}

func TestBudgetStatus_OverLimit(t *testing.T) {
	txns := []model.Transaction{
		expense("120", "Groceries", "2024-01-05"),
	}

	got := BudgetStatus(txns, budgets("Groceries", "100"), "2024-01")
	require.Len(t, got, 1)

	line := got[0]
	assert.Equal(t, model.CategoryGroceries, line.Category)
	assert.True(t, line.Limit.Equal(dec("100")))
	assert.True(t, line.Spent.Equal(dec("120")))
	assert.True(t, line.RawPercent.Equal(dec("120")))
	assert.True(t, line.CappedPercent.Equal(dec("100")), "capped at 100")
	assert.True(t, line.Over)
}

func TestBudgetStatus_UntrackedOmitted(t *testing.T) {
	txns := []model.Transaction{
		expense("50", "Groceries", "2024-01-05"),
		expense("80", "Transport", "2024-01-06"),
	}

	// Transport has a zero limit, Dining has no spending but a limit.
	got := BudgetStatus(txns, budgets("Groceries", "100", "Transport", "0", "Dining", "60"), "2024-01")
	require.Len(t, got, 2)
	for _, line := range got {
		assert.NotEqual(t, model.CategoryTransport, line.Category, "zero limit means untracked")
	}
}

func TestBudgetStatus_NoSpendingIsZeroPercent(t *testing.T) {
	got := BudgetStatus(nil, budgets("Dining", "60"), "2024-01")
	require.Len(t, got, 1)
	assert.True(t, got[0].Spent.IsZero())
	assert.True(t, got[0].RawPercent.IsZero())
	assert.False(t, got[0].Over)
}

func TestBudgetStatus_OtherMonthsIgnored(t *testing.T) {
	txns := []model.Transaction{
		expense("500", "Groceries", "2023-12-31"),
		expense("40", "Groceries", "2024-01-02"),
	}

	got := BudgetStatus(txns, budgets("Groceries", "100"), "2024-01")
	require.Len(t, got, 1)
	assert.True(t, got[0].Spent.Equal(dec("40")))
}

func TestBudgetStatus_SortedByUsage(t *testing.T) {
	txns := []model.Transaction{
		expense("90", "Groceries", "2024-01-05"),  // 90%
		expense("150", "Transport", "2024-01-06"), // 150% raw, capped 100
		expense("120", "Dining", "2024-01-07"),    // 120% raw, capped 100
	}

	got := BudgetStatus(txns, budgets("Groceries", "100", "Transport", "100", "Dining", "100"), "2024-01")
	require.Len(t, got, 3)
	assert.Equal(t, model.CategoryTransport, got[0].Category, "higher raw percent wins among capped ties")
	assert.Equal(t, model.CategoryDining, got[1].Category)
	assert.Equal(t, model.CategoryGroceries, got[2].Category)
}

func TestBudgetStatus_CappedWithinBounds(t *testing.T) {
	txns := []model.Transaction{
		expense("1", "Groceries", "2024-01-05"),
		expense("10000", "Rent", "2024-01-01"),
	}

	got := BudgetStatus(txns, budgets("Groceries", "300", "Rent", "10"), "2024-01")
	for _, line := range got {
		assert.False(t, line.CappedPercent.IsNegative())
		assert.True(t, line.CappedPercent.LessThanOrEqual(hundred))
	}
}
