package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Markwang0203/Money-Notes-App/internal/model"
)

func TestCache_SameVersionReturnsMemoizedView(t *testing.T) {
	txns := []model.Transaction{
		income("1000", "Salary", "2024-01-10"),
		expense("50", "Groceries", "2024-01-05"),
	}

	c := NewCache()
	first := c.Totals("v1", txns)
	// The snapshot argument is ignored on a hit; only the version keys it.
	second := c.Totals("v1", nil)
	assert.Equal(t, first, second)
}

func TestCache_NewVersionRecomputes(t *testing.T) {
	c := NewCache()
	v1 := c.Totals("v1", []model.Transaction{expense("50", "Groceries", "2024-01-05")})
	v2 := c.Totals("v2", []model.Transaction{expense("70", "Groceries", "2024-01-05")})

	assert.True(t, v1.Expense.Equal(dec("50")))
	assert.True(t, v2.Expense.Equal(dec("70")))
}

func TestCache_ParametersParticipateInKey(t *testing.T) {
	txns := []model.Transaction{
		expense("50", "Groceries", "2024-01-05"),
		expense("30", "Groceries", "2024-02-05"),
	}

	c := NewCache()
	jan := c.Breakdown("v1", txns, "2024-01")
	feb := c.Breakdown("v1", txns, "2024-02")

	require.Len(t, jan, 1)
	require.Len(t, feb, 1)
	assert.True(t, jan[0].Total.Equal(dec("50")))
	assert.True(t, feb[0].Total.Equal(dec("30")))
}

func TestCache_BudgetFingerprintIsDeterministic(t *testing.T) {
	txns := []model.Transaction{expense("120", "Groceries", "2024-01-05")}
	b := budgets("Groceries", "100", "Dining", "60")

	c := NewCache()
	first := c.BudgetStatus("v1", txns, b, "2024-01")
	second := c.BudgetStatus("v1", txns, b, "2024-01")
	assert.Equal(t, first, second)
}

func TestCache_DrillDownScopesByCategory(t *testing.T) {
	txns := []model.Transaction{
		expense("50", "Groceries", "2024-01-05", item("Milk", "4"), item("Bread", "3")),
		expense("200", "Rent", "2024-01-01"),
	}

	c := NewCache()
	groceries := c.DrillDown("v1", txns, model.CategoryGroceries, "", DefaultTolerance)
	rent := c.DrillDown("v1", txns, model.CategoryRent, "", DefaultTolerance)

	require.Len(t, groceries, 3)
	require.Len(t, rent, 1)
	assert.True(t, rent[0].Total.Equal(dec("200")))
}

func TestCache_Flush(t *testing.T) {
	c := NewCache()
	c.Totals("v1", []model.Transaction{expense("50", "Groceries", "2024-01-05")})
	c.Flush()

	recomputed := c.Totals("v1", []model.Transaction{expense("70", "Groceries", "2024-01-05")})
	assert.True(t, recomputed.Expense.Equal(dec("70")))
}
