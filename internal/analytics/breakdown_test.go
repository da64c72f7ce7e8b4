package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Markwang0203/Money-Notes-App/internal/model"
)

func TestBreakdown_ExpensesOnly(t *testing.T) {
	txns := []model.Transaction{
		expense("50", "Groceries", "2024-01-05"),
		expense("30", "Groceries", "2024-01-06"),
		expense("200", "Rent", "2024-01-01"),
		income("1000", "Salary", "2024-01-10"),
	}

	got := Breakdown(txns, "")
	require.Len(t, got, 2)
	assert.Equal(t, model.CategoryRent, got[0].Category)
	assert.True(t, got[0].Total.Equal(dec("200")))
	assert.Equal(t, model.CategoryGroceries, got[1].Category)
	assert.True(t, got[1].Total.Equal(dec("80")))
}

func TestBreakdown_MonthFilter(t *testing.T) {
	txns := []model.Transaction{
		expense("50", "Groceries", "2024-01-05"),
		expense("99", "Groceries", "2024-02-05"),
	}

	got := Breakdown(txns, "2024-01")
	require.Len(t, got, 1)
	assert.True(t, got[0].Total.Equal(dec("50")))
}

func TestBreakdown_UnknownCategoryRollsIntoOther(t *testing.T) {
	txns := []model.Transaction{
		expense("10", "Lawn Flamingos", "2024-01-05"),
		expense("5", "Other", "2024-01-06"),
	}

	got := Breakdown(txns, "")
	require.Len(t, got, 1)
	assert.Equal(t, model.CategoryOther, got[0].Category)
	assert.True(t, got[0].Total.Equal(dec("15")))
}

func TestBreakdown_TieBreaksOnLabel(t *testing.T) {
	txns := []model.Transaction{
		expense("20", "Transport", "2024-01-05"),
		expense("20", "Groceries", "2024-01-06"),
	}

	got := Breakdown(txns, "")
	require.Len(t, got, 2)
	assert.Equal(t, model.CategoryGroceries, got[0].Category, "equal totals order by label")
	assert.Equal(t, model.CategoryTransport, got[1].Category)
}

func TestBreakdown_ConservesExpenseTotal(t *testing.T) {
	txns := []model.Transaction{
		expense("50", "Groceries", "2024-01-05"),
		expense("12.34", "Dining", "2024-01-06"),
		expense("7.66", "Mystery", "2024-01-07"),
		income("1000", "Salary", "2024-01-10"),
	}

	sum := decimal.Zero
	for _, ct := range Breakdown(txns, "") {
		sum = sum.Add(ct.Total)
	}
	assert.True(t, sum.Equal(SumTotals(txns).Expense), "breakdown must conserve the expense total")
}
