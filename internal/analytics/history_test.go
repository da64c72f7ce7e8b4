package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Markwang0203/Money-Notes-App/internal/model"
)

func TestHistory_DescendingMonths(t *testing.T) {
	txns := []model.Transaction{
		income("1000", "Salary", "2024-01-10"),
		income("500", "Salary", "2024-02-01"),
	}

	months := History(txns)
	require.Len(t, months, 2)
	assert.Equal(t, "2024-02", months[0].Month)
	assert.True(t, months[0].Income.Equal(dec("500")))
	assert.Equal(t, "2024-01", months[1].Month)
	assert.True(t, months[1].Income.Equal(dec("1000")))
}

func TestHistory_NetPerMonth(t *testing.T) {
	txns := []model.Transaction{
		income("1000", "Salary", "2024-01-10"),
		expense("300", "Rent", "2024-01-11"),
		expense("50", "Groceries", "2024-01-12"),
	}

	months := History(txns)
	require.Len(t, months, 1)
	assert.True(t, months[0].Net.Equal(dec("650")))
}

func TestHistory_GapsNotSynthesized(t *testing.T) {
	txns := []model.Transaction{
		expense("10", "Groceries", "2024-01-05"),
		expense("20", "Groceries", "2024-04-05"),
	}

	months := History(txns)
	require.Len(t, months, 2, "empty months must not appear")
	assert.Equal(t, "2024-04", months[0].Month)
	assert.Equal(t, "2024-01", months[1].Month)
}

func TestHistory_Empty(t *testing.T) {
	assert.Empty(t, History(nil))
}

func TestHistory_Idempotent(t *testing.T) {
	txns := []model.Transaction{
		income("1000", "Salary", "2024-01-10"),
		expense("300", "Rent", "2024-02-11"),
		expense("42.50", "Groceries", "2024-02-12"),
	}

	first := History(txns)
	second := History(txns)
	assert.Equal(t, first, second)
}
