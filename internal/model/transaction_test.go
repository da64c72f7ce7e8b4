package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestNewExpense_FreezesSecondaryAmount(t *testing.T) {
	tx := NewExpense("t1", dec("100"), CategoryGroceries, "2024-01-05", "Woolworths", nil, dec("0.65"))

	assert.True(t, tx.AmountSecondary.Equal(dec("65")))
	assert.True(t, tx.Tax.IsZero(), "expenses carry no tax")
	assert.True(t, tx.Super.IsZero())
	assert.True(t, tx.IsExpense())
}

func TestNewIncome_CarriesTaxAndSuper(t *testing.T) {
	tx := NewIncome("t2", dec("2500"), CategorySalary, "2024-01-15", "Acme", nil, dec("600"), dec("275"), dec("1"))

	assert.Equal(t, KindIncome, tx.Kind)
	assert.False(t, tx.IsExpense())
	assert.True(t, tx.Tax.Equal(dec("600")))
	assert.True(t, tx.Super.Equal(dec("275")))
}

func TestConstructors_NormalizeUnknownCategory(t *testing.T) {
	tx := NewExpense("t3", dec("10"), "Lawn Flamingos", "2024-01-05", "", nil, dec("1"))
	assert.Equal(t, CategoryOther, tx.Category)

	in := NewIncome("t4", dec("10"), "Lottery", "2024-01-05", "", nil, decimal.Zero, decimal.Zero, dec("1"))
	assert.Equal(t, CategoryOtherIncome, in.Category)
}

func TestMonthKey(t *testing.T) {
	tx := Transaction{Date: "2024-01-05"}
	assert.Equal(t, "2024-01", tx.MonthKey())

	short := Transaction{Date: "2024"}
	assert.Equal(t, "2024", short.MonthKey())
}

func TestItemsSum(t *testing.T) {
	tx := Transaction{Items: []ReceiptItem{
		{Name: "Milk", Price: dec("4")},
		{Name: "Bread", Price: dec("3.25")},
	}}
	assert.True(t, tx.ItemsSum().Equal(dec("7.25")))

	assert.True(t, Transaction{}.ItemsSum().IsZero())
}
