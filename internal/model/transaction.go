package model

import (
	"github.com/shopspring/decimal"
)

// Kind distinguishes expense from income transactions.
type Kind string

const (
	KindExpense Kind = "expense"
	KindIncome  Kind = "income"
)

// ReceiptItem is one line of a parsed receipt or payslip. Price is the
// already-extended line total; Quantity is informational only and plays
// no part in aggregation.
type ReceiptItem struct {
	Name     string
	Price    decimal.Decimal
	Quantity int // 0 means unspecified, treated as 1
}

// Transaction is an immutable financial event. Edits are modeled as
// delete + recreate; nothing mutates a Transaction after construction.
//
// Date is kept as fixed-width "YYYY-MM-DD" text. All month grouping
// slices the first 7 characters, which is valid only because every
// producer upholds the fixed-width form; the engine does not re-parse
// or validate dates.
type Transaction struct {
	ID              string
	Kind            Kind
	AmountPrimary   decimal.Decimal
	AmountSecondary decimal.Decimal // converted once at creation, never recomputed
	Category        Category
	Date            string
	Note            string // doubles as the merchant/source for price tracking
	Items           []ReceiptItem

	// Tax and Super are meaningful only for income transactions; the
	// constructors keep them zero on expenses.
	Tax   decimal.Decimal
	Super decimal.Decimal
}

// monthKeyLen is the width of the "YYYY-MM" prefix.
const monthKeyLen = 7

// NewExpense builds an expense transaction, converting the secondary
// amount at the rate in effect now. The converted value is frozen; later
// rate changes never touch existing transactions.
func NewExpense(id string, amount decimal.Decimal, category Category, date, note string, items []ReceiptItem, rate decimal.Decimal) Transaction {
	return Transaction{
		ID:              id,
		Kind:            KindExpense,
		AmountPrimary:   amount,
		AmountSecondary: amount.Mul(rate),
		Category:        NormalizeCategory(KindExpense, string(category)),
		Date:            date,
		Note:            note,
		Items:           items,
	}
}

// NewIncome builds an income transaction. Tax and superannuation are
// only representable through this constructor.
func NewIncome(id string, amount decimal.Decimal, category Category, date, note string, items []ReceiptItem, tax, super, rate decimal.Decimal) Transaction {
	return Transaction{
		ID:              id,
		Kind:            KindIncome,
		AmountPrimary:   amount,
		AmountSecondary: amount.Mul(rate),
		Category:        NormalizeCategory(KindIncome, string(category)),
		Date:            date,
		Note:            note,
		Items:           items,
		Tax:             tax,
		Super:           super,
	}
}

// IsExpense reports whether the transaction counts as an expense.
// Legacy records with no kind recorded are treated as expenses.
func (t Transaction) IsExpense() bool {
	return t.Kind != KindIncome
}

// MonthKey returns the "YYYY-MM" grouping key, sliced from the
// fixed-width date.
func (t Transaction) MonthKey() string {
	if len(t.Date) < monthKeyLen {
		return t.Date
	}
	return t.Date[:monthKeyLen]
}

// ItemsSum returns the sum of item prices, zero when not itemized.
func (t Transaction) ItemsSum() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range t.Items {
		sum = sum.Add(it.Price)
	}
	return sum
}
