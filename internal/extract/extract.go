// Package extract defines the boundary to the document extraction
// collaborator: an external, best-effort classifier that turns an
// uploaded receipt or payslip into structured fields. On failure the
// caller gets an error and falls back to manual entry; no aggregation
// happens on a failed extraction.
package extract

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Markwang0203/Money-Notes-App/internal/model"
)

// Result is the structured output of a successful extraction. Item
// names are expected pre-normalized to generic labels; prices are
// already-extended line totals.
type Result struct {
	Amount   decimal.Decimal
	Date     string // fixed-width YYYY-MM-DD
	Merchant string
	Category string
	Items    []model.ReceiptItem

	// Payslip-only fields, zero for receipts.
	Tax   decimal.Decimal
	Super decimal.Decimal
}

// Extractor extracts structured fields from a document.
type Extractor interface {
	Extract(ctx context.Context, document []byte, kind model.Kind) (Result, error)
}

// FromResult builds a transaction from an extraction result, applying
// the exchange rate in effect now. The merchant becomes the note, which
// downstream price tracking reads as the source.
func FromResult(txnID string, kind model.Kind, res Result, rate decimal.Decimal) model.Transaction {
	if kind == model.KindIncome {
		return model.NewIncome(txnID, res.Amount, model.Category(res.Category), res.Date, res.Merchant, res.Items, res.Tax, res.Super, rate)
	}
	return model.NewExpense(txnID, res.Amount, model.Category(res.Category), res.Date, res.Merchant, res.Items, rate)
}
