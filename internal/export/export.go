// Package export renders a month of transactions as tabular CSV for
// consumption outside the tracker.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/Markwang0203/Money-Notes-App/internal/model"
)

// Header is the export column order.
const Header = "date,type,category,amount_primary,amount_secondary,note,tax,superannuation,items"

// WriteMonth writes the given transactions as CSV rows ordered by date
// (insertion order within a day). Embedded separators in notes and item
// text are handled by CSV quoting.
func WriteMonth(w io.Writer, txns []model.Transaction) error {
	rows := make([]model.Transaction, len(txns))
	copy(rows, txns)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date < rows[j].Date
	})

	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, t := range rows {
		if err := cw.Write(marshalRow(t)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

func marshalRow(t model.Transaction) []string {
	tax, super := "", ""
	if !t.Tax.IsZero() {
		tax = t.Tax.StringFixed(2)
	}
	if !t.Super.IsZero() {
		super = t.Super.StringFixed(2)
	}

	return []string{
		t.Date,
		string(t.Kind),
		string(t.Category),
		t.AmountPrimary.StringFixed(2),
		t.AmountSecondary.StringFixed(2),
		t.Note,
		tax,
		super,
		itemsText(t.Items),
	}
}

// itemsText flattens receipt items into a readable single field, e.g.
// "Milk=4.00; Bread=3.00".
func itemsText(items []model.ReceiptItem) string {
	if len(items) == 0 {
		return ""
	}
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprintf("%s=%s", it.Name, it.Price.StringFixed(2))
	}
	return strings.Join(parts, "; ")
}
