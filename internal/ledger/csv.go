package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Markwang0203/Money-Notes-App/internal/model"
)

// Header is the CSV header for transactions.csv.
const Header = "id,kind,amount_primary,amount_secondary,category,date,note,items,tax,super"

const (
	numFields    = 10
	colID        = 0
	colKind      = 1
	colPrimary   = 2
	colSecondary = 3
	colCategory  = 4
	colDate      = 5
	colNote      = 6
	colItems     = 7
	colTax       = 8
	colSuper     = 9
)

// ReadTransactions reads all transactions from a transactions.csv reader.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var txns []model.Transaction
	for i, rec := range records[1:] {
		t, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, t)
	}
	return txns, nil
}

// WriteTransactions writes transactions to a writer (including header).
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, t := range txns {
		if err := cw.Write(MarshalTransaction(t)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendTransactions appends transactions to an existing writer (no header).
func AppendTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, t := range txns {
		if err := cw.Write(MarshalTransaction(t)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row ([]string).
func MarshalTransaction(t model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = t.ID
	row[colKind] = string(t.Kind)
	row[colPrimary] = t.AmountPrimary.StringFixed(2)
	row[colSecondary] = t.AmountSecondary.StringFixed(2)
	row[colCategory] = string(t.Category)
	row[colDate] = t.Date
	row[colNote] = t.Note
	row[colItems] = EncodeItems(t.Items)

	if !t.Tax.IsZero() {
		row[colTax] = t.Tax.StringFixed(2)
	}
	if !t.Super.IsZero() {
		row[colSuper] = t.Super.StringFixed(2)
	}

	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	primary, err := decimal.NewFromString(record[colPrimary])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount_primary %q: %w", record[colPrimary], err)
	}

	secondary, err := decimal.NewFromString(record[colSecondary])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount_secondary %q: %w", record[colSecondary], err)
	}

	items, err := DecodeItems(record[colItems])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing items %q: %w", record[colItems], err)
	}

	var tax, super decimal.Decimal

	if record[colTax] != "" {
		tax, err = decimal.NewFromString(record[colTax])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing tax %q: %w", record[colTax], err)
		}
	}

	if record[colSuper] != "" {
		super, err = decimal.NewFromString(record[colSuper])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing super %q: %w", record[colSuper], err)
		}
	}

	// Rows written before kinds were recorded have an empty kind column;
	// those are expenses.
	kind := model.Kind(record[colKind])
	if kind == "" {
		kind = model.KindExpense
	}

	return model.Transaction{
		ID:              record[colID],
		Kind:            kind,
		AmountPrimary:   primary,
		AmountSecondary: secondary,
		Category:        model.Category(record[colCategory]),
		Date:            record[colDate],
		Note:            record[colNote],
		Items:           items,
		Tax:             tax,
		Super:           super,
	}, nil
}

// EncodeItems packs receipt items into a single CSV field as
// "name=price[@qty]" entries joined by ";". Backslash escapes the
// separators inside names.
func EncodeItems(items []model.ReceiptItem) string {
	if len(items) == 0 {
		return ""
	}
	parts := make([]string, len(items))
	for i, it := range items {
		entry := escapeItemName(it.Name) + "=" + it.Price.String()
		if it.Quantity > 1 {
			entry += "@" + strconv.Itoa(it.Quantity)
		}
		parts[i] = entry
	}
	return strings.Join(parts, ";")
}

// DecodeItems is the inverse of EncodeItems.
func DecodeItems(s string) ([]model.ReceiptItem, error) {
	if s == "" {
		return nil, nil
	}

	var items []model.ReceiptItem
	for _, entry := range splitUnescaped(s, ';') {
		fields := splitUnescaped(entry, '=')
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed item entry %q", entry)
		}

		name := unescapeItemName(fields[0])
		priceStr := fields[1]
		qty := 0

		if at := strings.LastIndexByte(priceStr, '@'); at >= 0 {
			q, err := strconv.Atoi(priceStr[at+1:])
			if err != nil {
				return nil, fmt.Errorf("malformed item quantity in %q: %w", entry, err)
			}
			qty = q
			priceStr = priceStr[:at]
		}

		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			return nil, fmt.Errorf("malformed item price in %q: %w", entry, err)
		}

		items = append(items, model.ReceiptItem{Name: name, Price: price, Quantity: qty})
	}
	return items, nil
}

func escapeItemName(name string) string {
	r := strings.NewReplacer(`\`, `\\`, `;`, `\;`, `=`, `\=`, `@`, `\@`)
	return r.Replace(name)
}

func unescapeItemName(name string) string {
	var b strings.Builder
	escaped := false
	for i := 0; i < len(name); i++ {
		if escaped {
			b.WriteByte(name[i])
			escaped = false
			continue
		}
		if name[i] == '\\' {
			escaped = true
			continue
		}
		b.WriteByte(name[i])
	}
	return b.String()
}

// splitUnescaped splits on sep, honoring backslash escapes.
func splitUnescaped(s string, sep byte) []string {
	var parts []string
	var b strings.Builder
	escaped := false
	for i := 0; i < len(s); i++ {
		if escaped {
			b.WriteByte('\\')
			b.WriteByte(s[i])
			escaped = false
			continue
		}
		if s[i] == '\\' {
			escaped = true
			continue
		}
		if s[i] == sep {
			parts = append(parts, b.String())
			b.Reset()
			continue
		}
		b.WriteByte(s[i])
	}
	if escaped {
		b.WriteByte('\\')
	}
	parts = append(parts, b.String())
	return parts
}
