package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Markwang0203/Money-Notes-App/internal/model"
)

// priceRecord is one observation of an item's price.
type priceRecord struct {
	price  decimal.Decimal
	source string // the transaction note, informally the merchant
	date   string
}

// ItemStats is the per-item price history summary.
type ItemStats struct {
	Name         string
	Min          decimal.Decimal
	Max          decimal.Decimal
	Avg          decimal.Decimal
	Last         decimal.Decimal
	BestSource   string // source of the cheapest observation
	Observations int
}

// PriceWatch summarizes every receipt item's price history across the
// whole log, keyed by item name (names are expected pre-normalized to
// generic labels). Output is ranked by descending observation count —
// most frequently bought first — with ties broken by name. Items with
// no recorded prices never appear, so every emitted entry has at least
// one observation.
func PriceWatch(txns []model.Transaction) []ItemStats {
	records := make(map[string][]priceRecord)
	var order []string
	for _, t := range txns {
		for _, it := range t.Items {
			if _, seen := records[it.Name]; !seen {
				order = append(order, it.Name)
			}
			records[it.Name] = append(records[it.Name], priceRecord{
				price:  it.Price,
				source: t.Note,
				date:   t.Date,
			})
		}
	}

	out := make([]ItemStats, 0, len(order))
	for _, name := range order {
		out = append(out, summarize(name, records[name]))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Observations != out[j].Observations {
			return out[i].Observations > out[j].Observations
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func summarize(name string, recs []priceRecord) ItemStats {
	st := ItemStats{
		Name:         name,
		Min:          recs[0].price,
		Max:          recs[0].price,
		Last:         recs[0].price,
		BestSource:   recs[0].source,
		Observations: len(recs),
	}

	sum := decimal.Zero
	bestDate := recs[0].date
	lastDate := recs[0].date
	for _, r := range recs {
		sum = sum.Add(r.price)

		// Latest record wins; on equal dates the later observation in
		// the log takes precedence.
		if r.date >= lastDate {
			lastDate = r.date
			st.Last = r.price
		}

		if r.price.GreaterThan(st.Max) {
			st.Max = r.price
		}

		// Cheapest observation drives the best source; among equal
		// minimums, prefer the most recently dated one.
		switch c := r.price.Cmp(st.Min); {
		case c < 0:
			st.Min = r.price
			st.BestSource = r.source
			bestDate = r.date
		case c == 0 && r.date >= bestDate:
			st.BestSource = r.source
			bestDate = r.date
		}
	}

	st.Avg = sum.Div(decimal.NewFromInt(int64(len(recs))))
	return st
}
