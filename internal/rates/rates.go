// Package rates holds the exchange rate used when constructing
// transactions. Rate retrieval is an external, best-effort concern; the
// engine never sees this package.
package rates

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// Fetcher retrieves the current exchange rate from an external source.
type Fetcher interface {
	Fetch(ctx context.Context) (decimal.Decimal, error)
}

// Holder keeps the rate applied to newly created transactions. A failed
// refresh leaves the previously held rate in place; existing
// transactions are never touched either way, since conversion happens
// once at creation.
type Holder struct {
	mu   sync.RWMutex
	rate decimal.Decimal
}

// NewHolder creates a Holder seeded with an initial rate.
func NewHolder(initial decimal.Decimal) *Holder {
	return &Holder{rate: initial}
}

// Rate returns the currently held rate.
func (h *Holder) Rate() decimal.Decimal {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.rate
}

// Refresh fetches a new rate. On failure the held rate is retained and
// the error is reported to the caller; nothing is recomputed.
func (h *Holder) Refresh(ctx context.Context, f Fetcher) error {
	rate, err := f.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetching rate: %w", err)
	}

	h.mu.Lock()
	h.rate = rate
	h.mu.Unlock()
	return nil
}
