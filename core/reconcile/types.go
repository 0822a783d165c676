package reconcile

import (
	"time"

	"go.uber.org/zap"
)

// StockUpdate is one reconciled stock entry, marketplace-neutral. The
// feature packages map it onto their wire shapes.
type StockUpdate struct {
	// OfferID is the marketplace offer identifier (SKU).
	OfferID string
	// WarehouseID is the marketplace warehouse context, where the
	// marketplace has one; empty otherwise.
	WarehouseID string
	// Quantity is the normalized stock count.
	Quantity int
	// UpdatedAt is the observation timestamp, shared by every entry of
	// one reconciliation pass.
	UpdatedAt time.Time
}

// PriceUpdate is one reconciled price entry.
type PriceUpdate struct {
	// OfferID is the marketplace offer identifier (SKU).
	OfferID string
	// Price is the whole-currency price as a digit string, as produced
	// by NormalizePrice. May be empty when the feed price had no digits.
	Price string
	// Currency is the marketplace currency code.
	Currency string
}

// Engine reconciles supplier records against a marketplace offer
// universe. It owns no state between calls; the clock is injectable so
// tests can pin timestamps.
type Engine struct {
	log *zap.Logger
	now func() time.Time
}

// NewEngine creates an engine logging through l.
func NewEngine(l *zap.Logger) *Engine {
	return &Engine{
		log: l,
		now: time.Now,
	}
}
