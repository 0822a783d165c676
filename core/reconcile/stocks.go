package reconcile

import (
	"fmt"
	"time"

	"github.com/1ns0mn1a7/seller-apis/core/feed"

	"go.uber.org/zap"
)

// Stocks builds the full stock-update list for one marketplace campaign.
//
// Feed rows whose SKU belongs to the offer universe produce an update
// with the normalized count, first row wins per SKU. Universe members
// without a feed row are appended with quantity zero, in universe order,
// so the result covers the universe exactly once per offer. offerIDs is
// treated as a set and never mutated.
//
// A malformed quantity token aborts the pass with an InvalidQuantityError
// in the chain.
func (e *Engine) Stocks(records []feed.Record, offerIDs []string, warehouseID string) ([]StockUpdate, error) {
	updatedAt := e.now().UTC().Truncate(time.Second)

	// Visited-marker set over the universe: true means still unmatched.
	pending := make(map[string]bool, len(offerIDs))
	for _, id := range offerIDs {
		pending[id] = true
	}

	matched := 0
	updates := make([]StockUpdate, 0, len(offerIDs))
	for _, rec := range records {
		sku := rec.Code
		if !pending[sku] {
			continue
		}
		count, err := NormalizeQuantity(rec.Quantity)
		if err != nil {
			return nil, fmt.Errorf("offer %s: %w", sku, err)
		}
		updates = append(updates, StockUpdate{
			OfferID:     sku,
			WarehouseID: warehouseID,
			Quantity:    count,
			UpdatedAt:   updatedAt,
		})
		pending[sku] = false
		matched++
	}

	// Marketplace offers the supplier no longer carries go to zero.
	for _, id := range offerIDs {
		if pending[id] {
			updates = append(updates, StockUpdate{
				OfferID:     id,
				WarehouseID: warehouseID,
				Quantity:    0,
				UpdatedAt:   updatedAt,
			})
		}
	}

	e.log.Debug("stocks reconciled",
		zap.Int("offers", len(offerIDs)),
		zap.Int("matched", matched),
	)
	return updates, nil
}

// NonZero returns the subset of updates with a positive quantity, for
// run reporting. The full list is what gets transmitted.
func NonZero(updates []StockUpdate) []StockUpdate {
	nonZero := make([]StockUpdate, 0, len(updates))
	for _, u := range updates {
		if u.Quantity != 0 {
			nonZero = append(nonZero, u)
		}
	}
	return nonZero
}
