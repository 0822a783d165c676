package reconcile

import (
	"github.com/1ns0mn1a7/seller-apis/core/feed"

	"go.uber.org/zap"
)

// Prices builds the price-update list for one marketplace. Only feed rows
// whose SKU belongs to the offer universe produce an entry; offers absent
// from the feed keep their marketplace price.
//
// Unlike Stocks, the membership check does not consume the universe, so
// duplicate feed rows for one SKU each produce an entry. That asymmetry
// is inherited from the upstream system and preserved; duplicates are
// logged as a known quirk.
func (e *Engine) Prices(records []feed.Record, offerIDs []string, currency string) []PriceUpdate {
	known := make(map[string]struct{}, len(offerIDs))
	for _, id := range offerIDs {
		known[id] = struct{}{}
	}

	seen := make(map[string]bool, len(records))
	updates := make([]PriceUpdate, 0, len(records))
	for _, rec := range records {
		sku := rec.Code
		if _, ok := known[sku]; !ok {
			continue
		}
		if seen[sku] {
			e.log.Warn("duplicate feed row produced another price entry",
				zap.String("offer_id", sku))
		}
		seen[sku] = true
		updates = append(updates, PriceUpdate{
			OfferID:  sku,
			Price:    NormalizePrice(rec.Price),
			Currency: currency,
		})
	}
	return updates
}
