package ozon

import "github.com/1ns0mn1a7/seller-apis/core/reconcile"

// StockItem is one element of the stock import payload.
type StockItem struct {
	OfferID string `json:"offer_id"`
	Stock   int    `json:"stock"`
}

// PriceItem is one element of the price import payload. OldPrice and
// AutoActionEnabled are fixed: the integration neither shows crossed-out
// prices nor opts into automatic promotions.
type PriceItem struct {
	AutoActionEnabled string `json:"auto_action_enabled"`
	CurrencyCode      string `json:"currency_code"`
	OfferID           string `json:"offer_id"`
	OldPrice          string `json:"old_price"`
	Price             string `json:"price"`
}

func stockItems(updates []reconcile.StockUpdate) []StockItem {
	items := make([]StockItem, 0, len(updates))
	for _, u := range updates {
		items = append(items, StockItem{
			OfferID: u.OfferID,
			Stock:   u.Quantity,
		})
	}
	return items
}

func priceItems(updates []reconcile.PriceUpdate) []PriceItem {
	items := make([]PriceItem, 0, len(updates))
	for _, u := range updates {
		items = append(items, PriceItem{
			AutoActionEnabled: "UNKNOWN",
			CurrencyCode:      u.Currency,
			OfferID:           u.OfferID,
			OldPrice:          "0",
			Price:             u.Price,
		})
	}
	return items
}
