package market

import (
	"fmt"
	"strconv"
	"time"

	"github.com/1ns0mn1a7/seller-apis/core/reconcile"
)

// StockSku is one per-warehouse stock entry of the stocks payload.
type StockSku struct {
	Sku         string      `json:"sku"`
	WarehouseID string      `json:"warehouseId"`
	Items       []StockItem `json:"items"`
}

// StockItem carries the count for one stock type. The integration books
// everything as type FIT.
type StockItem struct {
	Count     int    `json:"count"`
	Type      string `json:"type"`
	UpdatedAt string `json:"updatedAt"`
}

// PriceOffer is one entry of the price-update payload.
type PriceOffer struct {
	ID    string     `json:"id"`
	Price PriceValue `json:"price"`
}

// PriceValue is the integer price in the campaign currency.
type PriceValue struct {
	Value      int    `json:"value"`
	CurrencyID string `json:"currencyId"`
}

func stockSkus(updates []reconcile.StockUpdate) []StockSku {
	skus := make([]StockSku, 0, len(updates))
	for _, u := range updates {
		skus = append(skus, StockSku{
			Sku:         u.OfferID,
			WarehouseID: u.WarehouseID,
			Items: []StockItem{{
				Count:     u.Quantity,
				Type:      "FIT",
				UpdatedAt: u.UpdatedAt.UTC().Format(time.RFC3339),
			}},
		})
	}
	return skus
}

// priceOffers converts reconciled prices to the wire shape. The API wants
// an integer value, so a feed price that normalized to something
// non-numeric (e.g. empty) fails the conversion.
func priceOffers(updates []reconcile.PriceUpdate) ([]PriceOffer, error) {
	offers := make([]PriceOffer, 0, len(updates))
	for _, u := range updates {
		value, err := strconv.Atoi(u.Price)
		if err != nil {
			return nil, fmt.Errorf("offer %s: price %q is not a number", u.OfferID, u.Price)
		}
		offers = append(offers, PriceOffer{
			ID: u.OfferID,
			Price: PriceValue{
				Value:      value,
				CurrencyID: u.Currency,
			},
		})
	}
	return offers, nil
}
