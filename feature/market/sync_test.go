package market

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/1ns0mn1a7/seller-apis/core/feed"
	"github.com/1ns0mn1a7/seller-apis/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeCampaign serves a fixed offer universe for one campaign and records
// pushed batches.
type fakeCampaign struct {
	offers       []string
	stockBatches [][]StockSku
	priceBatches [][]PriceOffer
}

func (f *fakeCampaign) handler(t *testing.T, campaignID string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/campaigns/" + campaignID + "/offer-mapping-entries":
			var result offerMappingsResult
			result.OfferMappingEntries = make([]offerMappingEntry, len(f.offers))
			for i, id := range f.offers {
				result.OfferMappingEntries[i].Offer.ShopSku = id
			}
			_ = json.NewEncoder(w).Encode(offerMappingsResponse{Result: result})
		case "/campaigns/" + campaignID + "/offers/stocks":
			var req struct {
				Skus []StockSku `json:"skus"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			f.stockBatches = append(f.stockBatches, req.Skus)
			_, _ = w.Write([]byte(`{"status":"OK"}`))
		case "/campaigns/" + campaignID + "/offer-prices/updates":
			var req struct {
				Offers []PriceOffer `json:"offers"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			f.priceBatches = append(f.priceBatches, req.Offers)
			_, _ = w.Write([]byte(`{"status":"OK"}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})
}

func TestSyncer_Run(t *testing.T) {
	campaign := &fakeCampaign{offers: []string{"ABC123", "GONE456"}}
	srv := httptest.NewServer(campaign.handler(t, "camp-1"))
	defer srv.Close()

	records := []feed.Record{
		{Code: "ABC123", Quantity: "5", Price: "5'990.00 руб."},
	}

	engine := reconcile.NewEngine(zap.NewNop())
	syncer := NewSyncer(testClient(srv.URL), engine,
		Campaign{Name: "fbs", ID: "camp-1", WarehouseID: "WH1"}, zap.NewNop())

	result, err := syncer.Run(context.Background(), records)
	require.NoError(t, err)

	assert.Len(t, result.Stocks, 2)
	assert.Len(t, result.NonZeroStocks, 1)
	assert.Len(t, result.Prices, 1)

	require.Len(t, campaign.stockBatches, 1)
	batch := campaign.stockBatches[0]
	require.Len(t, batch, 2)

	matched := batch[0]
	assert.Equal(t, "ABC123", matched.Sku)
	assert.Equal(t, "WH1", matched.WarehouseID)
	require.Len(t, matched.Items, 1)
	assert.Equal(t, 5, matched.Items[0].Count)
	assert.Equal(t, "FIT", matched.Items[0].Type)

	// updatedAt is shared by the pass and formatted as UTC RFC 3339.
	parsed, err := time.Parse(time.RFC3339, matched.Items[0].UpdatedAt)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, parsed.Location())
	assert.Equal(t, matched.Items[0].UpdatedAt, batch[1].Items[0].UpdatedAt)

	zeroed := batch[1]
	assert.Equal(t, "GONE456", zeroed.Sku)
	assert.Equal(t, 0, zeroed.Items[0].Count)

	require.Len(t, campaign.priceBatches, 1)
	offer := campaign.priceBatches[0][0]
	assert.Equal(t, "ABC123", offer.ID)
	assert.Equal(t, 5990, offer.Price.Value)
	assert.Equal(t, "RUR", offer.Price.CurrencyID)
}

func TestSyncer_RunNonNumericPriceAborts(t *testing.T) {
	campaign := &fakeCampaign{offers: []string{"ABC123"}}
	srv := httptest.NewServer(campaign.handler(t, "camp-1"))
	defer srv.Close()

	engine := reconcile.NewEngine(zap.NewNop())
	syncer := NewSyncer(testClient(srv.URL), engine,
		Campaign{Name: "fbs", ID: "camp-1", WarehouseID: "WH1"}, zap.NewNop())

	// A price with no digits normalizes to "" and cannot become an
	// integer price value.
	_, err := syncer.Run(context.Background(), []feed.Record{
		{Code: "ABC123", Quantity: "5", Price: "руб."},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "convert prices")

	// Stocks were already pushed when the price conversion failed:
	// partial application is accepted, not rolled back.
	assert.Len(t, campaign.stockBatches, 1)
	assert.Empty(t, campaign.priceBatches)
}
