package market

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/1ns0mn1a7/seller-apis/core/transport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(baseURL string) *Client {
	return NewClient(Config{
		BaseURL:        baseURL,
		Token:          "oauth-token",
		TimeoutSeconds: 5,
	})
}

func TestClient_OfferIDs_Pagination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/campaigns/camp-1/offer-mapping-entries", r.URL.Path)
		require.Equal(t, "Bearer oauth-token", r.Header.Get("Authorization"))
		require.Equal(t, "200", r.URL.Query().Get("limit"))

		var result offerMappingsResult
		switch r.URL.Query().Get("page_token") {
		case "":
			result.OfferMappingEntries = make([]offerMappingEntry, 2)
			result.OfferMappingEntries[0].Offer.ShopSku = "A"
			result.OfferMappingEntries[1].Offer.ShopSku = "B"
			result.Paging.NextPageToken = "next"
		case "next":
			result.OfferMappingEntries = make([]offerMappingEntry, 1)
			result.OfferMappingEntries[0].Offer.ShopSku = float64(777)
		default:
			t.Errorf("unexpected page token %q", r.URL.Query().Get("page_token"))
		}
		_ = json.NewEncoder(w).Encode(offerMappingsResponse{Result: result})
	}))
	defer srv.Close()

	ids, err := testClient(srv.URL).OfferIDs(context.Background(), "camp-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "777"}, ids)
}

func TestClient_UpdateStocks_Payload(t *testing.T) {
	var got struct {
		Skus []StockSku `json:"skus"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/campaigns/camp-1/offers/stocks", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"status":"OK"}`))
	}))
	defer srv.Close()

	skus := []StockSku{{
		Sku:         "ABC123",
		WarehouseID: "WH1",
		Items:       []StockItem{{Count: 5, Type: "FIT", UpdatedAt: "2024-03-01T12:00:00Z"}},
	}}
	require.NoError(t, testClient(srv.URL).UpdateStocks(context.Background(), "camp-1", skus))
	assert.Equal(t, skus, got.Skus)
}

func TestClient_UpdatePrices_Payload(t *testing.T) {
	var got struct {
		Offers []PriceOffer `json:"offers"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/campaigns/camp-1/offer-prices/updates", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"status":"OK"}`))
	}))
	defer srv.Close()

	offers := []PriceOffer{{ID: "ABC123", Price: PriceValue{Value: 5990, CurrencyID: "RUR"}}}
	require.NoError(t, testClient(srv.URL).UpdatePrices(context.Background(), "camp-1", offers))
	assert.Equal(t, offers, got.Offers)
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	err := testClient(srv.URL).UpdateStocks(context.Background(), "camp-1", nil)
	require.Error(t, err)

	var apiErr *transport.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
}
