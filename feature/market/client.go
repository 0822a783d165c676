package market

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/1ns0mn1a7/seller-apis/core/transport"
)

// Client talks to the Yandex Market partner API on behalf of one shop.
// All campaign-scoped paths take the campaign identifier explicitly.
type Client struct {
	cfg   Config
	httpc *http.Client
}

// NewClient creates a client from the configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg:   cfg,
		httpc: transport.NewHTTPClient(cfg.TimeoutSeconds),
	}
}

// UpdateStocks pushes one batch of per-warehouse stock entries for the
// campaign.
func (c *Client) UpdateStocks(ctx context.Context, campaignID string, skus []StockSku) error {
	payload := struct {
		Skus []StockSku `json:"skus"`
	}{Skus: skus}
	path := fmt.Sprintf("/campaigns/%s/offers/stocks", campaignID)
	return c.do(ctx, http.MethodPut, path, nil, payload, nil)
}

// UpdatePrices pushes one batch of offer prices for the campaign.
func (c *Client) UpdatePrices(ctx context.Context, campaignID string, offers []PriceOffer) error {
	payload := struct {
		Offers []PriceOffer `json:"offers"`
	}{Offers: offers}
	path := fmt.Sprintf("/campaigns/%s/offer-prices/updates", campaignID)
	return c.do(ctx, http.MethodPost, path, nil, payload, nil)
}

// do sends a request with bearer auth. query is appended when non-nil,
// body is JSON-encoded when non-nil, the response is decoded into out
// when out is non-nil. Non-2xx responses come back as
// *transport.APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	target := c.cfg.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", path, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return &transport.APIError{
			Status: resp.StatusCode,
			Path:   path,
			Body:   strings.TrimSpace(string(snippet)),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s: decode response: %w", path, err)
		}
	}
	return nil
}
