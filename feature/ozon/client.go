package ozon

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/1ns0mn1a7/seller-apis/core/transport"
)

// Client talks to the Ozon seller API. Authentication is header-based:
// Client-Id plus Api-Key on every request.
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

// UpdateStocks pushes one batch of stock items.
func (c *Client) UpdateStocks(ctx context.Context, items []StockItem) error {
	payload := struct {
		Stocks []StockItem `json:"stocks"`
	}{Stocks: items}
	return c.post(ctx, "/v1/product/import/stocks", payload, nil)
}

// UpdatePrices pushes one batch of price items.
func (c *Client) UpdatePrices(ctx context.Context, items []PriceItem) error {
	payload := struct {
		Prices []PriceItem `json:"prices"`
	}{Prices: items}
	return c.post(ctx, "/v1/product/import/prices", payload, nil)
}

// post sends a JSON body and decodes a JSON response into out when out is
// non-nil. Non-2xx responses come back as *transport.APIError.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%s: encode request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("%s: build request: %w", path, err)
	}
	req.Header.Set("Client-Id", c.cfg.ClientID)
	req.Header.Set("Api-Key", c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

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
