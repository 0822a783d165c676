package ozon

import (
	"context"
	"fmt"

	"github.com/1ns0mn1a7/seller-apis/core/feed"
	"github.com/1ns0mn1a7/seller-apis/core/reconcile"

	"go.uber.org/zap"
)

const (
	// The stock import endpoint takes at most 100 items per call, the
	// price import endpoint at most 900.
	stockBatchSize = 100
	priceBatchSize = 900

	currencyCode = "RUB"
)

// Result summarizes one Ozon sync run. NonZeroStocks is the reporting
// subset; Stocks and Prices are what was transmitted.
type Result struct {
	NonZeroStocks []reconcile.StockUpdate
	Stocks        []reconcile.StockUpdate
	Prices        []reconcile.PriceUpdate
}

// Syncer drives one Ozon run: list offers, reconcile, push stock batches,
// push price batches. There are no retries and no rollback; a failed
// batch leaves the earlier ones applied.
type Syncer struct {
	client *Client
	engine *reconcile.Engine
	log    *zap.Logger
}

// NewSyncer creates a syncer over the given client and engine.
func NewSyncer(client *Client, engine *reconcile.Engine, log *zap.Logger) *Syncer {
	return &Syncer{client: client, engine: engine, log: log}
}

// Run executes the sync against the supplier records.
func (s *Syncer) Run(ctx context.Context, records []feed.Record) (*Result, error) {
	offerIDs, err := s.client.OfferIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	s.log.Info("offer universe fetched", zap.Int("offers", len(offerIDs)))

	stocks, err := s.engine.Stocks(records, offerIDs, "")
	if err != nil {
		return nil, fmt.Errorf("reconcile stocks: %w", err)
	}
	for batch := range reconcile.Chunks(stocks, stockBatchSize) {
		if err := s.client.UpdateStocks(ctx, stockItems(batch)); err != nil {
			return nil, fmt.Errorf("push stocks: %w", err)
		}
	}
	s.log.Info("stocks pushed", zap.Int("count", len(stocks)))

	prices := s.engine.Prices(records, offerIDs, currencyCode)
	for batch := range reconcile.Chunks(prices, priceBatchSize) {
		if err := s.client.UpdatePrices(ctx, priceItems(batch)); err != nil {
			return nil, fmt.Errorf("push prices: %w", err)
		}
	}
	s.log.Info("prices pushed", zap.Int("count", len(prices)))

	return &Result{
		NonZeroStocks: reconcile.NonZero(stocks),
		Stocks:        stocks,
		Prices:        prices,
	}, nil
}
