package market

import (
	"context"
	"fmt"

	"github.com/1ns0mn1a7/seller-apis/core/feed"
	"github.com/1ns0mn1a7/seller-apis/core/reconcile"

	"go.uber.org/zap"
)

const (
	// The stocks endpoint takes at most 2000 entries per call, the
	// price-update endpoint at most 500.
	stockBatchSize = 2000
	priceBatchSize = 500

	currencyID = "RUR"
)

// Result summarizes one campaign sync run. NonZeroStocks is the
// reporting subset; Stocks and Prices are what was transmitted.
type Result struct {
	NonZeroStocks []reconcile.StockUpdate
	Stocks        []reconcile.StockUpdate
	Prices        []reconcile.PriceUpdate
}

// Syncer drives one campaign run: list offers, reconcile against the
// campaign's warehouse, push stock batches, push price batches. No
// retries, no rollback of batches already pushed.
type Syncer struct {
	client   *Client
	engine   *reconcile.Engine
	campaign Campaign
	log      *zap.Logger
}

// NewSyncer creates a syncer bound to one campaign context.
func NewSyncer(client *Client, engine *reconcile.Engine, campaign Campaign, log *zap.Logger) *Syncer {
	return &Syncer{client: client, engine: engine, campaign: campaign, log: log}
}

// Run executes the sync against the supplier records.
func (s *Syncer) Run(ctx context.Context, records []feed.Record) (*Result, error) {
	offerIDs, err := s.client.OfferIDs(ctx, s.campaign.ID)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	s.log.Info("offer universe fetched", zap.Int("offers", len(offerIDs)))

	stocks, err := s.engine.Stocks(records, offerIDs, s.campaign.WarehouseID)
	if err != nil {
		return nil, fmt.Errorf("reconcile stocks: %w", err)
	}
	for batch := range reconcile.Chunks(stocks, stockBatchSize) {
		if err := s.client.UpdateStocks(ctx, s.campaign.ID, stockSkus(batch)); err != nil {
			return nil, fmt.Errorf("push stocks: %w", err)
		}
	}
	s.log.Info("stocks pushed", zap.Int("count", len(stocks)))

	prices := s.engine.Prices(records, offerIDs, currencyID)
	offers, err := priceOffers(prices)
	if err != nil {
		return nil, fmt.Errorf("convert prices: %w", err)
	}
	for batch := range reconcile.Chunks(offers, priceBatchSize) {
		if err := s.client.UpdatePrices(ctx, s.campaign.ID, batch); err != nil {
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
