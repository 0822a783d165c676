package cmd

import (
	"context"
	"fmt"

	"github.com/1ns0mn1a7/seller-apis/core/config"
	"github.com/1ns0mn1a7/seller-apis/core/feed"
	"github.com/1ns0mn1a7/seller-apis/core/logger"
	"github.com/1ns0mn1a7/seller-apis/core/reconcile"
	"github.com/1ns0mn1a7/seller-apis/core/storage"
	"github.com/1ns0mn1a7/seller-apis/feature/market"
	"github.com/1ns0mn1a7/seller-apis/feature/ozon"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// syncCmd is the parent command for all sync operations.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize marketplace stocks and prices from the supplier feed",
	Long: `Sync downloads the supplier stock sheet, reconciles it against the
marketplace offer universe, and pushes batched stock and price updates.

Each marketplace is processed independently: offers are listed first,
stocks are pushed, then prices. Updates already pushed are not rolled
back if a later batch fails.`,
}

var syncOzonCmd = &cobra.Command{
	Use:   "ozon",
	Short: "Sync stocks and prices to Ozon",
	RunE:  runSyncOzon,
}

var syncMarketCmd = &cobra.Command{
	Use:   "market",
	Short: "Sync stocks and prices to Yandex Market (FBS and DBS campaigns)",
	RunE:  runSyncMarket,
}

var syncAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Sync every marketplace; a failed marketplace does not stop the rest",
	RunE:  runSyncAll,
}

func init() {
	syncCmd.AddCommand(syncOzonCmd)
	syncCmd.AddCommand(syncMarketCmd)
	syncCmd.AddCommand(syncAllCmd)
	RootCmd.AddCommand(syncCmd)
}

// app bundles the pieces every sync subcommand needs.
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	engine *reconcile.Engine
}

func newApp() (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithRunID(l)

	return &app{
		cfg:    cfg,
		log:    l,
		engine: reconcile.NewEngine(l),
	}, nil
}

// loadFeed downloads and parses the supplier sheet, archiving the raw
// ZIP to object storage when archiving is configured. Archiving is an
// audit add-on: its failure is reported but never fails the run.
func (a *app) loadFeed(ctx context.Context) ([]feed.Record, error) {
	loader := feed.NewLoader(a.cfg.Feed, a.log)

	raw, err := loader.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to download supplier feed: %w", err)
	}

	records, err := loader.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse supplier feed: %w", err)
	}
	a.log.Info("supplier feed loaded", zap.Int("records", len(records)))

	if a.cfg.Archive.Enabled {
		client, err := storage.NewClient(a.cfg.Archive)
		if err != nil {
			a.log.Warn("feed archive storage unavailable", zap.Error(err))
			return records, nil
		}
		archiver := feed.NewArchiver(client, a.cfg.Archive.Bucket, a.log)
		if object, err := archiver.Store(ctx, raw); err != nil {
			a.log.Warn("feed archive failed", zap.Error(err))
		} else {
			a.log.Info("feed archived", zap.String("object", object))
		}
	}

	return records, nil
}

func (a *app) syncOzon(ctx context.Context, records []feed.Record) error {
	if err := a.cfg.ValidateOzon(); err != nil {
		return err
	}

	log := a.log.With(zap.String("marketplace", "ozon"))
	client := ozon.NewClient(a.cfg.Ozon)
	syncer := ozon.NewSyncer(client, a.engine, log)

	result, err := syncer.Run(ctx, records)
	if err != nil {
		return fmt.Errorf("ozon sync: %w", err)
	}

	log.Info("sync complete",
		zap.Int("stocks", len(result.Stocks)),
		zap.Int("in_stock", len(result.NonZeroStocks)),
		zap.Int("prices", len(result.Prices)),
	)
	return nil
}

func (a *app) syncMarket(ctx context.Context, records []feed.Record) error {
	if err := a.cfg.ValidateMarket(); err != nil {
		return err
	}

	client := market.NewClient(a.cfg.Market)
	for _, campaign := range a.cfg.Market.Campaigns() {
		log := a.log.With(
			zap.String("marketplace", "market"),
			zap.String("campaign", campaign.Name),
		)
		syncer := market.NewSyncer(client, a.engine, campaign, log)

		result, err := syncer.Run(ctx, records)
		if err != nil {
			return fmt.Errorf("market %s sync: %w", campaign.Name, err)
		}

		log.Info("sync complete",
			zap.Int("stocks", len(result.Stocks)),
			zap.Int("in_stock", len(result.NonZeroStocks)),
			zap.Int("prices", len(result.Prices)),
		)
	}
	return nil
}

func runSyncOzon(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.log.Sync() }()

	ctx := cmd.Context()
	records, err := a.loadFeed(ctx)
	if err != nil {
		return err
	}
	return a.syncOzon(ctx, records)
}

func runSyncMarket(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.log.Sync() }()

	ctx := cmd.Context()
	records, err := a.loadFeed(ctx)
	if err != nil {
		return err
	}
	return a.syncMarket(ctx, records)
}

// runSyncAll processes every marketplace from one feed download. A
// marketplace failure is reported and the remaining marketplaces still
// run; the command itself exits normally either way.
func runSyncAll(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.log.Sync() }()

	ctx := cmd.Context()
	records, err := a.loadFeed(ctx)
	if err != nil {
		return err
	}

	if err := a.syncOzon(ctx, records); err != nil {
		a.log.Error("ozon sync failed", zap.Error(err))
	}
	if err := a.syncMarket(ctx, records); err != nil {
		a.log.Error("market sync failed", zap.Error(err))
	}
	return nil
}
