// Package config provides configuration management for the synchronizer.
//
// It utilizes Viper for loading configuration from environment variables,
// with an optional .env file for local runs.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided
// into subsections:
//   - Log: logging level and format
//   - Feed: supplier feed location and sheet layout
//   - Archive: S3/MinIO credentials for raw feed archiving (optional)
//   - Ozon: Ozon seller API credentials
//   - Market: Yandex Market token and FBS/DBS campaign contexts
//
// Environment variables map to nested keys with underscores, e.g.
// OZON_API_KEY -> ozon.api_key, MARKET_FBS_CAMPAIGN_ID ->
// market.fbs_campaign_id.
//
// Credentials are only validated for the marketplace a command actually
// syncs, so an Ozon-only run does not require Market settings.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Feed.URL)
package config
