// Package market pushes reconciled stocks and prices to the Yandex
// Market partner API, per campaign (FBS and DBS). Offers are listed
// through offer-mapping-entries (page-token pagination); stocks go to
// the per-campaign stocks endpoint in batches of 2000, prices to
// offer-prices/updates in batches of 500.
package market
