// Package reconcile turns the supplier feed into marketplace update lists.
//
// Given the parsed supplier records and the offer-identifier universe a
// marketplace reported for the current campaign, the engine produces:
//
//   - a stock-update list covering the whole universe: offers backed by a
//     supplier row get their normalized count, everything else is zeroed;
//   - a price-update list covering only offers present in the feed
//     (prices are never zeroed for items the supplier dropped).
//
// # Normalization
//
// Supplier quantity tokens are free text with two sentinel values
// inherited from the feed format: ">10" means a capped count of 100 and
// "1" means sold out (see NormalizeQuantity). Price strings arrive
// locale-formatted ("5'990.00 руб.") and are reduced to the digits of
// the whole-ruble part (see NormalizePrice).
//
// # Matching semantics
//
// Stock reconciliation consumes each universe member at most once: the
// first feed row for a SKU wins and later duplicates are dropped. Price
// reconciliation does not consume the universe, so duplicate feed rows
// produce duplicate price entries. The asymmetry is inherited from the
// upstream system and kept on purpose; the engine logs duplicate price
// entries instead of collapsing them.
//
// Both operations are pure apart from timestamp generation and never
// touch the network, so they are unit-testable in isolation.
package reconcile
