// Package ozon pushes reconciled stocks and prices to the Ozon seller
// API. Offers are listed through /v2/product/list (last_id pagination),
// stocks and prices go through the /v1/product/import endpoints in
// batches of 100 and 900 respectively.
package ozon
