package reconcile

import (
	"testing"

	"github.com/1ns0mn1a7/seller-apis/core/feed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrices_MatchedRecord(t *testing.T) {
	e := testEngine()

	updates := e.Prices(
		[]feed.Record{{Code: "ABC123", Price: "5'990.00 руб."}},
		[]string{"ABC123"},
		"RUB",
	)
	require.Len(t, updates, 1)
	assert.Equal(t, PriceUpdate{OfferID: "ABC123", Price: "5990", Currency: "RUB"}, updates[0])
}

func TestPrices_EmptyFeed(t *testing.T) {
	e := testEngine()

	updates := e.Prices(nil, []string{"ABC123"}, "RUB")
	assert.Empty(t, updates)
}

func TestPrices_UnmatchedRecordSkipped(t *testing.T) {
	e := testEngine()

	updates := e.Prices(
		[]feed.Record{{Code: "UNKNOWN", Price: "100.00"}},
		[]string{"ABC123"},
		"RUB",
	)
	assert.Empty(t, updates)
}

// Price reconciliation does not consume the universe: duplicate feed rows
// each produce an entry, unlike stock reconciliation.
func TestPrices_DuplicateFeedRowsAllMatch(t *testing.T) {
	e := testEngine()
	records := []feed.Record{
		{Code: "ABC123", Price: "5'990.00 руб."},
		{Code: "ABC123", Price: "6'100.00 руб."},
	}

	updates := e.Prices(records, []string{"ABC123"}, "RUB")
	require.Len(t, updates, 2)
	assert.Equal(t, "5990", updates[0].Price)
	assert.Equal(t, "6100", updates[1].Price)
}

func TestPrices_FeedOrderPreserved(t *testing.T) {
	e := testEngine()
	records := []feed.Record{
		{Code: "B", Price: "2.00"},
		{Code: "A", Price: "1.00"},
		{Code: "C", Price: "3.00"},
	}

	updates := e.Prices(records, []string{"A", "B", "C"}, "RUB")
	require.Len(t, updates, 3)
	assert.Equal(t, "B", updates[0].OfferID)
	assert.Equal(t, "A", updates[1].OfferID)
	assert.Equal(t, "C", updates[2].OfferID)
}
