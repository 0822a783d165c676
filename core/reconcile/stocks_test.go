package reconcile

import (
	"errors"
	"testing"
	"time"

	"github.com/1ns0mn1a7/seller-apis/core/feed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testEngine() *Engine {
	e := NewEngine(zap.NewNop())
	e.now = func() time.Time {
		return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	}
	return e
}

func TestStocks_MatchedRecord(t *testing.T) {
	e := testEngine()

	updates, err := e.Stocks(
		[]feed.Record{{Code: "ABC123", Quantity: "5"}},
		[]string{"ABC123"},
		"WH1",
	)
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, "ABC123", updates[0].OfferID)
	assert.Equal(t, "WH1", updates[0].WarehouseID)
	assert.Equal(t, 5, updates[0].Quantity)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), updates[0].UpdatedAt)
}

func TestStocks_EmptyFeedZeroFills(t *testing.T) {
	e := testEngine()

	updates, err := e.Stocks(nil, []string{"ABC123"}, "WH1")
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, "ABC123", updates[0].OfferID)
	assert.Equal(t, 0, updates[0].Quantity)
}

func TestStocks_CoversUniverseExactlyOnce(t *testing.T) {
	e := testEngine()
	universe := []string{"A", "B", "C", "D"}
	records := []feed.Record{
		{Code: "C", Quantity: ">10"},
		{Code: "A", Quantity: "1"},
		{Code: "X", Quantity: "nonsense"}, // outside the universe, never parsed
	}

	updates, err := e.Stocks(records, universe, "WH1")
	require.NoError(t, err)
	require.Len(t, updates, len(universe))

	got := map[string]int{}
	for _, u := range updates {
		_, dup := got[u.OfferID]
		require.False(t, dup, "duplicate entry for %s", u.OfferID)
		got[u.OfferID] = u.Quantity
	}
	assert.Equal(t, map[string]int{"A": 0, "B": 0, "C": 100, "D": 0}, got)

	// Matched offers first in feed order, then unmatched in universe order.
	order := make([]string, 0, len(updates))
	for _, u := range updates {
		order = append(order, u.OfferID)
	}
	assert.Equal(t, []string{"C", "A", "B", "D"}, order)
}

func TestStocks_DuplicateFeedRowsMatchOnce(t *testing.T) {
	e := testEngine()
	records := []feed.Record{
		{Code: "ABC123", Quantity: "5"},
		{Code: "ABC123", Quantity: "9"},
	}

	updates, err := e.Stocks(records, []string{"ABC123"}, "WH1")
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, 5, updates[0].Quantity, "first feed row wins")
}

func TestStocks_InvalidQuantityAbortsPass(t *testing.T) {
	e := testEngine()
	records := []feed.Record{
		{Code: "A", Quantity: "5"},
		{Code: "B", Quantity: "many"},
	}

	updates, err := e.Stocks(records, []string{"A", "B"}, "WH1")
	require.Error(t, err)
	assert.Nil(t, updates)

	var invalid *InvalidQuantityError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "many", invalid.Token)
}

func TestStocks_Idempotent(t *testing.T) {
	e := testEngine()
	records := []feed.Record{
		{Code: "A", Quantity: "3"},
		{Code: "B", Quantity: ">10"},
	}
	universe := []string{"A", "B", "C"}

	first, err := e.Stocks(records, universe, "WH1")
	require.NoError(t, err)
	second, err := e.Stocks(records, universe, "WH1")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// The input universe is never mutated.
	assert.Equal(t, []string{"A", "B", "C"}, universe)
}

func TestNonZero(t *testing.T) {
	updates := []StockUpdate{
		{OfferID: "A", Quantity: 5},
		{OfferID: "B", Quantity: 0},
		{OfferID: "C", Quantity: 100},
	}

	nonZero := NonZero(updates)
	require.Len(t, nonZero, 2)
	assert.Equal(t, "A", nonZero[0].OfferID)
	assert.Equal(t, "C", nonZero[1].OfferID)
}
