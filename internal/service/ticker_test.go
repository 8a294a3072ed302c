package service

import (
	"context"
	"testing"
	"time"

	"tradesense/internal/model/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickerTickUpdatesStoreAndSnapshot(t *testing.T) {
	ctx := context.Background()
	sd := &fakeStockDao{stocks: []entity.Stock{
		{Symbol: "TCS", CurrentPrice: 1000, PreviousClose: 990},
		{Symbol: "INFY", CurrentPrice: 1500, PreviousClose: 1500},
	}}
	svc := NewTickerService(sd, time.Second)

	svc.tick(ctx)

	data, ok := svc.GetPrice("TCS")
	require.True(t, ok, "snapshot must exist after a tick")
	assert.Greater(t, data.CurrentPrice, 0.0)
	assert.NotZero(t, data.LastUpdated)

	stored, err := sd.StockGetBySymbol(ctx, "TCS")
	require.NoError(t, err)
	assert.Equal(t, data.CurrentPrice, stored.CurrentPrice, "snapshot and store must agree")
	// 涨跌相对昨收口径
	assert.InDelta(t, stored.CurrentPrice-990, stored.Change, 0.011)

	prices := svc.GetPrices([]string{"TCS", "INFY", "MISSING"})
	assert.Len(t, prices, 2)
}

func TestTickerCloseStopsLoop(t *testing.T) {
	sd := &fakeStockDao{}
	svc := NewTickerService(sd, 10*time.Millisecond)

	done := make(chan struct{})
	go func() {
		svc.RunScheduled(context.Background())
		close(done)
	}()
	svc.Close()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("RunScheduled did not stop after Close")
	}
}
