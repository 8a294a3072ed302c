package service

import (
	"context"
	"testing"

	"tradesense/internal/model/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchlistAddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	wd := &fakeWatchlistDao{}
	sd := &fakeStockDao{stocks: []entity.Stock{{Symbol: "TCS", CurrentPrice: 100}}}
	svc := NewWatchlistService(wd, sd)

	first, err := svc.WatchlistAdd(ctx, 1, "TCS")
	require.NoError(t, err)
	second, err := svc.WatchlistAdd(ctx, 1, "TCS")
	require.NoError(t, err)

	assert.Equal(t, first.Id, second.Id, "re-adding must return the existing row")

	list, err := svc.WatchlistGetList(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list.Stocks, 1)
}

func TestWatchlistRemoveMissingIsNoop(t *testing.T) {
	svc := NewWatchlistService(&fakeWatchlistDao{}, &fakeStockDao{})
	res, err := svc.WatchlistRemove(context.Background(), 1, "TCS")
	require.NoError(t, err)
	assert.False(t, res.Removed)
}

func TestWatchlistListSkipsUnknownSymbols(t *testing.T) {
	ctx := context.Background()
	wd := &fakeWatchlistDao{}
	sd := &fakeStockDao{stocks: []entity.Stock{{Symbol: "INFY", CurrentPrice: 100}}}
	svc := NewWatchlistService(wd, sd)

	_, err := svc.WatchlistAdd(ctx, 1, "INFY")
	require.NoError(t, err)
	_, err = svc.WatchlistAdd(ctx, 1, "GONE")
	require.NoError(t, err)

	list, err := svc.WatchlistGetList(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list.Stocks, 1)
	assert.Equal(t, "INFY", list.Stocks[0].Symbol)
}
