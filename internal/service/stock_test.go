package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockInitSeedsOnce(t *testing.T) {
	ctx := context.Background()
	sd := &fakeStockDao{}
	svc := NewStockService(sd)

	first, err := svc.StockInit(ctx)
	require.NoError(t, err)
	assert.True(t, first.Seeded)
	assert.Equal(t, 8, first.Count)

	second, err := svc.StockInit(ctx)
	require.NoError(t, err)
	assert.False(t, second.Seeded, "second init must not reseed")
	assert.Equal(t, 8, second.Count)

	list, err := svc.StockGetList(ctx)
	require.NoError(t, err)
	assert.Len(t, list.Stocks, 8)
}

func TestStockGetBySymbolAfterSeed(t *testing.T) {
	ctx := context.Background()
	svc := NewStockService(&fakeStockDao{})
	_, err := svc.StockInit(ctx)
	require.NoError(t, err)

	stock, err := svc.StockGetBySymbol(ctx, "RELIANCE")
	require.NoError(t, err)
	assert.Equal(t, "Reliance Industries Ltd", stock.Name)
	assert.Greater(t, stock.CurrentPrice, 0.0)
}
