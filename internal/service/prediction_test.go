package service

import (
	"context"
	"testing"

	"tradesense/internal/model"
	"tradesense/internal/model/entity"
	"tradesense/internal/oracle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictionGenerateStoresRecord(t *testing.T) {
	ctx := context.Background()
	sd := &fakeStockDao{stocks: []entity.Stock{{
		Symbol: "TCS", Name: "Tata Consultancy Services", CurrentPrice: 3500,
		PreviousClose: 3450, Sector: "IT", MarketCap: 1200000,
	}}}
	pd := &fakePredictionDao{}
	o := &fakeOracle{prediction: oracle.Prediction{PredictedPrice: 3600, Confidence: 70, Reasoning: "steady demand"}}
	svc := NewPredictionService(sd, pd, o)

	res, err := svc.PredictionGenerate(ctx, model.PredictionGenerateReq{StockSymbol: "TCS", Timeframe: "1w"})
	require.NoError(t, err)
	assert.Equal(t, 3600.0, res.PredictedPrice)
	assert.Equal(t, "Tata Consultancy Services", o.lastFacts.Name)

	require.Len(t, pd.predictions, 1)
	saved := pd.predictions[0]
	assert.Equal(t, "TCS", saved.StockSymbol)
	assert.Equal(t, 3500.0, saved.CurrentPrice, "snapshot price at prediction time is stored")
	assert.Equal(t, "1w", saved.Timeframe)
}

func TestPredictionGenerateOracleFailureStoresNothing(t *testing.T) {
	sd := &fakeStockDao{stocks: []entity.Stock{{Symbol: "TCS", CurrentPrice: 100}}}
	pd := &fakePredictionDao{}
	o := &fakeOracle{err: oracle.ErrUnparseable}
	svc := NewPredictionService(sd, pd, o)

	_, err := svc.PredictionGenerate(context.Background(), model.PredictionGenerateReq{StockSymbol: "TCS", Timeframe: "1d"})
	require.ErrorIs(t, err, oracle.ErrUnparseable)
	assert.Empty(t, pd.predictions, "no partial prediction may be stored")
}

func TestPredictionGenerateUnknownStock(t *testing.T) {
	svc := NewPredictionService(&fakeStockDao{}, &fakePredictionDao{}, &fakeOracle{})
	_, err := svc.PredictionGenerate(context.Background(), model.PredictionGenerateReq{StockSymbol: "NOPE", Timeframe: "1d"})
	require.Error(t, err)
}

func TestPredictionHistoryLimit(t *testing.T) {
	ctx := context.Background()
	pd := &fakePredictionDao{}
	for i := 0; i < 15; i++ {
		require.NoError(t, pd.PredictionCreate(ctx, &entity.Prediction{StockSymbol: "TCS", PredictedPrice: float64(i)}))
	}
	svc := NewPredictionService(&fakeStockDao{}, pd, &fakeOracle{})

	res, err := svc.PredictionGetHistory(ctx, "TCS")
	require.NoError(t, err)
	assert.Len(t, res.Predictions, 10)
	// 最新的排在最前
	assert.Equal(t, 14.0, res.Predictions[0].PredictedPrice)
}
