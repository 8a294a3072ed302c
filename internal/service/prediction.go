package service

import (
	"context"

	"tradesense/internal/consts"
	"tradesense/internal/dao"
	"tradesense/internal/model"
	"tradesense/internal/model/entity"
	"tradesense/internal/oracle"
	"tradesense/pkg/logger"
)

type PredictionService interface {
	// 生成一条预测并落库，模型调用失败时不存任何半成品
	PredictionGenerate(ctx context.Context, req model.PredictionGenerateReq) (model.PredictionGenerateRes, error)
	// 某只股票最近的预测记录
	PredictionGetHistory(ctx context.Context, symbol string) (model.PredictionHistoryRes, error)
}

type predictionService struct {
	sd dao.StockDao
	pd dao.PredictionDao
	o  oracle.Oracle
}

func NewPredictionService(sd dao.StockDao, pd dao.PredictionDao, o oracle.Oracle) PredictionService {
	return &predictionService{
		sd: sd,
		pd: pd,
		o:  o,
	}
}

func (p *predictionService) PredictionGenerate(ctx context.Context, req model.PredictionGenerateReq) (model.PredictionGenerateRes, error) {
	stock, err := p.sd.StockGetBySymbol(ctx, req.StockSymbol)
	if err != nil {
		return model.PredictionGenerateRes{}, err
	}

	prediction, err := p.o.Predict(ctx, oracle.StockFacts{
		Name:          stock.Name,
		Symbol:        stock.Symbol,
		CurrentPrice:  stock.CurrentPrice,
		PreviousClose: stock.PreviousClose,
		Change:        stock.Change,
		ChangePercent: stock.ChangePercent,
		Sector:        stock.Sector,
		MarketCap:     stock.MarketCap,
	}, req.Timeframe)
	if err != nil {
		return model.PredictionGenerateRes{}, err
	}

	record := entity.Prediction{
		StockSymbol:    stock.Symbol,
		CurrentPrice:   stock.CurrentPrice,
		PredictedPrice: prediction.PredictedPrice,
		Timeframe:      req.Timeframe,
		Confidence:     prediction.Confidence,
		Reasoning:      prediction.Reasoning,
	}
	if err := p.pd.PredictionCreate(ctx, &record); err != nil {
		// 预测已经生成，落库失败只影响历史记录，仍然把结果还给前端
		logger.Errorf("save prediction for %s failed: %v", stock.Symbol, err)
	}

	return model.PredictionGenerateRes{
		PredictedPrice: prediction.PredictedPrice,
		Confidence:     prediction.Confidence,
		Reasoning:      prediction.Reasoning,
	}, nil
}

func (p *predictionService) PredictionGetHistory(ctx context.Context, symbol string) (model.PredictionHistoryRes, error) {
	predictions, err := p.pd.PredictionsGetBySymbol(ctx, symbol, consts.PredictionHistoryLimit)
	if err != nil {
		return model.PredictionHistoryRes{}, err
	}
	return model.PredictionHistoryRes{Predictions: predictions}, nil
}
