package model

import "tradesense/internal/model/entity"

// 生成预测的请求
type PredictionGenerateReq struct {
	StockSymbol string `json:"stock_symbol" validate:"required" label:"股票代码"`
	Timeframe   string `json:"timeframe" validate:"required,oneof=1d 1w 1m" label:"预测周期"`
}

type PredictionGenerateRes struct {
	PredictedPrice float64 `json:"predicted_price"`
	Confidence     float64 `json:"confidence"`
	Reasoning      string  `json:"reasoning"`
}

type PredictionHistoryReq struct {
	Symbol string `form:"symbol" validate:"required" label:"股票代码"`
}

type PredictionHistoryRes struct {
	Predictions []entity.Prediction `json:"predictions"`
}
