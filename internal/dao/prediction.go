package dao

import (
	"context"

	"tradesense/internal/model/entity"
)

type PredictionDao interface {
	// 保存一条预测
	PredictionCreate(ctx context.Context, prediction *entity.Prediction) error
	// 按股票查询最近的预测，时间倒序
	PredictionsGetBySymbol(ctx context.Context, symbol string, limit int) ([]entity.Prediction, error)
}
