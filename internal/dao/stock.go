package dao

import (
	"context"

	"tradesense/internal/model/entity"
)

type StockDao interface {
	// 获取全部股票
	StockGetAll(ctx context.Context) ([]entity.Stock, error)
	// 根据代码获取股票
	StockGetBySymbol(ctx context.Context, symbol string) (entity.Stock, error)
	// 统计股票数量，用于幂等的初始化
	StockCount(ctx context.Context) (int64, error)
	// 批量创建
	StockBatchCreate(ctx context.Context, stocks []entity.Stock) error
	// 更新价格相关字段
	StockPriceUpdate(ctx context.Context, symbol string, currentPrice, change, changePercent float64, lastUpdated int64) error
}
