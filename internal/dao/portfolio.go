package dao

import (
	"context"

	"tradesense/internal/ledger"
	"tradesense/internal/model/entity"
)

type PortfolioDao interface {
	// ApplyTrade 在一个事务里完成 读取持仓->台账计算->写回 的全过程，
	// 持仓行加排他锁，保证同一(user, symbol)上的并发交易串行执行。
	// 返回写入的成交流水。
	ApplyTrade(ctx context.Context, userId int64, symbol string, side ledger.Side, quantity, price float64) (entity.Trade, error)
	// 获取用户全部持仓
	PositionsGetByUser(ctx context.Context, userId int64) ([]entity.Position, error)
}

type TradeDao interface {
	// 获取用户最近的成交流水，时间倒序
	TradesGetByUser(ctx context.Context, userId int64, limit int) ([]entity.Trade, error)
}
