package dao

import (
	"context"

	"tradesense/internal/model/entity"
)

type WatchlistDao interface {
	// 查询某用户对某股票的自选记录
	WatchlistGet(ctx context.Context, userId int64, symbol string) (entity.WatchlistItem, bool, error)
	// 添加自选
	WatchlistCreate(ctx context.Context, item *entity.WatchlistItem) error
	// 删除自选，记录不存在时返回false
	WatchlistDelete(ctx context.Context, userId int64, symbol string) (bool, error)
	// 获取用户全部自选
	WatchlistGetByUser(ctx context.Context, userId int64) ([]entity.WatchlistItem, error)
}
