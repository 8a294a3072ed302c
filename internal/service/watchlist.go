package service

import (
	"context"
	"time"

	"tradesense/internal/dao"
	"tradesense/internal/model"
	"tradesense/internal/model/entity"
)

type WatchlistService interface {
	// 添加自选，已存在时返回已有记录id
	WatchlistAdd(ctx context.Context, userId int64, symbol string) (model.WatchlistAddRes, error)
	// 移除自选，不存在时为no-op
	WatchlistRemove(ctx context.Context, userId int64, symbol string) (model.WatchlistRemoveRes, error)
	// 自选的股票快照列表
	WatchlistGetList(ctx context.Context, userId int64) (model.WatchlistListRes, error)
}

type watchlistService struct {
	wd dao.WatchlistDao
	sd dao.StockDao
}

func NewWatchlistService(wd dao.WatchlistDao, sd dao.StockDao) WatchlistService {
	return &watchlistService{
		wd: wd,
		sd: sd,
	}
}

func (w *watchlistService) WatchlistAdd(ctx context.Context, userId int64, symbol string) (model.WatchlistAddRes, error) {
	existing, found, err := w.wd.WatchlistGet(ctx, userId, symbol)
	if err != nil {
		return model.WatchlistAddRes{}, err
	}
	if found {
		return model.WatchlistAddRes{Id: existing.Id}, nil
	}
	item := entity.WatchlistItem{
		UserId:      userId,
		StockSymbol: symbol,
		AddedAt:     time.Now().UnixMilli(),
	}
	if err := w.wd.WatchlistCreate(ctx, &item); err != nil {
		return model.WatchlistAddRes{}, err
	}
	return model.WatchlistAddRes{Id: item.Id}, nil
}

func (w *watchlistService) WatchlistRemove(ctx context.Context, userId int64, symbol string) (model.WatchlistRemoveRes, error) {
	removed, err := w.wd.WatchlistDelete(ctx, userId, symbol)
	if err != nil {
		return model.WatchlistRemoveRes{}, err
	}
	return model.WatchlistRemoveRes{Removed: removed}, nil
}

// WatchlistGetList 自选里找不到对应股票的条目跳过，和持仓估值同一口径
func (w *watchlistService) WatchlistGetList(ctx context.Context, userId int64) (model.WatchlistListRes, error) {
	items, err := w.wd.WatchlistGetByUser(ctx, userId)
	if err != nil {
		return model.WatchlistListRes{}, err
	}
	stocks, err := w.sd.StockGetAll(ctx)
	if err != nil {
		return model.WatchlistListRes{}, err
	}
	bySymbol := make(map[string]entity.Stock, len(stocks))
	for _, s := range stocks {
		bySymbol[s.Symbol] = s
	}

	res := model.WatchlistListRes{Stocks: make([]entity.Stock, 0, len(items))}
	for _, item := range items {
		if stock, ok := bySymbol[item.StockSymbol]; ok {
			res.Stocks = append(res.Stocks, stock)
		}
	}
	return res, nil
}
