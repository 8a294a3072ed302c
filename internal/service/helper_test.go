package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tradesense/internal/ledger"
	"tradesense/internal/model/entity"
	"tradesense/internal/oracle"
)

// 内存版dao，服务层测试用

type fakeStockDao struct {
	sync.Mutex
	stocks []entity.Stock
}

func (f *fakeStockDao) StockGetAll(ctx context.Context) ([]entity.Stock, error) {
	f.Lock()
	defer f.Unlock()
	out := make([]entity.Stock, len(f.stocks))
	copy(out, f.stocks)
	return out, nil
}

func (f *fakeStockDao) StockGetBySymbol(ctx context.Context, symbol string) (entity.Stock, error) {
	f.Lock()
	defer f.Unlock()
	for _, s := range f.stocks {
		if s.Symbol == symbol {
			return s, nil
		}
	}
	return entity.Stock{}, fmt.Errorf("stock %s not found", symbol)
}

func (f *fakeStockDao) StockCount(ctx context.Context) (int64, error) {
	f.Lock()
	defer f.Unlock()
	return int64(len(f.stocks)), nil
}

func (f *fakeStockDao) StockBatchCreate(ctx context.Context, stocks []entity.Stock) error {
	f.Lock()
	defer f.Unlock()
	f.stocks = append(f.stocks, stocks...)
	return nil
}

func (f *fakeStockDao) StockPriceUpdate(ctx context.Context, symbol string, currentPrice, change, changePercent float64, lastUpdated int64) error {
	f.Lock()
	defer f.Unlock()
	for i := range f.stocks {
		if f.stocks[i].Symbol == symbol {
			f.stocks[i].CurrentPrice = currentPrice
			f.stocks[i].Change = change
			f.stocks[i].ChangePercent = changePercent
			f.stocks[i].LastUpdated = lastUpdated
			return nil
		}
	}
	return fmt.Errorf("stock %s not found", symbol)
}

type positionKey struct {
	userId int64
	symbol string
}

type fakePortfolioDao struct {
	sync.Mutex
	positions map[positionKey]entity.Position
	trades    []entity.Trade
	nextId    int64
}

func newFakePortfolioDao() *fakePortfolioDao {
	return &fakePortfolioDao{positions: make(map[positionKey]entity.Position)}
}

// ApplyTrade 复刻真实dao的读改写流程，锁由互斥量代替数据库行锁
func (f *fakePortfolioDao) ApplyTrade(ctx context.Context, userId int64, symbol string, side ledger.Side, quantity, price float64) (entity.Trade, error) {
	f.Lock()
	defer f.Unlock()

	key := positionKey{userId: userId, symbol: symbol}
	var existing *ledger.Position
	if row, ok := f.positions[key]; ok {
		existing = &ledger.Position{
			Quantity:      row.Quantity,
			AvgCost:       row.AvgBuyPrice,
			TotalInvested: row.TotalInvested,
		}
	}

	res, err := ledger.Apply(existing, side, quantity, price, time.Now())
	if err != nil {
		return entity.Trade{}, err
	}

	f.nextId++
	trade := entity.Trade{
		Id:          f.nextId,
		UserId:      userId,
		StockSymbol: symbol,
		Type:        string(res.Record.Side),
		Quantity:    res.Record.Quantity,
		Price:       res.Record.Price,
		Total:       res.Record.Total,
		Timestamp:   res.Record.Timestamp.UnixMilli(),
	}
	f.trades = append(f.trades, trade)

	switch {
	case res.Deleted:
		delete(f.positions, key)
	case res.Position != nil:
		f.positions[key] = entity.Position{
			UserId:        userId,
			StockSymbol:   symbol,
			Quantity:      res.Position.Quantity,
			AvgBuyPrice:   res.Position.AvgCost,
			TotalInvested: res.Position.TotalInvested,
		}
	}
	return trade, nil
}

func (f *fakePortfolioDao) PositionsGetByUser(ctx context.Context, userId int64) ([]entity.Position, error) {
	f.Lock()
	defer f.Unlock()
	var out []entity.Position
	for key, pos := range f.positions {
		if key.userId == userId {
			out = append(out, pos)
		}
	}
	return out, nil
}

func (f *fakePortfolioDao) TradesGetByUser(ctx context.Context, userId int64, limit int) ([]entity.Trade, error) {
	f.Lock()
	defer f.Unlock()
	var out []entity.Trade
	for i := len(f.trades) - 1; i >= 0 && len(out) < limit; i-- {
		if f.trades[i].UserId == userId {
			out = append(out, f.trades[i])
		}
	}
	return out, nil
}

type fakeWatchlistDao struct {
	sync.Mutex
	items  []entity.WatchlistItem
	nextId int64
}

func (f *fakeWatchlistDao) WatchlistGet(ctx context.Context, userId int64, symbol string) (entity.WatchlistItem, bool, error) {
	f.Lock()
	defer f.Unlock()
	for _, item := range f.items {
		if item.UserId == userId && item.StockSymbol == symbol {
			return item, true, nil
		}
	}
	return entity.WatchlistItem{}, false, nil
}

func (f *fakeWatchlistDao) WatchlistCreate(ctx context.Context, item *entity.WatchlistItem) error {
	f.Lock()
	defer f.Unlock()
	f.nextId++
	item.Id = f.nextId
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeWatchlistDao) WatchlistDelete(ctx context.Context, userId int64, symbol string) (bool, error) {
	f.Lock()
	defer f.Unlock()
	for i, item := range f.items {
		if item.UserId == userId && item.StockSymbol == symbol {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeWatchlistDao) WatchlistGetByUser(ctx context.Context, userId int64) ([]entity.WatchlistItem, error) {
	f.Lock()
	defer f.Unlock()
	var out []entity.WatchlistItem
	for _, item := range f.items {
		if item.UserId == userId {
			out = append(out, item)
		}
	}
	return out, nil
}

type fakePredictionDao struct {
	sync.Mutex
	predictions []entity.Prediction
}

func (f *fakePredictionDao) PredictionCreate(ctx context.Context, prediction *entity.Prediction) error {
	f.Lock()
	defer f.Unlock()
	prediction.Id = int64(len(f.predictions) + 1)
	f.predictions = append(f.predictions, *prediction)
	return nil
}

func (f *fakePredictionDao) PredictionsGetBySymbol(ctx context.Context, symbol string, limit int) ([]entity.Prediction, error) {
	f.Lock()
	defer f.Unlock()
	var out []entity.Prediction
	for i := len(f.predictions) - 1; i >= 0 && len(out) < limit; i-- {
		if f.predictions[i].StockSymbol == symbol {
			out = append(out, f.predictions[i])
		}
	}
	return out, nil
}

type fakeOracle struct {
	prediction oracle.Prediction
	err        error
	lastFacts  oracle.StockFacts
}

func (f *fakeOracle) Predict(ctx context.Context, facts oracle.StockFacts, timeframe string) (oracle.Prediction, error) {
	f.lastFacts = facts
	if f.err != nil {
		return oracle.Prediction{}, f.err
	}
	return f.prediction, nil
}
