package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"tradesense/internal/dao"
	"tradesense/internal/market"
	"tradesense/internal/model"
	"tradesense/pkg/logger"
)

// 模拟行情服务：定时对所有股票做一次随机游走，写回数据库，
// 并在内存里维护最新快照供websocket推送

type TickerService struct {
	sync.RWMutex
	sd       dao.StockDao
	r        *rand.Rand
	interval time.Duration
	prices   map[string]model.TickerData
	closeCh  chan struct{}
	once     sync.Once
}

func NewTickerService(sd dao.StockDao, interval time.Duration) *TickerService {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &TickerService{
		sd:       sd,
		r:        rand.New(rand.NewSource(time.Now().UnixNano())),
		interval: interval,
		prices:   make(map[string]model.TickerData),
		closeCh:  make(chan struct{}),
	}
}

// RunScheduled 启动行情刷新循环，阻塞直到Close或ctx取消
func (t *TickerService) RunScheduled(ctx context.Context) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	// 启动时先刷一轮，避免客户端一开始拿不到快照
	t.tick(ctx)
	for {
		select {
		case <-ticker.C:
			t.tick(ctx)
		case <-t.closeCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (t *TickerService) tick(ctx context.Context) {
	stocks, err := t.sd.StockGetAll(ctx)
	if err != nil {
		logger.Errorf("ticker load stocks failed: %v", err)
		return
	}
	now := time.Now()
	for _, stock := range stocks {
		next := market.NextPrice(t.r, stock.CurrentPrice)
		updated := market.Reprice(stock, next, now)
		if err := t.sd.StockPriceUpdate(ctx, updated.Symbol, updated.CurrentPrice,
			updated.Change, updated.ChangePercent, updated.LastUpdated); err != nil {
			logger.Errorf("ticker update %s failed: %v", stock.Symbol, err)
			continue
		}
		t.Lock()
		t.prices[updated.Symbol] = model.TickerData{
			Symbol:        updated.Symbol,
			CurrentPrice:  updated.CurrentPrice,
			Change:        updated.Change,
			ChangePercent: updated.ChangePercent,
			LastUpdated:   updated.LastUpdated,
		}
		t.Unlock()
	}
}

// GetPrice 获取某只股票的最新快照
func (t *TickerService) GetPrice(symbol string) (model.TickerData, bool) {
	t.RLock()
	defer t.RUnlock()
	data, ok := t.prices[symbol]
	return data, ok
}

// GetPrices 获取多只股票的最新快照，没有快照的跳过
func (t *TickerService) GetPrices(symbols []string) []model.TickerData {
	t.RLock()
	defer t.RUnlock()
	res := make([]model.TickerData, 0, len(symbols))
	for _, symbol := range symbols {
		if data, ok := t.prices[symbol]; ok {
			res = append(res, data)
		}
	}
	return res
}

// Close 停止行情刷新
func (t *TickerService) Close() {
	t.once.Do(func() {
		close(t.closeCh)
	})
}
