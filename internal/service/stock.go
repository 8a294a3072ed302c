package service

import (
	"context"
	"math/rand"
	"time"

	"tradesense/internal/dao"
	"tradesense/internal/market"
	"tradesense/internal/model"
	"tradesense/internal/model/entity"
)

type StockService interface {
	// 股票列表
	StockGetList(ctx context.Context) (model.StockListRes, error)
	// 单只股票
	StockGetBySymbol(ctx context.Context, symbol string) (entity.Stock, error)
	// 初始化样本市场，已有数据时不重复写入
	StockInit(ctx context.Context) (model.StockInitRes, error)
}

type stockService struct {
	sd dao.StockDao
	r  *rand.Rand
}

func NewStockService(sd dao.StockDao) StockService {
	return &stockService{
		sd: sd,
		r:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *stockService) StockGetList(ctx context.Context) (model.StockListRes, error) {
	stocks, err := s.sd.StockGetAll(ctx)
	if err != nil {
		return model.StockListRes{}, err
	}
	return model.StockListRes{Stocks: stocks}, nil
}

func (s *stockService) StockGetBySymbol(ctx context.Context, symbol string) (entity.Stock, error) {
	return s.sd.StockGetBySymbol(ctx, symbol)
}

func (s *stockService) StockInit(ctx context.Context) (model.StockInitRes, error) {
	count, err := s.sd.StockCount(ctx)
	if err != nil {
		return model.StockInitRes{}, err
	}
	if count > 0 {
		return model.StockInitRes{Seeded: false, Count: int(count)}, nil
	}
	stocks := market.GenerateStocks(s.r, time.Now())
	if err := s.sd.StockBatchCreate(ctx, stocks); err != nil {
		return model.StockInitRes{}, err
	}
	return model.StockInitRes{Seeded: true, Count: len(stocks)}, nil
}
