package service

import (
	"context"

	"tradesense/internal/consts"
	"tradesense/internal/dao"
	"tradesense/internal/ledger"
	"tradesense/internal/model"
)

type PortfolioService interface {
	// 模拟一笔交易：写流水并更新持仓
	TradeSimulate(ctx context.Context, userId int64, req model.TradeSimulateReq) (model.TradeSimulateRes, error)
	// 持仓列表，带最新价估值
	PortfolioGetList(ctx context.Context, userId int64) (model.PortfolioListRes, error)
	// 成交流水
	TradeGetHistory(ctx context.Context, userId int64) (model.TradeHistoryRes, error)
}

type portfolioService struct {
	pd dao.PortfolioDao
	td dao.TradeDao
	sd dao.StockDao
}

func NewPortfolioService(pd dao.PortfolioDao, td dao.TradeDao, sd dao.StockDao) PortfolioService {
	return &portfolioService{
		pd: pd,
		td: td,
		sd: sd,
	}
}

func (p *portfolioService) TradeSimulate(ctx context.Context, userId int64, req model.TradeSimulateReq) (model.TradeSimulateRes, error) {
	side, err := ledger.ParseSide(req.Type)
	if err != nil {
		return model.TradeSimulateRes{}, err
	}
	trade, err := p.pd.ApplyTrade(ctx, userId, req.StockSymbol, side, req.Quantity, req.Price)
	if err != nil {
		return model.TradeSimulateRes{}, err
	}
	return model.TradeSimulateRes{Success: true, Trade: trade}, nil
}

// PortfolioGetList 估值是读时计算的，不回写任何持仓字段。
// 找不到对应股票的持仓直接跳过，不按0价估值。
func (p *portfolioService) PortfolioGetList(ctx context.Context, userId int64) (model.PortfolioListRes, error) {
	positions, err := p.pd.PositionsGetByUser(ctx, userId)
	if err != nil {
		return model.PortfolioListRes{}, err
	}
	stocks, err := p.sd.StockGetAll(ctx)
	if err != nil {
		return model.PortfolioListRes{}, err
	}
	bySymbol := make(map[string]int, len(stocks))
	for i, s := range stocks {
		bySymbol[s.Symbol] = i
	}

	items := make([]model.PortfolioItem, 0, len(positions))
	for _, pos := range positions {
		idx, ok := bySymbol[pos.StockSymbol]
		if !ok {
			continue
		}
		stock := stocks[idx]
		v := ledger.Valuate(ledger.Position{
			Quantity:      pos.Quantity,
			AvgCost:       pos.AvgBuyPrice,
			TotalInvested: pos.TotalInvested,
		}, stock.CurrentPrice)

		items = append(items, model.PortfolioItem{
			Position:     pos,
			Stock:        stock,
			CurrentValue: v.CurrentValue,
			Pnl:          v.Pnl,
			PnlPercent:   v.PnlPercent,
		})
	}
	return model.PortfolioListRes{Positions: items}, nil
}

func (p *portfolioService) TradeGetHistory(ctx context.Context, userId int64) (model.TradeHistoryRes, error) {
	trades, err := p.td.TradesGetByUser(ctx, userId, consts.TradeHistoryLimit)
	if err != nil {
		return model.TradeHistoryRes{}, err
	}
	return model.TradeHistoryRes{Trades: trades}, nil
}
