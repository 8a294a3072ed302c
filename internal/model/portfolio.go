package model

import "tradesense/internal/model/entity"

// 模拟交易请求
type TradeSimulateReq struct {
	StockSymbol string  `json:"stock_symbol" validate:"required" label:"股票代码"`
	Type        string  `json:"type" validate:"required,oneof=BUY SELL" label:"交易方向"`
	Quantity    float64 `json:"quantity" validate:"required,gt=0" label:"数量"`
	Price       float64 `json:"price" validate:"required,gt=0" label:"价格"`
}

type TradeSimulateRes struct {
	Success bool         `json:"success"`
	Trade   entity.Trade `json:"trade"`
}

type TradeHistoryRes struct {
	Trades []entity.Trade `json:"trades"`
}

// PortfolioItem 持仓及按最新价派生的估值字段
type PortfolioItem struct {
	entity.Position
	Stock        entity.Stock `json:"stock"`
	CurrentValue float64      `json:"current_value"`
	Pnl          float64      `json:"pnl"`
	PnlPercent   float64      `json:"pnl_percent"`
}

type PortfolioListRes struct {
	Positions []PortfolioItem `json:"positions"`
}
