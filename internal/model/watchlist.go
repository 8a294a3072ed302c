package model

import "tradesense/internal/model/entity"

type WatchlistAddReq struct {
	StockSymbol string `json:"stock_symbol" validate:"required" label:"股票代码"`
}

type WatchlistAddRes struct {
	Id int64 `json:"id"` // 已存在时返回已有记录的id
}

type WatchlistRemoveReq struct {
	StockSymbol string `json:"stock_symbol" validate:"required" label:"股票代码"`
}

type WatchlistRemoveRes struct {
	Removed bool `json:"removed"`
}

// 自选列表返回的是股票快照，而不是关联记录本身
type WatchlistListRes struct {
	Stocks []entity.Stock `json:"stocks"`
}
