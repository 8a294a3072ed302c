package model

import "tradesense/internal/model/entity"

// 查询单只股票的参数
type StockDetailReq struct {
	Symbol string `form:"symbol" validate:"required" label:"股票代码"`
}

type StockListRes struct {
	Stocks []entity.Stock `json:"stocks"`
}

// 初始化样本市场的响应
type StockInitRes struct {
	Seeded bool `json:"seeded"` // false表示市场已存在，本次未写入
	Count  int  `json:"count"`
}

// TickerData 推送给客户端的实时价格快照
type TickerData struct {
	Symbol        string  `json:"symbol"`
	CurrentPrice  float64 `json:"current_price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	LastUpdated   int64   `json:"last_updated"`
}
