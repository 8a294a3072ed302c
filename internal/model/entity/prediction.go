package entity

import "tradesense/utils"

// Prediction AI生成的价格预测记录
type Prediction struct {
	Id             int64          `gorm:"column:id;primary_key;" json:"id"`
	StockSymbol    string         `gorm:"column:stock_symbol;not null;index:idx_symbol_timeframe" json:"stock_symbol"`
	CurrentPrice   float64        `gorm:"column:current_price" json:"current_price"` // 预测时的现价
	PredictedPrice float64        `gorm:"column:predicted_price" json:"predicted_price"`
	Timeframe      string         `gorm:"column:timeframe;index:idx_symbol_timeframe" json:"timeframe"` // 1d 1w 1m
	Confidence     float64        `gorm:"column:confidence" json:"confidence"`                          // 0-100
	Reasoning      string         `gorm:"column:reasoning;type:text" json:"reasoning"`
	CreatedAt      utils.JsonTime `gorm:"column:created_at" json:"created_at"`
}

func (Prediction) TableName() string {
	return "predictions"
}
