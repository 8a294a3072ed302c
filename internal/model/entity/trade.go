package entity

import "tradesense/utils"

// Trade 成交流水，只追加不修改
type Trade struct {
	Id          int64          `gorm:"column:id;primary_key;" json:"id"`
	UserId      int64          `gorm:"column:user_id;not null;index" json:"user_id"`
	StockSymbol string         `gorm:"column:stock_symbol;not null" json:"stock_symbol"`
	Type        string         `gorm:"column:type;not null" json:"type"` // BUY 或 SELL
	Quantity    float64        `gorm:"column:quantity;not null" json:"quantity"`
	Price       float64        `gorm:"column:price;not null" json:"price"`
	Total       float64        `gorm:"column:total;not null" json:"total"`
	Timestamp   int64          `gorm:"column:timestamp;not null" json:"timestamp"` // 毫秒时间戳
	CreatedAt   utils.JsonTime `gorm:"column:created_at" json:"created_at"`
}

func (Trade) TableName() string {
	return "trades"
}
