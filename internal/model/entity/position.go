package entity

import "tradesense/utils"

// Position 用户在单只股票上的持仓投影。
// 数量为0的持仓不会保留记录，清仓即删除。
type Position struct {
	Id            int64          `gorm:"column:id;primary_key;" json:"id"`
	UserId        int64          `gorm:"column:user_id;not null;uniqueIndex:idx_user_symbol" json:"user_id"`
	StockSymbol   string         `gorm:"column:stock_symbol;not null;uniqueIndex:idx_user_symbol" json:"stock_symbol"`
	Quantity      float64        `gorm:"column:quantity;not null" json:"quantity"`
	AvgBuyPrice   float64        `gorm:"column:avg_buy_price;not null" json:"avg_buy_price"`
	TotalInvested float64        `gorm:"column:total_invested;not null" json:"total_invested"`
	CreatedAt     utils.JsonTime `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     utils.JsonTime `gorm:"column:updated_at" json:"updated_at"`
}

func (Position) TableName() string {
	return "portfolios"
}
