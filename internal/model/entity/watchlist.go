package entity

import "tradesense/utils"

// WatchlistItem 用户自选股，一个用户对一只股票最多一条
type WatchlistItem struct {
	Id          int64          `gorm:"column:id;primary_key;" json:"id"`
	UserId      int64          `gorm:"column:user_id;not null;uniqueIndex:idx_watch_user_symbol" json:"user_id"`
	StockSymbol string         `gorm:"column:stock_symbol;not null;uniqueIndex:idx_watch_user_symbol" json:"stock_symbol"`
	AddedAt     int64          `gorm:"column:added_at" json:"added_at"` // 毫秒时间戳
	CreatedAt   utils.JsonTime `gorm:"column:created_at" json:"created_at"`
}

func (WatchlistItem) TableName() string {
	return "watchlists"
}
