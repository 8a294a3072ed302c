package entity

import "tradesense/utils"

// Stock 样本市场里的一只股票，价格由模拟行情更新
type Stock struct {
	Id            int64          `gorm:"column:id;primary_key;" json:"id"`
	Symbol        string         `gorm:"column:symbol;not null;unique" json:"symbol"`
	Name          string         `gorm:"column:name;not null" json:"name"`
	CurrentPrice  float64        `gorm:"column:current_price" json:"current_price"`
	PreviousClose float64        `gorm:"column:previous_close" json:"previous_close"`
	Change        float64        `gorm:"column:change" json:"change"`
	ChangePercent float64        `gorm:"column:change_percent" json:"change_percent"`
	Volume        int64          `gorm:"column:volume" json:"volume"`
	MarketCap     float64        `gorm:"column:market_cap" json:"market_cap"` // 市值，单位Cr
	Sector        string         `gorm:"column:sector" json:"sector"`
	LastUpdated   int64          `gorm:"column:last_updated" json:"last_updated"` // 毫秒时间戳
	CreatedAt     utils.JsonTime `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     utils.JsonTime `gorm:"column:updated_at" json:"updated_at"`
}

func (Stock) TableName() string {
	return "stocks"
}
