package query

import (
	"context"

	"tradesense/internal/dao"
	"tradesense/internal/model/entity"

	"gorm.io/gorm"
)

var _ dao.TradeDao = (*tradeDao)(nil)

type tradeDao struct {
	ds *gorm.DB
}

func NewTradeDao(ds *gorm.DB) *tradeDao {
	return &tradeDao{
		ds: ds,
	}
}

func (t *tradeDao) TradesGetByUser(ctx context.Context, userId int64, limit int) ([]entity.Trade, error) {
	var trades []entity.Trade
	err := t.ds.WithContext(ctx).Where("user_id = ?", userId).Order("timestamp desc").Limit(limit).Find(&trades).Error
	return trades, err
}
