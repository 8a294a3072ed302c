package query

import (
	"context"

	"tradesense/internal/dao"
	"tradesense/internal/model/entity"

	"gorm.io/gorm"
)

var _ dao.StockDao = (*stockDao)(nil)

type stockDao struct {
	ds *gorm.DB
}

func NewStockDao(ds *gorm.DB) *stockDao {
	return &stockDao{
		ds: ds,
	}
}

func (s *stockDao) StockGetAll(ctx context.Context) ([]entity.Stock, error) {
	var stocks []entity.Stock
	err := s.ds.WithContext(ctx).Order("symbol asc").Find(&stocks).Error
	return stocks, err
}

func (s *stockDao) StockGetBySymbol(ctx context.Context, symbol string) (entity.Stock, error) {
	var stock entity.Stock
	err := s.ds.WithContext(ctx).Where("symbol = ?", symbol).First(&stock).Error
	return stock, err
}

func (s *stockDao) StockCount(ctx context.Context) (int64, error) {
	var count int64
	err := s.ds.WithContext(ctx).Model(&entity.Stock{}).Count(&count).Error
	return count, err
}

func (s *stockDao) StockBatchCreate(ctx context.Context, stocks []entity.Stock) error {
	return s.ds.WithContext(ctx).Create(&stocks).Error
}

func (s *stockDao) StockPriceUpdate(ctx context.Context, symbol string, currentPrice, change, changePercent float64, lastUpdated int64) error {
	return s.ds.WithContext(ctx).Model(&entity.Stock{}).Where("symbol = ?", symbol).Updates(map[string]interface{}{
		"current_price":  currentPrice,
		"change":         change,
		"change_percent": changePercent,
		"last_updated":   lastUpdated,
	}).Error
}
