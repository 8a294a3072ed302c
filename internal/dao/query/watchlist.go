package query

import (
	"context"
	"errors"

	"tradesense/internal/dao"
	"tradesense/internal/model/entity"

	"gorm.io/gorm"
)

var _ dao.WatchlistDao = (*watchlistDao)(nil)

type watchlistDao struct {
	ds *gorm.DB
}

func NewWatchlistDao(ds *gorm.DB) *watchlistDao {
	return &watchlistDao{
		ds: ds,
	}
}

func (w *watchlistDao) WatchlistGet(ctx context.Context, userId int64, symbol string) (entity.WatchlistItem, bool, error) {
	var item entity.WatchlistItem
	err := w.ds.WithContext(ctx).Where("user_id = ? AND stock_symbol = ?", userId, symbol).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return item, false, nil
	}
	if err != nil {
		return item, false, err
	}
	return item, true, nil
}

func (w *watchlistDao) WatchlistCreate(ctx context.Context, item *entity.WatchlistItem) error {
	return w.ds.WithContext(ctx).Create(item).Error
}

func (w *watchlistDao) WatchlistDelete(ctx context.Context, userId int64, symbol string) (bool, error) {
	res := w.ds.WithContext(ctx).Where("user_id = ? AND stock_symbol = ?", userId, symbol).Delete(&entity.WatchlistItem{})
	return res.RowsAffected > 0, res.Error
}

func (w *watchlistDao) WatchlistGetByUser(ctx context.Context, userId int64) ([]entity.WatchlistItem, error) {
	var items []entity.WatchlistItem
	err := w.ds.WithContext(ctx).Where("user_id = ?", userId).Order("added_at asc").Find(&items).Error
	return items, err
}
