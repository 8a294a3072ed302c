package query

import (
	"context"

	"tradesense/internal/dao"
	"tradesense/internal/model/entity"

	"gorm.io/gorm"
)

var _ dao.PredictionDao = (*predictionDao)(nil)

type predictionDao struct {
	ds *gorm.DB
}

func NewPredictionDao(ds *gorm.DB) *predictionDao {
	return &predictionDao{
		ds: ds,
	}
}

func (p *predictionDao) PredictionCreate(ctx context.Context, prediction *entity.Prediction) error {
	return p.ds.WithContext(ctx).Create(prediction).Error
}

func (p *predictionDao) PredictionsGetBySymbol(ctx context.Context, symbol string, limit int) ([]entity.Prediction, error) {
	var predictions []entity.Prediction
	err := p.ds.WithContext(ctx).Where("stock_symbol = ?", symbol).Order("created_at desc").Limit(limit).Find(&predictions).Error
	return predictions, err
}
