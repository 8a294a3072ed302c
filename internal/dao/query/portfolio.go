package query

import (
	"context"
	"errors"
	"time"

	"tradesense/internal/dao"
	"tradesense/internal/ledger"
	"tradesense/internal/model/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ dao.PortfolioDao = (*portfolioDao)(nil)

type portfolioDao struct {
	ds *gorm.DB
}

func NewPortfolioDao(ds *gorm.DB) *portfolioDao {
	return &portfolioDao{
		ds: ds,
	}
}

// ApplyTrade 交易的读改写必须是单个原子单元，否则同一持仓上的并发交易
// 会基于同一份"旧"持仓各算各的，后写的覆盖先写的。
// 这里用事务+FOR UPDATE行锁把同一(user, symbol)的修改串行化，
// 台账计算本身交给ledger的纯函数。
func (p *portfolioDao) ApplyTrade(ctx context.Context, userId int64, symbol string, side ledger.Side, quantity, price float64) (entity.Trade, error) {
	var trade entity.Trade
	err := p.ds.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing *ledger.Position
		var row entity.Position
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND stock_symbol = ?", userId, symbol).
			First(&row).Error
		switch {
		case err == nil:
			existing = &ledger.Position{
				Quantity:      row.Quantity,
				AvgCost:       row.AvgBuyPrice,
				TotalInvested: row.TotalInvested,
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			existing = nil
		default:
			return err
		}

		res, err := ledger.Apply(existing, side, quantity, price, time.Now())
		if err != nil {
			return err
		}

		trade = entity.Trade{
			UserId:      userId,
			StockSymbol: symbol,
			Type:        string(res.Record.Side),
			Quantity:    res.Record.Quantity,
			Price:       res.Record.Price,
			Total:       res.Record.Total,
			Timestamp:   res.Record.Timestamp.UnixMilli(),
		}
		if err := tx.Create(&trade).Error; err != nil {
			return err
		}

		switch {
		case res.Deleted:
			return tx.Delete(&entity.Position{}, row.Id).Error
		case res.Position == nil:
			// 无持仓时的卖出，只有流水
			return nil
		case existing == nil:
			created := entity.Position{
				UserId:        userId,
				StockSymbol:   symbol,
				Quantity:      res.Position.Quantity,
				AvgBuyPrice:   res.Position.AvgCost,
				TotalInvested: res.Position.TotalInvested,
			}
			return tx.Create(&created).Error
		default:
			return tx.Model(&entity.Position{}).Where("id = ?", row.Id).Updates(map[string]interface{}{
				"quantity":       res.Position.Quantity,
				"avg_buy_price":  res.Position.AvgCost,
				"total_invested": res.Position.TotalInvested,
			}).Error
		}
	})
	return trade, err
}

func (p *portfolioDao) PositionsGetByUser(ctx context.Context, userId int64) ([]entity.Position, error) {
	var positions []entity.Position
	err := p.ds.WithContext(ctx).Where("user_id = ?", userId).Find(&positions).Error
	return positions, err
}
