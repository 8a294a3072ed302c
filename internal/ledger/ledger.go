package ledger

import (
	"errors"
	"fmt"
	"time"
)

// 持仓台账的核心算法：买入按数量加权摊平成本，卖出只减少数量。
// 这里是纯计算，不做任何IO，读改写的原子性由调用方的事务保证。

type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// ErrValidation 入参校验失败
var ErrValidation = errors.New("invalid trade")

// Position 某个用户在单个股票上的当前持仓
type Position struct {
	Quantity      float64
	AvgCost       float64
	TotalInvested float64
}

// TradeRecord 一笔成交的审计记录，无论是否影响持仓都会生成
type TradeRecord struct {
	Side      Side
	Quantity  float64
	Price     float64
	Total     float64
	Timestamp time.Time
}

// Result 应用一笔交易后的结果。
// Position为更新后的持仓，nil表示交易后不存在持仓；
// Deleted为true表示本次卖出清空了已有持仓，需要删除持仓记录。
type Result struct {
	Position *Position
	Deleted  bool
	Record   TradeRecord
}

// ParseSide 校验并归一化交易方向
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case SideBuy:
		return SideBuy, nil
	case SideSell:
		return SideSell, nil
	default:
		return "", fmt.Errorf("%w: unrecognized side %q", ErrValidation, s)
	}
}

// Apply 把一笔交易应用到现有持仓上（existing为nil表示当前无持仓）。
//
// BUY: 数量累加，totalInvested累加本次成交额，均价 = totalInvested / 数量。
// totalInvested使用累计值而不是每次用均价反推，避免多次交易后的浮点漂移。
//
// SELL: 数量减少，超卖时截断为0（不报错），清零时删除持仓；
// 部分卖出时avgCost和totalInvested保持不变。这意味着部分卖出后
// totalInvested相对剩余数量是偏大的，后续按它计算的盈亏也随之偏移，
// 此处有意保留原有口径，不做修正。
func Apply(existing *Position, side Side, quantity, price float64, now time.Time) (Result, error) {
	if quantity <= 0 {
		return Result{}, fmt.Errorf("%w: quantity must be positive, got %v", ErrValidation, quantity)
	}
	if price <= 0 {
		return Result{}, fmt.Errorf("%w: price must be positive, got %v", ErrValidation, price)
	}
	if side != SideBuy && side != SideSell {
		return Result{}, fmt.Errorf("%w: unrecognized side %q", ErrValidation, side)
	}

	total := quantity * price
	res := Result{
		Record: TradeRecord{
			Side:      side,
			Quantity:  quantity,
			Price:     price,
			Total:     total,
			Timestamp: now,
		},
	}

	switch side {
	case SideBuy:
		if existing == nil {
			res.Position = &Position{
				Quantity:      quantity,
				AvgCost:       price,
				TotalInvested: total,
			}
			return res, nil
		}
		newQuantity := existing.Quantity + quantity
		newTotalInvested := existing.TotalInvested + total
		res.Position = &Position{
			Quantity:      newQuantity,
			AvgCost:       newTotalInvested / newQuantity,
			TotalInvested: newTotalInvested,
		}
		return res, nil

	case SideSell:
		if existing == nil {
			// 无持仓时卖出只记录审计流水，不产生持仓变化
			return res, nil
		}
		newQuantity := existing.Quantity - quantity
		if newQuantity < 0 {
			newQuantity = 0
		}
		if newQuantity == 0 {
			res.Deleted = true
			return res, nil
		}
		res.Position = &Position{
			Quantity:      newQuantity,
			AvgCost:       existing.AvgCost,
			TotalInvested: existing.TotalInvested,
		}
		return res, nil
	}
	// 不可达，方向已在上面校验
	return Result{}, fmt.Errorf("%w: unrecognized side %q", ErrValidation, side)
}

// Valuation 持仓估值的派生字段
type Valuation struct {
	CurrentValue float64
	Pnl          float64
	PnlPercent   float64
}

// Valuate 用最新价格计算持仓的市值和盈亏，totalInvested为0时收益率按0处理
func Valuate(p Position, marketPrice float64) Valuation {
	currentValue := p.Quantity * marketPrice
	pnl := currentValue - p.TotalInvested
	var pnlPercent float64
	if p.TotalInvested != 0 {
		pnlPercent = pnl / p.TotalInvested * 100
	}
	return Valuation{
		CurrentValue: currentValue,
		Pnl:          pnl,
		PnlPercent:   pnlPercent,
	}
}
