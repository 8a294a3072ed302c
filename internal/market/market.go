package market

import (
	"math/rand"
	"time"

	"tradesense/internal/model/entity"
	"tradesense/utils"
)

// 样本市场数据。生产环境应接真实行情，这里按固定名单随机造价。

type sampleStock struct {
	Symbol    string
	Name      string
	Sector    string
	MarketCap float64
}

var sampleStocks = []sampleStock{
	{"RELIANCE", "Reliance Industries Ltd", "Energy", 1500000},
	{"TCS", "Tata Consultancy Services", "IT", 1200000},
	{"HDFCBANK", "HDFC Bank Ltd", "Banking", 800000},
	{"INFY", "Infosys Ltd", "IT", 700000},
	{"HINDUNILVR", "Hindustan Unilever Ltd", "FMCG", 600000},
	{"ICICIBANK", "ICICI Bank Ltd", "Banking", 550000},
	{"BHARTIARTL", "Bharti Airtel Ltd", "Telecom", 400000},
	{"ITC", "ITC Ltd", "FMCG", 350000},
}

// GenerateStocks 生成带随机初始价格的样本股票
func GenerateStocks(r *rand.Rand, now time.Time) []entity.Stock {
	stocks := make([]entity.Stock, 0, len(sampleStocks))
	for _, s := range sampleStocks {
		basePrice := r.Float64()*2000 + 100
		change := (r.Float64() - 0.5) * 100
		changePercent := change / basePrice * 100

		stocks = append(stocks, entity.Stock{
			Symbol:        s.Symbol,
			Name:          s.Name,
			CurrentPrice:  utils.Round2(basePrice + change),
			PreviousClose: utils.Round2(basePrice),
			Change:        utils.Round2(change),
			ChangePercent: utils.Round2(changePercent),
			Volume:        int64(r.Intn(1000000)) + 100000,
			MarketCap:     s.MarketCap,
			Sector:        s.Sector,
			LastUpdated:   now.UnixMilli(),
		})
	}
	return stocks
}

// NextPrice 随机游走出下一个价格，单步幅度±0.5%，保证价格为正
func NextPrice(r *rand.Rand, current float64) float64 {
	next := current * (1 + (r.Float64()-0.5)*0.01)
	next = utils.Round2(next)
	if next <= 0 {
		next = 0.01
	}
	return next
}

// Reprice 基于昨收重新推导涨跌字段
func Reprice(stock entity.Stock, newPrice float64, now time.Time) entity.Stock {
	stock.CurrentPrice = newPrice
	stock.Change = utils.Round2(newPrice - stock.PreviousClose)
	if stock.PreviousClose != 0 {
		stock.ChangePercent = utils.Round2(stock.Change / stock.PreviousClose * 100)
	} else {
		stock.ChangePercent = 0
	}
	stock.LastUpdated = now.UnixMilli()
	return stock
}
