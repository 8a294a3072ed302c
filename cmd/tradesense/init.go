package main

import (
	"context"
	"time"

	"tradesense/conf"
	"tradesense/internal/dao/query"
	"tradesense/internal/handler/portfolio"
	"tradesense/internal/handler/prediction"
	"tradesense/internal/handler/stock"
	"tradesense/internal/handler/ticker"
	"tradesense/internal/handler/user"
	"tradesense/internal/handler/watchlist"
	"tradesense/internal/oracle"
	"tradesense/internal/router"
	"tradesense/internal/service"
	"tradesense/pkg/logger"

	"google.golang.org/genai"
	"gorm.io/gorm"
)

func InitRouter(ctx context.Context, db *gorm.DB, genaiClient *genai.Client) Router {
	appCfg := conf.AppConfig

	sd := query.NewStockDao(db)
	pd := query.NewPortfolioDao(db)
	td := query.NewTradeDao(db)
	wd := query.NewWatchlistDao(db)
	prd := query.NewPredictionDao(db)
	ud := query.NewUserDao(db)

	ss := service.NewStockService(sd)
	ps := service.NewPortfolioService(pd, td, sd)
	ws := service.NewWatchlistService(wd, sd)
	us := service.NewUserService(ud)

	gemini := oracle.NewGeminiOracle(genaiClient, appCfg.Gemini.Model, appCfg.Gemini.Temperature)
	prs := service.NewPredictionService(sd, prd, gemini)

	// 启动时初始化示例股票数据，幂等
	if _, err := ss.StockInit(ctx); err != nil {
		logger.Errorf("seed stocks failed: %v", err)
	}

	tickInterval := time.Duration(appCfg.Market.TickInterval) * time.Second
	if tickInterval <= 0 {
		tickInterval = 3 * time.Second
	}
	ts := service.NewTickerService(sd, tickInterval)
	go ts.RunScheduled(ctx)

	stockHandler := stock.NewHandler(ss)
	portfolioHandler := portfolio.NewHandler(ps)
	watchlistHandler := watchlist.NewHandler(ws)
	predictionHandler := prediction.NewHandler(prs)
	tickerHandler := ticker.NewHandler(ts)
	userHandler := user.NewUserHandler(us)

	// 开始广播价格
	go tickerHandler.BroadcastPrices(tickInterval)

	return router.NewApiRouter(stockHandler, portfolioHandler, watchlistHandler, predictionHandler, tickerHandler, userHandler)
}
