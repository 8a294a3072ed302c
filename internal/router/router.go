package router

import (
	"tradesense/internal/handler/ping"
	"tradesense/internal/handler/portfolio"
	"tradesense/internal/handler/prediction"
	"tradesense/internal/handler/stock"
	"tradesense/internal/handler/ticker"
	"tradesense/internal/handler/user"
	"tradesense/internal/handler/watchlist"
	"tradesense/internal/middleware"

	"github.com/gin-gonic/gin"
)

type ApiRouter struct {
	stockHandler      *stock.Handler
	portfolioHandler  *portfolio.Handler
	watchlistHandler  *watchlist.Handler
	predictionHandler *prediction.Handler
	tickerHandler     *ticker.Handler
	userHandler       *user.UserHandler
}

func NewApiRouter(sh *stock.Handler, ph *portfolio.Handler, wh *watchlist.Handler, pdh *prediction.Handler, th *ticker.Handler, uh *user.UserHandler) *ApiRouter {
	return &ApiRouter{
		stockHandler:      sh,
		portfolioHandler:  ph,
		watchlistHandler:  wh,
		predictionHandler: pdh,
		tickerHandler:     th,
		userHandler:       uh,
	}
}

func (api *ApiRouter) Load(g *gin.Engine) {

	g.GET("/ping", ping.Ping())

	base := g.Group("/api/v1")

	s := base.Group("/stocks")
	{
		// 获取股票列表
		s.GET("/list", api.stockHandler.StockGetList())
		s.GET("/detail", api.stockHandler.StockGetDetail())
		// 初始化示例股票数据，幂等
		s.POST("/init", api.stockHandler.StockInit())
	}

	t := base.Group("/ticker")
	{
		t.GET("/ws", api.tickerHandler.ServeWS) // 通过websocket连接获取价格
	}

	tr := base.Group("/trade", middleware.AuthToken())
	{
		tr.POST("/simulate", middleware.AntiDuplicateMiddleware(), api.portfolioHandler.TradeSimulate())
		tr.GET("/history", api.portfolioHandler.TradeGetHistory())
	}

	p := base.Group("/portfolio", middleware.AuthToken())
	{
		p.GET("/list", api.portfolioHandler.PortfolioGetList())
	}

	w := base.Group("/watchlist", middleware.AuthToken())
	{
		w.GET("/list", api.watchlistHandler.WatchlistGetList())
		w.POST("/add", api.watchlistHandler.WatchlistAdd())
		w.POST("/remove", api.watchlistHandler.WatchlistRemove())
	}

	pd := base.Group("/prediction")
	{
		pd.POST("/generate", middleware.AntiDuplicateMiddleware(), api.predictionHandler.PredictionGenerate())
		pd.GET("/history", api.predictionHandler.PredictionGetHistory())
	}

	auth := base.Group("/auth")
	{
		auth.POST("/register", api.userHandler.UserRegister())
		auth.POST("/login", api.userHandler.UserLogin())
	}

	u := base.Group("/user", middleware.AuthToken())
	{
		u.GET("/info", api.userHandler.UserGetInfo())
		u.GET("/logout", api.userHandler.UserLogout())
	}
}
