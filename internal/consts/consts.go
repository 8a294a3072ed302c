package consts

import "time"

const (
	// RequestId 请求id名称
	RequestId   = "request_id"
	UserID      = "user_id"
	JWTTokenCtx = "token_ctx"

	TimeLayout = "2006-01-02 15:04:05"

	// 缓存key前缀
	UserInfoPrefix     = "User_Info_list:"
	StockListPrefix    = "Stock_List:"
	JwtBlackListPrefix = "jwt_black_list:"

	// 默认redis过期时间
	RedisExrDefault = time.Hour * 24 * 5

	// TradeHistoryLimit 交易记录查询上限
	TradeHistoryLimit = 50
	// PredictionHistoryLimit 预测记录查询上限
	PredictionHistoryLimit = 10
)

// 交易方向
const (
	TradeTypeBuy  = "BUY"
	TradeTypeSell = "SELL"
)

// 预测时间范围
const (
	Timeframe1d = "1d"
	Timeframe1w = "1w"
	Timeframe1m = "1m"
)
