package stock

import (
	"tradesense/internal/model"
	"tradesense/internal/service"
	"tradesense/pkg/errors"
	"tradesense/pkg/errors/ecode"
	"tradesense/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service service.StockService
}

func NewHandler(service service.StockService) *Handler {
	return &Handler{service: service}
}

// @Summary		股票列表
// @Produce		json
// @Success		200	{object}	response.ApiResponse{data=model.StockListRes}
// @Router			/api/v1/stocks/list [get]
func (h *Handler) StockGetList() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res, err := h.service.StockGetList(ctx)
		if err != nil {
			response.JSON(ctx, errors.WithCode(ecode.DatabaseErr, "%s", err.Error()), nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

// @Summary		单只股票详情
// @Produce		json
// @Param			symbol	query		string	true	"股票代码"
// @Success		200		{object}	response.ApiResponse{data=entity.Stock}
// @Router			/api/v1/stocks/detail [get]
func (h *Handler) StockGetDetail() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.StockDetailReq
		if err := ctx.ShouldBindQuery(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "%s", err.Error()), nil)
			return
		}
		stock, err := h.service.StockGetBySymbol(ctx, req.Symbol)
		if err != nil {
			response.JSON(ctx, errors.WithCode(ecode.NotFoundErr, "stock not found"), nil)
			return
		}
		response.JSON(ctx, nil, stock)
	}
}

// @Summary		初始化样本市场
// @description	幂等接口，已有数据时不会重复写入
// @Produce		json
// @Success		200	{object}	response.ApiResponse{data=model.StockInitRes}
// @Router			/api/v1/stocks/init [post]
func (h *Handler) StockInit() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res, err := h.service.StockInit(ctx)
		if err != nil {
			response.JSON(ctx, errors.WithCode(ecode.DatabaseErr, "%s", err.Error()), nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}
