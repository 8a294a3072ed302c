package portfolio

import (
	"errors"

	"tradesense/internal/consts"
	"tradesense/internal/ledger"
	"tradesense/internal/model"
	"tradesense/internal/service"
	pkgerrors "tradesense/pkg/errors"
	"tradesense/pkg/errors/ecode"
	"tradesense/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service service.PortfolioService
}

func NewHandler(service service.PortfolioService) *Handler {
	return &Handler{service: service}
}

// @Summary		模拟交易
// @description	记录一笔买入/卖出流水并更新持仓
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Success		200				{object}	response.ApiResponse{data=model.TradeSimulateRes}
// @Router			/api/v1/trade/simulate [post]
func (h *Handler) TradeSimulate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := ctx.GetInt64(consts.UserID)
		var req model.TradeSimulateReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, pkgerrors.WithCode(ecode.ValidateErr, "%s", err.Error()), nil)
			return
		}
		res, err := h.service.TradeSimulate(ctx, userId, req)
		if err != nil {
			if errors.Is(err, ledger.ErrValidation) {
				response.JSON(ctx, pkgerrors.WithCode(ecode.ValidateErr, "%s", err.Error()), nil)
				return
			}
			response.JSON(ctx, pkgerrors.Wrap(err, ecode.DatabaseErr, "trade failed"), nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

// @Summary		持仓列表
// @description	返回按最新价估值后的持仓
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Success		200				{object}	response.ApiResponse{data=model.PortfolioListRes}
// @Router			/api/v1/portfolio/list [get]
func (h *Handler) PortfolioGetList() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := ctx.GetInt64(consts.UserID)
		res, err := h.service.PortfolioGetList(ctx, userId)
		if err != nil {
			response.JSON(ctx, pkgerrors.WithCode(ecode.DatabaseErr, "%s", err.Error()), nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

// @Summary		成交历史
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Success		200				{object}	response.ApiResponse{data=model.TradeHistoryRes}
// @Router			/api/v1/trade/history [get]
func (h *Handler) TradeGetHistory() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := ctx.GetInt64(consts.UserID)
		res, err := h.service.TradeGetHistory(ctx, userId)
		if err != nil {
			response.JSON(ctx, pkgerrors.WithCode(ecode.DatabaseErr, "%s", err.Error()), nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}
