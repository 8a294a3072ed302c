package watchlist

import (
	"tradesense/internal/consts"
	"tradesense/internal/model"
	"tradesense/internal/service"
	"tradesense/pkg/errors"
	"tradesense/pkg/errors/ecode"
	"tradesense/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service service.WatchlistService
}

func NewHandler(service service.WatchlistService) *Handler {
	return &Handler{service: service}
}

// @Summary		添加自选
// @description	重复添加返回已有记录，不报错
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Success		200				{object}	response.ApiResponse{data=model.WatchlistAddRes}
// @Router			/api/v1/watchlist/add [post]
func (h *Handler) WatchlistAdd() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := ctx.GetInt64(consts.UserID)
		var req model.WatchlistAddReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "%s", err.Error()), nil)
			return
		}
		res, err := h.service.WatchlistAdd(ctx, userId, req.StockSymbol)
		if err != nil {
			response.JSON(ctx, errors.WithCode(ecode.DatabaseErr, "%s", err.Error()), nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

// @Summary		移除自选
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Success		200				{object}	response.ApiResponse{data=model.WatchlistRemoveRes}
// @Router			/api/v1/watchlist/remove [post]
func (h *Handler) WatchlistRemove() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := ctx.GetInt64(consts.UserID)
		var req model.WatchlistRemoveReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "%s", err.Error()), nil)
			return
		}
		res, err := h.service.WatchlistRemove(ctx, userId, req.StockSymbol)
		if err != nil {
			response.JSON(ctx, errors.WithCode(ecode.DatabaseErr, "%s", err.Error()), nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

// @Summary		自选列表
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Success		200				{object}	response.ApiResponse{data=model.WatchlistListRes}
// @Router			/api/v1/watchlist/list [get]
func (h *Handler) WatchlistGetList() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := ctx.GetInt64(consts.UserID)
		res, err := h.service.WatchlistGetList(ctx, userId)
		if err != nil {
			response.JSON(ctx, errors.WithCode(ecode.DatabaseErr, "%s", err.Error()), nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}
