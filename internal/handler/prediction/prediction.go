package prediction

import (
	"errors"

	"tradesense/internal/model"
	"tradesense/internal/oracle"
	"tradesense/internal/service"
	pkgerrors "tradesense/pkg/errors"
	"tradesense/pkg/errors/ecode"
	"tradesense/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service service.PredictionService
}

func NewHandler(service service.PredictionService) *Handler {
	return &Handler{service: service}
}

// @Summary		生成AI价格预测
// @description	一次模型调用，失败不重试
// @Produce		json
// @Success		200	{object}	response.ApiResponse{data=model.PredictionGenerateRes}
// @Router			/api/v1/prediction/generate [post]
func (h *Handler) PredictionGenerate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.PredictionGenerateReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, pkgerrors.WithCode(ecode.ValidateErr, "%s", err.Error()), nil)
			return
		}
		res, err := h.service.PredictionGenerate(ctx, req)
		if err != nil {
			if errors.Is(err, oracle.ErrNoContent) || errors.Is(err, oracle.ErrUnparseable) {
				response.JSON(ctx, pkgerrors.Wrap(err, ecode.PredictionErr, err.Error()), nil)
				return
			}
			response.JSON(ctx, pkgerrors.Wrap(err, ecode.NotFoundErr, "stock not found"), nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

// @Summary		预测历史
// @Produce		json
// @Param			symbol	query		string	true	"股票代码"
// @Success		200		{object}	response.ApiResponse{data=model.PredictionHistoryRes}
// @Router			/api/v1/prediction/history [get]
func (h *Handler) PredictionGetHistory() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.PredictionHistoryReq
		if err := ctx.ShouldBindQuery(&req); err != nil {
			response.JSON(ctx, pkgerrors.WithCode(ecode.ValidateErr, "%s", err.Error()), nil)
			return
		}
		res, err := h.service.PredictionGetHistory(ctx, req.Symbol)
		if err != nil {
			response.JSON(ctx, pkgerrors.WithCode(ecode.DatabaseErr, "%s", err.Error()), nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}
