package user

import (
	"tradesense/internal/consts"
	"tradesense/internal/model"
	"tradesense/internal/service"
	"tradesense/pkg/errors"
	"tradesense/pkg/errors/ecode"
	"tradesense/pkg/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// @Summary		用户注册接口
// @Produce		json
// @Success		200	{object}	response.ApiResponse{data=model.UserRegisterRes}
// @Router			/api/v1/auth/register [post]
func (handler *UserHandler) UserRegister() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.UserRegisterReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "%s", err.Error()), nil)
			return
		}
		res, err := handler.service.UserRegister(ctx, req, ctx.ClientIP())
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

// @Summary		用户登陆接口
// @Produce		json
// @Success		200	{object}	response.ApiResponse{data=model.UserLoginRes}
// @Router			/api/v1/auth/login [post]
func (handler *UserHandler) UserLogin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.UserLoginReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "%s", err.Error()), nil)
			return
		}
		res, err := handler.service.UserLogin(ctx, req)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

// @Summary		获取用户详情
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Success		200				{object}	response.ApiResponse{data=model.UserGetInfoRes}
// @Router			/api/v1/user/info [get]
func (handler *UserHandler) UserGetInfo() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := ctx.GetInt64(consts.UserID)
		res, err := handler.service.UserGetInfo(ctx, userId)
		if err != nil {
			response.JSON(ctx, errors.Wrap(err, ecode.NotFoundErr, "未找到用户信息"), nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

// @Summary		用户注销
// @description	把当前token拉入黑名单
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Success		200				{object}	response.ApiResponse{data=model.UserLogoutRes}
// @Router			/api/v1/user/logout [get]
func (handler *UserHandler) UserLogout() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenStr := ctx.GetString(consts.JWTTokenCtx)
		res, err := handler.service.UserLogout(ctx, tokenStr)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}
