package service

import (
	"context"
	"time"

	"tradesense/conf"
	"tradesense/internal/dao"
	"tradesense/internal/model"
	"tradesense/internal/model/entity"
	"tradesense/pkg/errors"
	"tradesense/pkg/errors/ecode"
	"tradesense/pkg/jwt"
	"tradesense/utils"
	"tradesense/utils/security"
)

type UserService interface {
	UserRegister(ctx context.Context, req model.UserRegisterReq, clientIp string) (model.UserRegisterRes, error)
	UserLogin(ctx context.Context, req model.UserLoginReq) (model.UserLoginRes, error)
	UserLogout(ctx context.Context, tokenStr string) (model.UserLogoutRes, error)
	UserGetInfo(ctx context.Context, userId int64) (model.UserGetInfoRes, error)
}

type userService struct {
	ud dao.UserDao
}

func NewUserService(ud dao.UserDao) UserService {
	return &userService{
		ud: ud,
	}
}

func (u *userService) UserRegister(ctx context.Context, req model.UserRegisterReq, clientIp string) (model.UserRegisterRes, error) {
	count, err := u.ud.UserVerifyUsername(ctx, req.Username)
	if err != nil {
		return model.UserRegisterRes{}, errors.Wrap(err, ecode.DatabaseErr, "")
	}
	if count > 0 {
		return model.UserRegisterRes{}, errors.WithCode(ecode.UserExistErr, "用户名已被占用")
	}

	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		return model.UserRegisterRes{}, errors.Wrap(err, ecode.Unknown, "密码加密失败")
	}
	user := entity.User{
		Username:     req.Username,
		Nickname:     req.Username,
		Email:        req.Email,
		Password:     hashed,
		RegisteredIp: clientIp,
		IsActive:     true,
	}
	if err := u.ud.UserCreate(ctx, &user); err != nil {
		return model.UserRegisterRes{}, errors.Wrap(err, ecode.DatabaseErr, "创建用户失败")
	}
	return model.UserRegisterRes{IsSuccess: true}, nil
}

func (u *userService) UserLogin(ctx context.Context, req model.UserLoginReq) (model.UserLoginRes, error) {
	user, err := u.ud.UserGetByName(ctx, req.Username)
	if err != nil {
		return model.UserLoginRes{}, errors.Wrap(err, ecode.DatabaseErr, "")
	}
	if user.Id == 0 || !security.VerifyPassword(user.Password, req.Password) {
		// 用户不存在和密码错误返回同一个提示，避免探测用户名
		return model.UserLoginRes{}, errors.WithCode(ecode.UserPasswordErr, "用户名或密码错误")
	}

	jwtCfg := conf.AppConfig.Jwt
	exp := time.Now().Add(time.Duration(jwtCfg.JwtTtl) * time.Second)
	token, err := jwt.GenToken(jwt.BuildClaims(exp, user.Id), jwtCfg.Secret)
	if err != nil {
		return model.UserLoginRes{}, errors.Wrap(err, ecode.Unknown, "生成token失败")
	}
	return model.UserLoginRes{
		Token:   token,
		Timeout: int(jwtCfg.JwtTtl),
	}, nil
}

func (u *userService) UserLogout(ctx context.Context, tokenStr string) (model.UserLogoutRes, error) {
	if err := jwt.JoinBlackList(ctx, tokenStr, conf.AppConfig.Jwt.Secret); err != nil {
		return model.UserLogoutRes{}, errors.Wrap(err, ecode.Unknown, "注销失败")
	}
	return model.UserLogoutRes{IsSuccess: true}, nil
}

func (u *userService) UserGetInfo(ctx context.Context, userId int64) (model.UserGetInfoRes, error) {
	user, err := u.ud.UserGetById(ctx, userId)
	if err != nil {
		return model.UserGetInfoRes{}, errors.Wrap(err, ecode.DatabaseErr, "")
	}
	if user.Id == 0 {
		return model.UserGetInfoRes{}, errors.WithCode(ecode.NotFoundErr, "用户不存在")
	}
	return model.UserGetInfoRes{
		Username:  user.Username,
		Nickname:  user.Nickname,
		Email:     user.Email,
		CreatedAt: utils.Stamp2str(user.CreatedAt.Time().Unix()),
	}, nil
}
