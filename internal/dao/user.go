package dao

import (
	"context"

	"tradesense/internal/model/entity"
)

type UserDao interface {
	// 根据用户名获取user实体
	UserGetByName(ctx context.Context, username string) (entity.User, error)
	// 根据id获取用户
	UserGetById(ctx context.Context, userId int64) (entity.User, error)
	// 创建用户
	UserCreate(ctx context.Context, user *entity.User) error
	// 用户名是否已占用
	UserVerifyUsername(ctx context.Context, username string) (count int64, err error)
}
