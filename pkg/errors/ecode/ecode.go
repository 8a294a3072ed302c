package ecode

// 业务错误码，0表示成功，其余按模块分段
const (
	Success = 0

	// 通用
	Unknown           = 10001
	ValidateErr       = 10002
	NotFoundErr       = 10003
	DatabaseErr       = 10004
	RequireAuthErr    = 10005
	TooManyRequestErr = 10006

	// 用户
	UserExistErr    = 10101
	UserPasswordErr = 10102

	// 预测
	PredictionErr = 10201
)

var messages = map[int]string{
	Success:           "success",
	Unknown:           "unknown error",
	ValidateErr:       "validation failed",
	NotFoundErr:       "record not found",
	DatabaseErr:       "database error",
	RequireAuthErr:    "authentication required",
	TooManyRequestErr: "too many requests",
	UserExistErr:      "user already exists",
	UserPasswordErr:   "incorrect username or password",
	PredictionErr:     "prediction unavailable",
}

// Message 返回错误码的默认描述
func Message(code int) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return messages[Unknown]
}
