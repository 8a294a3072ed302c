package model

// 用户登陆发起请求的参数
type UserLoginReq struct {
	Username string `json:"username" validate:"required" label:"用户名"`
	Password string `json:"password" validate:"required" label:"密码"`
}

// 用户登陆成功响应的结构体
type UserLoginRes struct {
	Token   string `json:"token"`
	Timeout int    `json:"timeout"`
}

// 用户注册的参数
type UserRegisterReq struct {
	Username string `json:"username" validate:"required,min=3,max=32" label:"用户名"`
	Password string `json:"password" validate:"required,min=6" label:"密码"`
	Email    string `json:"email" validate:"required,email" label:"邮箱地址"`
}

type UserRegisterRes struct {
	IsSuccess bool `json:"is_success"`
}

type UserGetInfoRes struct {
	Username  string `json:"username"`
	Nickname  string `json:"nickname"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type UserLogoutRes struct {
	IsSuccess bool `json:"is_success"`
}
