package ping

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Ping 健康检查
func Ping() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	}
}
