package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RyanW84/ShiftsLogger-sub001/pkg/response"
)

// BodyLimit 请求体大小限制中间件
// 声明长度超限直接拒绝；未声明长度的请求由 MaxBytesReader 在读取时截断，
// 超限错误由 Handler 的绑定步骤转为 413
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.AbortWithError(c, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("Request body exceeds %d bytes", maxBytes))
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()
	}
}
