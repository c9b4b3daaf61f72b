package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/RyanW84/ShiftsLogger-sub001/pkg/response"
)

// ParseID 解析路径参数 :id。非整数时写入 400 并返回 false；
// 数值范围（<= 0）由仓储层统一校验。
func ParseID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		response.BadRequest(c, fmt.Sprintf("ID must be an integer, got %q", raw))
		return 0, false
	}
	return id, true
}

// BindJSON 绑定请求体。失败时写入 400（超限为 413）并返回 false。
// 字段规则由校验管线处理，此处只负责解码。
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

// BindQuery 绑定查询参数到过滤器
func BindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		response.BadRequest(c, "Invalid query parameters: "+err.Error())
		return false
	}
	return true
}
