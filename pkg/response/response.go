package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RyanW84/ShiftsLogger-sub001/pkg/outcome"
)

// Envelope 统一响应结构。客户端必须依据 requestFailed 分支，
// 成功的空列表同样是合法结果。
type Envelope struct {
	RequestFailed   bool        `json:"requestFailed"`
	ResponseCode    int         `json:"responseCode"`
	Message         string      `json:"message"`
	Data            interface{} `json:"data"`
	TotalCount      int64       `json:"totalCount"`
	PageNumber      int         `json:"pageNumber"`
	PageSize        int         `json:"pageSize"`
	TotalPages      int         `json:"totalPages"`
	HasNextPage     bool        `json:"hasNextPage"`
	HasPreviousPage bool        `json:"hasPreviousPage"`
}

// FromOutcome 由结果构造信封（不含分页）
func FromOutcome(o outcome.Outcome, data interface{}) Envelope {
	env := Envelope{
		RequestFailed: !o.IsSuccess,
		ResponseCode:  o.Status.HTTPCode(),
		Message:       o.Message,
	}
	if o.IsSuccess {
		env.Data = data
	}
	return env
}

// FromPage 由分页结果构造信封
func FromPage[T any](r outcome.Result[outcome.Page[T]]) Envelope {
	if !r.IsSuccess {
		return FromOutcome(r.Outcome, nil)
	}
	env := FromOutcome(r.Outcome, r.Data.Items)
	env.TotalCount = r.Data.TotalCount
	env.PageNumber = r.Data.PageNumber
	env.PageSize = r.Data.PageSize
	env.TotalPages = r.Data.TotalPages()
	env.HasNextPage = r.Data.HasNextPage()
	env.HasPreviousPage = r.Data.HasPreviousPage()
	return env
}

// ── 写出 ──

// write 每个响应都带信封；NoContent 以 200 发送，responseCode 保留 204
func write(c *gin.Context, env Envelope) {
	status := env.ResponseCode
	if status == http.StatusNoContent {
		status = http.StatusOK
	}
	c.JSON(status, env)
}

// Outcome 写出无载荷结果
func Outcome(c *gin.Context, o outcome.Outcome) {
	write(c, FromOutcome(o, nil))
}

// Result 写出带载荷结果
func Result[T any](c *gin.Context, r outcome.Result[T]) {
	write(c, FromOutcome(r.Outcome, r.Data))
}

// Page 写出分页结果
func Page[T any](c *gin.Context, r outcome.Result[outcome.Page[T]]) {
	write(c, FromPage(r))
}

// ── 边界层错误（中间件、参数解析）──

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, Envelope{
		RequestFailed: true,
		ResponseCode:  httpStatus,
		Message:       message,
	})
}

// AbortWithError 写出错误并中止后续处理
func AbortWithError(c *gin.Context, httpStatus int, message string) {
	Error(c, httpStatus, message)
	c.Abort()
}

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, message string) {
	AbortWithError(c, http.StatusUnauthorized, message)
}

// Forbidden 403
func Forbidden(c *gin.Context, message string) {
	AbortWithError(c, http.StatusForbidden, message)
}

// TooManyRequests 429
func TooManyRequests(c *gin.Context, message string) {
	AbortWithError(c, http.StatusTooManyRequests, message)
}

// InternalError 500
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}
