// Package outcome 提供统一的操作结果类型。
//
// 预期内的失败（未找到、校验失败、冲突）一律以 Outcome 值返回，
// 不通过 error 或 panic 传递；调用方必须依据 IsSuccess 分支，
// 不得根据 Data 是否为空推断成功与否。
package outcome

import "net/http"

// Status 结果分类
type Status int

const (
	StatusOK Status = iota
	StatusCreated
	StatusNoContent
	StatusBadRequest
	StatusNotFound
	StatusConflict
	StatusInternalError
)

var statusNames = map[Status]string{
	StatusOK:            "OK",
	StatusCreated:       "Created",
	StatusNoContent:     "NoContent",
	StatusBadRequest:    "BadRequest",
	StatusNotFound:      "NotFound",
	StatusConflict:      "Conflict",
	StatusInternalError: "InternalError",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// HTTPCode 对应的 HTTP 状态码
func (s Status) HTTPCode() int {
	switch s {
	case StatusOK:
		return http.StatusOK
	case StatusCreated:
		return http.StatusCreated
	case StatusNoContent:
		return http.StatusNoContent
	case StatusBadRequest:
		return http.StatusBadRequest
	case StatusNotFound:
		return http.StatusNotFound
	case StatusConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// IsFailure 是否为失败类状态
func (s Status) IsFailure() bool {
	return s >= StatusBadRequest
}

// ── 无载荷结果 ──

// Outcome 无数据的操作结果
type Outcome struct {
	IsSuccess bool
	Message   string
	Status    Status
}

// OK 成功
func OK(message string) Outcome {
	return Outcome{IsSuccess: true, Message: message, Status: StatusOK}
}

// NoContent 成功且无返回内容（删除）
func NoContent(message string) Outcome {
	return Outcome{IsSuccess: true, Message: message, Status: StatusNoContent}
}

// Fail 失败；status 非失败类时按 BadRequest 处理
func Fail(message string, status Status) Outcome {
	if !status.IsFailure() {
		status = StatusBadRequest
	}
	return Outcome{IsSuccess: false, Message: message, Status: status}
}

func BadRequest(message string) Outcome { return Fail(message, StatusBadRequest) }
func NotFound(message string) Outcome   { return Fail(message, StatusNotFound) }
func Conflict(message string) Outcome   { return Fail(message, StatusConflict) }
func Internal(message string) Outcome   { return Fail(message, StatusInternalError) }

// ── 带载荷结果 ──

// Result 带数据的操作结果。失败时 Data 恒为零值。
type Result[T any] struct {
	Outcome
	Data T
}

// Success 成功，默认 StatusOK
func Success[T any](data T, message string) Result[T] {
	return SuccessWith(data, message, StatusOK)
}

// SuccessWith 以指定状态返回成功
func SuccessWith[T any](data T, message string, status Status) Result[T] {
	if status.IsFailure() {
		status = StatusOK
	}
	return Result[T]{
		Outcome: Outcome{IsSuccess: true, Message: message, Status: status},
		Data:    data,
	}
}

// Created 创建成功
func Created[T any](data T, message string) Result[T] {
	return SuccessWith(data, message, StatusCreated)
}

// Failure 失败
func Failure[T any](message string, status Status) Result[T] {
	return Result[T]{Outcome: Fail(message, status)}
}

// NotFoundOf 未找到
func NotFoundOf[T any](message string) Result[T] {
	return Failure[T](message, StatusNotFound)
}

// FailFrom 将失败的 Outcome 提升为 Result。o 为成功时视为编程错误。
func FailFrom[T any](o Outcome) Result[T] {
	if o.IsSuccess {
		panic("outcome: FailFrom called with a successful outcome")
	}
	return Result[T]{Outcome: o}
}

// Map 转换成功结果的数据，失败原样透传
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if !r.IsSuccess {
		return Result[U]{Outcome: r.Outcome}
	}
	return Result[U]{Outcome: r.Outcome, Data: fn(r.Data)}
}
