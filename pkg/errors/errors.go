// Package errors 在边界处把非预期错误归类为 (状态, 消息)。
package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/RyanW84/ShiftsLogger-sub001/pkg/outcome"
)

// ErrInvalidID 标识无效（<= 0）的主键
var ErrInvalidID = errors.New("ID must be greater than zero")

// Op 仓储操作，用于拼装 "Error <verb>ing <entity>" 消息
type Op string

const (
	OpGet      Op = "retrieve"
	OpList     Op = "list"
	OpCreate   Op = "create"
	OpUpdate   Op = "update"
	OpDelete   Op = "delete"
	OpValidate Op = "validate"
)

// Classify 将错误映射到结果分类与对外消息。
// 记录不存在 → NotFound；唯一约束/外键冲突 → Conflict；其余（含取消）→ InternalError。
func Classify(err error) (outcome.Status, string) {
	switch {
	case err == nil:
		return outcome.StatusOK, ""
	case errors.Is(err, ErrInvalidID):
		return outcome.StatusBadRequest, ErrInvalidID.Error()
	case errors.Is(err, gorm.ErrRecordNotFound):
		return outcome.StatusNotFound, "record not found"
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return outcome.StatusConflict, "a record with the same unique value already exists"
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return outcome.StatusConflict, "referenced record does not exist or is still referenced"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return outcome.StatusInternalError, "request cancelled: " + err.Error()
	default:
		return outcome.StatusInternalError, err.Error()
	}
}

// Gerund 动词的 -ing 形式
func (op Op) Gerund() string {
	return strings.TrimSuffix(string(op), "e") + "ing"
}

// Message 生成 "Error <verb>ing <entity>: <message>"
func Message(op Op, entity string, msg string) string {
	return fmt.Sprintf("Error %s %s: %s", op.Gerund(), entity, msg)
}

// ToOutcome 归类并包装为失败结果。仅 InternalError 附加操作前缀。
func ToOutcome(op Op, entity string, err error) outcome.Outcome {
	status, msg := Classify(err)
	if status == outcome.StatusInternalError {
		msg = Message(op, entity, msg)
	}
	return outcome.Fail(msg, status)
}

// IsUnexpected 是否需要按异常记录日志
func IsUnexpected(err error) bool {
	status, _ := Classify(err)
	return status == outcome.StatusInternalError
}
