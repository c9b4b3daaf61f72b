package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/RyanW84/ShiftsLogger-sub001/internal/dto"
	apperrors "github.com/RyanW84/ShiftsLogger-sub001/pkg/errors"
	"github.com/RyanW84/ShiftsLogger-sub001/pkg/outcome"
)

// Hooks 各实体接入通用 CRUD 所需的扩展点
//
//	E 实体模型，F 过滤器（指针类型），C 创建 DTO，U 更新 DTO
type Hooks[E any, F dto.Filter, C any, U any] interface {
	// Entity 实体名（单数小写），用于消息
	Entity() string
	// BuildQuery 依次应用字段谓词、全文搜索与排序，不做分页
	BuildQuery(db *gorm.DB, filter F) *gorm.DB
	// Preload 列表与单条读取时附加的关联加载
	Preload(db *gorm.DB) *gorm.DB
	// LoadByID 按主键读取，不存在时返回 gorm.ErrRecordNotFound
	LoadByID(ctx context.Context, db *gorm.DB, id int64) (*E, error)
	// FromCreateDto 校验并构造新实体
	FromCreateDto(ctx context.Context, req C) outcome.Result[*E]
	// ApplyUpdateDto 以 entity.ID 排除自身重新校验，通过后改写可变字段
	ApplyUpdateDto(ctx context.Context, entity *E, req U) outcome.Outcome
	// CheckDelete 删除前策略检查
	CheckDelete(ctx context.Context, entity *E) outcome.Outcome
	// IDOf 读取主键
	IDOf(entity *E) int64
}

// CRUD 通用仓储：统一的五个操作，全部以 Outcome 返回，不向调用方抛出错误
type CRUD[E any, F dto.Filter, C any, U any] struct {
	db     *gorm.DB
	hooks  Hooks[E, F, C, U]
	logger *zap.Logger
}

// NewCRUD 创建通用仓储
func NewCRUD[E any, F dto.Filter, C any, U any](db *gorm.DB, hooks Hooks[E, F, C, U], logger *zap.Logger) *CRUD[E, F, C, U] {
	return &CRUD[E, F, C, U]{db: db, hooks: hooks, logger: logger}
}

// ────────────────────── GetAll ──────────────────────

// GetAll 过滤、排序、分页查询。filter 为 nil 属于编程错误，会 panic。
// 总数在分页之前计算；超出范围的页码返回空列表与真实总数。
func (r *CRUD[E, F, C, U]) GetAll(ctx context.Context, filter F) outcome.Result[outcome.Page[E]] {
	page := filter.Page()
	page.ValidatePagination()

	query := r.hooks.BuildQuery(r.db.WithContext(ctx).Model(new(E)), filter)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return outcome.FailFrom[outcome.Page[E]](r.fail(apperrors.OpList, err))
	}

	items := make([]E, 0)
	if err := r.hooks.Preload(query.Session(&gorm.Session{})).
		Offset(page.Offset()).
		Limit(page.PageSize).
		Find(&items).Error; err != nil {
		return outcome.FailFrom[outcome.Page[E]](r.fail(apperrors.OpList, err))
	}
	if items == nil {
		items = make([]E, 0)
	}

	result := outcome.Page[E]{
		Items:      items,
		TotalCount: total,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}
	msg := fmt.Sprintf("Found %d %s(s)", total, r.hooks.Entity())
	if total == 0 {
		msg = fmt.Sprintf("No %ss found", r.hooks.Entity())
	}
	return outcome.Success(result, msg)
}

// ────────────────────── GetByID ──────────────────────

func (r *CRUD[E, F, C, U]) GetByID(ctx context.Context, id int64) outcome.Result[*E] {
	if id <= 0 {
		return outcome.FailFrom[*E](outcome.BadRequest(apperrors.ErrInvalidID.Error()))
	}

	entity, err := r.hooks.LoadByID(ctx, r.db.WithContext(ctx), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return outcome.NotFoundOf[*E](r.notFoundMessage(id))
		}
		return outcome.FailFrom[*E](r.fail(apperrors.OpGet, err))
	}

	return outcome.Success(entity, fmt.Sprintf("%s retrieved successfully", r.title()))
}

// ────────────────────── Create ──────────────────────

func (r *CRUD[E, F, C, U]) Create(ctx context.Context, req C) outcome.Result[*E] {
	built := r.hooks.FromCreateDto(ctx, req)
	if !built.IsSuccess {
		return built
	}

	entity := built.Data
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error; err != nil {
		return outcome.FailFrom[*E](r.fail(apperrors.OpCreate, err))
	}

	// 写入已提交；重新读取失败时消息带上已存储的 ID，便于追查
	id := r.hooks.IDOf(entity)
	reloaded, err := r.hooks.LoadByID(ctx, r.db.WithContext(ctx), id)
	if err != nil {
		return outcome.FailFrom[*E](r.reloadFailed(apperrors.OpCreate, id, err))
	}

	return outcome.Created(reloaded, fmt.Sprintf("%s created successfully", r.title()))
}

// ────────────────────── Update ──────────────────────

// Update 校验后只改写 DTO 管辖的字段；持久化后重新读取，
// 以反映存储侧派生字段与关联的最新状态。
func (r *CRUD[E, F, C, U]) Update(ctx context.Context, id int64, req U) outcome.Result[*E] {
	if id <= 0 {
		return outcome.FailFrom[*E](outcome.BadRequest(apperrors.ErrInvalidID.Error()))
	}

	entity, err := r.hooks.LoadByID(ctx, r.db.WithContext(ctx), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return outcome.NotFoundOf[*E](r.notFoundMessage(id))
		}
		return outcome.FailFrom[*E](r.fail(apperrors.OpUpdate, err))
	}

	if res := r.hooks.ApplyUpdateDto(ctx, entity, req); !res.IsSuccess {
		return outcome.FailFrom[*E](res)
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(entity).Error; err != nil {
		return outcome.FailFrom[*E](r.fail(apperrors.OpUpdate, err))
	}

	reloaded, err := r.hooks.LoadByID(ctx, r.db.WithContext(ctx), id)
	if err != nil {
		return outcome.FailFrom[*E](r.reloadFailed(apperrors.OpUpdate, id, err))
	}

	return outcome.Success(reloaded, fmt.Sprintf("%s updated successfully", r.title()))
}

// ────────────────────── Delete ──────────────────────

func (r *CRUD[E, F, C, U]) Delete(ctx context.Context, id int64) outcome.Outcome {
	if id <= 0 {
		return outcome.BadRequest(apperrors.ErrInvalidID.Error())
	}

	entity, err := r.hooks.LoadByID(ctx, r.db.WithContext(ctx), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return outcome.NotFound(r.notFoundMessage(id))
		}
		return r.fail(apperrors.OpDelete, err)
	}

	if res := r.hooks.CheckDelete(ctx, entity); !res.IsSuccess {
		return res
	}

	if err := r.db.WithContext(ctx).Delete(entity).Error; err != nil {
		return r.fail(apperrors.OpDelete, err)
	}

	return outcome.NoContent(fmt.Sprintf("%s deleted successfully", r.title()))
}

// ── 内部辅助方法 ──

// fail 归类错误；非预期错误记录日志
func (r *CRUD[E, F, C, U]) fail(op apperrors.Op, err error) outcome.Outcome {
	if apperrors.IsUnexpected(err) {
		r.logger.Error("仓储操作失败",
			zap.String("entity", r.hooks.Entity()),
			zap.String("op", string(op)),
			zap.Error(err),
		)
	}
	return apperrors.ToOutcome(op, r.hooks.Entity(), err)
}

// reloadFailed 写入成功但重新读取失败，一律按 InternalError 报告并记录 ID
func (r *CRUD[E, F, C, U]) reloadFailed(op apperrors.Op, id int64, err error) outcome.Outcome {
	r.logger.Error("写入成功但重新读取失败",
		zap.String("entity", r.hooks.Entity()),
		zap.String("op", string(op)),
		zap.Int64("id", id),
		zap.Error(err),
	)
	msg := fmt.Sprintf("%s with ID %d was saved but could not be reloaded: %v", r.title(), id, err)
	return outcome.Internal(apperrors.Message(op, r.hooks.Entity(), msg))
}

func (r *CRUD[E, F, C, U]) notFoundMessage(id int64) string {
	return fmt.Sprintf("%s with ID %d not found", r.title(), id)
}

func (r *CRUD[E, F, C, U]) title() string {
	name := r.hooks.Entity()
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
