package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/RyanW84/ShiftsLogger-sub001/internal/dto"
	"github.com/RyanW84/ShiftsLogger-sub001/internal/model"
	"github.com/RyanW84/ShiftsLogger-sub001/internal/validation"
	"github.com/RyanW84/ShiftsLogger-sub001/pkg/outcome"
)

// ShiftRepository 班次数据访问接口
type ShiftRepository interface {
	GetAll(ctx context.Context, filter *dto.ShiftFilter) outcome.Result[outcome.Page[model.Shift]]
	GetByID(ctx context.Context, id int64) outcome.Result[*model.Shift]
	Create(ctx context.Context, req *dto.CreateShiftRequest) outcome.Result[*model.Shift]
	Update(ctx context.Context, id int64, req *dto.UpdateShiftRequest) outcome.Result[*model.Shift]
	Delete(ctx context.Context, id int64) outcome.Outcome
}

type shiftHooks struct {
	validator *validation.Validator
}

// NewShiftRepo 创建 ShiftRepository 实例
func NewShiftRepo(db *gorm.DB, v *validation.Validator, logger *zap.Logger) ShiftRepository {
	return NewCRUD[model.Shift, *dto.ShiftFilter, *dto.CreateShiftRequest, *dto.UpdateShiftRequest](
		db, &shiftHooks{validator: v}, logger,
	)
}

func (h *shiftHooks) Entity() string { return "shift" }

func (h *shiftHooks) BuildQuery(db *gorm.DB, f *dto.ShiftFilter) *gorm.DB {
	return BuildShiftQuery(db, f)
}

func (h *shiftHooks) Preload(db *gorm.DB) *gorm.DB {
	return db.Preload("Worker").Preload("Location")
}

func (h *shiftHooks) LoadByID(ctx context.Context, db *gorm.DB, id int64) (*model.Shift, error) {
	var s model.Shift
	err := h.Preload(db.WithContext(ctx)).
		Where("id = ?", id).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (h *shiftHooks) FromCreateDto(ctx context.Context, req *dto.CreateShiftRequest) outcome.Result[*model.Shift] {
	if res := h.validator.ValidateShift(ctx, req, 0); !res.IsSuccess {
		return outcome.FailFrom[*model.Shift](res)
	}
	return outcome.Success(&model.Shift{
		WorkerID:   req.WorkerID,
		LocationID: req.LocationID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	}, "")
}

// ApplyUpdateDto 按新建规则重新校验；清空已加载的关联，避免保存时覆盖外键
func (h *shiftHooks) ApplyUpdateDto(ctx context.Context, s *model.Shift, req *dto.UpdateShiftRequest) outcome.Outcome {
	in := dto.CreateShiftRequest(*req)
	if res := h.validator.ValidateShift(ctx, &in, s.ID); !res.IsSuccess {
		return res
	}
	s.WorkerID = in.WorkerID
	s.LocationID = in.LocationID
	s.StartTime = in.StartTime
	s.EndTime = in.EndTime
	s.Worker = nil
	s.Location = nil
	return outcome.OK("")
}

func (h *shiftHooks) CheckDelete(_ context.Context, s *model.Shift) outcome.Outcome {
	return h.validator.ValidateShiftDelete(s)
}

func (h *shiftHooks) IDOf(s *model.Shift) int64 { return s.ID }
