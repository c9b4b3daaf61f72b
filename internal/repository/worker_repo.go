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

// WorkerRepository 员工数据访问接口
type WorkerRepository interface {
	GetAll(ctx context.Context, filter *dto.WorkerFilter) outcome.Result[outcome.Page[model.Worker]]
	GetByID(ctx context.Context, id int64) outcome.Result[*model.Worker]
	Create(ctx context.Context, req *dto.CreateWorkerRequest) outcome.Result[*model.Worker]
	Update(ctx context.Context, id int64, req *dto.UpdateWorkerRequest) outcome.Result[*model.Worker]
	Delete(ctx context.Context, id int64) outcome.Outcome
}

// workerHooks 员工接入通用 CRUD 的实现
type workerHooks struct {
	validator *validation.Validator
}

// NewWorkerRepo 创建 WorkerRepository 实例
func NewWorkerRepo(db *gorm.DB, v *validation.Validator, logger *zap.Logger) WorkerRepository {
	return NewCRUD[model.Worker, *dto.WorkerFilter, *dto.CreateWorkerRequest, *dto.UpdateWorkerRequest](
		db, &workerHooks{validator: v}, logger,
	)
}

func (h *workerHooks) Entity() string { return "worker" }

func (h *workerHooks) BuildQuery(db *gorm.DB, f *dto.WorkerFilter) *gorm.DB {
	return BuildWorkerQuery(db, f)
}

func (h *workerHooks) Preload(db *gorm.DB) *gorm.DB { return db }

func (h *workerHooks) LoadByID(ctx context.Context, db *gorm.DB, id int64) (*model.Worker, error) {
	var w model.Worker
	if err := db.WithContext(ctx).Where("id = ?", id).First(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (h *workerHooks) FromCreateDto(ctx context.Context, req *dto.CreateWorkerRequest) outcome.Result[*model.Worker] {
	req.Normalize()
	if res := h.validator.ValidateWorker(ctx, req, 0); !res.IsSuccess {
		return outcome.FailFrom[*model.Worker](res)
	}
	return outcome.Success(&model.Worker{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}, "")
}

func (h *workerHooks) ApplyUpdateDto(ctx context.Context, w *model.Worker, req *dto.UpdateWorkerRequest) outcome.Outcome {
	in := dto.CreateWorkerRequest(*req)
	in.Normalize()
	if res := h.validator.ValidateWorker(ctx, &in, w.ID); !res.IsSuccess {
		return res
	}
	w.Name = in.Name
	w.Email = in.Email
	w.Phone = in.Phone
	return outcome.OK("")
}

// CheckDelete 员工删除无额外策略，关联班次由存储层级联删除
func (h *workerHooks) CheckDelete(_ context.Context, _ *model.Worker) outcome.Outcome {
	return outcome.OK("")
}

func (h *workerHooks) IDOf(w *model.Worker) int64 { return w.ID }
