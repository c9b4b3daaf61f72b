package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/RyanW84/ShiftsLogger-sub001/internal/dto"
	"github.com/RyanW84/ShiftsLogger-sub001/internal/model"
	"github.com/RyanW84/ShiftsLogger-sub001/internal/repository"
	"github.com/RyanW84/ShiftsLogger-sub001/pkg/outcome"
)

// WorkerService 员工业务接口
type WorkerService interface {
	GetAll(ctx context.Context, filter *dto.WorkerFilter) outcome.Result[outcome.Page[dto.WorkerResponse]]
	GetByID(ctx context.Context, id int64) outcome.Result[*dto.WorkerResponse]
	Create(ctx context.Context, req *dto.CreateWorkerRequest) outcome.Result[*dto.WorkerResponse]
	Update(ctx context.Context, id int64, req *dto.UpdateWorkerRequest) outcome.Result[*dto.WorkerResponse]
	Delete(ctx context.Context, id int64) outcome.Outcome
}

type workerService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewWorkerService 创建 WorkerService 实例
func NewWorkerService(repo *repository.Repository, logger *zap.Logger) WorkerService {
	return &workerService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *workerService) GetAll(ctx context.Context, filter *dto.WorkerFilter) outcome.Result[outcome.Page[dto.WorkerResponse]] {
	res := s.repo.Worker.GetAll(ctx, filter)
	return outcome.Map(res, func(p outcome.Page[model.Worker]) outcome.Page[dto.WorkerResponse] {
		return outcome.MapPage(p, toWorkerResponse)
	})
}

// ────────────────────── GetByID ──────────────────────

func (s *workerService) GetByID(ctx context.Context, id int64) outcome.Result[*dto.WorkerResponse] {
	return outcome.Map(s.repo.Worker.GetByID(ctx, id), toWorkerResponsePtr)
}

// ────────────────────── Create ──────────────────────

func (s *workerService) Create(ctx context.Context, req *dto.CreateWorkerRequest) outcome.Result[*dto.WorkerResponse] {
	res := s.repo.Worker.Create(ctx, req)
	if res.IsSuccess {
		s.logger.Info("员工已创建", zap.Int64("worker_id", res.Data.ID))
	}
	return outcome.Map(res, toWorkerResponsePtr)
}

// ────────────────────── Update ──────────────────────

func (s *workerService) Update(ctx context.Context, id int64, req *dto.UpdateWorkerRequest) outcome.Result[*dto.WorkerResponse] {
	res := s.repo.Worker.Update(ctx, id, req)
	if res.IsSuccess {
		s.logger.Info("员工已更新", zap.Int64("worker_id", id))
	}
	return outcome.Map(res, toWorkerResponsePtr)
}

// ────────────────────── Delete ──────────────────────

func (s *workerService) Delete(ctx context.Context, id int64) outcome.Outcome {
	res := s.repo.Worker.Delete(ctx, id)
	if res.IsSuccess {
		s.logger.Info("员工已删除", zap.Int64("worker_id", id))
	}
	return res
}

// ── 内部辅助方法 ──

func toWorkerResponse(w model.Worker) dto.WorkerResponse {
	return dto.WorkerResponse{
		ID:        w.ID,
		Name:      w.Name,
		Email:     w.Email,
		Phone:     w.Phone,
		CreatedAt: formatTime(w.CreatedAt),
		UpdatedAt: formatTime(w.UpdatedAt),
	}
}

func toWorkerResponsePtr(w *model.Worker) *dto.WorkerResponse {
	resp := toWorkerResponse(*w)
	return &resp
}
