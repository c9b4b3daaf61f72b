package service

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/RyanW84/ShiftsLogger-sub001/internal/dto"
	"github.com/RyanW84/ShiftsLogger-sub001/internal/model"
	"github.com/RyanW84/ShiftsLogger-sub001/internal/repository"
	"github.com/RyanW84/ShiftsLogger-sub001/pkg/outcome"
)

// ShiftService 班次业务接口
type ShiftService interface {
	GetAll(ctx context.Context, filter *dto.ShiftFilter) outcome.Result[outcome.Page[dto.ShiftResponse]]
	GetByID(ctx context.Context, id int64) outcome.Result[*dto.ShiftResponse]
	Create(ctx context.Context, req *dto.CreateShiftRequest) outcome.Result[*dto.ShiftResponse]
	Update(ctx context.Context, id int64, req *dto.UpdateShiftRequest) outcome.Result[*dto.ShiftResponse]
	Delete(ctx context.Context, id int64) outcome.Outcome
}

type shiftService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewShiftService 创建 ShiftService 实例
func NewShiftService(repo *repository.Repository, logger *zap.Logger) ShiftService {
	return &shiftService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *shiftService) GetAll(ctx context.Context, filter *dto.ShiftFilter) outcome.Result[outcome.Page[dto.ShiftResponse]] {
	return outcome.Map(s.repo.Shift.GetAll(ctx, filter), func(p outcome.Page[model.Shift]) outcome.Page[dto.ShiftResponse] {
		return outcome.MapPage(p, toShiftResponse)
	})
}

// ────────────────────── GetByID ──────────────────────

func (s *shiftService) GetByID(ctx context.Context, id int64) outcome.Result[*dto.ShiftResponse] {
	return outcome.Map(s.repo.Shift.GetByID(ctx, id), toShiftResponsePtr)
}

// ────────────────────── Create ──────────────────────

func (s *shiftService) Create(ctx context.Context, req *dto.CreateShiftRequest) outcome.Result[*dto.ShiftResponse] {
	res := s.repo.Shift.Create(ctx, req)
	if res.IsSuccess {
		s.logger.Info("班次已创建",
			zap.Int64("shift_id", res.Data.ID),
			zap.Int64("worker_id", res.Data.WorkerID),
			zap.Int64("location_id", res.Data.LocationID),
		)
	}
	return outcome.Map(res, toShiftResponsePtr)
}

// ────────────────────── Update ──────────────────────

func (s *shiftService) Update(ctx context.Context, id int64, req *dto.UpdateShiftRequest) outcome.Result[*dto.ShiftResponse] {
	res := s.repo.Shift.Update(ctx, id, req)
	if res.IsSuccess {
		s.logger.Info("班次已更新", zap.Int64("shift_id", id))
	}
	return outcome.Map(res, toShiftResponsePtr)
}

// ────────────────────── Delete ──────────────────────

func (s *shiftService) Delete(ctx context.Context, id int64) outcome.Outcome {
	res := s.repo.Shift.Delete(ctx, id)
	if res.IsSuccess {
		s.logger.Info("班次已删除", zap.Int64("shift_id", id))
	}
	return res
}

// ── 内部辅助方法 ──

func toShiftResponse(sh model.Shift) dto.ShiftResponse {
	resp := dto.ShiftResponse{
		ID:              sh.ID,
		WorkerID:        sh.WorkerID,
		LocationID:      sh.LocationID,
		StartTime:       formatTime(sh.StartTime),
		EndTime:         formatTime(sh.EndTime),
		DurationMinutes: sh.DurationMinutes,
		DurationHours:   durationHours(sh.DurationMinutes),
		CreatedAt:       formatTime(sh.CreatedAt),
		UpdatedAt:       formatTime(sh.UpdatedAt),
	}
	if sh.Worker != nil {
		resp.WorkerName = sh.Worker.Name
	}
	if sh.Location != nil {
		resp.LocationName = sh.Location.Name
	}
	return resp
}

func toShiftResponsePtr(sh *model.Shift) *dto.ShiftResponse {
	resp := toShiftResponse(*sh)
	return &resp
}

// durationHours 保留两位小数
func durationHours(minutes int) float64 {
	return math.Round(float64(minutes)/60*100) / 100
}
