package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/RyanW84/ShiftsLogger-sub001/internal/dto"
	"github.com/RyanW84/ShiftsLogger-sub001/internal/model"
	"github.com/RyanW84/ShiftsLogger-sub001/internal/repository"
	"github.com/RyanW84/ShiftsLogger-sub001/pkg/outcome"
)

// LocationService 地点业务接口
type LocationService interface {
	GetAll(ctx context.Context, filter *dto.LocationFilter) outcome.Result[outcome.Page[dto.LocationResponse]]
	GetByID(ctx context.Context, id int64) outcome.Result[*dto.LocationResponse]
	Create(ctx context.Context, req *dto.CreateLocationRequest) outcome.Result[*dto.LocationResponse]
	Update(ctx context.Context, id int64, req *dto.UpdateLocationRequest) outcome.Result[*dto.LocationResponse]
	Delete(ctx context.Context, id int64) outcome.Outcome
}

type locationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLocationService 创建 LocationService 实例
func NewLocationService(repo *repository.Repository, logger *zap.Logger) LocationService {
	return &locationService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *locationService) GetAll(ctx context.Context, filter *dto.LocationFilter) outcome.Result[outcome.Page[dto.LocationResponse]] {
	return outcome.Map(s.repo.Location.GetAll(ctx, filter), func(p outcome.Page[model.Location]) outcome.Page[dto.LocationResponse] {
		return outcome.MapPage(p, toLocationResponse)
	})
}

// ────────────────────── GetByID ──────────────────────

func (s *locationService) GetByID(ctx context.Context, id int64) outcome.Result[*dto.LocationResponse] {
	return outcome.Map(s.repo.Location.GetByID(ctx, id), toLocationResponsePtr)
}

// ────────────────────── Create ──────────────────────

func (s *locationService) Create(ctx context.Context, req *dto.CreateLocationRequest) outcome.Result[*dto.LocationResponse] {
	res := s.repo.Location.Create(ctx, req)
	if res.IsSuccess {
		s.logger.Info("地点已创建", zap.Int64("location_id", res.Data.ID))
	}
	return outcome.Map(res, toLocationResponsePtr)
}

// ────────────────────── Update ──────────────────────

func (s *locationService) Update(ctx context.Context, id int64, req *dto.UpdateLocationRequest) outcome.Result[*dto.LocationResponse] {
	res := s.repo.Location.Update(ctx, id, req)
	if res.IsSuccess {
		s.logger.Info("地点已更新", zap.Int64("location_id", id))
	}
	return outcome.Map(res, toLocationResponsePtr)
}

// ────────────────────── Delete ──────────────────────

func (s *locationService) Delete(ctx context.Context, id int64) outcome.Outcome {
	res := s.repo.Location.Delete(ctx, id)
	if res.IsSuccess {
		s.logger.Info("地点已删除", zap.Int64("location_id", id))
	}
	return res
}

// ── 内部辅助方法 ──

func toLocationResponse(loc model.Location) dto.LocationResponse {
	return dto.LocationResponse{
		ID:        loc.ID,
		Name:      loc.Name,
		Address:   loc.Address,
		Town:      loc.Town,
		County:    loc.County,
		Postcode:  loc.Postcode,
		Country:   loc.Country,
		CreatedAt: formatTime(loc.CreatedAt),
		UpdatedAt: formatTime(loc.UpdatedAt),
	}
}

func toLocationResponsePtr(loc *model.Location) *dto.LocationResponse {
	resp := toLocationResponse(*loc)
	return &resp
}
