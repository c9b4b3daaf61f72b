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

// LocationRepository 地点数据访问接口
type LocationRepository interface {
	GetAll(ctx context.Context, filter *dto.LocationFilter) outcome.Result[outcome.Page[model.Location]]
	GetByID(ctx context.Context, id int64) outcome.Result[*model.Location]
	Create(ctx context.Context, req *dto.CreateLocationRequest) outcome.Result[*model.Location]
	Update(ctx context.Context, id int64, req *dto.UpdateLocationRequest) outcome.Result[*model.Location]
	Delete(ctx context.Context, id int64) outcome.Outcome
}

type locationHooks struct {
	validator *validation.Validator
}

// NewLocationRepo 创建 LocationRepository 实例
func NewLocationRepo(db *gorm.DB, v *validation.Validator, logger *zap.Logger) LocationRepository {
	return NewCRUD[model.Location, *dto.LocationFilter, *dto.CreateLocationRequest, *dto.UpdateLocationRequest](
		db, &locationHooks{validator: v}, logger,
	)
}

func (h *locationHooks) Entity() string { return "location" }

func (h *locationHooks) BuildQuery(db *gorm.DB, f *dto.LocationFilter) *gorm.DB {
	return BuildLocationQuery(db, f)
}

func (h *locationHooks) Preload(db *gorm.DB) *gorm.DB { return db }

func (h *locationHooks) LoadByID(ctx context.Context, db *gorm.DB, id int64) (*model.Location, error) {
	var loc model.Location
	if err := db.WithContext(ctx).Where("id = ?", id).First(&loc).Error; err != nil {
		return nil, err
	}
	return &loc, nil
}

func (h *locationHooks) FromCreateDto(ctx context.Context, req *dto.CreateLocationRequest) outcome.Result[*model.Location] {
	req.Normalize()
	if res := h.validator.ValidateLocation(ctx, req, 0); !res.IsSuccess {
		return outcome.FailFrom[*model.Location](res)
	}
	loc := &model.Location{}
	assignLocation(loc, req)
	return outcome.Success(loc, "")
}

func (h *locationHooks) ApplyUpdateDto(ctx context.Context, loc *model.Location, req *dto.UpdateLocationRequest) outcome.Outcome {
	in := dto.CreateLocationRequest(*req)
	in.Normalize()
	if res := h.validator.ValidateLocation(ctx, &in, loc.ID); !res.IsSuccess {
		return res
	}
	assignLocation(loc, &in)
	return outcome.OK("")
}

func (h *locationHooks) CheckDelete(_ context.Context, _ *model.Location) outcome.Outcome {
	return outcome.OK("")
}

func (h *locationHooks) IDOf(loc *model.Location) int64 { return loc.ID }

func assignLocation(loc *model.Location, req *dto.CreateLocationRequest) {
	loc.Name = req.Name
	loc.Address = req.Address
	loc.Town = req.Town
	loc.County = req.County
	loc.Postcode = req.Postcode
	loc.Country = req.Country
}
