package validation

import (
	"context"

	"github.com/RyanW84/ShiftsLogger-sub001/internal/dto"
	"github.com/RyanW84/ShiftsLogger-sub001/pkg/outcome"
)

// ValidateLocation 校验地点写入请求。req 应已 Normalize。
func (v *Validator) ValidateLocation(ctx context.Context, req *dto.CreateLocationRequest, excludeID int64) outcome.Outcome {
	if res := aggregate(v.checkStruct(req)); !res.IsSuccess {
		return res
	}

	taken, err := v.locations.LocationNameTaken(ctx, req.Name, excludeID)
	if err != nil {
		return lookupFailed("location", err)
	}
	if taken {
		return outcome.Conflict("A location named " + req.Name + " already exists")
	}

	return outcome.OK("")
}
