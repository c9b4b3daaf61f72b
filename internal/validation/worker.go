package validation

import (
	"context"

	"github.com/RyanW84/ShiftsLogger-sub001/internal/dto"
	"github.com/RyanW84/ShiftsLogger-sub001/pkg/outcome"
)

// ValidateWorker 校验员工写入请求。excludeID 为更新时的自身 ID（新建传 0）。
// req 应已 Normalize。
func (v *Validator) ValidateWorker(ctx context.Context, req *dto.CreateWorkerRequest, excludeID int64) outcome.Outcome {
	if res := aggregate(v.checkStruct(req)); !res.IsSuccess {
		return res
	}

	if req.Email != nil {
		taken, err := v.workers.EmailTaken(ctx, *req.Email, excludeID)
		if err != nil {
			return lookupFailed("worker", err)
		}
		if taken {
			return outcome.Conflict("A worker with email " + *req.Email + " already exists")
		}
	}

	if req.Phone != nil {
		taken, err := v.workers.PhoneTaken(ctx, *req.Phone, excludeID)
		if err != nil {
			return lookupFailed("worker", err)
		}
		if taken {
			return outcome.Conflict("A worker with phone number " + *req.Phone + " already exists")
		}
	}

	return outcome.OK("")
}
