package validation

import (
	"context"
	"fmt"

	"github.com/RyanW84/ShiftsLogger-sub001/internal/dto"
	"github.com/RyanW84/ShiftsLogger-sub001/internal/model"
	"github.com/RyanW84/ShiftsLogger-sub001/pkg/outcome"
)

// ValidateShift 校验班次写入请求，更新与新建执行同一套规则。
//
// 顺序：字段格式 → 员工存在 → 地点存在 → 起止先后 → 时长范围 → 过去容差 → 员工重叠 → 地点重叠。
// 重叠检查依赖被引用的记录，因此必须在存在性检查之后。
func (v *Validator) ValidateShift(ctx context.Context, req *dto.CreateShiftRequest, excludeID int64) outcome.Outcome {
	if res := aggregate(v.checkStruct(req)); !res.IsSuccess {
		return res
	}

	exists, err := v.workers.WorkerExists(ctx, req.WorkerID)
	if err != nil {
		return lookupFailed("shift", err)
	}
	if !exists {
		return outcome.BadRequest(fmt.Sprintf("Worker with ID %d does not exist", req.WorkerID))
	}

	exists, err = v.locations.LocationExists(ctx, req.LocationID)
	if err != nil {
		return lookupFailed("shift", err)
	}
	if !exists {
		return outcome.BadRequest(fmt.Sprintf("Location with ID %d does not exist", req.LocationID))
	}

	if res := v.checkTimes(req); !res.IsSuccess {
		return res
	}

	if !v.policy.CheckOverlap {
		return outcome.OK("")
	}

	overlap, err := v.shifts.WorkerHasOverlap(ctx, req.WorkerID, req.StartTime, req.EndTime, excludeID)
	if err != nil {
		return lookupFailed("shift", err)
	}
	if overlap {
		return outcome.Conflict(fmt.Sprintf("Worker %d already has a shift overlapping %s to %s",
			req.WorkerID, req.StartTime.Format(timeLayout), req.EndTime.Format(timeLayout)))
	}

	overlap, err = v.shifts.LocationHasOverlap(ctx, req.LocationID, req.StartTime, req.EndTime, excludeID)
	if err != nil {
		return lookupFailed("shift", err)
	}
	if overlap {
		return outcome.Conflict(fmt.Sprintf("Location %d already has a shift overlapping %s to %s",
			req.LocationID, req.StartTime.Format(timeLayout), req.EndTime.Format(timeLayout)))
	}

	return outcome.OK("")
}

const timeLayout = "2006-01-02 15:04 MST"

func (v *Validator) checkTimes(req *dto.CreateShiftRequest) outcome.Outcome {
	if !req.StartTime.Before(req.EndTime) {
		return outcome.BadRequest("Start time must be before end time")
	}

	d := req.EndTime.Sub(req.StartTime)
	if d < v.policy.MinShiftDuration {
		return outcome.BadRequest(fmt.Sprintf("Shift must last at least %s", v.policy.MinShiftDuration))
	}
	if d > v.policy.MaxShiftDuration {
		return outcome.BadRequest(fmt.Sprintf("Shift cannot last longer than %s", v.policy.MaxShiftDuration))
	}

	earliest := v.now().Add(-v.policy.PastTolerance)
	if req.StartTime.Before(earliest) {
		return outcome.BadRequest(fmt.Sprintf("Start time cannot be more than %s in the past", v.policy.PastTolerance))
	}

	return outcome.OK("")
}

// ValidateShiftDelete 已开始超过宽限期的班次禁止删除（可配置）
func (v *Validator) ValidateShiftDelete(shift *model.Shift) outcome.Outcome {
	if !v.policy.BlockStartedShiftDelete {
		return outcome.OK("")
	}
	if v.now().After(shift.StartTime.Add(v.policy.DeleteGrace)) {
		return outcome.Conflict(fmt.Sprintf("Cannot delete shift %d: it started more than %s ago", shift.ID, v.policy.DeleteGrace))
	}
	return outcome.OK("")
}
