package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/RyanW84/ShiftsLogger-sub001/internal/dto"
	"github.com/RyanW84/ShiftsLogger-sub001/internal/service"
	"github.com/RyanW84/ShiftsLogger-sub001/pkg/response"
)

// ShiftHandler 班次模块 HTTP 处理器
type ShiftHandler struct {
	shiftSvc service.ShiftService
}

// NewShiftHandler 创建 ShiftHandler
func NewShiftHandler(shiftSvc service.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftSvc: shiftSvc}
}

// ListShifts 获取班次列表
// GET /api/v1/shifts?worker_id=&location_id=&start_date=2026-03-01&end_date=&min_duration_minutes=
func (h *ShiftHandler) ListShifts(c *gin.Context) {
	var filter dto.ShiftFilter
	if !BindQuery(c, &filter) {
		return
	}
	response.Page(c, h.shiftSvc.GetAll(c.Request.Context(), &filter))
}

// GetShift 获取班次详情
// GET /api/v1/shifts/:id
func (h *ShiftHandler) GetShift(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		return
	}
	response.Result(c, h.shiftSvc.GetByID(c.Request.Context(), id))
}

// CreateShift 创建班次
// POST /api/v1/shifts
// 时间为 RFC3339，如 "2026-03-02T09:00:00Z"
func (h *ShiftHandler) CreateShift(c *gin.Context) {
	var req dto.CreateShiftRequest
	if !BindJSON(c, &req) {
		return
	}
	response.Result(c, h.shiftSvc.Create(c.Request.Context(), &req))
}

// UpdateShift 更新班次（按新建规则重新校验）
// PUT /api/v1/shifts/:id
func (h *ShiftHandler) UpdateShift(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		return
	}
	var req dto.UpdateShiftRequest
	if !BindJSON(c, &req) {
		return
	}
	response.Result(c, h.shiftSvc.Update(c.Request.Context(), id, &req))
}

// DeleteShift 删除班次
// DELETE /api/v1/shifts/:id
func (h *ShiftHandler) DeleteShift(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		return
	}
	response.Outcome(c, h.shiftSvc.Delete(c.Request.Context(), id))
}
