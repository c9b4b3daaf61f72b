package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/RyanW84/ShiftsLogger-sub001/internal/dto"
	"github.com/RyanW84/ShiftsLogger-sub001/internal/service"
	"github.com/RyanW84/ShiftsLogger-sub001/pkg/response"
)

// WorkerHandler 员工模块 HTTP 处理器
type WorkerHandler struct {
	workerSvc service.WorkerService
}

// NewWorkerHandler 创建 WorkerHandler
func NewWorkerHandler(workerSvc service.WorkerService) *WorkerHandler {
	return &WorkerHandler{workerSvc: workerSvc}
}

// ListWorkers 获取员工列表
// GET /api/v1/workers
func (h *WorkerHandler) ListWorkers(c *gin.Context) {
	var filter dto.WorkerFilter
	if !BindQuery(c, &filter) {
		return
	}
	response.Page(c, h.workerSvc.GetAll(c.Request.Context(), &filter))
}

// GetWorker 获取员工详情
// GET /api/v1/workers/:id
func (h *WorkerHandler) GetWorker(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		return
	}
	response.Result(c, h.workerSvc.GetByID(c.Request.Context(), id))
}

// CreateWorker 创建员工
// POST /api/v1/workers
func (h *WorkerHandler) CreateWorker(c *gin.Context) {
	var req dto.CreateWorkerRequest
	if !BindJSON(c, &req) {
		return
	}
	response.Result(c, h.workerSvc.Create(c.Request.Context(), &req))
}

// UpdateWorker 更新员工
// PUT /api/v1/workers/:id
func (h *WorkerHandler) UpdateWorker(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		return
	}
	var req dto.UpdateWorkerRequest
	if !BindJSON(c, &req) {
		return
	}
	response.Result(c, h.workerSvc.Update(c.Request.Context(), id, &req))
}

// DeleteWorker 删除员工（级联删除其班次）
// DELETE /api/v1/workers/:id
func (h *WorkerHandler) DeleteWorker(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		return
	}
	response.Outcome(c, h.workerSvc.Delete(c.Request.Context(), id))
}
