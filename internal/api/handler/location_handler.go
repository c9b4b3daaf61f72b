package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/RyanW84/ShiftsLogger-sub001/internal/dto"
	"github.com/RyanW84/ShiftsLogger-sub001/internal/service"
	"github.com/RyanW84/ShiftsLogger-sub001/pkg/response"
)

// LocationHandler 地点模块 HTTP 处理器
type LocationHandler struct {
	locationSvc service.LocationService
}

// NewLocationHandler 创建 LocationHandler
func NewLocationHandler(locationSvc service.LocationService) *LocationHandler {
	return &LocationHandler{locationSvc: locationSvc}
}

// ListLocations 获取地点列表
// GET /api/v1/locations
func (h *LocationHandler) ListLocations(c *gin.Context) {
	var filter dto.LocationFilter
	if !BindQuery(c, &filter) {
		return
	}
	response.Page(c, h.locationSvc.GetAll(c.Request.Context(), &filter))
}

// GetLocation 获取地点详情
// GET /api/v1/locations/:id
func (h *LocationHandler) GetLocation(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		return
	}
	response.Result(c, h.locationSvc.GetByID(c.Request.Context(), id))
}

// CreateLocation 创建地点
// POST /api/v1/locations
func (h *LocationHandler) CreateLocation(c *gin.Context) {
	var req dto.CreateLocationRequest
	if !BindJSON(c, &req) {
		return
	}
	response.Result(c, h.locationSvc.Create(c.Request.Context(), &req))
}

// UpdateLocation 更新地点
// PUT /api/v1/locations/:id
func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		return
	}
	var req dto.UpdateLocationRequest
	if !BindJSON(c, &req) {
		return
	}
	response.Result(c, h.locationSvc.Update(c.Request.Context(), id, &req))
}

// DeleteLocation 删除地点（级联删除其班次）
// DELETE /api/v1/locations/:id
func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		return
	}
	response.Outcome(c, h.locationSvc.Delete(c.Request.Context(), id))
}
