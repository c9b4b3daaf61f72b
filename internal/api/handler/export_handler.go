package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/RyanW84/ShiftsLogger-sub001/internal/dto"
	"github.com/RyanW84/ShiftsLogger-sub001/internal/service"
	"github.com/RyanW84/ShiftsLogger-sub001/pkg/response"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportTimesheet 导出工时表
// GET /api/v1/shifts/export.xlsx（过滤参数同班次列表）
func (h *ExportHandler) ExportTimesheet(c *gin.Context) {
	var filter dto.ShiftFilter
	if !BindQuery(c, &filter) {
		return
	}

	res := h.exportSvc.ExportTimesheet(c.Request.Context(), &filter)
	if !res.IsSuccess {
		response.Outcome(c, res.Outcome)
		return
	}
	sendFile(c, res.Data)
}

// ExportWorkerCalendar 导出员工班次日历
// GET /api/v1/workers/:id/shifts.ics
func (h *ExportHandler) ExportWorkerCalendar(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		return
	}

	res := h.exportSvc.ExportWorkerCalendar(c.Request.Context(), id)
	if !res.IsSuccess {
		response.Outcome(c, res.Outcome)
		return
	}
	sendFile(c, res.Data)
}

// sendFile 设置下载响应头并写出内容
func sendFile(c *gin.Context, f *dto.ExportFile) {
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(f.Filename))
	c.Data(http.StatusOK, f.ContentType, f.Content)
}
