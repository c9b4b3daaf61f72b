package handler

import "github.com/RyanW84/ShiftsLogger-sub001/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Worker   *WorkerHandler
	Location *LocationHandler
	Shift    *ShiftHandler
	Export   *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Worker:   NewWorkerHandler(svc.Worker),
		Location: NewLocationHandler(svc.Location),
		Shift:    NewShiftHandler(svc.Shift),
		Export:   NewExportHandler(svc.Export),
	}
}
