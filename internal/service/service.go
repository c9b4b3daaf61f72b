package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/RyanW84/ShiftsLogger-sub001/internal/repository"
	"github.com/RyanW84/ShiftsLogger-sub001/pkg/jwt"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth     AuthService
	Worker   WorkerService
	Location LocationService
	Shift    ShiftService
	Export   ExportService
}

// NewService 创建 Service 聚合
func NewService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(jwtMgr, logger),
		Worker:   NewWorkerService(repo, logger),
		Location: NewLocationService(repo, logger),
		Shift:    NewShiftService(repo, logger),
		Export:   NewExportService(repo, logger),
	}
}

// formatTime 对外统一输出 UTC RFC3339
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
