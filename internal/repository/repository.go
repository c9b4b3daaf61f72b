package repository

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/RyanW84/ShiftsLogger-sub001/config"
	"github.com/RyanW84/ShiftsLogger-sub001/internal/validation"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Worker   WorkerRepository
	Location LocationRepository
	Shift    ShiftRepository
}

// NewRepository 创建 Repository 聚合，校验管线以同一数据库的只读查询为依据
func NewRepository(db *gorm.DB, policy config.PolicyConfig, logger *zap.Logger) *Repository {
	lookups := NewLookups(db)
	v := validation.New(policy, lookups, lookups, lookups)
	return NewRepositoryWithValidator(db, v, logger)
}

// NewRepositoryWithValidator 使用外部构造的校验管线（测试中可替换时钟）
func NewRepositoryWithValidator(db *gorm.DB, v *validation.Validator, logger *zap.Logger) *Repository {
	return &Repository{
		Worker:   NewWorkerRepo(db, v, logger),
		Location: NewLocationRepo(db, v, logger),
		Shift:    NewShiftRepo(db, v, logger),
	}
}
