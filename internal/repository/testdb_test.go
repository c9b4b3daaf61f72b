package repository

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/RyanW84/ShiftsLogger-sub001/config"
	"github.com/RyanW84/ShiftsLogger-sub001/internal/dto"
	"github.com/RyanW84/ShiftsLogger-sub001/internal/model"
	"github.com/RyanW84/ShiftsLogger-sub001/internal/validation"
)

// ── 测试辅助 ──

var testNow = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

// setupTestRepo 每个测试独立的内存 SQLite 库
func setupTestRepo(t *testing.T) (*Repository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("打开 SQLite 失败: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取 sql.DB 失败: %v", err)
	}
	// 内存库按连接隔离，固定单连接
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&model.Worker{}, &model.Location{}, &model.Shift{}); err != nil {
		t.Fatalf("AutoMigrate 失败: %v", err)
	}

	lookups := NewLookups(db)
	v := validation.New(config.DefaultPolicy(), lookups, lookups, lookups).
		WithClock(func() time.Time { return testNow })
	return NewRepositoryWithValidator(db, v, zap.NewNop()), db
}

func strPtr(s string) *string { return &s }

func mustCreateWorker(t *testing.T, repo *Repository, name string) *model.Worker {
	t.Helper()
	res := repo.Worker.Create(context.Background(), &dto.CreateWorkerRequest{Name: name})
	if !res.IsSuccess {
		t.Fatalf("创建员工 %s 失败: %s", name, res.Message)
	}
	return res.Data
}

func mustCreateLocation(t *testing.T, repo *Repository, name string) *model.Location {
	t.Helper()
	res := repo.Location.Create(context.Background(), &dto.CreateLocationRequest{
		Name:     name,
		Address:  "1 High Street",
		Town:     "Leeds",
		County:   "West Yorkshire",
		Postcode: "LS1 4AP",
		Country:  "United Kingdom",
	})
	if !res.IsSuccess {
		t.Fatalf("创建地点 %s 失败: %s", name, res.Message)
	}
	return res.Data
}

func mustCreateShift(t *testing.T, repo *Repository, workerID, locationID int64, start time.Time, d time.Duration) *model.Shift {
	t.Helper()
	res := repo.Shift.Create(context.Background(), &dto.CreateShiftRequest{
		WorkerID:   workerID,
		LocationID: locationID,
		StartTime:  start,
		EndTime:    start.Add(d),
	})
	if !res.IsSuccess {
		t.Fatalf("创建班次失败: %s", res.Message)
	}
	return res.Data
}
