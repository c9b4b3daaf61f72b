package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/RyanW84/ShiftsLogger-sub001/internal/model"
)

// Lookups 校验管线所需的只读查询（GORM 实现）
type Lookups struct {
	db *gorm.DB
}

// NewLookups 创建 Lookups
func NewLookups(db *gorm.DB) *Lookups {
	return &Lookups{db: db}
}

func (l *Lookups) exists(ctx context.Context, m interface{}, query string, args ...interface{}) (bool, error) {
	var count int64
	err := l.db.WithContext(ctx).Model(m).Where(query, args...).Limit(1).Count(&count).Error
	return count > 0, err
}

func (l *Lookups) WorkerExists(ctx context.Context, id int64) (bool, error) {
	return l.exists(ctx, &model.Worker{}, "id = ?", id)
}

func (l *Lookups) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	return l.exists(ctx, &model.Worker{}, "LOWER(email) = LOWER(?) AND id <> ?", email, excludeID)
}

func (l *Lookups) PhoneTaken(ctx context.Context, phone string, excludeID int64) (bool, error) {
	return l.exists(ctx, &model.Worker{}, "phone = ? AND id <> ?", phone, excludeID)
}

func (l *Lookups) LocationExists(ctx context.Context, id int64) (bool, error) {
	return l.exists(ctx, &model.Location{}, "id = ?", id)
}

func (l *Lookups) LocationNameTaken(ctx context.Context, name string, excludeID int64) (bool, error) {
	return l.exists(ctx, &model.Location{}, "LOWER(name) = LOWER(?) AND id <> ?", name, excludeID)
}

// WorkerHasOverlap [start,end) 与该员工其他班次相交：start_time < end AND end_time > start
func (l *Lookups) WorkerHasOverlap(ctx context.Context, workerID int64, start, end time.Time, excludeID int64) (bool, error) {
	return l.exists(ctx, &model.Shift{},
		"worker_id = ? AND start_time < ? AND end_time > ? AND id <> ?",
		workerID, end.UTC(), start.UTC(), excludeID)
}

// LocationHasOverlap 同上，按地点
func (l *Lookups) LocationHasOverlap(ctx context.Context, locationID int64, start, end time.Time, excludeID int64) (bool, error) {
	return l.exists(ctx, &model.Shift{},
		"location_id = ? AND start_time < ? AND end_time > ? AND id <> ?",
		locationID, end.UTC(), start.UTC(), excludeID)
}
