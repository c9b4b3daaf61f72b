package model

import (
	"time"

	"gorm.io/gorm"
)

// Shift 班次表，对应 shifts
type Shift struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"  json:"id"`
	WorkerID        int64     `gorm:"not null;index"            json:"worker_id"`
	LocationID      int64     `gorm:"not null;index"            json:"location_id"`
	StartTime       time.Time `gorm:"not null;index"            json:"start_time"`
	EndTime         time.Time `gorm:"not null"                  json:"end_time"`
	DurationMinutes int       `gorm:"not null;default:0"        json:"duration_minutes"` // 由 BeforeSave 派生
	BaseModel

	// 关联
	Worker   *Worker   `gorm:"foreignKey:WorkerID;references:ID"   json:"worker,omitempty"`
	Location *Location `gorm:"foreignKey:LocationID;references:ID" json:"location,omitempty"`
}

// TableName 指定表名
func (Shift) TableName() string { return "shifts" }

// BeforeSave 统一存储为 UTC 并派生时长
func (s *Shift) BeforeSave(_ *gorm.DB) error {
	s.StartTime = s.StartTime.UTC()
	s.EndTime = s.EndTime.UTC()
	s.DurationMinutes = int(s.EndTime.Sub(s.StartTime) / time.Minute)
	return nil
}

// Duration 班次时长
func (s *Shift) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}

// Overlaps 半开区间 [A,B) 与 [C,D) 相交当且仅当 A < D && C < B
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
