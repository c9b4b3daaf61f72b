package dto

import "time"

// ── 班次模块 DTO ──

// ShiftFilter 班次列表查询参数
//
// StartDate / EndDate 为日期（含当日），按班次开始时间过滤
type ShiftFilter struct {
	PageQuery
	WorkerID           int64      `form:"worker_id"            json:"worker_id,omitempty"`
	LocationID         int64      `form:"location_id"          json:"location_id,omitempty"`
	StartDate          *time.Time `form:"start_date"           json:"start_date,omitempty" time_format:"2006-01-02"`
	EndDate            *time.Time `form:"end_date"             json:"end_date,omitempty"   time_format:"2006-01-02"`
	MinDurationMinutes int        `form:"min_duration_minutes" json:"min_duration_minutes,omitempty"`
	MaxDurationMinutes int        `form:"max_duration_minutes" json:"max_duration_minutes,omitempty"`
}

// CreateShiftRequest 创建班次请求
type CreateShiftRequest struct {
	WorkerID   int64     `json:"worker_id"   validate:"required,gt=0"`
	LocationID int64     `json:"location_id" validate:"required,gt=0"`
	StartTime  time.Time `json:"start_time"  validate:"required"`
	EndTime    time.Time `json:"end_time"    validate:"required"`
}

// UpdateShiftRequest 更新班次请求（按新建重新校验全部规则）
type UpdateShiftRequest struct {
	WorkerID   int64     `json:"worker_id"   validate:"required,gt=0"`
	LocationID int64     `json:"location_id" validate:"required,gt=0"`
	StartTime  time.Time `json:"start_time"  validate:"required"`
	EndTime    time.Time `json:"end_time"    validate:"required"`
}

// ShiftResponse 班次信息响应
type ShiftResponse struct {
	ID              int64   `json:"id"               yaml:"id"`
	WorkerID        int64   `json:"worker_id"        yaml:"worker_id"`
	WorkerName      string  `json:"worker_name"      yaml:"worker_name,omitempty"`
	LocationID      int64   `json:"location_id"      yaml:"location_id"`
	LocationName    string  `json:"location_name"    yaml:"location_name,omitempty"`
	StartTime       string  `json:"start_time"       yaml:"start_time"`
	EndTime         string  `json:"end_time"         yaml:"end_time"`
	DurationMinutes int     `json:"duration_minutes" yaml:"duration_minutes"`
	DurationHours   float64 `json:"duration_hours"   yaml:"duration_hours"`
	CreatedAt       string  `json:"created_at"       yaml:"created_at"`
	UpdatedAt       string  `json:"updated_at"       yaml:"updated_at"`
}
