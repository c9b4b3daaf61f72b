package repository

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/RyanW84/ShiftsLogger-sub001/internal/dto"
)

var shiftSortColumns = sortColumns{
	"id":              "id",
	"shiftid":         "id",
	"workerid":        "worker_id",
	"locationid":      "location_id",
	"starttime":       "start_time",
	"endtime":         "end_time",
	"duration":        "duration_minutes",
	"durationminutes": "duration_minutes",
	"createdat":       "created_at",
	"updatedat":       "updated_at",
}

// BuildShiftQuery 班次查询：谓词 → 搜索 → 排序
//
// 搜索匹配员工姓名、地点名称/城镇（子查询），以及班次、员工、地点的数字 ID
func BuildShiftQuery(db *gorm.DB, f *dto.ShiftFilter) *gorm.DB {
	if f.WorkerID > 0 {
		db = db.Where("worker_id = ?", f.WorkerID)
	}
	if f.LocationID > 0 {
		db = db.Where("location_id = ?", f.LocationID)
	}
	if f.StartDate != nil && !f.StartDate.IsZero() {
		db = db.Where("start_time >= ?", startOfDay(*f.StartDate))
	}
	if f.EndDate != nil && !f.EndDate.IsZero() {
		db = db.Where("start_time < ?", startOfDay(*f.EndDate).AddDate(0, 0, 1))
	}
	if f.MinDurationMinutes > 0 {
		db = db.Where("duration_minutes >= ?", f.MinDurationMinutes)
	}
	if f.MaxDurationMinutes > 0 {
		db = db.Where("duration_minutes <= ?", f.MaxDurationMinutes)
	}

	if s := strings.TrimSpace(f.Search); s != "" {
		p := containsPattern(s)
		db = db.Where(
			"("+like("CAST(id AS TEXT)")+" OR "+like("CAST(worker_id AS TEXT)")+" OR "+like("CAST(location_id AS TEXT)")+
				" OR worker_id IN (SELECT id FROM workers WHERE "+like("LOWER(name)")+")"+
				" OR location_id IN (SELECT id FROM locations WHERE "+like("LOWER(name)")+" OR "+like("LOWER(town)")+"))",
			p, p, p, p, p, p,
		)
	}

	return applySort(db, shiftSortColumns, f.SortBy, f.IsDescending())
}

// startOfDay 按日期部分取 UTC 零点
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
