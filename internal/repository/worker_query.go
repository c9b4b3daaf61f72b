package repository

import (
	"gorm.io/gorm"

	"github.com/RyanW84/ShiftsLogger-sub001/internal/dto"
)

var workerSortColumns = sortColumns{
	"id":        "id",
	"workerid":  "id",
	"name":      "name",
	"email":     "email",
	"phone":     "phone",
	"createdat": "created_at",
	"updatedat": "updated_at",
}

// BuildWorkerQuery 员工查询：谓词 → 搜索 → 排序
func BuildWorkerQuery(db *gorm.DB, f *dto.WorkerFilter) *gorm.DB {
	if f.WorkerID > 0 {
		db = db.Where("id = ?", f.WorkerID)
	}
	db = whereContains(db, "name", f.Name)
	db = whereContains(db, "email", f.Email)
	db = whereContains(db, "phone", f.Phone)

	db = searchAny(db, f.Search, "name", "email", "phone")

	return applySort(db, workerSortColumns, f.SortBy, f.IsDescending())
}
