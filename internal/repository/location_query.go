package repository

import (
	"gorm.io/gorm"

	"github.com/RyanW84/ShiftsLogger-sub001/internal/dto"
)

var locationSortColumns = sortColumns{
	"id":         "id",
	"locationid": "id",
	"name":       "name",
	"address":    "address",
	"town":       "town",
	"county":     "county",
	"postcode":   "postcode",
	"country":    "country",
	"createdat":  "created_at",
	"updatedat":  "updated_at",
}

// BuildLocationQuery 地点查询：谓词 → 搜索 → 排序
func BuildLocationQuery(db *gorm.DB, f *dto.LocationFilter) *gorm.DB {
	if f.LocationID > 0 {
		db = db.Where("id = ?", f.LocationID)
	}
	db = whereContains(db, "name", f.Name)
	db = whereContains(db, "address", f.Address)
	db = whereContains(db, "town", f.Town)
	db = whereContains(db, "county", f.County)
	db = whereContains(db, "postcode", f.Postcode)
	db = whereContains(db, "country", f.Country)

	db = searchAny(db, f.Search, "name", "address", "town", "county", "postcode", "country")

	return applySort(db, locationSortColumns, f.SortBy, f.IsDescending())
}
