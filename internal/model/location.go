package model

// Location 工作地点表，对应 locations
type Location struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"          json:"id"`
	Name     string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	Address  string `gorm:"type:varchar(200);not null"        json:"address"`
	Town     string `gorm:"type:varchar(100);not null"        json:"town"`
	County   string `gorm:"type:varchar(100);not null"        json:"county"`
	Postcode string `gorm:"type:varchar(10);not null"         json:"postcode"`
	Country  string `gorm:"type:varchar(100);not null"        json:"country"`
	BaseModel

	Shifts []Shift `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE" json:"shifts,omitempty"`
}

// TableName 指定表名
func (Location) TableName() string { return "locations" }
