package model

// Worker 员工表，对应 workers
type Worker struct {
	ID    int64   `gorm:"primaryKey;autoIncrement"           json:"id"`
	Name  string  `gorm:"type:varchar(100);not null"         json:"name"`
	Email *string `gorm:"type:varchar(255);uniqueIndex"      json:"email,omitempty"`
	Phone *string `gorm:"type:varchar(20);uniqueIndex"       json:"phone,omitempty"`
	BaseModel

	// 关联（仅反向引用，删除时由存储层级联）
	Shifts []Shift `gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE" json:"shifts,omitempty"`
}

// TableName 指定表名
func (Worker) TableName() string { return "workers" }
