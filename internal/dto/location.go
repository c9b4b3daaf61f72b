package dto

import "strings"

// ── 地点模块 DTO ──

// LocationFilter 地点列表查询参数
type LocationFilter struct {
	PageQuery
	LocationID int64  `form:"location_id" json:"location_id,omitempty"`
	Name       string `form:"name"        json:"name,omitempty"`
	Address    string `form:"address"     json:"address,omitempty"`
	Town       string `form:"town"        json:"town,omitempty"`
	County     string `form:"county"      json:"county,omitempty"`
	Postcode   string `form:"postcode"    json:"postcode,omitempty"`
	Country    string `form:"country"     json:"country,omitempty"`
}

// CreateLocationRequest 创建地点请求
type CreateLocationRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Address  string `json:"address"  validate:"required,max=200"`
	Town     string `json:"town"     validate:"required,max=100"`
	County   string `json:"county"   validate:"required,max=100"`
	Postcode string `json:"postcode" validate:"required,min=5,max=10,postcode"`
	Country  string `json:"country"  validate:"required,max=100"`
}

// UpdateLocationRequest 更新地点请求（整体替换可变字段）
type UpdateLocationRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Address  string `json:"address"  validate:"required,max=200"`
	Town     string `json:"town"     validate:"required,max=100"`
	County   string `json:"county"   validate:"required,max=100"`
	Postcode string `json:"postcode" validate:"required,min=5,max=10,postcode"`
	Country  string `json:"country"  validate:"required,max=100"`
}

// Normalize 去除各字段首尾空白
func (r *CreateLocationRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Address = strings.TrimSpace(r.Address)
	r.Town = strings.TrimSpace(r.Town)
	r.County = strings.TrimSpace(r.County)
	r.Postcode = strings.TrimSpace(r.Postcode)
	r.Country = strings.TrimSpace(r.Country)
}

// LocationResponse 地点信息响应
type LocationResponse struct {
	ID        int64  `json:"id"         yaml:"id"`
	Name      string `json:"name"       yaml:"name"`
	Address   string `json:"address"    yaml:"address"`
	Town      string `json:"town"       yaml:"town"`
	County    string `json:"county"     yaml:"county"`
	Postcode  string `json:"postcode"   yaml:"postcode"`
	Country   string `json:"country"    yaml:"country"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
	UpdatedAt string `json:"updated_at" yaml:"updated_at"`
}
