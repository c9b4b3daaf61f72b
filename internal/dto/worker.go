package dto

import "strings"

// ── 员工模块 DTO ──

// WorkerFilter 员工列表查询参数
type WorkerFilter struct {
	PageQuery
	WorkerID int64  `form:"worker_id" json:"worker_id,omitempty"`
	Name     string `form:"name"      json:"name,omitempty"`
	Email    string `form:"email"     json:"email,omitempty"`
	Phone    string `form:"phone"     json:"phone,omitempty"`
}

// CreateWorkerRequest 创建员工请求
type CreateWorkerRequest struct {
	Name  string  `json:"name"  validate:"required,min=2,max=100"`
	Email *string `json:"email" validate:"omitempty,max=255,email,public_tld"`
	Phone *string `json:"phone" validate:"omitempty,phone"`
}

// UpdateWorkerRequest 更新员工请求（整体替换可变字段）
type UpdateWorkerRequest struct {
	Name  string  `json:"name"  validate:"required,min=2,max=100"`
	Email *string `json:"email" validate:"omitempty,max=255,email,public_tld"`
	Phone *string `json:"phone" validate:"omitempty,phone"`
}

// Normalize 去除首尾空白；空字符串的可选字段置为 nil，邮箱转小写
func (r *CreateWorkerRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = trimOptional(r.Email)
	if r.Email != nil {
		lower := strings.ToLower(*r.Email)
		r.Email = &lower
	}
	r.Phone = trimOptional(r.Phone)
}

// WorkerResponse 员工信息响应
type WorkerResponse struct {
	ID        int64   `json:"id"          yaml:"id"`
	Name      string  `json:"name"        yaml:"name"`
	Email     *string `json:"email"       yaml:"email,omitempty"`
	Phone     *string `json:"phone"       yaml:"phone,omitempty"`
	CreatedAt string  `json:"created_at"  yaml:"created_at"`
	UpdatedAt string  `json:"updated_at"  yaml:"updated_at"`
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
