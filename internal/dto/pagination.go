package dto

import (
	"math"
	"strings"
)

// ── 分页 / 排序 / 搜索参数 ──

const (
	DefaultPageSize = 50
	MaxPageSize     = 1000

	// MaxPageNumber 保证 (PageNumber-1)*PageSize 不溢出
	MaxPageNumber = math.MaxInt / MaxPageSize
)

// Filter 所有实体过滤器的公共契约
type Filter interface {
	Page() *PageQuery
}

// PageQuery 通用分页查询参数（各实体过滤器嵌入）
type PageQuery struct {
	PageNumber int    `form:"page_number" json:"page_number,omitempty"`
	PageSize   int    `form:"page_size"   json:"page_size,omitempty"`
	SortBy     string `form:"sort_by"     json:"sort_by,omitempty"`
	SortOrder  string `form:"sort_order"  json:"sort_order,omitempty"` // asc | desc
	Search     string `form:"search"      json:"search,omitempty"`
}

// Page 返回自身；嵌入后各过滤器自动满足 Filter
func (p *PageQuery) Page() *PageQuery { return p }

// ValidatePagination 规范化分页参数（幂等）
//   - PageNumber < 1 → 1
//   - PageSize < 1 → DefaultPageSize
//   - PageSize > MaxPageSize → MaxPageSize
//   - PageNumber > MaxPageNumber → MaxPageNumber（仍越界，返回空列表）
func (p *PageQuery) ValidatePagination() {
	if p.PageNumber < 1 {
		p.PageNumber = 1
	}
	if p.PageNumber > MaxPageNumber {
		p.PageNumber = MaxPageNumber
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

// Offset 计算偏移量（应在 ValidatePagination 之后调用）
func (p *PageQuery) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}

// IsDescending 仅 "desc"（忽略大小写）视为降序
func (p *PageQuery) IsDescending() bool {
	return strings.EqualFold(strings.TrimSpace(p.SortOrder), "desc")
}
