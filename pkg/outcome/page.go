package outcome

// Page 分页查询结果。TotalCount 为过滤后的总匹配数，而非当前页条数。
type Page[T any] struct {
	Items      []T
	TotalCount int64
	PageNumber int
	PageSize   int
}

// TotalPages ceil(TotalCount / PageSize)
func (p Page[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	size := int64(p.PageSize)
	return int((p.TotalCount + size - 1) / size)
}

func (p Page[T]) HasNextPage() bool {
	return p.PageNumber < p.TotalPages()
}

func (p Page[T]) HasPreviousPage() bool {
	return p.PageNumber > 1
}

// MapPage 转换分页中的每一项
func MapPage[T, U any](p Page[T], fn func(T) U) Page[U] {
	items := make([]U, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, fn(it))
	}
	return Page[U]{
		Items:      items,
		TotalCount: p.TotalCount,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}
}
