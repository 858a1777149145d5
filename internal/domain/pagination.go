package domain

// Page is one page of an ordered result set together with its position.
type Page[T any] struct {
	Items      []T
	TotalCount int
	PageNumber int
	PageSize   int
}

// NewPage creates a Page. A nil items slice is replaced by an empty one.
func NewPage[T any](items []T, totalCount, pageNumber, pageSize int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:      items,
		TotalCount: totalCount,
		PageNumber: pageNumber,
		PageSize:   pageSize,
	}
}

// TotalPages returns ceil(TotalCount / PageSize), or 0 for a non-positive page size.
func (p Page[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.TotalCount + p.PageSize - 1) / p.PageSize
}

func (p Page[T]) HasPreviousPage() bool { return p.PageNumber > 1 }

func (p Page[T]) HasNextPage() bool { return p.PageNumber < p.TotalPages() }

// MapPage converts the items of p with fn, keeping the page metadata.
func MapPage[T, U any](p Page[T], fn func(T) U) Page[U] {
	items := make([]U, len(p.Items))
	for i, it := range p.Items {
		items[i] = fn(it)
	}
	return Page[U]{
		Items:      items,
		TotalCount: p.TotalCount,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}
}
