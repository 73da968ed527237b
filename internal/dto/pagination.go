package dto

// PageParams are the paging query parameters accepted by every list endpoint.
type PageParams struct {
	Page int `form:"page,default=1"  validate:"min=1"`
	Size int `form:"size,default=50" validate:"min=1,max=100"`
}

// Offset returns the number of rows to skip for the requested page.
func (p PageParams) Offset() int { return (p.Page - 1) * p.Size }

// Page is the envelope returned by list endpoints.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Pages int   `json:"pages"`
}

// NewPage builds a Page, never returning a nil Items slice.
func NewPage[T any](items []T, total int64, p PageParams) Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if p.Size > 0 {
		pages = int((total + int64(p.Size) - 1) / int64(p.Size))
	}
	return Page[T]{Items: items, Total: total, Page: p.Page, Size: p.Size, Pages: pages}
}
