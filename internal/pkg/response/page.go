package response

import "github.com/arenakita/arenakita-backend/internal/pkg/request"

// PageResponse is the standard wrapper for list endpoints.
type PageResponse[T any] struct {
	Items    []T `json:"items"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
}

// NewPageResponse builds a page from already-converted items.
func NewPageResponse[T any](items []T, params request.ListParams, total int) PageResponse[T] {
	// Handle empty slice to avoid JSON outputting null
	if items == nil {
		items = make([]T, 0)
	}

	return PageResponse[T]{
		Items:    items,
		Page:     params.Page,
		PageSize: params.PageSize,
		Total:    total,
	}
}

// MapPage converts domain values with conv and wraps them in a page.
func MapPage[S any, T any](src []S, conv func(S) T, params request.ListParams, total int) PageResponse[T] {
	items := make([]T, len(src))
	for i, s := range src {
		items[i] = conv(s)
	}
	return NewPageResponse(items, params, total)
}
