// Package table turns an in-memory dataset plus request query parameters into
// a filtered, sorted and paginated page, and describes how to draw it.
//
// The package has three parts:
//
//   - Column renderers (columns.go): factories producing typed column
//     descriptors for common field shapes.
//   - Skeleton columns (skeleton.go): layout-only placeholders matching a
//     column list, shown while data loads.
//   - The pipeline (this file): filter, then sort, then paginate.
//
// Nothing here performs I/O or keeps state between calls. Datasets are
// treated as read-only; every call allocates its own result, so concurrent
// calls over the same dataset are safe.
package table

// DefaultLimit is the page size used when a view does not set one.
const DefaultLimit = 10

// PageResult is one page of a processed dataset.
//
// len(Data) <= CurrentLimit, TotalPages >= 1 and 1 <= CurrentPage <= TotalPages.
type PageResult[T any] struct {
	Data         []T `json:"paginatedData"`
	TotalPages   int `json:"totalPages"`
	CurrentPage  int `json:"currentPage"`
	CurrentLimit int `json:"currentLimit"`
	TotalItems   int `json:"totalItems"`
}

// Options configures one pipeline run.
type Options[T any] struct {
	Data         []T
	Params       Params
	BasePath     string        // root of pagination links; Process itself ignores it
	Filter       FilterFunc[T] // nil keeps everything
	Sort         SortFunc[T]   // nil keeps filtered order
	DefaultLimit int           // used for missing or invalid limit; <= 0 means DefaultLimit
	MaxLimit     int           // upper bound on limit; <= 0 means unbounded
}

// Process filters, sorts and paginates opts.Data. It never fails: malformed
// page and limit values fall back to defaults and out-of-range pages are
// clamped into [1, TotalPages].
func Process[T any](opts Options[T]) PageResult[T] {
	filtered := make([]T, 0, len(opts.Data))
	for _, item := range opts.Data {
		if opts.Filter == nil || opts.Filter(item, opts.Params) {
			filtered = append(filtered, item)
		}
	}

	ordered := filtered
	if opts.Sort != nil {
		ordered = opts.Sort(filtered, opts.Params.Sort())
	}

	limit := opts.Params.Limit(opts.DefaultLimit, opts.MaxLimit)
	totalPages := TotalPages(len(ordered), limit)
	page := ClampPage(opts.Params.Page(), totalPages)

	start := (page - 1) * limit
	end := min(start+limit, len(ordered))
	if start > end {
		start = end
	}

	data := make([]T, end-start)
	copy(data, ordered[start:end])

	return PageResult[T]{
		Data:         data,
		TotalPages:   totalPages,
		CurrentPage:  page,
		CurrentLimit: limit,
		TotalItems:   len(ordered),
	}
}

// TotalPages returns ceil(count/limit) with a floor of 1.
func TotalPages(count, limit int) int {
	if limit < 1 {
		limit = DefaultLimit
	}
	pages := (count + limit - 1) / limit
	if pages < 1 {
		pages = 1
	}
	return pages
}

// ClampPage bounds page into [1, totalPages].
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
