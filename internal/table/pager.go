package table

import "strconv"

// pageWindow is how many page links are shown on each side of the current page.
const pageWindow = 2

// PageLink is one pagination control. Gap entries stand for skipped pages
// and carry no link.
type PageLink struct {
	Number  int    `json:"number,omitempty"`
	Href    string `json:"href,omitempty"`
	Current bool   `json:"current,omitempty"`
	Gap     bool   `json:"gap,omitempty"`
}

// Pagination drives the pagination controls under a table.
type Pagination struct {
	BasePath     string     `json:"basePath"`
	TotalPages   int        `json:"totalPages"`
	CurrentPage  int        `json:"currentPage"`
	CurrentLimit int        `json:"currentLimit"`
	TotalItems   int        `json:"totalItems"`
	From         int        `json:"from"`
	To           int        `json:"to"`
	Prev         *PageLink  `json:"prev,omitempty"`
	Next         *PageLink  `json:"next,omitempty"`
	Pages        []PageLink `json:"pages"`
}

// Paginate builds pagination controls for a processed page. Every link keeps
// the other query parameters and only replaces the page number.
func Paginate[T any](basePath string, params Params, res PageResult[T]) Pagination {
	p := Pagination{
		BasePath:     basePath,
		TotalPages:   res.TotalPages,
		CurrentPage:  res.CurrentPage,
		CurrentLimit: res.CurrentLimit,
		TotalItems:   res.TotalItems,
	}
	if res.TotalItems > 0 {
		p.From = (res.CurrentPage-1)*res.CurrentLimit + 1
		p.To = min(res.CurrentPage*res.CurrentLimit, res.TotalItems)
	}

	link := func(n int) PageLink {
		return PageLink{Number: n, Href: PageHref(basePath, params, n), Current: n == res.CurrentPage}
	}

	if res.CurrentPage > 1 {
		prev := link(res.CurrentPage - 1)
		p.Prev = &prev
	}
	if res.CurrentPage < res.TotalPages {
		next := link(res.CurrentPage + 1)
		p.Next = &next
	}

	last := 0
	for n := 1; n <= res.TotalPages; n++ {
		if n != 1 && n != res.TotalPages && (n < res.CurrentPage-pageWindow || n > res.CurrentPage+pageWindow) {
			continue
		}
		if last != 0 && n > last+1 {
			p.Pages = append(p.Pages, PageLink{Gap: true})
		}
		p.Pages = append(p.Pages, link(n))
		last = n
	}

	return p
}

// PageHref links basePath with params, replacing the page number.
func PageHref(basePath string, params Params, page int) string {
	return Href(basePath, params.With(ParamPage, strconv.Itoa(page)))
}

// Href joins a base path and a query string.
func Href(basePath string, params Params) string {
	q := params.Encode()
	if q == "" {
		return basePath
	}
	return basePath + "?" + q
}
