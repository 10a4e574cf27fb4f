package templates

import (
	"strconv"

	"github.com/JonMunkholm/admintables/internal/table"
	"github.com/a-h/templ"
)

// Element ids HTMX requests target. The server answers a request targeting
// SectionID with TableSection and anything else with TableView.
const (
	ViewID    = "table-view"
	SectionID = "table-section"
)

// TablePage is the body of a full table page.
func TablePage(page table.Page) templ.Component {
	return component(func(b *writer) {
		heading(b, page.Title)
		b.render(TableView(page))
	})
}

// DeferredTablePage shows the skeleton and swaps in the table once loadHref
// answers.
func DeferredTablePage(sk table.SkeletonPage, loadHref string) templ.Component {
	return component(func(b *writer) {
		heading(b, sk.Title)
		b.render(SkeletonView(sk, loadHref))
	})
}

func heading(b *writer, title string) {
	b.raw(`<h1>`)
	b.text(title)
	b.raw(`</h1>`)
}

// TableView is the filter bar plus the table section.
func TableView(page table.Page) templ.Component {
	return component(func(b *writer) {
		b.raw(`<div`)
		b.attr("id", ViewID)
		b.attr("class", "table-view")
		b.attr("data-view", page.Key)
		b.raw(`>`)
		b.render(FilterBar(page))
		b.render(TableSection(page))
		b.raw(`</div>`)
	})
}

// FilterBar renders search, sort and the view's filter selects. Changing any
// control reloads the table section from page 1.
func FilterBar(page table.Page) templ.Component {
	return component(func(b *writer) {
		b.raw(`<form class="filter-bar" method="get"`)
		b.href("action", page.BasePath)
		b.href("hx-get", page.BasePath)
		b.attr("hx-target", "#"+SectionID)
		b.raw(` hx-swap="outerHTML" hx-push-url="true"`)
		b.raw(` hx-trigger="input changed delay:300ms from:input[name='search'], change">`)

		b.raw(`<input type="search" name="search" placeholder="Search" aria-label="Search"`)
		b.attr("value", page.Search)
		b.raw(`>`)

		if len(page.SortModes) > 0 {
			b.raw(`<select name="sort" aria-label="Sort"><option value="">Default order</option>`)
			for _, m := range page.SortModes {
				option(b, m.Key, m.Label, page.Sort == m.Key)
			}
			b.raw(`</select>`)
		}

		for _, f := range page.Filters {
			current := page.Params.Get(f.Key)
			b.raw(`<select`)
			b.attr("name", f.Key)
			b.attr("aria-label", f.Label)
			b.raw(`>`)
			option(b, "", "All "+f.Label, current == "")
			for _, o := range f.Options {
				option(b, o.Value, o.Label, current == o.Value)
			}
			b.raw(`</select>`)
		}

		if limit := page.Params.Get(table.ParamLimit); limit != "" {
			b.raw(`<input type="hidden" name="limit"`)
			b.attr("value", limit)
			b.raw(`>`)
		}
		b.raw(`<noscript><button type="submit">Apply</button></noscript></form>`)
	})
}

func option(b *writer, value, label string, selected bool) {
	b.raw(`<option`)
	b.attr("value", value)
	if selected {
		b.raw(` selected`)
	}
	b.raw(`>`)
	b.text(label)
	b.raw(`</option>`)
}

// TableSection renders the rows and the pagination controls.
func TableSection(page table.Page) templ.Component {
	return component(func(b *writer) {
		b.raw(`<div`)
		b.attr("id", SectionID)
		b.raw(` class="table-section"><table class="data-table"><thead><tr>`)
		for _, h := range page.Headers {
			b.raw(`<th scope="col"`)
			if h.Class != "" {
				b.attr("class", h.Class)
			}
			b.raw(`>`)
			b.text(h.Header)
			b.raw(`</th>`)
		}
		b.raw(`</tr></thead><tbody>`)

		if len(page.Rows) == 0 {
			b.raw(`<tr><td class="empty"`)
			b.attr("colspan", strconv.Itoa(max(1, len(page.Headers))))
			b.raw(`>No results</td></tr>`)
		}
		for _, row := range page.Rows {
			b.raw(`<tr`)
			b.attr("data-id", row.ID)
			b.raw(`>`)
			for i, c := range row.Cells {
				b.raw(`<td`)
				if i < len(page.Headers) && page.Headers[i].Class != "" {
					b.attr("class", page.Headers[i].Class)
				}
				b.raw(`>`)
				cell(b, c)
				b.raw(`</td>`)
			}
			b.raw(`</tr>`)
		}
		b.raw(`</tbody></table>`)
		b.render(Pagination(page.Pagination))
		b.raw(`</div>`)
	})
}

func cell(b *writer, c table.Cell) {
	switch c.Kind {
	case table.CellLink:
		b.raw(`<a`)
		b.href("href", c.Href)
		b.raw(`>`)
		b.text(c.Text)
		b.raw(`</a>`)
	case table.CellMuted:
		b.raw(`<span class="muted">`)
		b.text(c.Text)
		b.raw(`</span>`)
	case table.CellBadge:
		b.raw(`<span class="badge">`)
		b.text(c.Text)
		b.raw(`</span>`)
	case table.CellFlag:
		if c.Flag {
			b.raw(`<span class="flag flag-on" title="Featured">`)
		} else {
			b.raw(`<span class="flag flag-off" title="Not featured">`)
		}
		b.text(c.Text)
		b.raw(`</span>`)
	case table.CellImage:
		if c.Placeholder {
			b.raw(`<span class="thumb thumb-empty" role="img"`)
			b.attr("aria-label", c.Alt)
			b.raw(`></span>`)
			return
		}
		b.raw(`<img class="thumb" loading="lazy"`)
		b.href("src", c.Src)
		b.attr("alt", c.Alt)
		b.raw(`>`)
	case table.CellActions:
		b.raw(`<span class="actions">`)
		for _, a := range c.Actions {
			if a.Kind == "delete" {
				b.raw(`<button type="button" class="action action-delete"`)
				b.href("data-href", a.Href)
				b.attr("data-target", a.Target)
				b.raw(`>`)
				b.text(a.Label)
				b.raw(`</button>`)
				continue
			}
			b.raw(`<a`)
			b.attr("class", "action action-"+a.Kind)
			b.href("href", a.Href)
			b.raw(`>`)
			b.text(a.Label)
			b.raw(`</a>`)
		}
		b.raw(`</span>`)
	default:
		b.text(c.Text)
	}
}

// Pagination renders the summary and the page links.
func Pagination(p table.Pagination) templ.Component {
	return component(func(b *writer) {
		b.raw(`<nav class="pagination" aria-label="Pagination"><span class="summary">`)
		if p.TotalItems == 0 {
			b.raw(`No results`)
		} else {
			b.text("Showing " + strconv.Itoa(p.From) + "–" + strconv.Itoa(p.To) + " of " + strconv.Itoa(p.TotalItems))
		}
		b.raw(`</span><span class="pages">`)

		if p.Prev != nil {
			pageLink(b, p.Prev.Href, "Previous", "prev", false)
		}
		for _, l := range p.Pages {
			if l.Gap {
				b.raw(`<span class="gap">&hellip;</span>`)
				continue
			}
			pageLink(b, l.Href, strconv.Itoa(l.Number), "page", l.Current)
		}
		if p.Next != nil {
			pageLink(b, p.Next.Href, "Next", "next", false)
		}
		b.raw(`</span></nav>`)
	})
}

func pageLink(b *writer, href, label, rel string, current bool) {
	if current {
		b.raw(`<span class="page current" aria-current="page">`)
		b.text(label)
		b.raw(`</span>`)
		return
	}
	b.raw(`<a class="page"`)
	b.attr("rel", rel)
	b.href("href", href)
	b.href("hx-get", href)
	b.attr("hx-target", "#"+SectionID)
	b.raw(` hx-swap="outerHTML" hx-push-url="true">`)
	b.text(label)
	b.raw(`</a>`)
}

// SkeletonView is the loading placeholder standing in for TableView. With a
// non-empty loadHref it fetches the real view as soon as it is shown.
func SkeletonView(sk table.SkeletonPage, loadHref string) templ.Component {
	return component(func(b *writer) {
		b.raw(`<div`)
		b.attr("id", ViewID)
		b.attr("class", "table-view loading")
		b.attr("data-view", sk.Key)
		b.raw(` aria-busy="true"`)
		if loadHref != "" {
			b.href("hx-get", loadHref)
			b.raw(` hx-trigger="load" hx-swap="outerHTML"`)
		}
		b.raw(`><table class="data-table skeleton"><thead><tr>`)
		for _, c := range sk.Columns {
			b.raw(`<th scope="col"`)
			if c.Class != "" {
				b.attr("class", c.Class)
			}
			b.raw(`>`)
			b.text(c.Header)
			b.raw(`</th>`)
		}
		b.raw(`</tr></thead><tbody>`)
		for i := 0; i < sk.Rows; i++ {
			b.raw(`<tr>`)
			for _, c := range sk.Columns {
				b.raw(`<td`)
				if c.Class != "" {
					b.attr("class", c.Class)
				}
				b.raw(`><span`)
				b.attr("class", "sk sk-"+string(c.Shape))
				b.raw(`></span></td>`)
			}
			b.raw(`</tr>`)
		}
		b.raw(`</tbody></table></div>`)
	})
}
