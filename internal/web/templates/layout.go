package templates

import (
	"strconv"

	"github.com/a-h/templ"
)

// HTMXScript is the htmx build the layout loads.
const HTMXScript = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// htmxConfig makes htmx swap 4xx and 5xx responses so error alerts show.
const htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[2345]..","swap":true,"error":false}]}`

// ViewLink is one view in the sidebar or on the dashboard.
type ViewLink struct {
	Key    string
	Label  string
	Href   string
	Count  int
	Known  bool // Count is meaningful
	Active bool
}

// NavGroup is a titled list of views.
type NavGroup struct {
	Name  string
	Views []ViewLink
}

// Layout wraps body in the page shell with the grouped sidebar.
func Layout(title string, nav []NavGroup, body templ.Component) templ.Component {
	return component(func(b *writer) {
		b.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		b.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.raw(`<title>`)
		b.text(title)
		b.raw(` · Admin</title>`)
		b.raw(`<meta name="htmx-config" content='`, htmxConfig, `'>`)
		b.raw(`<link rel="stylesheet" href="/static/app.css">`)
		b.raw(`<script`)
		b.attr("src", HTMXScript)
		b.raw(` defer></script></head><body><div class="shell">`)

		b.raw(`<nav class="sidebar"><a class="brand" href="/">Admin</a>`)
		for _, g := range nav {
			b.raw(`<div class="nav-group"><h2>`)
			b.text(g.Name)
			b.raw(`</h2><ul>`)
			for _, v := range g.Views {
				b.raw(`<li><a`)
				b.href("href", v.Href)
				if v.Active {
					b.raw(` class="active" aria-current="page"`)
				}
				b.raw(`>`)
				b.text(v.Label)
				b.raw(`</a></li>`)
			}
			b.raw(`</ul></div>`)
		}
		b.raw(`</nav><main class="content">`)
		b.render(body)
		b.raw(`</main></div></body></html>`)
	})
}

// Dashboard lists every view with its dataset size.
func Dashboard(groups []NavGroup) templ.Component {
	return component(func(b *writer) {
		b.raw(`<h1>Dashboard</h1>`)
		for _, g := range groups {
			b.raw(`<section class="card-group"><h2>`)
			b.text(g.Name)
			b.raw(`</h2><div class="cards">`)
			for _, v := range g.Views {
				b.raw(`<a class="card"`)
				b.href("href", v.Href)
				b.attr("data-view", v.Key)
				b.raw(`><span class="card-title">`)
				b.text(v.Label)
				b.raw(`</span><span class="card-count">`)
				if v.Known {
					b.text(strconv.Itoa(v.Count))
				} else {
					b.raw(`&mdash;`)
				}
				b.raw(`</span></a>`)
			}
			b.raw(`</div></section>`)
		}
	})
}

// ErrorAlert is the fragment swapped in when an HTMX request fails.
func ErrorAlert(message, action, code string) templ.Component {
	return component(func(b *writer) {
		b.raw(`<div class="alert alert-error" role="alert"><p class="alert-message">`)
		b.text(message)
		b.raw(`</p>`)
		if action != "" {
			b.raw(`<p class="alert-action">`)
			b.text(action)
			b.raw(`</p>`)
		}
		b.raw(`<p class="alert-code">Code: `)
		b.text(code)
		b.raw(`</p></div>`)
	})
}
