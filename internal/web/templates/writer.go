// Package templates renders the admin pages as templ components.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// writer accumulates the first write error so components can emit markup
// without checking every call.
type writer struct {
	ctx context.Context
	w   io.Writer
	err error
}

func component(fn func(b *writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &writer{ctx: ctx, w: w}
		fn(b)
		return b.err
	})
}

func (b *writer) raw(parts ...string) {
	for _, p := range parts {
		if b.err != nil {
			return
		}
		_, b.err = io.WriteString(b.w, p)
	}
}

func (b *writer) text(s string) {
	b.raw(templ.EscapeString(s))
}

func (b *writer) attr(name, value string) {
	b.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

func (b *writer) href(name, url string) {
	b.attr(name, string(templ.URL(url)))
}

func (b *writer) render(c templ.Component) {
	if b.err != nil || c == nil {
		return
	}
	b.err = c.Render(b.ctx, b.w)
}
