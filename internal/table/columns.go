package table

import (
	"net/url"
	"strconv"
	"strings"
)

// Fallback display values.
const (
	UnknownLabel = "Unknown"
	NoneLabel    = "—"
)

// CellKind tells the renderer how to draw a Cell.
type CellKind string

const (
	CellText    CellKind = "text"
	CellMuted   CellKind = "muted"
	CellLink    CellKind = "link"
	CellBadge   CellKind = "badge"
	CellFlag    CellKind = "flag"
	CellImage   CellKind = "image"
	CellActions CellKind = "actions"
)

// Action is one row affordance. Delete actions only carry the target identity;
// confirming and performing the delete is up to the page.
type Action struct {
	Kind   string `json:"kind"`
	Label  string `json:"label"`
	Href   string `json:"href,omitempty"`
	Target string `json:"target,omitempty"`
}

// Cell is the display value produced by a column for one record.
type Cell struct {
	Kind        CellKind `json:"kind"`
	Text        string   `json:"text,omitempty"`
	Href        string   `json:"href,omitempty"`
	Src         string   `json:"src,omitempty"`
	Alt         string   `json:"alt,omitempty"`
	Placeholder bool     `json:"placeholder,omitempty"`
	Flag        bool     `json:"flag,omitempty"`
	Count       int      `json:"count,omitempty"`
	Actions     []Action `json:"actions,omitempty"`
}

// Column describes one table column for records of type T.
// Render must be pure and must not panic for any record.
type Column[T any] struct {
	Key    string
	Header string
	Class  string // layout hint only
	Render func(T) Cell
}

// Header is the type-erased part of a column.
type Header struct {
	Key    string `json:"key"`
	Header string `json:"header"`
	Class  string `json:"class,omitempty"`
}

// ColumnOption adjusts a column after construction.
type ColumnOption func(*Header)

// WithClass sets the layout hint.
func WithClass(class string) ColumnOption {
	return func(h *Header) { h.Class = class }
}

// WithHeader overrides the default header label.
func WithHeader(header string) ColumnOption {
	return func(h *Header) { h.Header = header }
}

// WithKey overrides the column key.
func WithKey(key string) ColumnOption {
	return func(h *Header) { h.Key = key }
}

func newColumn[T any](key, header, class string, render func(T) Cell, opts []ColumnOption) Column[T] {
	h := Header{Key: key, Header: header, Class: class}
	for _, opt := range opts {
		opt(&h)
	}
	return Column[T]{Key: h.Key, Header: h.Header, Class: h.Class, Render: render}
}

// IDColumn renders the record id verbatim.
func IDColumn[T Item](opts ...ColumnOption) Column[T] {
	return newColumn("id", "ID", "w-24", func(item T) Cell {
		return Cell{Kind: CellMuted, Text: item.ItemID()}
	}, opts)
}

// LabelColumn renders the label as a link to basePath/{id}.
// It panics if basePath is empty.
func LabelColumn[T Item](basePath string, opts ...ColumnOption) Column[T] {
	base := mustBasePath("label", basePath)
	return newColumn("label", "Name", "", func(item T) Cell {
		return Cell{Kind: CellLink, Text: item.ItemLabel(), Href: ItemPath(base, item.ItemID())}
	}, opts)
}

// SlugColumn renders the slug verbatim.
func SlugColumn[T Item](opts ...ColumnOption) Column[T] {
	return newColumn("slug", "Slug", "", func(item T) Cell {
		return Cell{Kind: CellMuted, Text: item.ItemSlug()}
	}, opts)
}

// TextColumn renders an arbitrary string field. Unset fields render as "".
func TextColumn[T any](key, header string, field StringFunc[T], opts ...ColumnOption) Column[T] {
	return newColumn(key, header, "", func(item T) Cell {
		s, _ := field(item)
		return Cell{Kind: CellText, Text: s}
	}, opts)
}

// CountColumn renders a non-negative integer as a badge.
// Unset and negative values render as 0.
func CountColumn[T any](key, header string, field IntFunc[T], opts ...ColumnOption) Column[T] {
	return newColumn(key, header, "w-24 text-right", func(item T) Cell {
		n := countValue(field, item)
		return Cell{Kind: CellBadge, Text: strconv.Itoa(n), Count: n}
	}, opts)
}

// FeaturedColumn renders the featured flag as a star or a dash.
func FeaturedColumn[T Featurer](opts ...ColumnOption) Column[T] {
	return newColumn("featured", "Featured", "w-20 text-center", func(item T) Cell {
		if item.FeaturedFlag() {
			return Cell{Kind: CellFlag, Flag: true, Text: "★"}
		}
		return Cell{Kind: CellFlag, Flag: false, Text: NoneLabel}
	}, opts)
}

// imageItem is what the image column needs from a record.
type imageItem interface {
	Item
	Imager
}

// ImageColumn renders the record image, or a placeholder when there is none.
// A missing alt text falls back to the label.
func ImageColumn[T imageItem](opts ...ColumnOption) Column[T] {
	return newColumn("image", "Image", "w-16", func(item T) Cell {
		src, alt := item.Image()
		if strings.TrimSpace(alt) == "" {
			alt = item.ItemLabel()
		}
		if strings.TrimSpace(src) == "" {
			return Cell{Kind: CellImage, Alt: alt, Placeholder: true}
		}
		return Cell{Kind: CellImage, Src: src, Alt: alt}
	}, opts)
}

// LookupColumn resolves a foreign key against a lookup table by exact id.
// Unmatched keys render UnknownLabel, empty keys render NoneLabel.
// The table is indexed once at construction; later changes to refs are not seen.
func LookupColumn[T any](key, header string, field StringFunc[T], refs []Ref, opts ...ColumnOption) Column[T] {
	index := make(map[string]string, len(refs))
	for _, r := range refs {
		if _, dup := index[r.ID]; !dup {
			index[r.ID] = r.Label
		}
	}
	return newColumn(key, header, "", func(item T) Cell {
		id, ok := field(item)
		if !ok || id == "" {
			return Cell{Kind: CellMuted, Text: NoneLabel}
		}
		label, found := index[id]
		if !found {
			return Cell{Kind: CellMuted, Text: UnknownLabel}
		}
		return Cell{Kind: CellText, Text: label}
	}, opts)
}

// ActionsColumn renders edit and delete affordances for basePath/{id}.
// It panics if basePath is empty.
func ActionsColumn[T Item](basePath string, opts ...ColumnOption) Column[T] {
	base := mustBasePath("actions", basePath)
	return newColumn("actions", "Actions", "w-24 text-right", func(item T) Cell {
		target := ItemPath(base, item.ItemID())
		return Cell{Kind: CellActions, Actions: []Action{
			{Kind: "edit", Label: "Edit", Href: target + "/edit"},
			{Kind: "delete", Label: "Delete", Href: target, Target: item.ItemID()},
		}}
	}, opts)
}

// ItemPath joins a base path and a record id.
func ItemPath(basePath, id string) string {
	return strings.TrimRight(basePath, "/") + "/" + url.PathEscape(id)
}

func mustBasePath(column, basePath string) string {
	base := strings.TrimSpace(basePath)
	if base == "" {
		panic("table: " + column + " column requires a base path")
	}
	return base
}

func countValue[T any](field IntFunc[T], item T) int {
	n, ok := field(item)
	if !ok || n < 0 {
		return 0
	}
	return n
}

// Headers returns the type-erased headers of a column list.
func Headers[T any](cols []Column[T]) []Header {
	out := make([]Header, len(cols))
	for i, c := range cols {
		out[i] = Header{Key: c.Key, Header: c.Header, Class: c.Class}
	}
	return out
}
