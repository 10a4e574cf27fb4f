package table

import "strconv"

// record is a minimal dataset item used across the package tests.
type record struct {
	id       string
	label    string
	slug     string
	featured *bool
	imageURL string
	imageAlt string
	group    string
	count    *int
}

func (r record) ItemID() string     { return r.id }
func (r record) ItemLabel() string  { return r.label }
func (r record) ItemSlug() string   { return r.slug }
func (r record) FeaturedFlag() bool { return r.featured != nil && *r.featured }
func (r record) Image() (string, string) {
	return r.imageURL, r.imageAlt
}

func (r record) Field(name string) (any, bool) {
	switch name {
	case "group":
		return r.group, r.group != ""
	case "count":
		if r.count == nil {
			return nil, false
		}
		return *r.count, true
	}
	return nil, false
}

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }

// numbered returns n records with ids "01".."n" and labels "Item 01".."Item n".
func numbered(n int) []record {
	out := make([]record, n)
	for i := range out {
		id := strconv.Itoa(i + 1)
		if len(id) < 2 {
			id = "0" + id
		}
		out[i] = record{id: id, label: "Item " + id, slug: "item-" + id}
	}
	return out
}

func ids(items []record) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.id
	}
	return out
}
