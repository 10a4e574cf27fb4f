package table

import "strings"

// FilterFunc decides whether a record belongs in the filtered set.
type FilterFunc[T any] func(item T, params Params) bool

// Featured filter values.
const (
	FeaturedYes = "t"
	FeaturedNo  = "f"
)

// StandardSearch keeps records whose label or slug contains the search
// term, ignoring case. An empty term keeps everything.
func StandardSearch[T Item]() FilterFunc[T] {
	return func(item T, params Params) bool {
		return matchesSearch(item, params.Search())
	}
}

func matchesSearch(item Item, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(item.ItemLabel()), term) ||
		strings.Contains(strings.ToLower(item.ItemSlug()), term)
}

// FeaturedFilter reads the featured param: "t" keeps featured records,
// "f" keeps the rest. Any other value keeps everything.
func FeaturedFilter[T Featurer]() FilterFunc[T] {
	return func(item T, params Params) bool {
		switch params.Get("featured") {
		case FeaturedYes:
			return item.FeaturedFlag()
		case FeaturedNo:
			return !item.FeaturedFlag()
		}
		return true
	}
}

// FieldEquals keeps records whose field exactly equals the value of param.
// An empty param keeps everything; records without the field are dropped.
func FieldEquals[T any](param string, field StringFunc[T]) FilterFunc[T] {
	return func(item T, params Params) bool {
		want := params.Get(param)
		if want == "" {
			return true
		}
		got, ok := field(item)
		return ok && got == want
	}
}

// AllOf combines filters with AND. Nil entries are skipped.
func AllOf[T any](filters ...FilterFunc[T]) FilterFunc[T] {
	return func(item T, params Params) bool {
		for _, f := range filters {
			if f != nil && !f(item, params) {
				return false
			}
		}
		return true
	}
}
