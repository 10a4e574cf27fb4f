package table

// Item is the minimum record shape every dataset exposes.
// ID and slug are stable identifiers; nothing in this package modifies them.
type Item interface {
	ItemID() string
	ItemLabel() string
	ItemSlug() string
}

// Featurer is implemented by records carrying a featured flag.
// Records with no flag set must report false.
type Featurer interface {
	FeaturedFlag() bool
}

// Imager is implemented by records carrying an optional image.
// Either return value may be empty.
type Imager interface {
	Image() (url, alt string)
}

// Fielder exposes optional fields by name. ok is false when the record
// has no such field or the field is unset.
type Fielder interface {
	Field(name string) (value any, ok bool)
}

// StringFunc reads an optional string field from a record.
type StringFunc[T any] func(T) (string, bool)

// IntFunc reads an optional integer field from a record.
type IntFunc[T any] func(T) (int, bool)

// StringField returns an accessor for the named field of a Fielder.
// Non-string values and unset fields report ok=false.
func StringField[T Fielder](name string) StringFunc[T] {
	return func(item T) (string, bool) {
		v, ok := item.Field(name)
		if !ok {
			return "", false
		}
		switch s := v.(type) {
		case string:
			return s, true
		case *string:
			if s == nil {
				return "", false
			}
			return *s, true
		}
		return "", false
	}
}

// IntField returns an accessor for the named integer field of a Fielder.
func IntField[T Fielder](name string) IntFunc[T] {
	return func(item T) (int, bool) {
		v, ok := item.Field(name)
		if !ok {
			return 0, false
		}
		switch n := v.(type) {
		case int:
			return n, true
		case int32:
			return int(n), true
		case int64:
			return int(n), true
		case *int:
			if n == nil {
				return 0, false
			}
			return *n, true
		}
		return 0, false
	}
}

// Ref is one entry of a foreign-key lookup table.
type Ref struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Refs projects a dataset onto lookup entries.
func Refs[T Item](items []T) []Ref {
	refs := make([]Ref, len(items))
	for i, item := range items {
		refs[i] = Ref{ID: item.ItemID(), Label: item.ItemLabel()}
	}
	return refs
}
