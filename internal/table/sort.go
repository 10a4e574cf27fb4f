package table

import (
	"bytes"
	"cmp"
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortFunc returns items ordered for the given sort key.
// Implementations must return a new slice and leave items untouched.
type SortFunc[T any] func(items []T, key string) []T

// SortMode is one entry of a view's sort vocabulary.
// By orders records before the label comparison; nil means label only.
type SortMode[T any] struct {
	Key       string
	Label     string
	By        func(a, b T) int
	LabelDesc bool
}

// SortOption is the type-erased part of a sort mode, for sort selects.
type SortOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// SortLabel is the standard mode key.
const SortLabel = "label"

// StandardSort orders by label ascending for every key.
func StandardSort[T Item]() SortFunc[T] {
	return Sorter[T]()
}

// Sorter builds a SortFunc from a sort vocabulary. Keys that match no mode,
// including the empty key, use the standard label order.
//
// Labels are compared case-folded with root-locale collation; records that
// compare equal are ordered by id so the result never depends on input order.
func Sorter[T Item](modes ...SortMode[T]) SortFunc[T] {
	byKey := make(map[string]SortMode[T], len(modes))
	for _, m := range modes {
		byKey[m.Key] = m
	}
	return func(items []T, key string) []T {
		mode, ok := byKey[key]
		if !ok {
			mode = SortMode[T]{Key: SortLabel}
		}
		return sortItems(items, mode)
	}
}

// SortOptions lists the sort vocabulary for a sort select.
func SortOptions[T any](modes []SortMode[T]) []SortOption {
	out := make([]SortOption, len(modes))
	for i, m := range modes {
		out[i] = SortOption{Key: m.Key, Label: m.Label}
	}
	return out
}

// ByLabel is the standard ascending mode.
func ByLabel[T any](label string) SortMode[T] {
	return SortMode[T]{Key: SortLabel, Label: label}
}

// ByLabelDesc orders labels descending; ties still fall back to id ascending.
func ByLabelDesc[T any](key, label string) SortMode[T] {
	return SortMode[T]{Key: key, Label: label, LabelDesc: true}
}

// ByCountDesc puts the largest counts first. Unset and negative counts sort as 0.
func ByCountDesc[T any](key, label string, field IntFunc[T]) SortMode[T] {
	return SortMode[T]{Key: key, Label: label, By: func(a, b T) int {
		return cmp.Compare(countValue(field, b), countValue(field, a))
	}}
}

// ByFeatured puts featured records first.
func ByFeatured[T Featurer](key, label string) SortMode[T] {
	return SortMode[T]{Key: key, Label: label, By: func(a, b T) int {
		switch fa, fb := a.FeaturedFlag(), b.FeaturedFlag(); {
		case fa == fb:
			return 0
		case fa:
			return -1
		default:
			return 1
		}
	}}
}

type sortEntry[T any] struct {
	item T
	key  []byte
	id   string
}

func sortItems[T Item](items []T, mode SortMode[T]) []T {
	// Collators and casers keep internal buffers, so each call gets its own.
	col := collate.New(language.Und, collate.IgnoreCase)
	fold := cases.Fold()
	var buf collate.Buffer

	entries := make([]sortEntry[T], len(items))
	for i, item := range items {
		entries[i] = sortEntry[T]{
			item: item,
			key:  col.KeyFromString(&buf, fold.String(item.ItemLabel())),
			id:   item.ItemID(),
		}
	}

	slices.SortStableFunc(entries, func(a, b sortEntry[T]) int {
		if mode.By != nil {
			if c := mode.By(a.item, b.item); c != 0 {
				return c
			}
		}
		c := bytes.Compare(a.key, b.key)
		if mode.LabelDesc {
			c = -c
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})

	out := make([]T, len(entries))
	for i, e := range entries {
		out[i] = e.item
	}
	return out
}
