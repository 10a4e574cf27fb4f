package views

import (
	"sort"
	"sync/atomic"

	"github.com/JonMunkholm/admintables/internal/catalog"
	"github.com/JonMunkholm/admintables/internal/table"
)

// define turns a typed view builder into a registry definition.
//
// Lookup columns and filter options are built from the snapshot's reference
// datasets, so the typed view is rebuilt whenever a new snapshot is rendered
// and reused for every request against the same snapshot.
func define[T table.Item](info Info, build func(*catalog.Snapshot) table.View[T], data func(*catalog.Snapshot) []T) Definition {
	empty := build(&catalog.Snapshot{})
	cache := &viewCache[T]{build: build}

	return Definition{
		Info: info,
		Render: func(snap *catalog.Snapshot, params table.Params) table.Page {
			return cache.view(snap).Render(data(snap), params)
		},
		Placeholder: empty.Placeholder,
		Count: func(snap *catalog.Snapshot) int {
			return len(data(snap))
		},
		Validate: func() error {
			if err := empty.Validate(); err != nil {
				return err
			}
			if empty.Key != info.Key || empty.BasePath != info.BasePath {
				return errMismatchedInfo(info, empty.Key, empty.BasePath)
			}
			return nil
		},
	}
}

type builtView[T table.Item] struct {
	snap *catalog.Snapshot
	view table.View[T]
}

type viewCache[T table.Item] struct {
	build   func(*catalog.Snapshot) table.View[T]
	current atomic.Pointer[builtView[T]]
}

func (c *viewCache[T]) view(snap *catalog.Snapshot) table.View[T] {
	if b := c.current.Load(); b != nil && b.snap == snap {
		return b.view
	}
	b := &builtView[T]{snap: snap, view: c.build(snap)}
	c.current.Store(b)
	return b.view
}

// distinct collects the sorted set of non-empty values of field.
func distinct[T any](items []T, field table.StringFunc[T]) []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range items {
		v, ok := field(item)
		if !ok || v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
