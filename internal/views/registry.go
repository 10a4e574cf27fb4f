// Package views declares one table view per admin dataset and keeps them in a
// registry the web layer looks views up from. Each view file registers its
// view from init().
package views

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/JonMunkholm/admintables/internal/catalog"
	"github.com/JonMunkholm/admintables/internal/table"
)

// ErrUnknownView is returned by Lookup for keys nothing registered.
var ErrUnknownView = errors.New("unknown view")

// Page size policy shared by every view.
const (
	DefaultLimit = table.DefaultLimit
	MaxLimit     = 100
)

// Info describes a view for navigation.
type Info struct {
	Key      string `json:"key"`      // Unique identifier: "categories"
	Group    string `json:"group"`    // Navigation section: "Marketplace"
	Label    string `json:"label"`    // Display name: "Categories"
	BasePath string `json:"basePath"` // Route and link root: "/admin/categories"
}

// Definition is a registered, type-erased table view.
type Definition struct {
	Info Info

	// Render runs the pipeline for params over the snapshot's dataset.
	Render func(snap *catalog.Snapshot, params table.Params) table.Page
	// Placeholder builds the loading skeleton; it needs no data.
	Placeholder func(params table.Params) table.SkeletonPage
	// Count returns the unfiltered dataset size.
	Count func(snap *catalog.Snapshot) int
	// Validate checks the column wiring; nil skips the check.
	Validate func() error
}

func errMismatchedInfo(info Info, key, basePath string) error {
	return fmt.Errorf("view %s: built with key %q and base path %q, want %q and %q",
		info.Key, key, basePath, info.Key, info.BasePath)
}

var (
	registry   = make(map[string]Definition)
	registryMu sync.RWMutex
)

// Register adds a view definition to the registry.
// Panics if the key is empty or already registered, or if the view's
// skeleton columns do not line up with its live columns.
func Register(def Definition) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if def.Info.Key == "" {
		panic("view registered without a key")
	}
	if _, exists := registry[def.Info.Key]; exists {
		panic(fmt.Sprintf("view already registered: %s", def.Info.Key))
	}
	if def.Render == nil || def.Placeholder == nil || def.Count == nil {
		panic(fmt.Sprintf("view %s: Render, Placeholder and Count are required", def.Info.Key))
	}
	if def.Validate != nil {
		if err := def.Validate(); err != nil {
			panic(err.Error())
		}
	}

	registry[def.Info.Key] = def
}

// Get returns a view definition by key.
// Returns false if not found.
func Get(key string) (Definition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	def, ok := registry[key]
	return def, ok
}

// Lookup is Get with an error wrapping ErrUnknownView.
func Lookup(key string) (Definition, error) {
	def, ok := Get(key)
	if !ok {
		return Definition{}, fmt.Errorf("%w: %s", ErrUnknownView, key)
	}
	return def, nil
}

// All returns all registered view definitions.
// Sorted by group then by key for consistent ordering.
func All() []Definition {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]Definition, 0, len(registry))
	for _, def := range registry {
		result = append(result, def)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Info.Group != result[j].Info.Group {
			return result[i].Info.Group < result[j].Info.Group
		}
		return result[i].Info.Key < result[j].Info.Key
	})

	return result
}

// ByGroup returns all view definitions for a specific group.
// Sorted by key for consistent ordering.
func ByGroup(group string) []Definition {
	registryMu.RLock()
	defer registryMu.RUnlock()

	var result []Definition
	for _, def := range registry {
		if def.Info.Group == group {
			result = append(result, def)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Info.Key < result[j].Info.Key
	})

	return result
}

// Groups returns all unique group names.
// Sorted alphabetically.
func Groups() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	seen := make(map[string]bool)
	for _, def := range registry {
		seen[def.Info.Group] = true
	}

	groups := make([]string, 0, len(seen))
	for g := range seen {
		groups = append(groups, g)
	}

	sort.Strings(groups)
	return groups
}

// Count returns the number of registered views.
func Count() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}

// Clear removes all registered views.
// Primarily useful for testing.
func Clear() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]Definition)
}
