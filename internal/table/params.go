package table

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Recognized generic query keys. Every other key is view-specific filter criteria.
const (
	ParamSearch = "search"
	ParamSort   = "sort"
	ParamPage   = "page"
	ParamLimit  = "limit"
)

// Params is an immutable view of a request's query string.
// The zero value is an empty parameter set.
type Params struct {
	values url.Values
}

// ParamsFromQuery copies a parsed query string. Only the first value of each key is kept.
func ParamsFromQuery(q url.Values) Params {
	values := make(url.Values, len(q))
	for k, v := range q {
		if len(v) > 0 {
			values[k] = []string{v[0]}
		}
	}
	return Params{values: values}
}

// ParamsFrom builds Params from a plain map. Empty values are dropped.
func ParamsFrom(m map[string]string) Params {
	values := make(url.Values, len(m))
	for k, v := range m {
		if v != "" {
			values[k] = []string{v}
		}
	}
	return Params{values: values}
}

// Get returns the value for key, or "" when absent.
func (p Params) Get(key string) string {
	if p.values == nil {
		return ""
	}
	return p.values.Get(key)
}

// Has reports whether key carries a non-empty value.
func (p Params) Has(key string) bool {
	return p.Get(key) != ""
}

// Search returns the trimmed free-text search term.
func (p Params) Search() string {
	return strings.TrimSpace(p.Get(ParamSearch))
}

// Sort returns the requested sort mode key.
func (p Params) Sort() string {
	return strings.TrimSpace(p.Get(ParamSort))
}

// Page returns the requested 1-based page. Missing, non-numeric and
// non-positive values all yield 1. The upper bound is applied by the pipeline.
func (p Params) Page() int {
	n, err := strconv.Atoi(strings.TrimSpace(p.Get(ParamPage)))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Limit returns the requested page size. Missing, non-numeric and non-positive
// values yield def; values above ceiling are clamped to it when ceiling > 0.
func (p Params) Limit(def, ceiling int) int {
	if def < 1 {
		def = DefaultLimit
	}
	n, err := strconv.Atoi(strings.TrimSpace(p.Get(ParamLimit)))
	if err != nil || n < 1 {
		n = def
	}
	if ceiling > 0 && n > ceiling {
		n = ceiling
	}
	return n
}

// With returns a copy of p with key set to value. An empty value removes the key.
func (p Params) With(key, value string) Params {
	values := p.clone()
	if value == "" {
		delete(values, key)
	} else {
		values[key] = []string{value}
	}
	return Params{values: values}
}

// Without returns a copy of p with the given keys removed.
func (p Params) Without(keys ...string) Params {
	values := p.clone()
	for _, k := range keys {
		delete(values, k)
	}
	return Params{values: values}
}

func (p Params) clone() url.Values {
	values := make(url.Values, len(p.values)+1)
	for k, v := range p.values {
		values[k] = v
	}
	return values
}

// Keys returns the keys present, sorted.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p.values))
	for k := range p.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Encode renders the parameters as a query string with keys in sorted order.
func (p Params) Encode() string {
	if len(p.values) == 0 {
		return ""
	}
	return p.values.Encode()
}

// Map returns a copy of the parameters as a plain map.
func (p Params) Map() map[string]string {
	m := make(map[string]string, len(p.values))
	for k := range p.values {
		m[k] = p.values.Get(k)
	}
	return m
}
