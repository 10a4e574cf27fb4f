package table

import "fmt"

// FilterOption is one choice in a filter select.
type FilterOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FilterControl describes one view-specific filter in the filter bar.
type FilterControl struct {
	Key     string         `json:"key"`
	Label   string         `json:"label"`
	Options []FilterOption `json:"options"`
}

// FeaturedControl is the standard featured filter select.
func FeaturedControl() FilterControl {
	return FilterControl{Key: "featured", Label: "Featured", Options: []FilterOption{
		{Value: FeaturedYes, Label: "Featured"},
		{Value: FeaturedNo, Label: "Not featured"},
	}}
}

// RefControl builds a filter select from a lookup table.
func RefControl(key, label string, refs []Ref) FilterControl {
	opts := make([]FilterOption, len(refs))
	for i, r := range refs {
		opts[i] = FilterOption{Value: r.ID, Label: r.Label}
	}
	return FilterControl{Key: key, Label: label, Options: opts}
}

// EnumControl builds a filter select from fixed values, using each value as its label.
func EnumControl(key, label string, values ...string) FilterControl {
	opts := make([]FilterOption, len(values))
	for i, v := range values {
		opts[i] = FilterOption{Value: v, Label: v}
	}
	return FilterControl{Key: key, Label: label, Options: opts}
}

// View binds columns, skeleton, filter and sort for one record type.
// Datasets are passed to Render on every call rather than stored.
type View[T Item] struct {
	Key          string
	Title        string
	BasePath     string
	Columns      []Column[T]
	Skeleton     []SkeletonColumn
	Filter       FilterFunc[T]
	Sorts        []SortMode[T]
	Filters      []FilterControl
	DefaultLimit int
	MaxLimit     int
}

// Row is one rendered record.
type Row struct {
	ID    string `json:"id"`
	Cells []Cell `json:"cells"`
}

// Page is a rendered table section: headers, rows and pagination controls.
type Page struct {
	Key        string          `json:"key"`
	Title      string          `json:"title"`
	BasePath   string          `json:"basePath"`
	Headers    []Header        `json:"headers"`
	Rows       []Row           `json:"rows"`
	Pagination Pagination      `json:"pagination"`
	Search     string          `json:"search"`
	Sort       string          `json:"sort"`
	SortModes  []SortOption    `json:"sortModes"`
	Filters    []FilterControl `json:"filters"`
	Params     Params          `json:"-"`
	Items      any             `json:"items"`
}

// SkeletonPage is the loading placeholder for a view.
type SkeletonPage struct {
	Key      string           `json:"key"`
	Title    string           `json:"title"`
	BasePath string           `json:"basePath"`
	Columns  []SkeletonColumn `json:"columns"`
	Rows     int              `json:"rows"`
	Params   Params           `json:"-"`
}

// Validate checks the view wiring: a key, a base path and skeleton parity.
func (v View[T]) Validate() error {
	if v.Key == "" {
		return fmt.Errorf("view has no key")
	}
	if v.BasePath == "" {
		return fmt.Errorf("view %s has no base path", v.Key)
	}
	seen := make(map[string]bool, len(v.Columns))
	for _, c := range v.Columns {
		if seen[c.Key] {
			return fmt.Errorf("view %s: duplicate column key %q", v.Key, c.Key)
		}
		seen[c.Key] = true
	}
	if err := CheckParity(Headers(v.Columns), v.Skeleton); err != nil {
		return fmt.Errorf("view %s: %w", v.Key, err)
	}
	return nil
}

// Process runs the pipeline over data with this view's filter and sort.
func (v View[T]) Process(data []T, params Params) PageResult[T] {
	return Process(Options[T]{
		Data:         data,
		Params:       params,
		BasePath:     v.BasePath,
		Filter:       v.Filter,
		Sort:         Sorter(v.Sorts...),
		DefaultLimit: v.DefaultLimit,
		MaxLimit:     v.MaxLimit,
	})
}

// Render processes data and renders the resulting page.
func (v View[T]) Render(data []T, params Params) Page {
	res := v.Process(data, params)

	rows := make([]Row, len(res.Data))
	for i, item := range res.Data {
		cells := make([]Cell, len(v.Columns))
		for j, col := range v.Columns {
			cells[j] = col.Render(item)
		}
		rows[i] = Row{ID: item.ItemID(), Cells: cells}
	}

	return Page{
		Key:        v.Key,
		Title:      v.Title,
		BasePath:   v.BasePath,
		Headers:    Headers(v.Columns),
		Rows:       rows,
		Pagination: Paginate(v.BasePath, params, res),
		Search:     params.Search(),
		Sort:       params.Sort(),
		SortModes:  SortOptions(v.Sorts),
		Filters:    v.Filters,
		Params:     params,
		Items:      res.Data,
	}
}

// Placeholder builds the loading skeleton. It shows as many rows as the
// requested page size.
func (v View[T]) Placeholder(params Params) SkeletonPage {
	return SkeletonPage{
		Key:      v.Key,
		Title:    v.Title,
		BasePath: v.BasePath,
		Columns:  v.Skeleton,
		Rows:     params.Limit(v.DefaultLimit, v.MaxLimit),
		Params:   params,
	}
}
