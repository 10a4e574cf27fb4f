package table

import (
	"reflect"
	"testing"
)

func filterIDs(items []record, f FilterFunc[record], params Params) []string {
	var out []string
	for _, it := range items {
		if f(it, params) {
			out = append(out, it.id)
		}
	}
	return out
}

func TestStandardSearch(t *testing.T) {
	items := []record{
		{id: "1", label: "Web Design", slug: "web-design"},
		{id: "2", label: "Plumbing", slug: "plumbing"},
		{id: "3", label: "Garden", slug: "landscape-design"},
	}
	search := StandardSearch[record]()

	tests := []struct {
		term string
		want []string
	}{
		{"", []string{"1", "2", "3"}},
		{"   ", []string{"1", "2", "3"}},
		{"design", []string{"1", "3"}},
		{"DESIGN", []string{"1", "3"}},
		{"plumb", []string{"2"}},
		{"landscape", []string{"3"}},
		{"xyz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got := filterIDs(items, search, ParamsFrom(map[string]string{"search": tt.term}))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("search %q = %v, want %v", tt.term, got, tt.want)
			}
		})
	}
}

func TestFeaturedFilter(t *testing.T) {
	items := []record{
		{id: "1", featured: boolPtr(true)},
		{id: "2", featured: boolPtr(false)},
		{id: "3"},
	}
	featured := FeaturedFilter[record]()

	tests := []struct {
		value string
		want  []string
	}{
		{"t", []string{"1"}},
		{"f", []string{"2", "3"}},
		{"", []string{"1", "2", "3"}},
		{"true", []string{"1", "2", "3"}},
		{"yes", []string{"1", "2", "3"}},
	}

	for _, tt := range tests {
		t.Run("featured="+tt.value, func(t *testing.T) {
			got := filterIDs(items, featured, ParamsFrom(map[string]string{"featured": tt.value}))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFieldEquals(t *testing.T) {
	items := []record{
		{id: "1", group: "skill"},
		{id: "2", group: "industry"},
		{id: "3"},
	}
	byGroup := FieldEquals("type", StringField[record]("group"))

	if got := filterIDs(items, byGroup, ParamsFrom(map[string]string{"type": "skill"})); !reflect.DeepEqual(got, []string{"1"}) {
		t.Errorf("type=skill: got %v", got)
	}
	if got := filterIDs(items, byGroup, Params{}); !reflect.DeepEqual(got, []string{"1", "2", "3"}) {
		t.Errorf("no type: got %v", got)
	}
	if got := filterIDs(items, byGroup, ParamsFrom(map[string]string{"type": "Skill"})); got != nil {
		t.Errorf("match must be exact, got %v", got)
	}
}

func TestAllOf(t *testing.T) {
	items := []record{
		{id: "1", label: "Design", featured: boolPtr(true)},
		{id: "2", label: "Design Ops"},
		{id: "3", label: "Ops", featured: boolPtr(true)},
	}
	f := AllOf(StandardSearch[record](), nil, FeaturedFilter[record]())

	got := filterIDs(items, f, ParamsFrom(map[string]string{"search": "design", "featured": "t"}))
	if !reflect.DeepEqual(got, []string{"1"}) {
		t.Errorf("got %v, want [1]", got)
	}
}
