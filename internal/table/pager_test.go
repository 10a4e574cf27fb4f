package table

import (
	"slices"
	"testing"
)

func pageNumbers(p Pagination) []int {
	out := make([]int, len(p.Pages))
	for i, l := range p.Pages {
		if l.Gap {
			out[i] = 0
			continue
		}
		out[i] = l.Number
	}
	return out
}

func TestPaginate_Window(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		total int
		want  []int // 0 marks a gap
	}{
		{"single page", 1, 1, []int{1}},
		{"few pages", 2, 4, []int{1, 2, 3, 4}},
		{"start", 1, 10, []int{1, 2, 3, 0, 10}},
		{"middle", 5, 10, []int{1, 0, 3, 4, 5, 6, 7, 0, 10}},
		{"end", 10, 10, []int{1, 0, 8, 9, 10}},
		{"no gap for adjacent", 4, 10, []int{1, 2, 3, 4, 5, 6, 0, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := PageResult[record]{TotalPages: tt.total, CurrentPage: tt.page, CurrentLimit: 10, TotalItems: tt.total * 10}
			p := Paginate("/admin/tags", Params{}, res)
			if got := pageNumbers(p); !slices.Equal(got, tt.want) {
				t.Errorf("pages = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPaginate_PrevNextAndRange(t *testing.T) {
	params := ParamsFrom(map[string]string{"search": "web", "type": "skill", "page": "2"})
	res := PageResult[record]{TotalPages: 3, CurrentPage: 2, CurrentLimit: 5, TotalItems: 12}

	p := Paginate("/admin/tags", params, res)

	if p.Prev == nil || p.Prev.Href != "/admin/tags?page=1&search=web&type=skill" {
		t.Errorf("Prev = %+v", p.Prev)
	}
	if p.Next == nil || p.Next.Href != "/admin/tags?page=3&search=web&type=skill" {
		t.Errorf("Next = %+v", p.Next)
	}
	if p.From != 6 || p.To != 10 {
		t.Errorf("From/To = %d/%d, want 6/10", p.From, p.To)
	}
	for _, l := range p.Pages {
		if l.Current != (l.Number == 2) {
			t.Errorf("page %d Current = %v", l.Number, l.Current)
		}
	}
}

func TestPaginate_Bounds(t *testing.T) {
	first := Paginate("/x", Params{}, PageResult[record]{TotalPages: 2, CurrentPage: 1, CurrentLimit: 10, TotalItems: 15})
	if first.Prev != nil || first.Next == nil {
		t.Errorf("first page: Prev=%v Next=%v", first.Prev, first.Next)
	}

	last := Paginate("/x", Params{}, PageResult[record]{TotalPages: 2, CurrentPage: 2, CurrentLimit: 10, TotalItems: 15})
	if last.Next != nil || last.Prev == nil {
		t.Errorf("last page: Prev=%v Next=%v", last.Prev, last.Next)
	}
	if last.From != 11 || last.To != 15 {
		t.Errorf("From/To = %d/%d, want 11/15", last.From, last.To)
	}

	empty := Paginate("/x", Params{}, PageResult[record]{TotalPages: 1, CurrentPage: 1, CurrentLimit: 10})
	if empty.From != 0 || empty.To != 0 {
		t.Errorf("empty From/To = %d/%d", empty.From, empty.To)
	}
}

func TestHref(t *testing.T) {
	if got := Href("/admin/users", Params{}); got != "/admin/users" {
		t.Errorf("Href = %q", got)
	}
	if got := PageHref("/admin/users", Params{}, 4); got != "/admin/users?page=4" {
		t.Errorf("PageHref = %q", got)
	}
}
