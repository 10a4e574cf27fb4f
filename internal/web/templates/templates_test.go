package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/JonMunkholm/admintables/internal/table"
	"github.com/a-h/templ"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func samplePage() table.Page {
	params := table.ParamsFrom(map[string]string{"search": "<b>", "type": "pro", "page": "2"})
	return table.Page{
		Key:      "users",
		Title:    "Users",
		BasePath: "/admin/users",
		Headers: []table.Header{
			{Key: "label", Header: "Name"},
			{Key: "image", Header: "Avatar", Class: "w-16"},
			{Key: "chats", Header: "Chats", Class: "w-24 text-right"},
			{Key: "actions", Header: "Actions"},
		},
		Rows: []table.Row{{ID: "u1", Cells: []table.Cell{
			{Kind: table.CellLink, Text: `Ann "A" <Admin>`, Href: "/admin/users/u1"},
			{Kind: table.CellImage, Alt: "Ann", Placeholder: true},
			{Kind: table.CellBadge, Text: "3", Count: 3},
			{Kind: table.CellActions, Actions: []table.Action{
				{Kind: "edit", Label: "Edit", Href: "/admin/users/u1/edit"},
				{Kind: "delete", Label: "Delete", Href: "/admin/users/u1", Target: "u1"},
			}},
		}}},
		Pagination: table.Pagination{
			BasePath: "/admin/users", TotalPages: 3, CurrentPage: 2, CurrentLimit: 1, TotalItems: 3, From: 2, To: 2,
			Prev:  &table.PageLink{Number: 1, Href: "/admin/users?page=1"},
			Next:  &table.PageLink{Number: 3, Href: "/admin/users?page=3"},
			Pages: []table.PageLink{{Number: 1, Href: "/admin/users?page=1"}, {Number: 2, Current: true}, {Number: 3, Href: "/admin/users?page=3"}},
		},
		Search:    params.Search(),
		Sort:      "chats",
		SortModes: []table.SortOption{{Key: "label", Label: "Name"}, {Key: "chats", Label: "Most chats"}},
		Filters:   []table.FilterControl{table.EnumControl("type", "Role", "admin", "pro")},
		Params:    params,
	}
}

func TestTableView_EscapesAndMarksState(t *testing.T) {
	out := renderString(t, TableView(samplePage()))

	checks := []string{
		`id="table-view"`,
		`id="table-section"`,
		`value="&lt;b&gt;"`,
		`Ann &#34;A&#34; &lt;Admin&gt;`,
		`<option value="chats" selected>Most chats</option>`,
		`<option value="pro" selected>pro</option>`,
		`<option value="">All Role</option>`,
		`aria-label="Ann"`,
		`<span class="badge">3</span>`,
		`data-target="u1"`,
		`Showing 2–2 of 3`,
		`<span class="page current" aria-current="page">2</span>`,
		`hx-get="/admin/users?page=3"`,
	}
	for _, want := range checks {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "<b>") || strings.Contains(out, "<Admin>") {
		t.Error("unescaped user text in output")
	}
}

func TestTableSection_Empty(t *testing.T) {
	page := table.Page{Headers: []table.Header{{Header: "ID"}, {Header: "Name"}}, Pagination: table.Pagination{TotalPages: 1, CurrentPage: 1}}
	out := renderString(t, TableSection(page))

	if !strings.Contains(out, `colspan="2"`) || !strings.Contains(out, "No results") {
		t.Errorf("empty table = %s", out)
	}
	if strings.Contains(out, `rel="next"`) {
		t.Error("empty table has a next link")
	}
}

func TestSkeletonView(t *testing.T) {
	sk := table.SkeletonPage{
		Key:     "tags",
		Columns: []table.SkeletonColumn{table.SkeletonID(), table.SkeletonLabel(), table.SkeletonCount("Usage")},
		Rows:    4,
	}

	out := renderString(t, SkeletonView(sk, "/admin/tags?limit=4"))
	if got := strings.Count(out, "<tr>"); got != 5 {
		t.Errorf("rows = %d, want header + 4", got)
	}
	if got := strings.Count(out, `class="sk sk-pill"`); got != 4 {
		t.Errorf("pill cells = %d, want 4", got)
	}
	if !strings.Contains(out, `hx-get="/admin/tags?limit=4"`) || !strings.Contains(out, `hx-trigger="load"`) {
		t.Errorf("skeleton does not load the view: %s", out)
	}

	if out := renderString(t, SkeletonView(sk, "")); strings.Contains(out, "hx-get") {
		t.Error("fragment without load href should not fetch")
	}
}

func TestCell_UnsafeURL(t *testing.T) {
	page := table.Page{
		Headers: []table.Header{{Header: "Image"}},
		Rows:    []table.Row{{ID: "x", Cells: []table.Cell{{Kind: table.CellImage, Src: "javascript:alert(1)", Alt: "x"}}}},
	}
	out := renderString(t, TableSection(page))
	if strings.Contains(out, "javascript:") {
		t.Errorf("unsafe URL rendered: %s", out)
	}
}

func TestLayoutAndDashboard(t *testing.T) {
	nav := []NavGroup{{Name: "Marketplace", Views: []ViewLink{
		{Key: "tags", Label: "Tags", Href: "/admin/tags", Count: 15, Known: true, Active: true},
		{Key: "skills", Label: "Skills", Href: "/admin/skills"},
	}}}

	out := renderString(t, Layout("Tags", nav, Dashboard(nav)))
	for _, want := range []string{
		"<title>Tags · Admin</title>",
		`<a href="/admin/tags" class="active" aria-current="page">Tags</a>`,
		`<span class="card-count">15</span>`,
		`<span class="card-count">&mdash;</span>`,
		HTMXScript,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestErrorAlert(t *testing.T) {
	out := renderString(t, ErrorAlert("View not found", "", "VIEW001"))
	if !strings.Contains(out, "View not found") || !strings.Contains(out, "Code: VIEW001") {
		t.Errorf("alert = %s", out)
	}
	if strings.Contains(out, "alert-action") {
		t.Error("empty action rendered")
	}
}
