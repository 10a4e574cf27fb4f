package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/JonMunkholm/admintables/internal/catalog"
	"github.com/JonMunkholm/admintables/internal/config"
)

// stubSource serves fixed datasets or a fixed error.
type stubSource struct {
	mu  sync.Mutex
	d   catalog.Datasets
	err error
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Load(context.Context) (catalog.Datasets, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d, s.err
}

func (s *stubSource) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func testConfig() *config.Config {
	return &config.Config{
		Server:   config.ServerConfig{Host: "127.0.0.1", Port: 0, RequestTimeout: 5 * time.Second},
		Security: config.SecurityConfig{EnableCSP: true},
	}
}

func seedStore(t *testing.T) *catalog.Store {
	t.Helper()
	store := catalog.NewStore(catalog.EmbeddedSource{}, time.Second)
	if _, err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	return store
}

func emptyStore() *catalog.Store {
	return catalog.NewStore(&stubSource{}, time.Second)
}

func do(t *testing.T, s *Server, method, target string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	req.RemoteAddr = "192.0.2.10:4000"
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %s: %v", rec.Body.String(), err)
	}
	return v
}

func TestDashboard(t *testing.T) {
	s := NewServer(seedStore(t), testConfig())
	rec := do(t, s, http.MethodGet, "/", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"<h1>Dashboard</h1>",
		`data-view="categories"><span class="card-title">Categories</span><span class="card-count">14</span>`,
		"<h2>Community</h2>",
		"<h2>Pros</h2>",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
}

func TestDashboard_BeforeFirstLoad(t *testing.T) {
	s := NewServer(emptyStore(), testConfig())
	rec := do(t, s, http.MethodGet, "/", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `<span class="card-count">&mdash;</span>`) {
		t.Error("counts should be unknown before the first load")
	}
}

func TestTablePage_Variants(t *testing.T) {
	s := NewServer(seedStore(t), testConfig())

	tests := []struct {
		name       string
		target     string
		header     map[string]string
		wantPrefix string
		want       []string
		notWant    []string
	}{
		{
			name:       "full page",
			target:     "/admin/tags",
			wantPrefix: "<!DOCTYPE html>",
			want:       []string{"<h1>Tags</h1>", `href="/admin/tags" class="active"`, `id="table-section"`},
		},
		{
			name:       "htmx section",
			target:     "/admin/tags?page=2",
			header:     map[string]string{"HX-Request": "true", "HX-Target": "table-section"},
			wantPrefix: `<div id="table-section"`,
			notWant:    []string{"<!DOCTYPE html>", `class="filter-bar"`},
		},
		{
			name:       "htmx view",
			target:     "/admin/tags",
			header:     map[string]string{"HX-Request": "true", "HX-Target": "table-view"},
			wantPrefix: `<div id="table-view"`,
			want:       []string{`class="filter-bar"`},
			notWant:    []string{"<!DOCTYPE html>"},
		},
		{
			name:       "history restore gets full page",
			target:     "/admin/tags",
			header:     map[string]string{"HX-Request": "true", "HX-History-Restore-Request": "true"},
			wantPrefix: "<!DOCTYPE html>",
		},
		{
			name:       "deferred",
			target:     "/admin/tags?defer=1&sort=usage",
			wantPrefix: "<!DOCTYPE html>",
			want:       []string{`aria-busy="true"`, `hx-get="/admin/tags?sort=usage"`, `hx-trigger="load"`},
			notWant:    []string{`id="table-section"`, "defer=1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodGet, tt.target, tt.header)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
			}
			body := rec.Body.String()
			if !strings.HasPrefix(body, tt.wantPrefix) {
				t.Errorf("body starts %q, want prefix %q", body[:min(len(body), 40)], tt.wantPrefix)
			}
			for _, want := range tt.want {
				if !strings.Contains(body, want) {
					t.Errorf("body missing %q", want)
				}
			}
			for _, bad := range tt.notWant {
				if strings.Contains(body, bad) {
					t.Errorf("body contains %q", bad)
				}
			}
		})
	}
}

func TestTablePage_SecondPageOfTags(t *testing.T) {
	s := NewServer(seedStore(t), testConfig())
	rec := do(t, s, http.MethodGet, "/admin/tags?page=2", map[string]string{"HX-Request": "true", "HX-Target": "table-section"})

	body := rec.Body.String()
	if got := strings.Count(body, "<tr data-id="); got != 5 {
		t.Errorf("rows = %d, want 5 (15 tags, 10 per page)", got)
	}
	if !strings.Contains(body, "Showing 11–15 of 15") {
		t.Errorf("summary missing: %s", body)
	}
}

func TestTablePage_Errors(t *testing.T) {
	loaded := NewServer(seedStore(t), testConfig())
	loading := NewServer(emptyStore(), testConfig())

	tests := []struct {
		name     string
		s        *Server
		target   string
		header   map[string]string
		wantCode int
		wantBody string
	}{
		{"unknown view", loaded, "/admin/widgets", nil, http.StatusNotFound, "VIEW001"},
		{"unknown view htmx", loaded, "/admin/widgets", map[string]string{"HX-Request": "true"}, http.StatusNotFound, `role="alert"`},
		{"unknown view json", loaded, "/admin/widgets", map[string]string{"Accept": "application/json"}, http.StatusNotFound, `"code":"VIEW001"`},
		{"not loaded", loading, "/admin/tags", nil, http.StatusServiceUnavailable, "DATA001"},
		{"not loaded deferred", loading, "/admin/tags?defer=1", nil, http.StatusOK, `aria-busy="true"`},
		{"skeleton while loading", loading, "/admin/tags/skeleton", nil, http.StatusOK, `class="sk sk-short"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, tt.s, http.MethodGet, tt.target, tt.header)
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body %q missing %q", rec.Body.String(), tt.wantBody)
			}
		})
	}

	rec := do(t, loaded, http.MethodGet, "/admin/widgets", map[string]string{"HX-Request": "true"})
	if got := rec.Header().Get("HX-Retarget"); got != "#table-view" {
		t.Errorf("HX-Retarget = %q", got)
	}
}

type apiPage struct {
	Key  string `json:"key"`
	Rows []struct {
		ID string `json:"id"`
	} `json:"rows"`
	Pagination struct {
		TotalItems int `json:"totalItems"`
		TotalPages int `json:"totalPages"`
	} `json:"pagination"`
}

func TestAPI_ViewData(t *testing.T) {
	s := NewServer(seedStore(t), testConfig())
	rec := do(t, s, http.MethodGet, "/api/views/skills?category=cat-01&level=expert", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	page := decode[apiPage](t, rec)
	var ids []string
	for _, r := range page.Rows {
		ids = append(ids, r.ID)
	}
	if !slices.Equal(ids, []string{"sk-02", "sk-03"}) || page.Pagination.TotalItems != 2 {
		t.Errorf("page = %+v", page)
	}

	etag := rec.Header().Get("ETag")
	if etag == "" {
		t.Fatal("no ETag")
	}
	again := do(t, s, http.MethodGet, "/api/views/skills?level=expert&category=cat-01", map[string]string{"If-None-Match": etag})
	if again.Code != http.StatusNotModified {
		t.Errorf("conditional status = %d, want 304", again.Code)
	}
	other := do(t, s, http.MethodGet, "/api/views/skills?level=beginner", map[string]string{"If-None-Match": etag})
	if other.Code != http.StatusOK {
		t.Errorf("different query status = %d, want 200", other.Code)
	}
}

func TestAPI_Errors(t *testing.T) {
	rec := do(t, NewServer(seedStore(t), testConfig()), http.MethodGet, "/api/views/widgets", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := decode[ErrorResponse](t, rec); body.Code != "VIEW001" || body.Action == "" {
		t.Errorf("body = %+v", body)
	}

	rec = do(t, NewServer(emptyStore(), testConfig()), http.MethodGet, "/api/views/tags", nil)
	if rec.Code != http.StatusServiceUnavailable || decode[ErrorResponse](t, rec).Code != "DATA001" {
		t.Errorf("not loaded = %d %s", rec.Code, rec.Body.String())
	}
}

func TestAPI_ListViews(t *testing.T) {
	rec := do(t, NewServer(seedStore(t), testConfig()), http.MethodGet, "/api/views", nil)

	list := decode[[]struct {
		Key      string `json:"key"`
		BasePath string `json:"basePath"`
		Count    *int   `json:"count"`
	}](t, rec)
	if len(list) != 7 {
		t.Fatalf("views = %d, want 7", len(list))
	}
	for _, v := range list {
		if v.Count == nil || *v.Count == 0 {
			t.Errorf("%s: count = %v", v.Key, v.Count)
		}
	}
}

func TestAPI_Skeleton(t *testing.T) {
	rec := do(t, NewServer(emptyStore(), testConfig()), http.MethodGet, "/api/views/users/skeleton?limit=3", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	sk := decode[struct {
		Columns []struct {
			Header string `json:"header"`
		} `json:"columns"`
		Rows int `json:"rows"`
	}](t, rec)
	if sk.Rows != 3 || len(sk.Columns) == 0 {
		t.Errorf("skeleton = %+v", sk)
	}
}

func TestHealth(t *testing.T) {
	rec := do(t, NewServer(emptyStore(), testConfig()), http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusServiceUnavailable || decode[healthResponse](t, rec).Status != "unavailable" {
		t.Errorf("before load = %d %s", rec.Code, rec.Body.String())
	}

	store := seedStore(t)
	rec = do(t, NewServer(store, testConfig()), http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	h := decode[healthResponse](t, rec)
	snap, _ := store.Current()
	if h.Status != "ok" || h.Source != "embedded" || h.Version != snap.Version.String() {
		t.Errorf("health = %+v", h)
	}
	if h.Counts[catalog.DatasetCategories] != 14 {
		t.Errorf("counts = %v", h.Counts)
	}
	if rec.Header().Get("ETag") != `"`+h.Version+`"` {
		t.Errorf("ETag = %q", rec.Header().Get("ETag"))
	}
}

func TestReload(t *testing.T) {
	src := &stubSource{d: catalog.Datasets{Tags: []catalog.Tag{{ID: "t1", Label: "One", Slug: "one"}}}}
	store := catalog.NewStore(src, time.Second)
	cfg := testConfig()
	cfg.Security.RequireAPIKey = true
	cfg.Security.APIKeys = []string{"secret"}
	s := NewServer(store, cfg)

	if rec := do(t, s, http.MethodPost, "/api/reload", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("without key = %d", rec.Code)
	}

	key := map[string]string{"X-API-Key": "secret"}
	rec := do(t, s, http.MethodPost, "/api/reload", key)
	if rec.Code != http.StatusOK {
		t.Fatalf("reload = %d: %s", rec.Code, rec.Body.String())
	}
	first := decode[healthResponse](t, rec)
	if first.Counts[catalog.DatasetTags] != 1 {
		t.Errorf("counts = %v", first.Counts)
	}

	src.fail(errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"))
	rec = do(t, s, http.MethodPost, "/api/reload", key)
	if rec.Code != http.StatusBadGateway || decode[ErrorResponse](t, rec).Code != "SRC001" {
		t.Errorf("failed reload = %d %s", rec.Code, rec.Body.String())
	}

	h := decode[healthResponse](t, do(t, s, http.MethodGet, "/healthz", nil))
	if h.Status != "degraded" || h.Version != first.Version || h.LastError != "SRC001" {
		t.Errorf("after failed reload = %+v", h)
	}
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Rate = config.RateLimitConfig{Enabled: true, RequestsPerMinute: 1, Burst: 1, ReloadLimit: 1}
	s := NewServer(seedStore(t), cfg)

	if rec := do(t, s, http.MethodGet, "/healthz", nil); rec.Code != http.StatusOK {
		t.Fatalf("first = %d", rec.Code)
	}
	rec := do(t, s, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("no Retry-After")
	}
}

func TestSecurityHeadersAndStatic(t *testing.T) {
	rec := do(t, NewServer(emptyStore(), testConfig()), http.MethodGet, "/static/app.css", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("static = %d", rec.Code)
	}
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("nosniff missing")
	}
	if !strings.Contains(rec.Header().Get("Content-Security-Policy"), "https://unpkg.com") {
		t.Errorf("CSP = %q", rec.Header().Get("Content-Security-Policy"))
	}

	cfg := testConfig()
	cfg.Security.EnableCSP = false
	rec = do(t, NewServer(emptyStore(), cfg), http.MethodGet, "/static/app.css", nil)
	if rec.Header().Get("Content-Security-Policy") != "" {
		t.Error("CSP set while disabled")
	}
}
