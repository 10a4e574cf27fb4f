package web

import (
	"net/http"
	"strings"
	"time"

	"github.com/JonMunkholm/admintables/internal/catalog"
	"github.com/JonMunkholm/admintables/internal/logging"
	"github.com/JonMunkholm/admintables/internal/table"
	"github.com/JonMunkholm/admintables/internal/views"
	"github.com/JonMunkholm/admintables/internal/web/templates"
	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// paramDefer asks for the skeleton first and the table over HTMX.
const paramDefer = "defer"

// handleDashboard lists the views by group with their dataset sizes.
// Sizes show as unknown until the first snapshot is loaded.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	snap, _ := s.store.Current()
	groups := s.navGroups(snap, "")
	s.render(w, r, templates.Layout("Dashboard", groups, templates.Dashboard(groups)))
}

// handleTablePage serves /admin/{view}.
//
//   - HTMX requests get TableSection when they target it, TableView otherwise.
//   - ?defer=1 serves the page with the skeleton, which loads the view itself.
//   - Everything else gets the full page.
func (s *Server) handleTablePage(w http.ResponseWriter, r *http.Request) {
	def, err := lookupView(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	params := table.ParamsFromQuery(r.URL.Query())
	partial := isHTMX(r) && r.Header.Get("HX-History-Restore-Request") != "true"

	if params.Has(paramDefer) && !partial {
		params = params.Without(paramDefer)
		snap, _ := s.store.Current()
		body := templates.DeferredTablePage(def.Placeholder(params), table.Href(def.Info.BasePath, params))
		s.render(w, r, templates.Layout(def.Info.Label, s.navGroups(snap, def.Info.Key), body))
		return
	}

	snap, err := s.store.Current()
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	page := def.Render(snap, params.Without(paramDefer))
	logging.WithFields(r.Context(), "view", def.Info.Key).Debug("view rendered",
		"rows", len(page.Rows),
		"total", page.Pagination.TotalItems,
		"page", page.Pagination.CurrentPage,
	)

	w.Header().Set("Vary", "HX-Request, HX-Target")
	switch {
	case partial && r.Header.Get("HX-Target") == templates.SectionID:
		s.render(w, r, templates.TableSection(page))
	case partial:
		s.render(w, r, templates.TableView(page))
	default:
		s.render(w, r, templates.Layout(page.Title, s.navGroups(snap, def.Info.Key), templates.TablePage(page)))
	}
}

// handleSkeleton serves the loading fragment for a view. It needs no data.
func (s *Server) handleSkeleton(w http.ResponseWriter, r *http.Request) {
	def, err := lookupView(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	sk := def.Placeholder(table.ParamsFromQuery(r.URL.Query()))
	s.render(w, r, templates.SkeletonView(sk, ""))
}

// viewSummary is one entry of GET /api/views.
type viewSummary struct {
	views.Info
	Count *int `json:"count,omitempty"`
}

func (s *Server) handleListViews(w http.ResponseWriter, r *http.Request) {
	snap, _ := s.store.Current()

	defs := views.All()
	out := make([]viewSummary, len(defs))
	for i, def := range defs {
		out[i] = viewSummary{Info: def.Info}
		if snap != nil {
			n := def.Count(snap)
			out[i].Count = &n
		}
	}
	writeJSON(w, r, http.StatusOK, out)
}

// handleViewData returns the rendered page as JSON. The ETag is derived
// from the snapshot version and the query, so it changes on every reload.
func (s *Server) handleViewData(w http.ResponseWriter, r *http.Request) {
	def, err := lookupView(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	snap, err := s.store.Current()
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	params := table.ParamsFromQuery(r.URL.Query())

	etag := pageETag(snap, def.Info.Key, params)
	w.Header().Set("ETag", etag)
	if match := r.Header.Get("If-None-Match"); match != "" && strings.Contains(match, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	writeJSON(w, r, http.StatusOK, def.Render(snap, params))
}

func pageETag(snap *catalog.Snapshot, key string, params table.Params) string {
	return `"` + uuid.NewSHA1(snap.Version, []byte(key+"?"+params.Encode())).String() + `"`
}

func (s *Server) handleViewSkeleton(w http.ResponseWriter, r *http.Request) {
	def, err := lookupView(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, def.Placeholder(table.ParamsFromQuery(r.URL.Query())))
}

// healthResponse describes the active snapshot.
type healthResponse struct {
	Status    string         `json:"status"` // ok, degraded (last refresh failed), unavailable
	Source    string         `json:"source"`
	Version   string         `json:"version,omitempty"`
	LoadedAt  *time.Time     `json:"loadedAt,omitempty"`
	Counts    map[string]int `json:"counts,omitempty"`
	Warnings  []string       `json:"warnings,omitempty"`
	LastError string         `json:"lastError,omitempty"`
}

func (s *Server) health() (healthResponse, *catalog.Snapshot) {
	resp := healthResponse{Status: "ok", Source: s.store.SourceName()}
	if err := s.store.LastError(); err != nil {
		resp.Status = "degraded"
		resp.LastError = MapError(err).Code
	}

	snap, err := s.store.Current()
	if err != nil {
		resp.Status = "unavailable"
		return resp, nil
	}
	resp.Version = snap.Version.String()
	resp.LoadedAt = &snap.LoadedAt
	resp.Counts = snap.Counts()
	resp.Warnings = snap.Warnings
	return resp, snap
}

// handleHealth answers 503 until a snapshot is loaded.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp, snap := s.health()
	if snap == nil {
		writeJSON(w, r, http.StatusServiceUnavailable, resp)
		return
	}
	w.Header().Set("ETag", `"`+resp.Version+`"`)
	writeJSON(w, r, http.StatusOK, resp)
}

// handleReload loads a new snapshot now. A failed load keeps the previous
// snapshot and reports the mapped error.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	snap, err := s.store.Refresh(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	logging.FromContext(r.Context()).Info("datasets reloaded on request",
		"source", snap.Source,
		"version", snap.Version,
	)
	resp, _ := s.health()
	writeJSON(w, r, http.StatusOK, resp)
}

func lookupView(r *http.Request) (views.Definition, error) {
	return views.Lookup(chi.URLParam(r, "view"))
}

// navGroups builds the sidebar and dashboard entries. snap may be nil.
func (s *Server) navGroups(snap *catalog.Snapshot, active string) []templates.NavGroup {
	var groups []templates.NavGroup
	for _, name := range views.Groups() {
		defs := views.ByGroup(name)
		links := make([]templates.ViewLink, len(defs))
		for i, def := range defs {
			links[i] = templates.ViewLink{
				Key:    def.Info.Key,
				Label:  def.Info.Label,
				Href:   def.Info.BasePath,
				Active: def.Info.Key == active,
			}
			if snap != nil {
				links[i].Count = def.Count(snap)
				links[i].Known = true
			}
		}
		groups = append(groups, templates.NavGroup{Name: name, Views: links})
	}
	return groups
}

// render writes an HTML component. Render errors after the first byte can
// only be logged.
func (s *Server) render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).Error("render failed", "path", r.URL.Path, "error", err)
	}
}
