package webapp

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"apartment-portal/internal/client"

	"github.com/google/uuid"
)

const sessionCookie = "apartment_session"

// sessionTTL is how long a session survives without a request before its
// state and cache are discarded.
const sessionTTL = 30 * time.Minute

// Server renders the listing and detail pages over the apartments API.
type Server struct {
	api       API
	templates embed.FS
	mux       *http.ServeMux
	logger    *slog.Logger
	debounce  time.Duration
	pageSize  int
	tmplFuncs template.FuncMap

	sessMu   sync.Mutex
	sessions map[string]*session
}

func NewServer(api API, tmpl embed.FS, debounce time.Duration, pageSize int, logger *slog.Logger) *Server {
	if pageSize <= 0 {
		pageSize = 12
	}
	s := &Server{
		api:       api,
		templates: tmpl,
		mux:       http.NewServeMux(),
		logger:    logger,
		debounce:  debounce,
		pageSize:  pageSize,
		sessions:  make(map[string]*session),
		tmplFuncs: template.FuncMap{
			"money": formatMoney,
			"num":   formatFilterValue,
			"inc":   func(i int) int { return i + 1 },
		},
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("GET /apartments/{id}", s.handleDetail)
	s.mux.HandleFunc("POST /filters", s.handleFilterEdit)
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.logger, s.mux).ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("starting web server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return srv.ListenAndServe()
}

// session returns the state for the requesting browser, creating it (and
// its cookie) on first contact.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *session {
	var id string
	if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		id = cookie.Value
	} else {
		id = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	s.sessMu.Lock()
	defer s.sessMu.Unlock()

	now := time.Now()
	s.evictStaleLocked(now)

	sess, ok := s.sessions[id]
	if !ok {
		sess = newSession(id, s.api, s.debounce, s.logger)
		s.sessions[id] = sess
	}
	sess.lastSeen = now
	return sess
}

// evictStaleLocked closes and drops sessions idle past the TTL. Called with
// sessMu held on every session lookup, the same lazy sweep the rate limiter
// uses for its windows.
func (s *Server) evictStaleLocked(now time.Time) {
	cutoff := now.Add(-sessionTTL)
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			sess.close()
			delete(s.sessions, id)
		}
	}
}

type pageLink struct {
	Num    int
	URL    string
	Active bool
}

type indexData struct {
	Apartments  any
	Meta        any
	Filters     client.Filters
	Projects    []string
	Pages       []pageLink
	Error       string
	CanRetry    bool
	CurrentPath string
	DebounceMS  int
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)

	// The address bar is the source of truth on navigation: re-derive state
	// from it without firing the debounced change notification.
	sess.state.SyncFromURL(r.URL.Query())

	filters := sess.state.Effective()
	filters.Limit = s.pageSize

	data := indexData{
		Filters:     sess.state.Draft(),
		CurrentPath: r.URL.RequestURI(),
		DebounceMS:  int(s.debounce / time.Millisecond),
	}

	projects, err := s.api.GetProjects(r.Context())
	if err != nil {
		s.logger.Warn("failed to fetch projects", "error", err)
	}
	data.Projects = projects

	resp, err := sess.fetch(r.Context(), filters)
	if err != nil {
		data.Error = client.ErrorMessage(err)
		data.CanRetry = client.IsServerUnavailable(err)
		status := http.StatusInternalServerError
		if client.IsServerUnavailable(err) {
			status = http.StatusBadGateway
		}
		w.WriteHeader(status)
		if rerr := s.renderPage(w, data, "base.html", "index.html"); rerr != nil {
			s.logger.Error("render error", "error", rerr)
		}
		return
	}

	data.Apartments = resp.Data
	data.Meta = resp.Meta
	data.Pages = s.pageLinks(sess, resp.Meta.TotalPages, resp.Meta.Page)

	if err := s.renderPage(w, data, "base.html", "index.html"); err != nil {
		s.logger.Error("render error", "error", err)
	}
}

// pageLinks builds the pagination URLs, carrying the effective filters in
// each link so back/forward navigation reproduces the search.
func (s *Server) pageLinks(sess *session, totalPages, current int) []pageLink {
	links := make([]pageLink, 0, totalPages)
	for n := 1; n <= totalPages; n++ {
		values := sess.state.EncodeQuery()
		if n > 1 {
			values.Set("page", strconv.Itoa(n))
		} else {
			values.Del("page")
		}
		u := "/"
		if q := values.Encode(); q != "" {
			u += "?" + q
		}
		links = append(links, pageLink{Num: n, URL: u, Active: n == current})
	}
	return links
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	apartment, err := s.api.GetApartment(r.Context(), id)
	if err != nil {
		if client.IsNotFound(err) {
			w.WriteHeader(http.StatusNotFound)
			if rerr := s.renderPage(w, nil, "base.html", "notfound.html"); rerr != nil {
				s.logger.Error("render error", "error", rerr)
			}
			return
		}
		status := http.StatusInternalServerError
		if client.IsServerUnavailable(err) {
			status = http.StatusBadGateway
		}
		w.WriteHeader(status)
		errData := map[string]any{
			"Message":  client.ErrorMessage(err),
			"CanRetry": client.IsServerUnavailable(err),
			"RetryURL": r.URL.RequestURI(),
		}
		if rerr := s.renderPage(w, errData, "base.html", "error.html"); rerr != nil {
			s.logger.Error("render error", "error", rerr)
		}
		return
	}

	if err := s.renderPage(w, apartment, "base.html", "detail.html"); err != nil {
		s.logger.Error("render error", "error", err)
	}
}

// handleFilterEdit applies one or more draft filter edits posted by the
// page script. The edits are user-originated, so the debounce timer is
// (re)armed; the response carries the address the browser should navigate
// to once the quiescence window elapses and the draft is promoted.
func (s *Server) handleFilterEdit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	sess := s.session(w, r)

	sess.state.Edit(OriginUser, func(f *client.Filters) {
		applyFormEdits(f, r.PostForm)
	})

	href := "/"
	if q := sess.state.EncodeDraftQuery().Encode(); q != "" {
		href += "?" + q
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"href": href})
}

// applyFormEdits overwrites the draft fields present in the submitted form.
// An empty value clears the field.
func applyFormEdits(f *client.Filters, form url.Values) {
	if form.Has("search") {
		f.Search = form.Get("search")
	}
	if form.Has("project") {
		f.Project = form.Get("project")
	}
	if form.Has("minPrice") {
		f.MinPrice = parseFloatField(form.Get("minPrice"))
	}
	if form.Has("maxPrice") {
		f.MaxPrice = parseFloatField(form.Get("maxPrice"))
	}
	if form.Has("bedrooms") {
		f.Bedrooms = parseIntField(form.Get("bedrooms"))
	}
	if form.Has("bathrooms") {
		f.Bathrooms = parseIntField(form.Get("bathrooms"))
	}
}

func parseFloatField(v string) *float64 {
	if v == "" {
		return nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &n
}

func parseIntField(v string) *int {
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

// renderPage parses and executes a full-page template set.
func (s *Server) renderPage(w http.ResponseWriter, data any, files ...string) error {
	tmpl, err := template.New("").Funcs(s.tmplFuncs).ParseFS(s.templates, files...)
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tmpl.ExecuteTemplate(w, "base", data)
}

// formatFilterValue renders an optional numeric filter value for a form
// input. Plain decimal notation, never the %v scientific form a large
// float would otherwise get; nil renders empty so the field stays blank.
func formatFilterValue(v any) string {
	switch n := v.(type) {
	case *float64:
		if n == nil {
			return ""
		}
		return strconv.FormatFloat(*n, 'f', -1, 64)
	case *int:
		if n == nil {
			return ""
		}
		return strconv.Itoa(*n)
	default:
		return ""
	}
}

// formatMoney renders a price as EGP with thousands separators.
func formatMoney(v float64) string {
	n := int64(v)
	var parts []string
	for n >= 1000 {
		parts = append([]string{fmt.Sprintf("%03d", n%1000)}, parts...)
		n /= 1000
	}
	parts = append([]string{strconv.FormatInt(n, 10)}, parts...)
	out := parts[0]
	for _, p := range parts[1:] {
		out += "," + p
	}
	return "EGP " + out
}
