package http

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	dealerfinder "github.com/ammanabbasi/used-car-dealer-finder"
	"github.com/ammanabbasi/used-car-dealer-finder/search"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

//go:embed templates/*.html
var templatesFS embed.FS

// DefaultAddr is the default listen address for the web UI.
const DefaultAddr = ":8080"

// Searcher runs a dealer search. Implemented by search.Searcher.
type Searcher interface {
	Search(ctx context.Context, zip string) (*search.Result, error)
}

// Server serves the dealer finder web UI: a zip code form and a rendered
// list of dealer cards.
type Server struct {
	addr     string
	logger   *slog.Logger
	searcher Searcher
	tmpl     *template.Template
	srv      *http.Server
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithAddr sets the listen address. Defaults to DefaultAddr.
func WithAddr(addr string) ServerOption {
	return func(s *Server) { s.addr = addr }
}

// WithLogger sets the request logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) { s.logger = logger }
}

// NewServer creates the web UI server.
func NewServer(searcher Searcher, opts ...ServerOption) (*Server, error) {
	s := &Server{
		addr:     DefaultAddr,
		logger:   slog.Default(),
		searcher: searcher,
	}
	for _, opt := range opts {
		opt(s)
	}

	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	s.tmpl = tmpl

	r := chi.NewRouter()
	r.Use(s.logRequests)
	r.Get("/", s.handleIndex)
	r.Get("/search", s.handleSearch)

	s.srv = &http.Server{Addr: s.addr, Handler: r}
	return s, nil
}

// Handler returns the server's HTTP handler. Used by tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// ListenAndServe serves the UI until Shutdown is called or the listener
// fails.
func (s *Server) ListenAndServe() error {
	s.logger.Info("serving web UI", "addr", s.addr)
	return s.srv.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// searchPage is the view model for both the form and the results page.
type searchPage struct {
	Zip          string
	Searched     bool
	InlineError  string
	ErrorMessage string
	Outcomes     []search.Outcome
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, searchPage{})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	zip := r.URL.Query().Get("zip")
	page := searchPage{Zip: zip, Searched: true}

	result, err := s.searcher.Search(r.Context(), zip)
	switch {
	case err == nil:
		page.Outcomes = result.Outcomes
	case dealerfinder.ErrorCode(err) == dealerfinder.EINVALID:
		page.Searched = false
		page.InlineError = dealerfinder.ErrorMessage(err)
	default:
		// Geocode and places failures all render the same way; the cause
		// lands in the log, not the page.
		s.logger.Error("search failed", "zip", zip, "code", dealerfinder.ErrorCode(err), "err", err)
		page.ErrorMessage = "Could not find dealers for this zip code. Please try again."
	}

	s.render(w, page)
}

func (s *Server) render(w http.ResponseWriter, page searchPage) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "index.html", page); err != nil {
		s.logger.Error("render failed", "err", err)
	}
}

// logRequests tags each request with an ID and logs it on completion.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		reqID := uuid.NewString()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			"id", reqID,
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(begin),
		)
	})
}
