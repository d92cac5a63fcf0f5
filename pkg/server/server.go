// Package server hosts rendered pages over HTTP and keeps them live over
// WebSocket sessions. Every page is served twice: once as static HTML
// from the string renderer, then as a stream of DOM mutation ops once
// the thin client connects back.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/reactor-ui/reactor/pkg/assets"
	"github.com/reactor-ui/reactor/pkg/hooks"
	"github.com/reactor-ui/reactor/pkg/middleware"
	"github.com/reactor-ui/reactor/pkg/protocol"
	"github.com/reactor-ui/reactor/pkg/todos"
)

// PropsFunc derives the bootstrap props for a page from the request.
// The same props are used for the SSR pass and for the live session, so
// both render the same tree.
type PropsFunc func(r *http.Request) hooks.Props

// Server is the HTTP/WebSocket server for a Reactor application.
type Server struct {
	config *Config
	logger *slog.Logger

	pages     map[string]hooks.Component
	propsFunc PropsFunc
	assets    assets.Resolver
	store     *todos.Store

	router   chi.Router
	upgrader websocket.Upgrader
	metrics  *liveMetrics

	mu       sync.Mutex
	sessions map[string]*LiveSession

	httpServer *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithPages registers the page components by path.
func WithPages(pages map[string]hooks.Component) Option {
	return func(s *Server) {
		for path, c := range pages {
			s.pages[path] = c
		}
	}
}

// WithPage registers a single page component.
func WithPage(path string, c hooks.Component) Option {
	return func(s *Server) {
		s.pages[path] = c
	}
}

// WithPropsFunc sets the bootstrap props derivation.
func WithPropsFunc(fn PropsFunc) Option {
	return func(s *Server) {
		s.propsFunc = fn
	}
}

// WithAssets sets the asset resolver used by the HTML shell.
func WithAssets(r assets.Resolver) Option {
	return func(s *Server) {
		s.assets = r
	}
}

// WithTodoStore sets the todo store backing the JSON API.
func WithTodoStore(store *todos.Store) Option {
	return func(s *Server) {
		s.store = store
	}
}

// New creates a Server with the given configuration and options.
func New(config *Config, opts ...Option) *Server {
	if config == nil {
		config = DefaultConfig()
	} else {
		config = config.Clone()
		config.fillDefaults()
	}

	s := &Server{
		config:   config,
		logger:   slog.Default().With("component", "server"),
		pages:    make(map[string]hooks.Component),
		assets:   assets.NewPassthroughResolver("/static/"),
		sessions: make(map[string]*LiveSession),
		metrics:  newLiveMetrics(config.Registry),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics(middleware.WithRegistry(s.config.Registry)))
	r.Use(middleware.OpenTelemetry(
		middleware.WithRequestFilter(func(r *http.Request) bool {
			return r.URL.Path != "/healthz" && r.URL.Path != "/metrics"
		}),
	))

	r.Get("/healthz", s.handleHealthz)
	r.Method(http.MethodGet, "/metrics", s.metricsHandler())

	if s.store != nil {
		r.Mount("/api/todos", todos.NewAPI(s.store, s.logger).Routes())
	}

	if s.config.StaticDir != "" {
		fs := http.StripPrefix("/static/", http.FileServer(http.Dir(s.config.StaticDir)))
		r.Handle("/static/*", fs)
	}

	r.Get("/live", s.handleLive)
	r.Get("/live/*", s.handleLive)

	for path := range s.pages {
		r.Get(path, s.handlePage)
	}

	return r
}

func (s *Server) metricsHandler() http.Handler {
	if g, ok := s.config.Registry.(prometheus.Gatherer); ok {
		return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	}
	return promhttp.Handler()
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

func (s *Server) requestProps(r *http.Request) hooks.Props {
	if s.propsFunc == nil {
		return nil
	}
	return s.propsFunc(r)
}

// handlePage serves the SSR response for a registered page.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	props := s.requestProps(r)

	body, err := s.renderPage(r.URL.Path, props)
	if err != nil {
		s.logger.Error("page render failed", "path", r.URL.Path, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.pageShell(w, r.URL.Path, body, props); err != nil {
		s.logger.Error("shell write failed", "path", r.URL.Path, "error", err)
	}
}

// livePagePath maps a live socket URL back to its page path:
// /live → /, /live/todos → /todos.
func livePagePath(urlPath string) string {
	path := strings.TrimPrefix(urlPath, "/live")
	if path == "" {
		return "/"
	}
	return path
}

// handleLive upgrades the connection and runs a live session for the
// page named by the remainder of the URL.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	pagePath := livePagePath(r.URL.Path)
	component, ok := s.pages[pagePath]
	if !ok {
		http.NotFound(w, r)
		return
	}

	if s.config.MaxSessions > 0 && s.sessionCount() >= s.config.MaxSessions {
		s.logger.Warn("session limit reached", "limit", s.config.MaxSessions)
		http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
		return
	}

	props := s.requestProps(r)

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("upgrade failed", "error", err)
		return
	}

	sess := newLiveSession(conn, s.config.SessionConfig, s.metrics, s.logger)
	sess.onClose = s.dropSession

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	s.metrics.activeSessions.Inc()
	s.metrics.sessionsTotal.Inc()

	if err := sess.Mount(component, props); err != nil {
		s.metrics.renderErrors.Inc()
		s.logger.Error("live mount failed", "path", pagePath, "error", err)
		sess.writeFrame(protocol.NewError("mount_failed", "page failed to render"))
		sess.Close()
		return
	}

	s.logger.Info("session started", "session", sess.ID, "path", pagePath)
	sess.Start()
}

func (s *Server) dropSession(sess *LiveSession) {
	s.mu.Lock()
	delete(s.sessions, sess.ID)
	s.mu.Unlock()
}

func (s *Server) sessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// SessionCount returns the number of active live sessions.
func (s *Server) SessionCount() int {
	return s.sessionCount()
}

// ListenAndServe starts the HTTP server and blocks until it stops.
func (s *Server) ListenAndServe() error {
	s.httpServer = &http.Server{
		Addr:    s.config.Address,
		Handler: s.router,
	}
	s.logger.Info("listening", "address", s.config.Address)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server: the listener closes first, then
// all live sessions.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	if s.httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
		defer cancel()
		err = s.httpServer.Shutdown(shutdownCtx)
	}

	s.mu.Lock()
	open := make([]*LiveSession, 0, len(s.sessions))
	for _, sess := range s.sessions {
		open = append(open, sess)
	}
	s.mu.Unlock()

	for _, sess := range open {
		sess.Close()
	}
	return err
}
