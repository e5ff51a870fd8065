package server

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	clientdist "github.com/vango-dev/showcase/client/dist"
	"github.com/vango-dev/showcase/internal/catalog"
	"github.com/vango-dev/showcase/internal/showcase"
	"github.com/vango-dev/showcase/pkg/render"
	"github.com/vango-dev/showcase/pkg/viewstate"
)

// Routes served by the showcase.
const (
	PathPage    = "/"
	PathWS      = "/_showcase/ws"
	PathClient  = render.DefaultClientScript
	PathHealth  = "/healthz"
	PathMetrics = "/metrics"
)

// Server is the HTTP/WebSocket host for the showcase page.
type Server struct {
	config   *ServerConfig
	catalog  *catalog.Catalog
	sessions *SessionManager
	router   chi.Router
	upgrader websocket.Upgrader
	renderer *render.Renderer
	metrics  *serverMetrics

	httpServer *http.Server
	logger     *slog.Logger
}

// New creates a Server for cat. A nil config uses DefaultServerConfig.
func New(cat *catalog.Catalog, config *ServerConfig) *Server {
	if config == nil {
		config = DefaultServerConfig()
	}
	config.applyDefaults()
	if cat == nil {
		cat = catalog.Default(config.SessionConfig.Variant)
	}

	logger := config.Logger.With("component", "server")

	s := &Server{
		config:   config,
		catalog:  cat,
		renderer: render.NewRenderer(),
		metrics:  newServerMetrics(config.Registry, config.MetricsNamespace),
		logger:   logger,
	}

	handler := Chain(HandleAction, config.Middleware...)
	s.sessions = NewSessionManager(cat, config.SessionConfig, handler, config.MaxSessions, config.Logger)
	s.sessions.metrics = s.metrics

	checkOrigin := config.CheckOrigin
	if checkOrigin == nil {
		checkOrigin = sameOrigin
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  config.ReadBufferSize,
		WriteBufferSize: config.WriteBufferSize,
		CheckOrigin:     checkOrigin,
	}

	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(requestLogger(s.logger))

	r.Get(PathPage, s.handlePage)
	r.Get(PathWS, s.HandleWebSocket)
	r.Get(PathClient, s.handleClient)
	r.Get(PathHealth, s.handleHealth)
	if s.config.Gatherer != nil {
		r.Handle(PathMetrics, promhttp.HandlerFor(s.config.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the server's router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// PageOptions controls RenderPage.
type PageOptions struct {
	// Static inlines the client script and the slot templates, producing a
	// self-contained page that needs no server.
	Static bool
}

// RenderPage writes the full document in its initial state: modal closed,
// toast hidden.
func (s *Server) RenderPage(w io.Writer, opts PageOptions) error {
	variant := s.config.SessionConfig.Variant
	ctrl := viewstate.New(viewstate.WithVariant(variant))
	defer ctrl.Close()

	cat := s.catalog.ForVariant(variant)
	if _, err := cat.Bind(ctrl); err != nil {
		return err
	}
	view := showcase.View{Catalog: cat, Controller: ctrl}

	client := map[string]any{
		"variant":    string(variant),
		"toastDelay": s.config.SessionConfig.ToastDelay.Milliseconds(),
		"wsPath":     PathWS,
	}
	if opts.Static {
		client["mode"] = "static"
	}

	page := view.Document(showcase.Assets{
		Stylesheet:  s.config.Stylesheet,
		TailwindCDN: s.config.TailwindCDN,
		Favicon:     s.config.Favicon,
		Description: s.config.Description,
	}, client, opts.Static)
	if s.config.Title != "" {
		page.Title = s.config.Title
	}
	page.ClientScript = PathClient
	if opts.Static {
		page.InlineClient = string(clientdist.ShowcaseJS)
	}

	return s.renderer.RenderPage(w, page)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.RenderPage(&buf, PageOptions{}); err != nil {
		s.logger.Error("page render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) handleClient(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(clientdist.ShowcaseJS)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok\n"))
}

// HandleWebSocket upgrades the request and starts a session.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		s.metrics.recordWebSocketError("upgrade")
		return
	}

	session, err := s.sessions.Create(conn, clientIP(r))
	if err != nil {
		s.logger.Warn("session rejected", "error", err)
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseTryAgainLater, err.Error()),
			deadline(s.config.SessionConfig.WriteTimeout))
		conn.Close()
		return
	}

	session.Start()
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", s.config.Address)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown closes every session and stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if err := s.sessions.ShutdownWithContext(ctx); err != nil {
		s.logger.Warn("session shutdown incomplete", "error", err)
	}

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// Sessions returns the session manager.
func (s *Server) Sessions() *SessionManager {
	return s.sessions
}

// Config returns the server configuration.
func (s *Server) Config() *ServerConfig {
	return s.config
}

// Logger returns the server logger.
func (s *Server) Logger() *slog.Logger {
	return s.logger
}

// sameOrigin accepts requests without an Origin header and those whose
// Origin host matches the request host.
func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, r.Host)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
