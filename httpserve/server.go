// Package httpserve exposes a Provider over HTTP: regular files are
// streamed, directories are rendered as listings, everything else fails.
package httpserve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/handlers"

	"github.com/jackfish212/dirserve"
	"github.com/jackfish212/dirserve/listing"
	"github.com/jackfish212/dirserve/types"
)

const (
	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 2 * time.Minute
	shutdownTimeout   = 5 * time.Second
)

// Server dispatches requests against a single Provider.
type Server struct {
	cfg       dirserve.Config
	provider  types.Provider
	renderer  *listing.Renderer
	engine    *gin.Engine
	logger    *slog.Logger
	accessLog io.Writer
}

// Option configures a Server.
type Option func(*Server)

func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRenderer replaces the listing renderer built from the configuration.
func WithRenderer(r *listing.Renderer) Option {
	return func(s *Server) { s.renderer = r }
}

// WithAccessLog sets where combined-format access log lines go when
// access logging is enabled. Defaults to stdout.
func WithAccessLog(w io.Writer) Option {
	return func(s *Server) { s.accessLog = w }
}

// New builds a Server. Without WithRenderer, listings use the configured
// concurrency and the embedded stylesheet with an empty footer.
func New(p types.Provider, cfg dirserve.Config, opts ...Option) *Server {
	s := &Server{
		cfg:       cfg,
		provider:  p,
		logger:    slog.Default(),
		accessLog: os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.renderer == nil {
		s.renderer = listing.NewRenderer(p,
			listing.WithConcurrency(cfg.Concurrency),
			listing.WithLogger(s.logger),
		)
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.Use(
		recovery(s.logger),
		requestID(),
		requestLogger(s.logger),
		commonHeaders(),
	)
	engine.GET("/*path", s.dispatch)
	engine.HEAD("/*path", s.dispatch)
	s.engine = engine
	return s
}

// Handler returns the engine wrapped in the optional gzip and access log
// layers.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.engine
	if s.cfg.Compress {
		h = handlers.CompressHandler(h)
	}
	if s.cfg.AccessLog {
		h = handlers.CombinedLoggingHandler(s.accessLog, h)
	}
	return h
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("httpserve: listen %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully. It returns nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
	}

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("httpserve: serve: %w", err)
		}
		close(errChan)
	}()
	attrs := []any{"addr", ln.Addr().String()}
	if mi, ok := s.provider.(types.MountInfoProvider); ok {
		name, extra := mi.MountInfo()
		attrs = append(attrs, "provider", name, "source", extra)
	}
	s.logger.Info("httpserve: listening", attrs...)

	select {
	case <-ctx.Done():
		s.logger.Info("httpserve: shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("httpserve: shutdown: %w", err)
		}
		return nil
	case err := <-errChan:
		return err
	}
}
