package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/boardseq/internal/core/domain"
)

// Defaults for the request limiter.
const (
	DefaultRateLimit = rate.Limit(20)
	DefaultBurst     = 40
)

// Option configures the server.
type Option func(*Server)

// WithRateLimit sets the sustained request rate and burst size.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(s *Server) {
		s.limiter = rate.NewLimiter(limit, burst)
	}
}

// WithMaxBodyBytes caps raw text request bodies.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBodyBytes = n
		}
	}
}

// WithClock overrides the time used to name exported files.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// Server is the HTTP API.
type Server struct {
	ports        *Ports
	echo         *echo.Echo
	limiter      *rate.Limiter
	maxBodyBytes int64
	now          func() time.Time
}

// NewServer creates a new HTTP server with the given ports.
func NewServer(ports *Ports, opts ...Option) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{
		ports:        ports,
		echo:         echo.New(),
		limiter:      rate.NewLimiter(DefaultRateLimit, DefaultBurst),
		maxBodyBytes: domain.DefaultMaxUploadBytes,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	s.echo.Use(rateLimit(s.limiter))
	s.registerRoutes()

	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves on addr until the context is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	go func() {
		<-ctx.Done()
		s.echo.Shutdown(context.Background()) //nolint:errcheck
	}()

	err := s.echo.Start(addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// registerRoutes maps endpoints to handlers.
func (s *Server) registerRoutes() {
	s.echo.GET("/healthz", s.health)

	g := s.echo.Group("/v1/sequences")
	g.POST("", s.generate)
	g.POST("/text", s.generateText)
	g.POST("/upload", s.upload)
	g.POST("/export", s.export)
}
