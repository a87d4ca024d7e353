// Package server exposes the receipt extractor over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"fjacquet/finvision/internal/logging"
	"fjacquet/finvision/internal/parser"

	"github.com/gin-gonic/gin"
)

const (
	// MaxBodyBytes caps the size of an extraction request.
	MaxBodyBytes = 1 << 20

	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

// Options configures the HTTP server.
type Options struct {
	Addr string
	// Mode is the gin mode: debug, release or test.
	Mode string
}

// Server serves the extraction API.
type Server struct {
	handler *Handler
	engine  *gin.Engine
	opts    Options
	logger  logging.Logger
}

// NewServer builds the router around p.
func NewServer(p parser.Parser, opts Options, logger logging.Logger) *Server {
	if opts.Mode != "" {
		gin.SetMode(opts.Mode)
	}
	logger = logger.WithField(logging.FieldComponent, "server")

	s := &Server{
		handler: NewHandler(p, logger),
		opts:    opts,
		logger:  logger,
	}
	s.engine = s.routes()
	return s
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(s.logger))

	r.GET("/health", s.handler.Health())
	r.POST("/extract", s.handler.Extract())

	return r
}

// Handler returns the HTTP handler of the API.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", logging.Field{Key: "addr", Value: s.opts.Addr})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	return nil
}

// RequestLogger logs one line per request through logger.
func RequestLogger(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []logging.Field{
			{Key: "method", Value: c.Request.Method},
			{Key: "path", Value: c.FullPath()},
			{Key: logging.FieldStatus, Value: c.Writer.Status()},
			{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()},
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.Error("Request failed", fields...)
			return
		}
		logger.Info("Request handled", fields...)
	}
}
