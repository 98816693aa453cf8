// Package server exposes the invoice core over HTTP: validation, totals,
// the structured trade document and the PDF rendering, plus defaults for
// a fresh editing session.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/faktura/invoice-creator/internal/config"
	"github.com/faktura/invoice-creator/internal/logging"
	"github.com/faktura/invoice-creator/internal/number"
	"github.com/faktura/invoice-creator/internal/render"
	"github.com/faktura/invoice-creator/internal/validate"
)

// Config holds server configuration.
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool

	// Defaults seed fresh invoices served by /api/v1/defaults.
	Defaults config.DefaultsConfig

	// CounterPath is the invoice number counter file. Empty means the
	// counter is kept in memory only.
	CounterPath string
}

// Server is the HTTP API server.
type Server struct {
	config    *Config
	router    *gin.Engine
	logger    zerolog.Logger
	validator *validate.Validator
	renderer  *render.Renderer
	numbers   *number.Generator
}

// NewServer creates the API server with all routes registered.
func NewServer(cfg *Config) *Server {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	logger := logging.New(cfg.Debug)
	if cfg.Debug {
		router.Use(requestLogger(logger))
	}

	var counter number.Counter = number.NewMemCounter()
	if cfg.CounterPath != "" {
		counter = number.NewFileCounter(cfg.CounterPath)
	}

	s := &Server{
		config:    cfg,
		router:    router,
		logger:    logger,
		validator: validate.New(),
		renderer:  render.NewRenderer(),
		numbers:   number.NewGenerator(counter),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/defaults", s.handleDefaults)
		v1.POST("/validate", s.handleValidate)
		v1.POST("/totals", s.handleTotals)
		v1.POST("/generate", s.handleGenerate)
		v1.POST("/render", s.handleRender)
	}
}

// Handler returns the underlying handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the HTTP server and blocks.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	s.logger.Info().Str("address", s.config.Address).Msg("starting server")
	return srv.ListenAndServe()
}

// requestLogger logs each request with method, path, status and latency.
func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
