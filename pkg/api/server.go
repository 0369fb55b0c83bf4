// Package api provides the HTTP surface: run submission and inspection,
// approval resolution, SSE streaming, and the alert webhook intake.
package api

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/ranger/pkg/config"
	"github.com/codeready-toolchain/ranger/pkg/database"
	"github.com/codeready-toolchain/ranger/pkg/events"
	"github.com/codeready-toolchain/ranger/pkg/mcp"
	"github.com/codeready-toolchain/ranger/pkg/planner"
	"github.com/codeready-toolchain/ranger/pkg/queue"
	"github.com/codeready-toolchain/ranger/pkg/services"
)

// Server is the HTTP API server.
type Server struct {
	cfg        *config.Config
	dbClient   *database.Client
	runService *services.RunService
	streamer   *events.Streamer
	pub        *events.Publisher
	gate       *planner.Gate
	workerPool *queue.WorkerPool
	mcpManager *mcp.Manager
	dedup      *dedupCache

	echo         *echo.Echo
	httpServer   *http.Server
	shuttingDown atomic.Bool
}

// NewServer creates the API server and registers all routes.
// workerPool and mcpManager may be nil (single-process and test setups).
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	runService *services.RunService,
	streamer *events.Streamer,
	pub *events.Publisher,
	gate *planner.Gate,
	workerPool *queue.WorkerPool,
	mcpManager *mcp.Manager,
) *Server {
	s := &Server{
		cfg:        cfg,
		dbClient:   dbClient,
		runService: runService,
		streamer:   streamer,
		pub:        pub,
		gate:       gate,
		workerPool: workerPool,
		mcpManager: mcpManager,
		dedup:      newDedupCache(dedupCacheMaxEntries),
	}
	s.echo = s.buildEcho()
	return s
}

// buildEcho wires middleware and routes.
func (s *Server) buildEcho() *echo.Echo {
	e := echo.New()

	e.Use(recoverMiddleware())
	e.Use(requestLogger())
	e.Use(securityHeaders())
	e.Use(s.rejectDuringShutdown())

	e.GET("/health", s.healthHandler)

	v1 := e.Group("/api/v1")
	v1.POST("/run", s.submitRunHandler)
	v1.GET("/runs", s.listRunsHandler)
	v1.GET("/runs/search", s.searchRunsHandler)
	v1.GET("/runs/:id", s.getRunHandler)
	v1.POST("/runs/:id/cancel", s.cancelRunHandler)
	v1.POST("/runs/:id/approve", s.approveRunHandler)
	v1.POST("/runs/:id/reject", s.rejectRunHandler)
	v1.GET("/runs/:id/stream", s.streamRunHandler)
	v1.GET("/agent-profiles", s.listProfilesHandler)
	v1.GET("/tool-servers", s.listToolServersHandler)

	e.POST("/webhooks/prometheus", s.prometheusWebhookHandler)

	return e
}

// Start begins serving on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown stops accepting new requests and drains in-flight ones.
// Long-lived SSE streams are cut by the server's base context going away.
func (s *Server) Shutdown(ctx context.Context) error {
	s.shuttingDown.Store(true)
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Echo exposes the router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// rejectDuringShutdown returns 503 for new requests once shutdown began.
// Retry-After points clients at another replica after a rollout tick.
func (s *Server) rejectDuringShutdown() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			if s.shuttingDown.Load() {
				c.Response().Header().Set("Retry-After", "5")
				return echo.NewHTTPError(http.StatusServiceUnavailable, "server is shutting down")
			}
			return next(c)
		}
	}
}
