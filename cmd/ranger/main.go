// Ranger run execution server — provides the HTTP API, manages queue
// workers, and drives the planner loop for agentic runs.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/codeready-toolchain/ranger/pkg/api"
	"github.com/codeready-toolchain/ranger/pkg/cleanup"
	"github.com/codeready-toolchain/ranger/pkg/config"
	"github.com/codeready-toolchain/ranger/pkg/database"
	"github.com/codeready-toolchain/ranger/pkg/events"
	"github.com/codeready-toolchain/ranger/pkg/llm"
	"github.com/codeready-toolchain/ranger/pkg/mcp"
	"github.com/codeready-toolchain/ranger/pkg/planner"
	"github.com/codeready-toolchain/ranger/pkg/queue"
	"github.com/codeready-toolchain/ranger/pkg/sanitize"
	"github.com/codeready-toolchain/ranger/pkg/services"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting ranger",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	runService := services.NewRunService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	slog.Info("Services initialized")

	// 3a. One-time startup orphan cleanup: fail runs this pod left running
	// before a restart, before the worker pool begins claiming.
	if count, err := runService.FailStartupOrphans(ctx, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	} else if count > 0 {
		slog.Info("Failed startup orphans from previous incarnation", "count", count)
	}

	// 4. LLM client
	// Note: grpc.NewClient uses lazy dialing; actual connection happens on
	// the first RPC call.
	llmAddr := getEnv("LLM_SERVICE_ADDR", "localhost:50051")
	llmClient, err := llm.NewGRPCClient(llmAddr)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", llmAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	slog.Info("LLM client initialized", "addr", llmAddr)

	// 5. Streaming infrastructure
	broker := events.NewBroker()
	publisher := events.NewPublisher(eventService, broker)
	streamer := events.NewStreamer(runService, eventService, broker)
	slog.Info("Streaming infrastructure initialized")

	// 6. Tool server multiplexer. Eager initialization: servers that fail
	// to start are logged and skipped; their failures surface through
	// GET /api/v1/tool-servers and Manager.Reconnect recovers them.
	mcpManager := mcp.NewManager(cfg.ToolServerRegistry)
	if len(cfg.AllToolServerIDs()) > 0 {
		if err := mcpManager.Initialize(ctx); err != nil {
			slog.Error("Failed to initialize tool servers", "error", err)
			os.Exit(1)
		}
		slog.Info("Tool servers initialized", "count", len(cfg.AllToolServerIDs()))
	}
	defer func() {
		if err := mcpManager.Shutdown(); err != nil {
			slog.Error("Error shutting down tool servers", "error", err)
		}
	}()

	// 7. Planner and worker pool
	filter := sanitize.NewFilter(cfg.Planner.InjectionFilterEnabled)
	prompts := planner.NewPromptBuilder(filter)
	executors := func(profile *config.AgentProfileConfig) planner.ToolExecutor {
		return mcp.NewExecutor(mcpManager, profile, filter)
	}
	runPlanner := planner.NewPlanner(runService, publisher, llmClient, cfg, prompts, executors, podID)

	workerPool := queue.NewWorkerPool(podID, dbClient.Client, runService, cfg.Queue, runPlanner, publisher)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	gate := planner.NewGate(runPlanner, workerPool)

	// 8. Retention loop
	cleanupService := cleanup.NewService(cfg.Retention, eventService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 9. HTTP server (non-blocking)
	httpServer := api.NewServer(cfg, dbClient, runService, streamer, publisher, gate, workerPool, mcpManager)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Ranger started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: drain workers first, then the HTTP server.
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete runs will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
