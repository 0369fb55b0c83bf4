// Package mcp provides the tool-server multiplexer: a process-wide set of
// MCP (Model Context Protocol) sessions, one per configured tool server,
// shared by every run executing in this process.
package mcp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/codeready-toolchain/ranger/pkg/config"
	"github.com/codeready-toolchain/ranger/pkg/version"
)

// Manager owns the MCP sessions for all configured tool servers.
// Created once at startup; sessions live for the process lifetime.
// Thread-safe: runs executing concurrently share the same sessions.
type Manager struct {
	registry *config.ToolServerRegistry

	mu            sync.RWMutex
	sessions      map[string]*mcpsdk.ClientSession // serverID → session
	clients       map[string]*mcpsdk.Client        // serverID → client (for reconnection)
	failedServers map[string]string                // serverID → error message
	closed        bool

	// Tool cache, populated on first ListTools per server and invalidated
	// only when the session is recreated.
	toolCache   map[string][]*mcpsdk.Tool
	toolCacheMu sync.RWMutex

	// Per-server mutex for session recreation to prevent thundering herd
	reinitMu sync.Map // serverID → *sync.Mutex

	// Per-server mutex serializing tool calls. A stdio server is a single
	// subprocess speaking JSON-RPC over one pipe pair; interleaved calls
	// from concurrent runs must not race on it.
	callMu sync.Map // serverID → *sync.Mutex

	logger *slog.Logger
}

// NewManager creates a Manager for the given tool server registry.
// Call Initialize to connect the servers.
func NewManager(registry *config.ToolServerRegistry) *Manager {
	return &Manager{
		registry:      registry,
		sessions:      make(map[string]*mcpsdk.ClientSession),
		clients:       make(map[string]*mcpsdk.Client),
		failedServers: make(map[string]string),
		toolCache:     make(map[string][]*mcpsdk.Tool),
		logger:        slog.Default(),
	}
}

// Initialize connects to every enabled tool server in the registry.
// Servers that fail to connect are recorded in failedServers and skipped;
// the process starts with whatever subset came up. The caller decides
// whether an empty Connected() set is fatal.
func (m *Manager) Initialize(ctx context.Context) error {
	for _, serverID := range m.registry.ServerIDs() {
		cfg, err := m.registry.Get(serverID)
		if err != nil {
			continue
		}
		if cfg.Disabled() {
			m.logger.Info("Tool server disabled, skipping", "server", serverID)
			continue
		}
		if err := m.InitializeServer(ctx, serverID); err != nil {
			m.mu.Lock()
			m.failedServers[serverID] = err.Error()
			m.mu.Unlock()
			m.logger.Warn("Tool server failed to initialize",
				"server", serverID, "error", err)
		}
	}
	return nil
}

// InitializeServer connects to a single tool server.
// Returns nil if already connected. Used for startup and manual reconnection.
// Uses a per-server mutex to prevent concurrent initialization of the same server.
func (m *Manager) InitializeServer(ctx context.Context, serverID string) error {
	muI, _ := m.reinitMu.LoadOrStore(serverID, &sync.Mutex{})
	mu := muI.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	return m.initializeServerLocked(ctx, serverID)
}

// initializeServerLocked performs the actual server initialization.
// Caller must hold the per-server reinitMu lock.
func (m *Manager) initializeServerLocked(ctx context.Context, serverID string) error {
	m.mu.RLock()
	if m.closed {
		m.mu.RUnlock()
		return fmt.Errorf("manager is shut down")
	}
	if _, exists := m.sessions[serverID]; exists {
		m.mu.RUnlock()
		return nil
	}
	m.mu.RUnlock()

	serverCfg, err := m.registry.Get(serverID)
	if err != nil {
		return fmt.Errorf("server %q not found in registry: %w", serverID, err)
	}

	transport, err := createTransport(serverCfg.Transport)
	if err != nil {
		return fmt.Errorf("failed to create transport for %q: %w", serverID, err)
	}

	initCtx, cancel := context.WithTimeout(ctx, InitTimeout)
	defer cancel()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name:    version.AppName,
		Version: version.GitCommit,
	}, nil)

	session, err := client.Connect(initCtx, transport, nil)
	if err != nil {
		// Close the transport if it implements io.Closer so a failed
		// handshake does not leak a stdio child process.
		if closer, ok := transport.(io.Closer); ok {
			_ = closer.Close()
		}
		return fmt.Errorf("failed to connect to %q: %w", serverID, err)
	}

	m.mu.Lock()
	m.sessions[serverID] = session
	m.clients[serverID] = client
	delete(m.failedServers, serverID)
	m.mu.Unlock()

	m.logger.Info("Tool server connected", "server", serverID)
	return nil
}

// ListTools returns tools from a specific server. Uses cache if available.
func (m *Manager) ListTools(ctx context.Context, serverID string) ([]*mcpsdk.Tool, error) {
	// Lock ordering: never acquire m.mu while holding toolCacheMu.
	m.toolCacheMu.RLock()
	if cached, ok := m.toolCache[serverID]; ok {
		m.toolCacheMu.RUnlock()
		return cached, nil
	}
	m.toolCacheMu.RUnlock()

	m.mu.RLock()
	session, exists := m.sessions[serverID]
	m.mu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("no session for server %q", serverID)
	}

	opCtx, cancel := context.WithTimeout(ctx, OperationTimeout)
	defer cancel()

	result, err := session.ListTools(opCtx, nil)
	if err != nil {
		return nil, fmt.Errorf("list tools from %q: %w", serverID, err)
	}

	// Cache a non-nil slice so cache hits never return nil.
	tools := result.Tools
	if tools == nil {
		tools = []*mcpsdk.Tool{}
	}
	m.toolCacheMu.Lock()
	m.toolCache[serverID] = tools
	m.toolCacheMu.Unlock()

	return tools, nil
}

// CallTool executes a tool call on the specified server.
// Calls to the same server are serialized; calls to different servers run
// in parallel. On a transport failure the session is recreated and the call
// retried once after a jittered backoff.
func (m *Manager) CallTool(ctx context.Context, serverID, toolName string, args map[string]any) (*mcpsdk.CallToolResult, error) {
	muI, _ := m.callMu.LoadOrStore(serverID, &sync.Mutex{})
	mu := muI.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	params := &mcpsdk.CallToolParams{
		Name:      toolName,
		Arguments: args,
	}

	result, err := m.callToolOnce(ctx, serverID, params)
	if err == nil {
		return result, nil
	}

	action := ClassifyError(err)
	if action == NoRetry {
		return nil, err
	}

	m.logger.Info("Tool call failed, retrying",
		"server", serverID, "tool", toolName,
		"action", action, "error", err)

	backoff := RetryBackoffMin + time.Duration(rand.Int64N(int64(RetryBackoffMax-RetryBackoffMin)))
	select {
	case <-time.After(backoff):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if action == RetryNewSession {
		if err := m.recreateSession(ctx, serverID); err != nil {
			return nil, fmt.Errorf("session recreation failed for %q: %w", serverID, err)
		}
	}

	result, err = m.callToolOnce(ctx, serverID, params)
	if err != nil {
		return nil, fmt.Errorf("retry failed for %q.%s: %w", serverID, toolName, err)
	}
	return result, nil
}

// callToolOnce performs a single CallTool attempt.
func (m *Manager) callToolOnce(ctx context.Context, serverID string, params *mcpsdk.CallToolParams) (*mcpsdk.CallToolResult, error) {
	m.mu.RLock()
	session, exists := m.sessions[serverID]
	m.mu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("no session for server %q", serverID)
	}

	opCtx, cancel := context.WithTimeout(ctx, OperationTimeout)
	defer cancel()

	return session.CallTool(opCtx, params)
}

// recreateSession tears down and recreates the session for a server.
// Uses a per-server mutex to prevent concurrent recreation. If two
// goroutines race in here the second tears down the freshly recreated
// session and creates another; the cost is one extra recreation, which is
// acceptable for simplicity.
func (m *Manager) recreateSession(ctx context.Context, serverID string) error {
	muI, _ := m.reinitMu.LoadOrStore(serverID, &sync.Mutex{})
	mu := muI.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	m.mu.Lock()
	if session, exists := m.sessions[serverID]; exists {
		_ = session.Close()
		delete(m.sessions, serverID)
		delete(m.clients, serverID)
	}
	m.mu.Unlock()

	m.InvalidateToolCache(serverID)

	reinitCtx, cancel := context.WithTimeout(ctx, ReinitTimeout)
	defer cancel()

	return m.initializeServerLocked(reinitCtx, serverID)
}

// Reconnect re-establishes the session for a failed or dropped server.
func (m *Manager) Reconnect(ctx context.Context, serverID string) error {
	if err := m.recreateSession(ctx, serverID); err != nil {
		m.mu.Lock()
		m.failedServers[serverID] = err.Error()
		m.mu.Unlock()
		return err
	}
	return nil
}

// Shutdown closes all sessions and their transports. Idempotent: calling it
// again after the first shutdown is a no-op.
func (m *Manager) Shutdown() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true

	var firstErr error
	for id, session := range m.sessions {
		if err := session.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close session %q: %w", id, err)
		}
	}

	m.sessions = make(map[string]*mcpsdk.ClientSession)
	m.clients = make(map[string]*mcpsdk.Client)
	m.failedServers = make(map[string]string)

	// Lock ordering note: mu → toolCacheMu is safe here because no other
	// code path holds toolCacheMu while acquiring mu.
	m.toolCacheMu.Lock()
	m.toolCache = make(map[string][]*mcpsdk.Tool)
	m.toolCacheMu.Unlock()

	return firstErr
}

// InvalidateToolCache removes the cached tool list for a server,
// forcing the next ListTools call to re-probe the server.
// Lock ordering: never acquire m.mu while holding toolCacheMu.
func (m *Manager) InvalidateToolCache(serverID string) {
	m.toolCacheMu.Lock()
	delete(m.toolCache, serverID)
	m.toolCacheMu.Unlock()
}

// HasSession checks if a server has an active session.
func (m *Manager) HasSession(serverID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.sessions[serverID]
	return exists
}

// Connected returns the IDs of servers with an active session.
func (m *Manager) Connected() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return ids
}

// FailedServers returns the map of servers that failed to initialize.
func (m *Manager) FailedServers() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make(map[string]string, len(m.failedServers))
	for k, v := range m.failedServers {
		result[k] = v
	}
	return result
}

// ServerStatus describes one configured tool server for the status endpoint.
type ServerStatus struct {
	ServerID  string `json:"server_id"`
	Connected bool   `json:"connected"`
	Disabled  bool   `json:"disabled,omitempty"`
	Error     string `json:"error,omitempty"`
	ToolCount int    `json:"tool_count"`
}

// Status reports the state of every configured tool server.
// Tool counts come from the cache only; Status never probes servers.
func (m *Manager) Status() []ServerStatus {
	m.mu.RLock()
	failed := make(map[string]string, len(m.failedServers))
	for k, v := range m.failedServers {
		failed[k] = v
	}
	connected := make(map[string]bool, len(m.sessions))
	for id := range m.sessions {
		connected[id] = true
	}
	m.mu.RUnlock()

	var statuses []ServerStatus
	for _, serverID := range m.registry.ServerIDs() {
		cfg, err := m.registry.Get(serverID)
		if err != nil {
			continue
		}

		m.toolCacheMu.RLock()
		toolCount := len(m.toolCache[serverID])
		m.toolCacheMu.RUnlock()

		statuses = append(statuses, ServerStatus{
			ServerID:  serverID,
			Connected: connected[serverID],
			Disabled:  cfg.Disabled(),
			Error:     failed[serverID],
			ToolCount: toolCount,
		})
	}
	return statuses
}
