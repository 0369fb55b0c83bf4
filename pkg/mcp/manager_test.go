package mcp

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/ranger/pkg/config"
)

// emptySchema is a minimal valid JSON Schema for test tools.
var emptySchema = json.RawMessage(`{"type":"object"}`)

// testToolServer holds an in-memory MCP server and its transport pair.
type testToolServer struct {
	server          *mcpsdk.Server
	clientTransport *mcpsdk.InMemoryTransport
	serverTransport *mcpsdk.InMemoryTransport
}

// startTestServer creates an in-memory MCP server with given tools and connects it.
func startTestServer(t *testing.T, name string, tools map[string]mcpsdk.ToolHandler) *testToolServer {
	t.Helper()

	server := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name: name, Version: "test",
	}, nil)

	for toolName, handler := range tools {
		server.AddTool(&mcpsdk.Tool{
			Name:        toolName,
			Description: "test tool: " + toolName,
			InputSchema: emptySchema,
		}, handler)
	}

	clientTransport, serverTransport := mcpsdk.NewInMemoryTransports()

	go func() {
		_ = server.Run(context.Background(), serverTransport)
	}()

	return &testToolServer{
		server:          server,
		clientTransport: clientTransport,
		serverTransport: serverTransport,
	}
}

// textResult builds a single-text CallToolResult for test handlers.
func textResult(text string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: text}},
	}
}

// connectManagerDirect creates a Manager with a pre-wired in-memory transport.
// Bypasses the registry/createTransport path for unit testing the manager itself.
func connectManagerDirect(t *testing.T, serverID string, transport *mcpsdk.InMemoryTransport) *Manager {
	t.Helper()
	ctx := context.Background()

	manager := NewManager(config.NewToolServerRegistry(nil))

	sdkClient := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name: "ranger-test", Version: "test",
	}, nil)

	session, err := sdkClient.Connect(ctx, transport, nil)
	require.NoError(t, err)

	manager.mu.Lock()
	manager.sessions[serverID] = session
	manager.clients[serverID] = sdkClient
	manager.mu.Unlock()

	t.Cleanup(func() { _ = manager.Shutdown() })
	return manager
}

func TestManager_ListTools(t *testing.T) {
	ts := startTestServer(t, "test-server", map[string]mcpsdk.ToolHandler{
		"get_pods": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textResult("ok"), nil
		},
		"get_logs": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textResult("ok"), nil
		},
	})

	manager := connectManagerDirect(t, "kubernetes", ts.clientTransport)
	ctx := context.Background()

	tools, err := manager.ListTools(ctx, "kubernetes")
	require.NoError(t, err)
	assert.Len(t, tools, 2)

	names := make([]string, len(tools))
	for i, tool := range tools {
		names[i] = tool.Name
	}
	assert.Contains(t, names, "get_pods")
	assert.Contains(t, names, "get_logs")
}

func TestManager_ListTools_Cached(t *testing.T) {
	ts := startTestServer(t, "test-server", map[string]mcpsdk.ToolHandler{
		"get_pods": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textResult("ok"), nil
		},
	})

	manager := connectManagerDirect(t, "kubernetes", ts.clientTransport)
	ctx := context.Background()

	tools1, err := manager.ListTools(ctx, "kubernetes")
	require.NoError(t, err)

	tools2, err := manager.ListTools(ctx, "kubernetes")
	require.NoError(t, err)

	assert.Equal(t, tools1, tools2)
}

func TestManager_CallTool(t *testing.T) {
	ts := startTestServer(t, "test-server", map[string]mcpsdk.ToolHandler{
		"get_pods": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textResult("pod-1\npod-2"), nil
		},
	})

	manager := connectManagerDirect(t, "kubernetes", ts.clientTransport)
	ctx := context.Background()

	result, err := manager.CallTool(ctx, "kubernetes", "get_pods", map[string]any{})
	require.NoError(t, err)
	assert.False(t, result.IsError)
	require.Len(t, result.Content, 1)

	tc, ok := result.Content[0].(*mcpsdk.TextContent)
	require.True(t, ok)
	assert.Equal(t, "pod-1\npod-2", tc.Text)
}

func TestManager_CallTool_ErrorResult(t *testing.T) {
	ts := startTestServer(t, "test-server", map[string]mcpsdk.ToolHandler{
		"bad_tool": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return &mcpsdk.CallToolResult{
				Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "tool error: invalid namespace"}},
				IsError: true,
			}, nil
		},
	})

	manager := connectManagerDirect(t, "kubernetes", ts.clientTransport)
	ctx := context.Background()

	result, err := manager.CallTool(ctx, "kubernetes", "bad_tool", map[string]any{})
	require.NoError(t, err) // No Go error, the failure is in the result
	assert.True(t, result.IsError)
}

func TestManager_CallTool_SerializedPerServer(t *testing.T) {
	var mu sync.Mutex
	inFlight := 0
	maxInFlight := 0

	ts := startTestServer(t, "test-server", map[string]mcpsdk.ToolHandler{
		"slow_tool": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			mu.Lock()
			inFlight++
			if inFlight > maxInFlight {
				maxInFlight = inFlight
			}
			mu.Unlock()

			mu.Lock()
			inFlight--
			mu.Unlock()
			return textResult("done"), nil
		},
	})

	manager := connectManagerDirect(t, "kubernetes", ts.clientTransport)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := manager.CallTool(ctx, "kubernetes", "slow_tool", nil)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInFlight, "calls to the same server must not overlap")
}

func TestManager_ListTools_NoSession(t *testing.T) {
	manager := NewManager(config.NewToolServerRegistry(nil))

	_, err := manager.ListTools(context.Background(), "nonexistent")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no session")
}

func TestManager_CallTool_NoSession(t *testing.T) {
	manager := NewManager(config.NewToolServerRegistry(nil))

	_, err := manager.CallTool(context.Background(), "nonexistent", "tool", nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no session")
}

func TestManager_HasSession(t *testing.T) {
	ts := startTestServer(t, "test-server", map[string]mcpsdk.ToolHandler{
		"ping": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textResult("pong"), nil
		},
	})

	manager := connectManagerDirect(t, "kubernetes", ts.clientTransport)

	assert.True(t, manager.HasSession("kubernetes"))
	assert.False(t, manager.HasSession("nonexistent"))
	assert.Equal(t, []string{"kubernetes"}, manager.Connected())
}

func TestManager_Initialize_RecordsFailures(t *testing.T) {
	registry := config.NewToolServerRegistry(map[string]*config.ToolServerConfig{
		"broken": {
			Transport: config.TransportConfig{
				Type: config.TransportTypeStdio,
				// Missing command, transport creation fails
			},
		},
	})
	manager := NewManager(registry)

	err := manager.Initialize(context.Background())
	require.NoError(t, err) // Initialize records failures, it does not return them

	failed := manager.FailedServers()
	assert.Contains(t, failed, "broken")
	assert.Empty(t, manager.Connected())
}

func TestManager_Initialize_SkipsDisabled(t *testing.T) {
	registry := config.NewToolServerRegistry(map[string]*config.ToolServerConfig{
		"off": {
			Transport: config.TransportConfig{
				Type:    config.TransportTypeStdio,
				Command: "nonexistent-binary",
			},
			Enabled: config.BoolPtr(false),
		},
	})
	manager := NewManager(registry)

	err := manager.Initialize(context.Background())
	require.NoError(t, err)

	// Disabled servers are neither connected nor recorded as failed.
	assert.Empty(t, manager.Connected())
	assert.Empty(t, manager.FailedServers())
}

func TestManager_Shutdown(t *testing.T) {
	ts := startTestServer(t, "test-server", map[string]mcpsdk.ToolHandler{
		"ping": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textResult("pong"), nil
		},
	})

	manager := connectManagerDirect(t, "kubernetes", ts.clientTransport)

	assert.True(t, manager.HasSession("kubernetes"))

	err := manager.Shutdown()
	require.NoError(t, err)
	assert.False(t, manager.HasSession("kubernetes"))

	// Idempotent
	assert.NoError(t, manager.Shutdown())

	// No new sessions after shutdown
	err = manager.InitializeServer(context.Background(), "kubernetes")
	assert.Error(t, err)
}

func TestManager_Status(t *testing.T) {
	registry := config.NewToolServerRegistry(map[string]*config.ToolServerConfig{
		"kubernetes": {
			Transport: config.TransportConfig{Type: config.TransportTypeStdio, Command: "echo"},
		},
		"off": {
			Transport: config.TransportConfig{Type: config.TransportTypeStdio, Command: "echo"},
			Enabled:   config.BoolPtr(false),
		},
	})

	ts := startTestServer(t, "kubernetes", map[string]mcpsdk.ToolHandler{
		"get_pods": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textResult("ok"), nil
		},
	})

	manager := NewManager(registry)
	sdkClient := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "ranger-test", Version: "test"}, nil)
	session, err := sdkClient.Connect(context.Background(), ts.clientTransport, nil)
	require.NoError(t, err)
	manager.mu.Lock()
	manager.sessions["kubernetes"] = session
	manager.clients["kubernetes"] = sdkClient
	manager.mu.Unlock()
	t.Cleanup(func() { _ = manager.Shutdown() })

	// Populate the tool cache
	_, err = manager.ListTools(context.Background(), "kubernetes")
	require.NoError(t, err)

	statuses := manager.Status()
	require.Len(t, statuses, 2)

	byID := make(map[string]ServerStatus, len(statuses))
	for _, s := range statuses {
		byID[s.ServerID] = s
	}

	assert.True(t, byID["kubernetes"].Connected)
	assert.Equal(t, 1, byID["kubernetes"].ToolCount)
	assert.False(t, byID["off"].Connected)
	assert.True(t, byID["off"].Disabled)
}
