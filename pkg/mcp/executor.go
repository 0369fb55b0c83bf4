package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/codeready-toolchain/ranger/pkg/config"
	"github.com/codeready-toolchain/ranger/pkg/planner"
	"github.com/codeready-toolchain/ranger/pkg/sanitize"
)

// Compile-time check that Executor implements planner.ToolExecutor.
var _ planner.ToolExecutor = (*Executor)(nil)

// Executor is the profile-scoped view over the shared Manager: it exposes
// only the tool servers the run's agent profile grants, and routes tool
// calls through the multiplexer. Created per-run, cheap to construct.
type Executor struct {
	manager *Manager

	// Resolved list of server IDs this run may call.
	serverIDs []string

	// Optional injection filter for tool result text. nil disables filtering.
	filter *sanitize.Filter
}

// NewExecutor creates an executor for the given agent profile.
// A wildcard grant resolves to every enabled server in the registry;
// an empty grant list yields an executor with no tools.
// filter may be nil (result filtering disabled).
func NewExecutor(manager *Manager, profile *config.AgentProfileConfig, filter *sanitize.Filter) *Executor {
	var serverIDs []string
	if profile.AllowsAllServers() {
		for _, id := range manager.registry.ServerIDs() {
			cfg, err := manager.registry.Get(id)
			if err != nil || cfg.Disabled() {
				continue
			}
			serverIDs = append(serverIDs, id)
		}
	} else {
		serverIDs = slices.Clone(profile.AllowedToolServers)
	}

	return &Executor{
		manager:   manager,
		serverIDs: serverIDs,
		filter:    filter,
	}
}

// ServerIDs returns the servers this executor may call.
func (e *Executor) ServerIDs() []string {
	return slices.Clone(e.serverIDs)
}

// Execute runs a tool call via the multiplexer.
//
// Flow:
//  1. Split and validate the "server.tool" name
//  2. Check the server is in the profile's allowed set
//  3. Parse the raw argument text into map[string]any
//  4. Call Manager.CallTool
//  5. Extract text content and apply the injection filter
//
// Routing and execution failures are returned as a ToolResult with IsError
// set, never as a Go error, so the model sees them and can adjust.
func (e *Executor) Execute(ctx context.Context, call planner.ToolCall) (*planner.ToolResult, error) {
	serverID, toolName, err := e.resolveToolCall(call.Name)
	if err != nil {
		return &planner.ToolResult{
			CallID:  call.ID,
			Name:    call.Name,
			Content: err.Error(),
			IsError: true,
		}, nil
	}

	params, err := ParseActionInput(call.Arguments)
	if err != nil {
		return &planner.ToolResult{
			CallID:  call.ID,
			Name:    call.Name,
			Content: fmt.Sprintf("Failed to parse tool arguments: %s", err),
			IsError: true,
		}, nil
	}

	result, err := e.manager.CallTool(ctx, serverID, toolName, params)
	if err != nil {
		return &planner.ToolResult{
			CallID:  call.ID,
			Name:    call.Name,
			Content: fmt.Sprintf("Tool execution failed: %s", err),
			IsError: true,
		}, nil
	}

	content := extractTextContent(result)
	if e.filter != nil {
		content = e.filter.Sanitize(content)
	}

	return &planner.ToolResult{
		CallID:  call.ID,
		Name:    call.Name,
		Content: content,
		IsError: result.IsError,
	}, nil
}

// ListTools returns all tools available to this run, with server-prefixed
// names (e.g., "kubernetes.get_pods"). Servers that fail to list are logged
// and skipped; partial tools are better than none.
func (e *Executor) ListTools(ctx context.Context) ([]planner.ToolDefinition, error) {
	var allTools []planner.ToolDefinition

	for _, serverID := range e.serverIDs {
		tools, err := e.manager.ListTools(ctx, serverID)
		if err != nil {
			slog.Warn("Failed to list tools from server",
				"server", serverID, "error", err)
			continue
		}

		for _, tool := range tools {
			allTools = append(allTools, planner.ToolDefinition{
				Name:             fmt.Sprintf("%s.%s", serverID, tool.Name),
				Description:      tool.Description,
				ParametersSchema: marshalSchema(tool.InputSchema),
			})
		}
	}

	if len(allTools) == 0 {
		return nil, nil
	}
	return allTools, nil
}

// resolveToolCall validates a tool call against the executor's server set.
func (e *Executor) resolveToolCall(name string) (serverID, toolName string, err error) {
	serverID, toolName, err = SplitToolName(name)
	if err != nil {
		return "", "", err
	}

	if !slices.Contains(e.serverIDs, serverID) {
		return "", "", fmt.Errorf(
			"tool server %q is not available for this run. "+
				"Available servers: %s", serverID, strings.Join(e.serverIDs, ", "))
	}

	return serverID, toolName, nil
}

// extractTextContent extracts text from a CallToolResult.
// Concatenates all TextContent items. Non-text content (images, embedded
// resources) is logged at debug level and skipped.
func extractTextContent(result *mcpsdk.CallToolResult) string {
	var parts []string
	for _, c := range result.Content {
		if tc, ok := c.(*mcpsdk.TextContent); ok {
			parts = append(parts, tc.Text)
		} else {
			slog.Debug("Tool returned non-text content, skipping",
				"content_type", fmt.Sprintf("%T", c))
		}
	}
	return strings.Join(parts, "\n")
}

// marshalSchema serializes a tool's InputSchema to a JSON string.
func marshalSchema(schema any) string {
	if schema == nil {
		return ""
	}
	data, err := json.Marshal(schema)
	if err != nil {
		slog.Debug("Failed to marshal tool input schema", "error", err)
		return ""
	}
	return string(data)
}
