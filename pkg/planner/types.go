// Package planner implements the step loop that drives a run: prompt the
// model, parse its action, execute tools, and persist progress after every
// step so a run can resume from its checkpoint.
package planner

import "context"

// ToolCall is a tool invocation requested by the model.
type ToolCall struct {
	ID        string
	Name      string // "server.tool" form
	Arguments string // raw argument text as produced by the model
}

// ToolResult is the outcome of executing a ToolCall.
// Execution failures are reported via IsError with the failure text in
// Content, never as a Go error, so the model can react to them.
type ToolResult struct {
	CallID  string
	Name    string
	Content string
	IsError bool
}

// ToolDefinition describes a tool offered to the model.
type ToolDefinition struct {
	Name             string // "server.tool" form
	Description      string
	ParametersSchema string // JSON Schema, empty if the tool takes no parameters
}

// ToolExecutor executes tool calls on behalf of the planner.
// Implemented by mcp.Executor in production and by fakes in tests.
type ToolExecutor interface {
	// Execute runs a tool call. Tool-level failures come back as a
	// ToolResult with IsError set; a non-nil error means the executor
	// itself is unusable.
	Execute(ctx context.Context, call ToolCall) (*ToolResult, error)

	// ListTools returns the tools available to this executor.
	// A nil slice means no tools are available.
	ListTools(ctx context.Context) ([]ToolDefinition, error)
}
