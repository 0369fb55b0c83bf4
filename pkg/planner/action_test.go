package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction_ToolCall(t *testing.T) {
	raw := `I should check connectivity first.
{"action": "tool_call", "server_id": "net", "tool_name": "ping", "arguments": {"host": "8.8.8.8", "count": 4}}`

	action := ParseAction(raw)
	assert.Equal(t, ActionToolCall, action.Kind)
	assert.Equal(t, "net", action.ServerID)
	assert.Equal(t, "ping", action.ToolName)
	assert.Equal(t, "8.8.8.8", action.Arguments["host"])
	assert.Equal(t, float64(4), action.Arguments["count"])
	assert.Equal(t, raw, action.Raw)
}

func TestParseAction_ToolCall_BracesInsideStrings(t *testing.T) {
	raw := `{"action": "tool_call", "server_id": "k8s", "tool_name": "apply", "arguments": {"manifest": "{\"kind\": \"Pod\"}"}}`

	action := ParseAction(raw)
	require.Equal(t, ActionToolCall, action.Kind)
	assert.Equal(t, `{"kind": "Pod"}`, action.Arguments["manifest"])
}

func TestParseAction_ToolCall_DefaultsArguments(t *testing.T) {
	action := ParseAction(`{"action": "tool_call", "server_id": "net", "tool_name": "ifconfig"}`)
	require.Equal(t, ActionToolCall, action.Kind)
	require.NotNil(t, action.Arguments)
	assert.Empty(t, action.Arguments)
}

func TestParseAction_Finish(t *testing.T) {
	action := ParseAction(`{"action": "finish", "answer": "  All pods are healthy.  "}`)
	assert.Equal(t, ActionFinish, action.Kind)
	assert.Equal(t, "All pods are healthy.", action.Answer)
}

func TestParseAction_FinishTokenFallback(t *testing.T) {
	action := ParseAction("After reviewing everything, finish\nThe service is back up.")
	assert.Equal(t, ActionFinish, action.Kind)
	assert.Equal(t, "The service is back up.", action.Answer)
}

func TestParseAction_Unknown(t *testing.T) {
	tests := map[string]string{
		"prose":                 "Let me think about this some more.",
		"empty":                 "",
		"unrecognized action":   `{"action": "think", "thought": "hmm"}`,
		"tool_call no server":   `{"action": "tool_call", "tool_name": "ping"}`,
		"tool_call no tool":     `{"action": "tool_call", "server_id": "net"}`,
		"unbalanced braces":     `{"action": "finish", "answer": "oops`,
		"finnish is not finish": "The Finnish deployment looks fine.",
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			action := ParseAction(raw)
			assert.Equal(t, ActionUnknown, action.Kind)
			assert.Equal(t, raw, action.Raw)
		})
	}
}

func TestParseAction_BadJSONFallsThroughToFinishToken(t *testing.T) {
	action := ParseAction(`{"action": "think"} ... FINISH everything looks good`)
	assert.Equal(t, ActionFinish, action.Kind)
	assert.Equal(t, "everything looks good", action.Answer)
}

func TestFirstBalancedJSON(t *testing.T) {
	block, ok := firstBalancedJSON(`noise {"a": {"b": "}"}} trailing {"c": 1}`)
	require.True(t, ok)
	assert.Equal(t, `{"a": {"b": "}"}}`, block)

	_, ok = firstBalancedJSON("no json here")
	assert.False(t, ok)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exact", Truncate("exact", 5))
	assert.Equal(t, "lo...", Truncate("long enough", 5))
}
