package planner

import (
	"encoding/json"
	"regexp"
	"strings"
)

// ActionKind discriminates the parsed planner action.
type ActionKind string

const (
	ActionToolCall ActionKind = "tool_call"
	ActionFinish   ActionKind = "finish"
	ActionUnknown  ActionKind = "unknown"
)

// Action is the tagged union of everything the model can ask for in one
// step: call a tool, finish with an answer, or something unparseable.
type Action struct {
	Kind ActionKind

	// Tool call fields (Kind == ActionToolCall)
	ServerID  string
	ToolName  string
	Arguments map[string]any

	// Finish field (Kind == ActionFinish)
	Answer string

	// Raw is the original model response, kept for the step record.
	Raw string
}

// finishTokenRegex matches a bare FINISH token for the no-JSON fallback.
var finishTokenRegex = regexp.MustCompile(`(?i)\bFINISH\b`)

// ParseAction extracts the planner action from a raw model response.
//
// The response is scanned for the first balanced {…} block, which is parsed
// as JSON with an "action" discriminator. If no parseable JSON is found but
// the token FINISH appears (any case), the text after it becomes the
// answer. Anything else is an unknown action; the loop records it and moves
// on rather than failing the run.
func ParseAction(raw string) Action {
	if block, ok := firstBalancedJSON(raw); ok {
		if action, ok := parseJSONAction(block, raw); ok {
			return action
		}
	}

	if loc := finishTokenRegex.FindStringIndex(raw); loc != nil {
		return Action{
			Kind:   ActionFinish,
			Answer: strings.TrimSpace(raw[loc[1]:]),
			Raw:    raw,
		}
	}

	return Action{Kind: ActionUnknown, Raw: raw}
}

// parseJSONAction interprets a JSON object as a planner action.
// Returns false when the object is valid JSON but not a usable action, so
// the caller can fall through to the FINISH heuristic.
func parseJSONAction(block, raw string) (Action, bool) {
	var msg struct {
		Action    string         `json:"action"`
		ServerID  string         `json:"server_id"`
		ToolName  string         `json:"tool_name"`
		Arguments map[string]any `json:"arguments"`
		Answer    string         `json:"answer"`
	}
	if err := json.Unmarshal([]byte(block), &msg); err != nil {
		return Action{}, false
	}

	switch msg.Action {
	case "tool_call":
		if msg.ServerID == "" || msg.ToolName == "" {
			return Action{}, false
		}
		args := msg.Arguments
		if args == nil {
			args = map[string]any{}
		}
		return Action{
			Kind:      ActionToolCall,
			ServerID:  msg.ServerID,
			ToolName:  msg.ToolName,
			Arguments: args,
			Raw:       raw,
		}, true
	case "finish":
		return Action{
			Kind:   ActionFinish,
			Answer: strings.TrimSpace(msg.Answer),
			Raw:    raw,
		}, true
	default:
		return Action{}, false
	}
}

// firstBalancedJSON returns the first balanced {…} block in s, tracking
// string literals and escapes so braces inside values don't confuse the
// depth count.
func firstBalancedJSON(s string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 {
					return s[start : i+1], true
				}
			}
		}
	}
	return "", false
}
