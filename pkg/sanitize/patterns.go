package sanitize

import (
	"log/slog"
	"regexp"
)

// Placeholder replaces every matched injection attempt.
const Placeholder = "[REDACTED]"

// Structural markers the prompt builder uses to fence untrusted text. Tool
// results containing these are rewritten so they cannot break out of their
// section of the prompt.
const (
	UserGoalStart = "<<USER_GOAL>>"
	UserGoalEnd   = "<<END_USER_GOAL>>"
)

// denyPattern is a named injection pattern.
type denyPattern struct {
	Name        string
	Pattern     string
	Description string
}

// builtinPatterns is the deny list applied to tool result text before it
// re-enters the prompt. Case-insensitive where marked with (?i).
var builtinPatterns = []denyPattern{
	{
		Name:        "ignore_instructions",
		Pattern:     `(?i)ignore\s+(all\s+|any\s+)?(previous|prior|above|earlier)\s+(instructions?|prompts?|directions?)`,
		Description: "Classic instruction override attempt",
	},
	{
		Name:        "disregard_instructions",
		Pattern:     `(?i)disregard\s+(all\s+|any\s+)?(previous|prior|above|earlier|your)\s+(instructions?|prompts?|rules?)`,
		Description: "Instruction override attempt",
	},
	{
		Name:        "forget_instructions",
		Pattern:     `(?i)forget\s+(everything|all|your)\s+(you|previous|prior|instructions?)`,
		Description: "Context reset attempt",
	},
	{
		Name:        "new_instructions",
		Pattern:     `(?i)(your\s+)?new\s+(instructions?|task|goal|objective)\s+(is|are)\b`,
		Description: "Goal substitution attempt",
	},
	{
		Name:        "role_hijack",
		Pattern:     `(?i)you\s+are\s+(now|no\s+longer)\s+`,
		Description: "Persona hijack attempt",
	},
	{
		Name:        "system_prompt_tag",
		Pattern:     `(?i)<\s*/?\s*(system|assistant)\s*>`,
		Description: "Fake chat-role tags embedded in data",
	},
	{
		Name:        "role_prefix",
		Pattern:     `(?im)^\s*(system|assistant)\s*:`,
		Description: "Fake chat-role line prefixes",
	},
	{
		Name:        "goal_fence",
		Pattern:     regexp.QuoteMeta(UserGoalStart) + `|` + regexp.QuoteMeta(UserGoalEnd),
		Description: "Structural prompt markers appearing in untrusted text",
	},
}

// compilePatterns compiles the built-in deny list eagerly. Invalid patterns
// are logged and skipped.
func compilePatterns() []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(builtinPatterns))
	for _, p := range builtinPatterns {
		re, err := regexp.Compile(p.Pattern)
		if err != nil {
			slog.Error("Failed to compile injection pattern, skipping",
				"pattern", p.Name, "error", err)
			continue
		}
		compiled = append(compiled, re)
	}
	return compiled
}
