// Package sanitize rewrites instruction-like content out of untrusted tool
// results before they re-enter the planner prompt.
package sanitize

import (
	"log/slog"
	"regexp"
)

// Filter applies the injection deny list to untrusted text. Created once at
// application startup (singleton). Thread-safe and stateless aside from
// compiled patterns.
type Filter struct {
	enabled  bool
	patterns []*regexp.Regexp
}

// NewFilter creates a filter with eagerly compiled patterns. When disabled,
// Sanitize passes text through untouched.
func NewFilter(enabled bool) *Filter {
	f := &Filter{
		enabled:  enabled,
		patterns: compilePatterns(),
	}

	slog.Info("Injection filter initialized",
		"enabled", enabled,
		"compiled_patterns", len(f.patterns))

	return f
}

// Enabled reports whether the filter rewrites anything.
func (f *Filter) Enabled() bool {
	return f.enabled
}

// Sanitize replaces every deny-list match in text with the placeholder.
// The original text is returned unchanged when the filter is disabled or
// nothing matches.
func (f *Filter) Sanitize(text string) string {
	if !f.enabled || text == "" {
		return text
	}

	sanitized := text
	for _, re := range f.patterns {
		sanitized = re.ReplaceAllString(sanitized, Placeholder)
	}
	return sanitized
}
