package config

// Shared types used across configuration structs

// TransportConfig defines tool server transport configuration
type TransportConfig struct {
	Type TransportType `yaml:"type"`

	// For stdio transport
	Command string            `yaml:"command,omitempty"`
	Args    []string          `yaml:"args,omitempty"`
	Env     map[string]string `yaml:"env,omitempty"` // Environment overrides for the subprocess

	// For http/sse transport
	URL         string `yaml:"url,omitempty"`
	BearerToken string `yaml:"bearer_token,omitempty"`
	Timeout     int    `yaml:"timeout,omitempty"` // In seconds
}

// BoolPtr returns a pointer to b. Convenience for *bool struct fields.
func BoolPtr(b bool) *bool { return &b }

// IntPtr returns a pointer to n. Convenience for *int struct fields.
func IntPtr(n int) *int { return &n }
