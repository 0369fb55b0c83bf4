package config

// Defaults contains system-wide default configurations.
// These values are used when specific components don't specify their own values.
type Defaults struct {
	// AgentProfile is the profile used when a run (or webhook alert) does
	// not name one.
	AgentProfile string `yaml:"agent_profile,omitempty"`

	// MaxSteps default for the planner loop (profiles may override)
	MaxSteps *int `yaml:"max_steps,omitempty"`

	// StreamTokens default for new runs
	StreamTokens *bool `yaml:"stream_tokens,omitempty"`
}
