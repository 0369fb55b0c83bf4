package config

// Config is the umbrella configuration object that encapsulates
// all registries, defaults, and configuration state.
// This is the primary object returned by Initialize() and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// System-wide defaults
	Defaults *Defaults

	// Queue and worker pool configuration
	Queue *QueueConfig

	// Planner loop configuration
	Planner *PlannerConfig

	// Webhook intake configuration (env-sourced)
	Webhook *WebhookConfig

	// Event retention configuration
	Retention *RetentionConfig

	// Component registries
	ProfileRegistry    *AgentProfileRegistry
	ToolServerRegistry *ToolServerRegistry
}

// Initialize is defined in loader.go

// Stats contains statistics about loaded configuration
type Stats struct {
	AgentProfiles int
	ToolServers   int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.ProfileRegistry != nil {
		s.AgentProfiles = c.ProfileRegistry.Len()
	}
	if c.ToolServerRegistry != nil {
		s.ToolServers = c.ToolServerRegistry.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetProfile retrieves an agent profile by ID.
// This is a convenience method that wraps ProfileRegistry.Get().
func (c *Config) GetProfile(profileID string) (*AgentProfileConfig, error) {
	return c.ProfileRegistry.Get(profileID)
}

// GetToolServer retrieves a tool server configuration by ID.
// This is a convenience method that wraps ToolServerRegistry.Get().
func (c *Config) GetToolServer(serverID string) (*ToolServerConfig, error) {
	return c.ToolServerRegistry.Get(serverID)
}

// AllToolServerIDs returns a sorted list of all configured tool server IDs.
func (c *Config) AllToolServerIDs() []string {
	return c.ToolServerRegistry.ServerIDs()
}

// MaxStepsForProfile resolves the planner step cap for a profile:
// profile override, then defaults section, then the built-in cap.
func (c *Config) MaxStepsForProfile(profile *AgentProfileConfig) int {
	if profile != nil && profile.MaxSteps != nil && *profile.MaxSteps > 0 {
		return *profile.MaxSteps
	}
	if c.Defaults != nil && c.Defaults.MaxSteps != nil && *c.Defaults.MaxSteps > 0 {
		return *c.Defaults.MaxSteps
	}
	return c.Planner.MaxSteps
}
