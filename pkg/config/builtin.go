package config

// BuiltinConfig holds configuration compiled into the binary. User YAML
// overrides built-ins by ID.
type BuiltinConfig struct {
	AgentProfiles map[string]AgentProfileConfig
	ToolServers   map[string]ToolServerConfig

	// DefaultAgentProfile is used when neither the YAML defaults section
	// nor the request names a profile.
	DefaultAgentProfile string
}

// GetBuiltinConfig returns the built-in configuration.
func GetBuiltinConfig() *BuiltinConfig {
	return &BuiltinConfig{
		AgentProfiles: map[string]AgentProfileConfig{
			"general": {
				Description: "General-purpose investigator with access to every configured tool server",
				RolePrompt: "You are a careful operations assistant. Investigate the goal " +
					"step by step using the available tools, and finish with a concise, " +
					"factual answer grounded in the tool results.",
				AllowedToolServers: []string{WildcardServers},
			},
		},
		ToolServers:         map[string]ToolServerConfig{},
		DefaultAgentProfile: "general",
	}
}
