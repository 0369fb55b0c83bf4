package config

import "fmt"

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	// Tool servers first: profiles reference them.

	if err := v.validateToolServers(); err != nil {
		return fmt.Errorf("tool server validation failed: %w", err)
	}

	if err := v.validateProfiles(); err != nil {
		return fmt.Errorf("agent profile validation failed: %w", err)
	}

	if err := v.validateDefaults(); err != nil {
		return fmt.Errorf("defaults validation failed: %w", err)
	}

	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateToolServers() error {
	for serverID, server := range v.cfg.ToolServerRegistry.GetAll() {
		if !server.Transport.Type.IsValid() {
			return NewValidationError("tool_server", serverID, "transport.type",
				fmt.Errorf("invalid transport type: %s", server.Transport.Type))
		}

		switch server.Transport.Type {
		case TransportTypeStdio:
			if server.Transport.Command == "" {
				return NewValidationError("tool_server", serverID, "transport.command",
					fmt.Errorf("required for stdio transport"))
			}
		case TransportTypeHTTP, TransportTypeSSE:
			if server.Transport.URL == "" {
				return NewValidationError("tool_server", serverID, "transport.url",
					fmt.Errorf("required for %s transport", server.Transport.Type))
			}
		}
	}

	return nil
}

func (v *ConfigValidator) validateProfiles() error {
	for profileID, profile := range v.cfg.ProfileRegistry.GetAll() {
		if profile.RolePrompt == "" {
			return NewValidationError("agent_profile", profileID, "role_prompt",
				fmt.Errorf("required"))
		}

		for _, serverID := range profile.AllowedToolServers {
			if serverID == WildcardServers {
				continue
			}
			if !v.cfg.ToolServerRegistry.Has(serverID) {
				return NewValidationError("agent_profile", profileID, "allowed_tool_servers",
					fmt.Errorf("tool server '%s' not found", serverID))
			}
		}

		for _, tool := range profile.ApprovalRequiredTools {
			if tool == "" {
				return NewValidationError("agent_profile", profileID, "approval_required_tools",
					fmt.Errorf("empty tool name"))
			}
		}

		if profile.MaxSteps != nil && *profile.MaxSteps < 1 {
			return NewValidationError("agent_profile", profileID, "max_steps",
				fmt.Errorf("must be at least 1"))
		}
	}

	return nil
}

func (v *ConfigValidator) validateDefaults() error {
	d := v.cfg.Defaults
	if d == nil {
		return nil
	}

	if d.AgentProfile != "" && !v.cfg.ProfileRegistry.Has(d.AgentProfile) {
		return NewValidationError("defaults", "defaults", "agent_profile",
			fmt.Errorf("agent profile '%s' not found", d.AgentProfile))
	}
	if d.MaxSteps != nil && *d.MaxSteps < 1 {
		return NewValidationError("defaults", "defaults", "max_steps",
			fmt.Errorf("must be at least 1"))
	}

	return nil
}

func (v *ConfigValidator) validateQueue() error {
	q := v.cfg.Queue
	if q == nil {
		return nil
	}

	if q.WorkerCount < 1 {
		return NewValidationError("queue", "queue", "worker_count",
			fmt.Errorf("must be at least 1"))
	}
	if q.MaxConcurrentRuns < 1 {
		return NewValidationError("queue", "queue", "max_concurrent_runs",
			fmt.Errorf("must be at least 1"))
	}
	if q.PollInterval <= 0 {
		return NewValidationError("queue", "queue", "poll_interval",
			fmt.Errorf("must be positive"))
	}
	if q.RunTimeout <= 0 {
		return NewValidationError("queue", "queue", "run_timeout",
			fmt.Errorf("must be positive"))
	}

	return nil
}
