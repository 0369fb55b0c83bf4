// Package config provides configuration management for the run orchestration
// system, including agent profiles, tool servers, queue, and webhook settings.
package config

import (
	"fmt"
	"sort"
	"sync"
)

// WildcardServers in allowed_tool_servers grants a profile every
// configured tool server.
const WildcardServers = "*"

// AgentProfileConfig defines an agent profile: the persona and tool scope a
// run executes under.
type AgentProfileConfig struct {
	// Human-readable description
	Description string `yaml:"description,omitempty"`

	// RolePrompt is injected into the system prompt for runs using this profile
	RolePrompt string `yaml:"role_prompt"`

	// AllowedToolServers lists tool server IDs this profile may call.
	// A single "*" entry grants all configured servers. An empty list
	// grants none.
	AllowedToolServers []string `yaml:"allowed_tool_servers"`

	// ApprovalRequiredTools lists tool names ("server.tool" or bare tool
	// name) that pause the run for human approval before executing.
	ApprovalRequiredTools []string `yaml:"approval_required_tools,omitempty"`

	// MaxSteps overrides the planner step limit for this profile
	MaxSteps *int `yaml:"max_steps,omitempty"`

	// Enabled is a *bool: nil means enabled, explicit false hides the
	// profile from run submission.
	Enabled *bool `yaml:"enabled,omitempty"`
}

// Disabled returns true only when Enabled is explicitly set to false.
func (c *AgentProfileConfig) Disabled() bool {
	return c.Enabled != nil && !*c.Enabled
}

// AllowsAllServers reports whether the profile carries the wildcard grant.
func (c *AgentProfileConfig) AllowsAllServers() bool {
	for _, id := range c.AllowedToolServers {
		if id == WildcardServers {
			return true
		}
	}
	return false
}

// RequiresApproval reports whether a tool call must be held for approval.
// Matches either the bare tool name or the qualified "server.tool" form.
func (c *AgentProfileConfig) RequiresApproval(serverID, toolName string) bool {
	qualified := serverID + "." + toolName
	for _, name := range c.ApprovalRequiredTools {
		if name == toolName || name == qualified {
			return true
		}
	}
	return false
}

// AgentProfileRegistry stores agent profiles in memory with thread-safe access
type AgentProfileRegistry struct {
	profiles map[string]*AgentProfileConfig
	mu       sync.RWMutex
}

// NewAgentProfileRegistry creates a new agent profile registry
func NewAgentProfileRegistry(profiles map[string]*AgentProfileConfig) *AgentProfileRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*AgentProfileConfig, len(profiles))
	for k, v := range profiles {
		copied[k] = v
	}
	return &AgentProfileRegistry{
		profiles: copied,
	}
}

// Get retrieves an agent profile by ID (thread-safe)
func (r *AgentProfileRegistry) Get(profileID string) (*AgentProfileConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, exists := r.profiles[profileID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, profileID)
	}
	return profile, nil
}

// GetAll returns all agent profiles (thread-safe, returns copy)
func (r *AgentProfileRegistry) GetAll() map[string]*AgentProfileConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*AgentProfileConfig, len(r.profiles))
	for k, v := range r.profiles {
		result[k] = v
	}
	return result
}

// Has checks if a profile exists in the registry (thread-safe)
func (r *AgentProfileRegistry) Has(profileID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.profiles[profileID]
	return exists
}

// ProfileIDs returns a sorted list of all profile IDs (thread-safe)
func (r *AgentProfileRegistry) ProfileIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.profiles))
	for id := range r.profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of profiles in the registry (thread-safe)
func (r *AgentProfileRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.profiles)
}
