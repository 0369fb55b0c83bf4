package config

import (
	"fmt"
	"sort"
	"sync"
)

// ToolServerConfig defines a tool server the planner can call into
type ToolServerConfig struct {
	// Transport configuration (required)
	Transport TransportConfig `yaml:"transport"`

	// Instructions for the LLM when using this server's tools
	Instructions string `yaml:"instructions,omitempty"`

	// Enabled is a *bool: nil means "use default" (enabled), explicit
	// false keeps the server out of the multiplexer entirely.
	Enabled *bool `yaml:"enabled,omitempty"`
}

// Disabled returns true only when Enabled is explicitly set to false.
func (c *ToolServerConfig) Disabled() bool {
	return c.Enabled != nil && !*c.Enabled
}

// ToolServerRegistry stores tool server configurations in memory with thread-safe access
type ToolServerRegistry struct {
	servers map[string]*ToolServerConfig
	mu      sync.RWMutex
}

// NewToolServerRegistry creates a new tool server registry
func NewToolServerRegistry(servers map[string]*ToolServerConfig) *ToolServerRegistry {
	return &ToolServerRegistry{
		servers: servers,
	}
}

// Get retrieves a tool server configuration by ID (thread-safe)
func (r *ToolServerRegistry) Get(serverID string) (*ToolServerConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	server, exists := r.servers[serverID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrToolServerNotFound, serverID)
	}
	return server, nil
}

// GetAll returns all tool server configurations (thread-safe, returns copy)
func (r *ToolServerRegistry) GetAll() map[string]*ToolServerConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*ToolServerConfig, len(r.servers))
	for k, v := range r.servers {
		result[k] = v
	}
	return result
}

// Has checks if a tool server exists in the registry (thread-safe)
func (r *ToolServerRegistry) Has(serverID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.servers[serverID]
	return exists
}

// ServerIDs returns a sorted list of all server IDs (thread-safe)
func (r *ToolServerRegistry) ServerIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.servers))
	for id := range r.servers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of servers in the registry (thread-safe)
func (r *ToolServerRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.servers)
}
