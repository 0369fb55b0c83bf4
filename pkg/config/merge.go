package config

// mergeProfiles merges built-in and user-defined agent profiles.
// User-defined profiles override built-in profiles with the same ID.
func mergeProfiles(builtinProfiles map[string]AgentProfileConfig, userProfiles map[string]AgentProfileConfig) map[string]*AgentProfileConfig {
	result := make(map[string]*AgentProfileConfig)

	for id, builtin := range builtinProfiles {
		profileCopy := builtin
		// Defensive copies of slices to prevent shared state
		profileCopy.AllowedToolServers = append([]string(nil), builtin.AllowedToolServers...)
		profileCopy.ApprovalRequiredTools = append([]string(nil), builtin.ApprovalRequiredTools...)
		result[id] = &profileCopy
	}

	for id, userProfile := range userProfiles {
		profileCopy := userProfile
		result[id] = &profileCopy
	}

	return result
}

// mergeToolServers merges built-in and user-defined tool server configurations.
// User-defined servers override built-in servers with the same ID.
func mergeToolServers(builtinServers map[string]ToolServerConfig, userServers map[string]ToolServerConfig) map[string]*ToolServerConfig {
	result := make(map[string]*ToolServerConfig)

	for id, server := range builtinServers {
		serverCopy := server
		result[id] = &serverCopy
	}

	for id, userServer := range userServers {
		serverCopy := userServer
		result[id] = &serverCopy
	}

	return result
}
