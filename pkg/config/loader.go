package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// RangerYAMLConfig represents the complete ranger.yaml file structure
type RangerYAMLConfig struct {
	System        *SystemYAMLConfig             `yaml:"system"`
	ToolServers   map[string]ToolServerConfig   `yaml:"tool_servers"`
	AgentProfiles map[string]AgentProfileConfig `yaml:"agent_profiles"`
	Defaults      *Defaults                     `yaml:"defaults"`
	Queue         *QueueConfig                  `yaml:"queue"`
	Planner       *PlannerConfig                `yaml:"planner"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	Retention *RetentionConfig `yaml:"retention"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load ranger.yaml from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge built-in + user-defined configurations
//  5. Build in-memory registries
//  6. Apply default values and env overrides
//  7. Validate all configuration
//  8. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"agent_profiles", stats.AgentProfiles,
		"tool_servers", stats.ToolServers)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	rangerConfig, err := loader.loadRangerYAML()
	if err != nil {
		return nil, NewLoadError("ranger.yaml", err)
	}

	builtin := GetBuiltinConfig()

	// Merge built-in + user-defined components (user overrides built-in)
	profiles := mergeProfiles(builtin.AgentProfiles, rangerConfig.AgentProfiles)
	toolServers := mergeToolServers(builtin.ToolServers, rangerConfig.ToolServers)

	profileRegistry := NewAgentProfileRegistry(profiles)
	toolServerRegistry := NewToolServerRegistry(toolServers)

	// Resolve defaults (YAML overrides built-in)
	defaults := rangerConfig.Defaults
	if defaults == nil {
		defaults = &Defaults{}
	}
	if defaults.AgentProfile == "" {
		defaults.AgentProfile = builtin.DefaultAgentProfile
	}

	// Resolve queue config (merge user YAML with built-in defaults).
	// Start with defaults, then merge user config on top to preserve unset defaults.
	queueConfig := DefaultQueueConfig()
	if rangerConfig.Queue != nil {
		if err := mergo.Merge(queueConfig, rangerConfig.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}
	if err := queueConfig.ApplyEnvOverrides(); err != nil {
		return nil, err
	}

	// Resolve planner config the same way, then let env win.
	plannerConfig := DefaultPlannerConfig()
	if rangerConfig.Planner != nil {
		if err := mergo.Merge(plannerConfig, rangerConfig.Planner, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge planner config: %w", err)
		}
	}
	if err := plannerConfig.ApplyEnvOverrides(); err != nil {
		return nil, err
	}

	webhookConfig, err := LoadWebhookConfigFromEnv()
	if err != nil {
		return nil, err
	}

	retentionConfig := resolveRetentionConfig(rangerConfig.System)

	return &Config{
		configDir:          configDir,
		Defaults:           defaults,
		Queue:              queueConfig,
		Planner:            plannerConfig,
		Webhook:            webhookConfig,
		Retention:          retentionConfig,
		ProfileRegistry:    profileRegistry,
		ToolServerRegistry: toolServerRegistry,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing the YAML parser to handle the content (or fail with a clearer
	// error message).
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadRangerYAML() (*RangerYAMLConfig, error) {
	var config RangerYAMLConfig

	// Initialize maps to avoid nil maps
	config.ToolServers = make(map[string]ToolServerConfig)
	config.AgentProfiles = make(map[string]AgentProfileConfig)

	if err := l.loadYAML("ranger.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// resolveRetentionConfig resolves retention configuration from system YAML, applying defaults.
func resolveRetentionConfig(sys *SystemYAMLConfig) *RetentionConfig {
	cfg := DefaultRetentionConfig()

	if sys == nil || sys.Retention == nil {
		return cfg
	}

	r := sys.Retention
	if r.EventTTLDays > 0 {
		cfg.EventTTLDays = r.EventTTLDays
	}
	if r.CleanupInterval > 0 {
		cfg.CleanupInterval = r.CleanupInterval
	}

	return cfg
}
