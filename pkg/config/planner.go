package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// DefaultMaxPlannerSteps caps the planner loop when neither the defaults
// section nor the profile overrides it.
const DefaultMaxPlannerSteps = 15

// PlannerConfig holds planner loop tuning.
type PlannerConfig struct {
	// MaxSteps is the hard cap on planner steps per run.
	MaxSteps int `yaml:"max_steps"`

	// LLMTimeout bounds a single planning LLM call.
	LLMTimeout time.Duration `yaml:"llm_timeout"`

	// ToolTimeout bounds a single tool call.
	ToolTimeout time.Duration `yaml:"tool_timeout"`

	// InjectionFilterEnabled toggles the prompt injection filter applied
	// to tool results before they re-enter the prompt.
	InjectionFilterEnabled bool `yaml:"injection_filter_enabled"`
}

// DefaultPlannerConfig returns the built-in planner defaults.
func DefaultPlannerConfig() *PlannerConfig {
	return &PlannerConfig{
		MaxSteps:               DefaultMaxPlannerSteps,
		LLMTimeout:             120 * time.Second,
		ToolTimeout:            60 * time.Second,
		InjectionFilterEnabled: true,
	}
}

// ApplyEnvOverrides applies environment variable overrides on top of the
// YAML-resolved planner config. Env wins over YAML.
func (c *PlannerConfig) ApplyEnvOverrides() error {
	// Zero is a valid timeout value and disables the deadline entirely.
	if v := os.Getenv("PLANNER_LLM_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs < 0 {
			return fmt.Errorf("%w: PLANNER_LLM_TIMEOUT_SECONDS=%q", ErrInvalidValue, v)
		}
		c.LLMTimeout = time.Duration(secs) * time.Second
	}
	if v := os.Getenv("PLANNER_TOOL_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs < 0 {
			return fmt.Errorf("%w: PLANNER_TOOL_TIMEOUT_SECONDS=%q", ErrInvalidValue, v)
		}
		c.ToolTimeout = time.Duration(secs) * time.Second
	}
	if v := os.Getenv("PROMPT_INJECTION_FILTER_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: PROMPT_INJECTION_FILTER_ENABLED=%q", ErrInvalidValue, v)
		}
		c.InjectionFilterEnabled = enabled
	}
	return nil
}
