package config

import "time"

// RetentionConfig controls event log retention and cleanup behavior.
type RetentionConfig struct {
	// EventTTLDays is how many days to keep run events after their run
	// reaches a terminal status.
	EventTTLDays int `yaml:"event_ttl_days"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		EventTTLDays:    7,
		CleanupInterval: 12 * time.Hour,
	}
}
