package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "ranger.yaml"), []byte(content), 0o644)
	require.NoError(t, err)
	return dir
}

func TestInitialize(t *testing.T) {
	t.Run("loads full configuration", func(t *testing.T) {
		dir := writeConfigFile(t, `
tool_servers:
  kubernetes:
    transport:
      type: stdio
      command: kubectl-mcp
      args: ["--read-only"]
    instructions: "Use for cluster inspection."
  github:
    transport:
      type: stdio
      command: github-mcp
      env:
        GITHUB_TOKEN: "{{.TEST_GITHUB_TOKEN}}"

agent_profiles:
  sre:
    description: "Site reliability investigator"
    role_prompt: "You are an SRE assistant."
    allowed_tool_servers: [kubernetes]
    approval_required_tools: [delete_pod, "kubernetes.drain_node"]
  auditor:
    role_prompt: "You audit repositories."
    allowed_tool_servers: ["*"]
    max_steps: 5

defaults:
  agent_profile: sre

queue:
  worker_count: 2
  max_concurrent_runs: 3
`)
		t.Setenv("TEST_GITHUB_TOKEN", "tok-123")

		cfg, err := Initialize(context.Background(), dir)
		require.NoError(t, err)

		assert.Equal(t, 2, cfg.ToolServerRegistry.Len())
		// Built-in "general" profile plus the two user profiles
		assert.Equal(t, 3, cfg.ProfileRegistry.Len())
		assert.Equal(t, "sre", cfg.Defaults.AgentProfile)

		server, err := cfg.GetToolServer("github")
		require.NoError(t, err)
		assert.Equal(t, "tok-123", server.Transport.Env["GITHUB_TOKEN"])

		sre, err := cfg.GetProfile("sre")
		require.NoError(t, err)
		assert.False(t, sre.AllowsAllServers())
		assert.True(t, sre.RequiresApproval("kubernetes", "delete_pod"))
		assert.True(t, sre.RequiresApproval("kubernetes", "drain_node"))
		assert.False(t, sre.RequiresApproval("kubernetes", "get_pods"))

		auditor, err := cfg.GetProfile("auditor")
		require.NoError(t, err)
		assert.True(t, auditor.AllowsAllServers())
		assert.Equal(t, 5, cfg.MaxStepsForProfile(auditor))
		assert.Equal(t, DefaultMaxPlannerSteps, cfg.MaxStepsForProfile(sre))

		// Queue: user values merged over defaults
		assert.Equal(t, 2, cfg.Queue.WorkerCount)
		assert.Equal(t, 3, cfg.Queue.MaxConcurrentRuns)
		assert.Equal(t, 1*time.Second, cfg.Queue.PollInterval)
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := Initialize(context.Background(), t.TempDir())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("profile referencing unknown server fails validation", func(t *testing.T) {
		dir := writeConfigFile(t, `
agent_profiles:
  broken:
    role_prompt: "x"
    allowed_tool_servers: [nonexistent]
`)
		_, err := Initialize(context.Background(), dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nonexistent")
	})

	t.Run("stdio server without command fails validation", func(t *testing.T) {
		dir := writeConfigFile(t, `
tool_servers:
  broken:
    transport:
      type: stdio
`)
		_, err := Initialize(context.Background(), dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "transport.command")
	})

	t.Run("profile without role prompt fails validation", func(t *testing.T) {
		dir := writeConfigFile(t, `
agent_profiles:
  broken:
    allowed_tool_servers: []
`)
		_, err := Initialize(context.Background(), dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "role_prompt")
	})
}

func TestPlannerEnvOverrides(t *testing.T) {
	dir := writeConfigFile(t, `
planner:
  max_steps: 10
`)

	t.Run("env overrides YAML", func(t *testing.T) {
		t.Setenv("PLANNER_LLM_TIMEOUT_SECONDS", "30")
		t.Setenv("PLANNER_TOOL_TIMEOUT_SECONDS", "20")
		t.Setenv("PROMPT_INJECTION_FILTER_ENABLED", "false")

		cfg, err := Initialize(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, 10, cfg.Planner.MaxSteps)
		assert.Equal(t, 30*time.Second, cfg.Planner.LLMTimeout)
		assert.Equal(t, 20*time.Second, cfg.Planner.ToolTimeout)
		assert.False(t, cfg.Planner.InjectionFilterEnabled)
	})

	t.Run("zero disables the timeouts", func(t *testing.T) {
		t.Setenv("PLANNER_LLM_TIMEOUT_SECONDS", "0")
		t.Setenv("PLANNER_TOOL_TIMEOUT_SECONDS", "0")

		cfg, err := Initialize(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, time.Duration(0), cfg.Planner.LLMTimeout)
		assert.Equal(t, time.Duration(0), cfg.Planner.ToolTimeout)
	})

	t.Run("invalid env value is rejected", func(t *testing.T) {
		t.Setenv("PLANNER_LLM_TIMEOUT_SECONDS", "zero")

		_, err := Initialize(context.Background(), dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidValue)
	})

	t.Run("negative timeout is rejected", func(t *testing.T) {
		t.Setenv("PLANNER_TOOL_TIMEOUT_SECONDS", "-5")

		_, err := Initialize(context.Background(), dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidValue)
	})
}

func TestLoadWebhookConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("WEBHOOK_SECRET", "")
		t.Setenv("WEBHOOK_REQUIRE_AUTH", "")
		t.Setenv("WEBHOOK_DEDUP_TTL_SECONDS", "")
		t.Setenv("WEBHOOK_MAX_CONCURRENT_RUNS", "")

		cfg, err := LoadWebhookConfigFromEnv()
		require.NoError(t, err)
		assert.True(t, cfg.RequireAuth)
		assert.Equal(t, 300*time.Second, cfg.DedupTTL)
		assert.Equal(t, 5, cfg.MaxConcurrentRuns)
	})

	t.Run("custom values", func(t *testing.T) {
		t.Setenv("WEBHOOK_SECRET", "s3cret")
		t.Setenv("WEBHOOK_REQUIRE_AUTH", "false")
		t.Setenv("WEBHOOK_DEDUP_TTL_SECONDS", "60")
		t.Setenv("WEBHOOK_MAX_CONCURRENT_RUNS", "10")

		cfg, err := LoadWebhookConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "s3cret", cfg.Secret)
		assert.False(t, cfg.RequireAuth)
		assert.Equal(t, 60*time.Second, cfg.DedupTTL)
		assert.Equal(t, 10, cfg.MaxConcurrentRuns)
	})

	t.Run("invalid TTL", func(t *testing.T) {
		t.Setenv("WEBHOOK_DEDUP_TTL_SECONDS", "-1")

		_, err := LoadWebhookConfigFromEnv()
		require.Error(t, err)
	})
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("EXPAND_TEST_VALUE", "hello")

	t.Run("expands template vars", func(t *testing.T) {
		out := ExpandEnv([]byte("value: {{.EXPAND_TEST_VALUE}}"))
		assert.Equal(t, "value: hello", string(out))
	})

	t.Run("leaves dollar signs alone", func(t *testing.T) {
		in := []byte(`pattern: "^secret.*$"`)
		assert.Equal(t, in, ExpandEnv(in))
	})

	t.Run("missing vars expand to empty", func(t *testing.T) {
		out := ExpandEnv([]byte("value: {{.NO_SUCH_VAR_SET}}"))
		assert.Equal(t, "value: ", string(out))
	})
}
