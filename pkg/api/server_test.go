package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/ranger/pkg/config"
	"github.com/codeready-toolchain/ranger/pkg/events"
	"github.com/codeready-toolchain/ranger/pkg/llm"
	"github.com/codeready-toolchain/ranger/pkg/models"
	"github.com/codeready-toolchain/ranger/pkg/planner"
	"github.com/codeready-toolchain/ranger/pkg/sanitize"
	"github.com/codeready-toolchain/ranger/pkg/services"
	testdb "github.com/codeready-toolchain/ranger/test/database"
)

// nopLLM satisfies the LLM client interface for wiring; API tests never
// reach the model.
type nopLLM struct{}

func (nopLLM) Generate(ctx context.Context, input *llm.GenerateInput) (<-chan llm.Chunk, error) {
	ch := make(chan llm.Chunk)
	close(ch)
	return ch, nil
}

func (nopLLM) Close() error { return nil }

// staticExecutor serves fixed tools and echoes calls back as successes.
type staticExecutor struct{}

func (staticExecutor) Execute(ctx context.Context, call planner.ToolCall) (*planner.ToolResult, error) {
	return &planner.ToolResult{Name: call.Name, Content: "ok"}, nil
}

func (staticExecutor) ListTools(ctx context.Context) ([]planner.ToolDefinition, error) {
	return []planner.ToolDefinition{{Name: "net.ping", Description: "Ping a host"}}, nil
}

type noopScheduler struct{}

func (noopScheduler) Schedule(ctx context.Context, runID string) {}

type apiFixture struct {
	server *Server
	runs   *services.RunService
	events *services.EventService
	cfg    *config.Config
}

func testConfig() *config.Config {
	enabled := false
	return &config.Config{
		Defaults: &config.Defaults{AgentProfile: "sre"},
		Planner:  config.DefaultPlannerConfig(),
		Webhook: &config.WebhookConfig{
			Secret:            "test-secret",
			RequireAuth:       true,
			DedupTTL:          300 * time.Second,
			MaxConcurrentRuns: 5,
		},
		ProfileRegistry: config.NewAgentProfileRegistry(map[string]*config.AgentProfileConfig{
			"sre": {
				RolePrompt:            "You are an SRE assistant.",
				AllowedToolServers:    []string{"*"},
				ApprovalRequiredTools: []string{"restart"},
			},
			"retired": {
				RolePrompt:         "Old profile.",
				AllowedToolServers: []string{"*"},
				Enabled:            &enabled,
			},
		}),
		ToolServerRegistry: config.NewToolServerRegistry(nil),
	}
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	runService := services.NewRunService(client.Client)
	eventService := services.NewEventService(client.Client)
	broker := events.NewBroker()
	pub := events.NewPublisher(eventService, broker)
	streamer := events.NewStreamer(runService, eventService, broker)
	cfg := testConfig()

	p := planner.NewPlanner(runService, pub, nopLLM{}, cfg,
		planner.NewPromptBuilder(sanitize.NewFilter(true)),
		func(profile *config.AgentProfileConfig) planner.ToolExecutor { return staticExecutor{} },
		"test-pod")
	gate := planner.NewGate(p, noopScheduler{})

	server := NewServer(cfg, client, runService, streamer, pub, gate, nil, nil)
	return &apiFixture{server: server, runs: runService, events: eventService, cfg: cfg}
}

func (fx *apiFixture) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	fx.server.Echo().ServeHTTP(rec, req)
	return rec
}

func (fx *apiFixture) createRun(t *testing.T) string {
	t.Helper()
	runID := uuid.New().String()
	_, err := fx.runs.CreateRun(context.Background(), models.CreateRunRequest{
		RunID:          runID,
		Goal:           "why is checkout slow?",
		AgentProfileID: "sre",
	})
	require.NoError(t, err)
	return runID
}

func TestSubmitRun(t *testing.T) {
	fx := newAPIFixture(t)

	rec := fx.do(http.MethodPost, "/api/v1/run",
		`{"goal": "check disk usage on db-1", "agent_profile_id": "sre", "stream_tokens": true}`,
		map[string]string{"X-Forwarded-User": "alice@example.com"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp SubmitRunResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RunID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "sre", resp.AgentProfileID)
	assert.False(t, resp.CreatedAt.IsZero())

	run, err := fx.runs.GetRun(context.Background(), resp.RunID)
	require.NoError(t, err)
	assert.Equal(t, "check disk usage on db-1", run.Goal)
	assert.True(t, run.StreamTokens)
	require.NotNil(t, run.Author)
	assert.Equal(t, "alice@example.com", *run.Author)
}

func TestSubmitRun_Validation(t *testing.T) {
	fx := newAPIFixture(t)

	tests := map[string]struct {
		body string
		want int
	}{
		"missing goal":     {`{"agent_profile_id": "sre"}`, http.StatusBadRequest},
		"missing profile":  {`{"goal": "help"}`, http.StatusBadRequest},
		"unknown profile":  {`{"goal": "help", "agent_profile_id": "nope"}`, http.StatusBadRequest},
		"disabled profile": {`{"goal": "help", "agent_profile_id": "retired"}`, http.StatusBadRequest},
		"malformed json":   {`{goal}`, http.StatusBadRequest},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			rec := fx.do(http.MethodPost, "/api/v1/run", tc.body, nil)
			assert.Equal(t, tc.want, rec.Code, rec.Body.String())
		})
	}
}

func TestGetRun(t *testing.T) {
	fx := newAPIFixture(t)
	runID := fx.createRun(t)

	rec := fx.do(http.MethodGet, "/api/v1/runs/"+runID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RunResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, runID, resp.RunID)
	assert.Equal(t, "pending", resp.Status)
	assert.NotNil(t, resp.Steps)
	assert.NotNil(t, resp.ToolCalls)
	assert.Contains(t, rec.Body.String(), `"tool_calls":[]`)

	rec = fx.do(http.MethodGet, "/api/v1/runs/"+uuid.New().String(), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListRuns(t *testing.T) {
	fx := newAPIFixture(t)
	fx.createRun(t)
	completed := fx.createRun(t)
	require.NoError(t, fx.runs.MarkRunning(context.Background(), completed, "pod-1"))
	require.NoError(t, fx.runs.CompleteRun(context.Background(), completed, "done"))

	rec := fx.do(http.MethodGet, "/api/v1/runs", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp RunListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.TotalCount)

	rec = fx.do(http.MethodGet, "/api/v1/runs?status=completed", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.TotalCount)

	rec = fx.do(http.MethodGet, "/api/v1/runs?status=bogus", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelRun(t *testing.T) {
	fx := newAPIFixture(t)
	runID := fx.createRun(t)

	rec := fx.do(http.MethodPost, "/api/v1/runs/"+runID+"/cancel", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp CancelResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Status)

	// Cancelling again is an idempotent no-op.
	rec = fx.do(http.MethodPost, "/api/v1/runs/"+runID+"/cancel", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Status)
	assert.Contains(t, resp.Message, "already")

	// Exactly one cancel status event was published.
	evs, err := fx.events.GetEventsSince(context.Background(), runID, 0, 10)
	require.NoError(t, err)
	require.Len(t, evs, 1)
	assert.Equal(t, "status", evs[0].EventType)
	assert.Equal(t, "cancelled", evs[0].Payload["status"])
}

func TestListProfiles(t *testing.T) {
	fx := newAPIFixture(t)

	rec := fx.do(http.MethodGet, "/api/v1/agent-profiles", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []*ProfileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1, "disabled profiles are omitted")
	assert.Equal(t, "sre", resp[0].ProfileID)
	assert.True(t, resp[0].Enabled)
	assert.Equal(t, fx.cfg.Planner.MaxSteps, resp[0].MaxSteps)
}

func TestHealth(t *testing.T) {
	fx := newAPIFixture(t)

	rec := fx.do(http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "healthy", resp.Checks["database"].Status)
}

func TestSecurityHeaders(t *testing.T) {
	fx := newAPIFixture(t)

	rec := fx.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestShutdownRejectsNewRequests(t *testing.T) {
	fx := newAPIFixture(t)

	require.NoError(t, fx.server.Shutdown(context.Background()))
	rec := fx.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "5", rec.Header().Get("Retry-After"))
}
