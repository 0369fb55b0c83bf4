package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entrun "github.com/codeready-toolchain/ranger/ent/run"
	"github.com/codeready-toolchain/ranger/pkg/config"
	"github.com/codeready-toolchain/ranger/pkg/events"
	"github.com/codeready-toolchain/ranger/pkg/llm"
	"github.com/codeready-toolchain/ranger/pkg/models"
	"github.com/codeready-toolchain/ranger/pkg/sanitize"
	"github.com/codeready-toolchain/ranger/pkg/services"
	testdb "github.com/codeready-toolchain/ranger/test/database"
)

// fakeLLM replays canned responses, one per Generate call, each split into
// two text chunks to exercise accumulation. onCall runs before the response
// is produced.
type fakeLLM struct {
	mu        sync.Mutex
	responses []string
	calls     int
	err       error
	onCall    func(call int)
}

func (f *fakeLLM) Generate(ctx context.Context, input *llm.GenerateInput) (<-chan llm.Chunk, error) {
	f.mu.Lock()
	f.calls++
	call := f.calls
	var response string
	if len(f.responses) > 0 {
		response = f.responses[0]
		if len(f.responses) > 1 {
			f.responses = f.responses[1:]
		}
	}
	err := f.err
	onCall := f.onCall
	f.mu.Unlock()

	if onCall != nil {
		onCall(call)
	}
	if err != nil {
		return nil, err
	}

	ch := make(chan llm.Chunk, 3)
	mid := len(response) / 2
	ch <- &llm.TextChunk{Content: response[:mid]}
	ch <- &llm.TextChunk{Content: response[mid:]}
	close(ch)
	return ch, nil
}

func (f *fakeLLM) Close() error { return nil }

func (f *fakeLLM) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeExecutor serves a fixed tool list and canned results keyed by
// qualified tool name. A non-zero delay simulates a slow tool that honors
// context cancellation.
type fakeExecutor struct {
	mu      sync.Mutex
	tools   []ToolDefinition
	results map[string]*ToolResult
	delay   time.Duration
	calls   []ToolCall
}

func (f *fakeExecutor) Execute(ctx context.Context, call ToolCall) (*ToolResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	delay := f.delay
	result := f.results[call.Name]
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if result == nil {
		return &ToolResult{Name: call.Name, Content: "ok"}, nil
	}
	return result, nil
}

func (f *fakeExecutor) ListTools(ctx context.Context) ([]ToolDefinition, error) {
	return f.tools, nil
}

func (f *fakeExecutor) callNames() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	names := make([]string, len(f.calls))
	for i, c := range f.calls {
		names[i] = c.Name
	}
	return names
}

type plannerFixture struct {
	planner  *Planner
	runs     *services.RunService
	eventSvc *services.EventService
	llm      *fakeLLM
	executor *fakeExecutor
	cfg      *config.Config
	runID    string
}

func newPlannerFixture(t *testing.T, profile *config.AgentProfileConfig) *plannerFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	runService := services.NewRunService(client.Client)
	eventService := services.NewEventService(client.Client)
	pub := events.NewPublisher(eventService, events.NewBroker())

	cfg := &config.Config{
		Planner:         config.DefaultPlannerConfig(),
		ProfileRegistry: config.NewAgentProfileRegistry(map[string]*config.AgentProfileConfig{"sre": profile}),
	}
	cfg.Planner.MaxSteps = 5
	cfg.Planner.LLMTimeout = 5 * time.Second
	cfg.Planner.ToolTimeout = 5 * time.Second

	fakeLLMClient := &fakeLLM{}
	executor := &fakeExecutor{tools: []ToolDefinition{
		{Name: "net.ping", Description: "Ping a host"},
		{Name: "ansible.restart", Description: "Restart a service"},
	}}

	p := NewPlanner(runService, pub, fakeLLMClient, cfg,
		NewPromptBuilder(sanitize.NewFilter(true)),
		func(profile *config.AgentProfileConfig) ToolExecutor { return executor },
		"test-pod")

	runID := uuid.New().String()
	_, err := runService.CreateRun(context.Background(), models.CreateRunRequest{
		RunID:          runID,
		Goal:           "is 8.8.8.8 reachable?",
		AgentProfileID: "sre",
	})
	require.NoError(t, err)

	return &plannerFixture{
		planner:  p,
		runs:     runService,
		eventSvc: eventService,
		llm:      fakeLLMClient,
		executor: executor,
		cfg:      cfg,
		runID:    runID,
	}
}

func sreProfile() *config.AgentProfileConfig {
	return &config.AgentProfileConfig{
		RolePrompt:         "You are an SRE assistant.",
		AllowedToolServers: []string{"*"},
	}
}

func eventTypes(t *testing.T, svc *services.EventService, runID string) []string {
	t.Helper()
	evs, err := svc.GetEventsSince(context.Background(), runID, 0, 100)
	require.NoError(t, err)
	types := make([]string, len(evs))
	for i, ev := range evs {
		types[i] = ev.EventType
	}
	return types
}

func TestPlanner_ToolCallThenFinish(t *testing.T) {
	fx := newPlannerFixture(t, sreProfile())
	fx.llm.responses = []string{
		`{"action": "tool_call", "server_id": "net", "tool_name": "ping", "arguments": {"host": "8.8.8.8"}}`,
		`{"action": "finish", "answer": "Yes, 8.8.8.8 is reachable."}`,
	}
	fx.executor.results = map[string]*ToolResult{
		"net.ping": {Name: "net.ping", Content: "4 packets transmitted, 0% loss"},
	}

	require.NoError(t, fx.planner.Execute(context.Background(), fx.runID))

	run, err := fx.runs.GetRun(context.Background(), fx.runID)
	require.NoError(t, err)
	assert.Equal(t, entrun.StatusCompleted, run.Status)
	require.NotNil(t, run.Answer)
	assert.Equal(t, "Yes, 8.8.8.8 is reachable.", *run.Answer)

	require.Len(t, run.Steps, 2)
	assert.Equal(t, 1, run.Steps[0].StepIndex)
	assert.Equal(t, models.StepKindToolCall, run.Steps[0].Kind)
	assert.Equal(t, "4 packets transmitted, 0% loss", run.Steps[0].ToolCall.ResultSummary)
	assert.Equal(t, 2, run.Steps[1].StepIndex)
	assert.Equal(t, models.StepKindFinish, run.Steps[1].Kind)
	require.NotNil(t, run.CheckpointStepIndex)
	assert.Equal(t, 2, *run.CheckpointStepIndex)

	assert.Equal(t, []string{"status", "step", "step", "status", "answer"},
		eventTypes(t, fx.eventSvc, fx.runID))
	assert.Equal(t, []string{"net.ping"}, fx.executor.callNames())
}

func TestPlanner_ApprovalPausesRun(t *testing.T) {
	profile := sreProfile()
	profile.ApprovalRequiredTools = []string{"restart"}
	fx := newPlannerFixture(t, profile)
	fx.llm.responses = []string{
		`{"action": "tool_call", "server_id": "ansible", "tool_name": "restart", "arguments": {"service": "nginx"}}`,
	}

	require.NoError(t, fx.planner.Execute(context.Background(), fx.runID))

	run, err := fx.runs.GetRun(context.Background(), fx.runID)
	require.NoError(t, err)
	assert.Equal(t, entrun.StatusAwaitingApproval, run.Status)
	require.NotNil(t, run.PendingToolCall)
	assert.Equal(t, "ansible", run.PendingToolCall.ServerID)
	assert.Equal(t, "restart", run.PendingToolCall.ToolName)
	assert.Equal(t, 1, run.PendingToolCall.StepIndex)

	assert.Empty(t, run.Steps, "held call must not execute or record a step")
	assert.Empty(t, fx.executor.callNames())
	assert.Equal(t, []string{"status", "status"}, eventTypes(t, fx.eventSvc, fx.runID))
}

func TestPlanner_NoToolsFailsWithoutLLMCall(t *testing.T) {
	fx := newPlannerFixture(t, sreProfile())
	fx.executor.tools = nil

	require.NoError(t, fx.planner.Execute(context.Background(), fx.runID))

	run, err := fx.runs.GetRun(context.Background(), fx.runID)
	require.NoError(t, err)
	assert.Equal(t, entrun.StatusFailed, run.Status)
	require.NotNil(t, run.ErrorMessage)
	assert.Contains(t, *run.ErrorMessage, "No MCP tools available")
	assert.Zero(t, fx.llm.callCount())
}

func TestPlanner_UnparseableResponsesHitStepCap(t *testing.T) {
	fx := newPlannerFixture(t, sreProfile())
	fx.cfg.Planner.MaxSteps = 3
	fx.llm.responses = []string{"I am not sure what to do here."}

	require.NoError(t, fx.planner.Execute(context.Background(), fx.runID))

	run, err := fx.runs.GetRun(context.Background(), fx.runID)
	require.NoError(t, err)
	assert.Equal(t, entrun.StatusCompleted, run.Status)
	require.NotNil(t, run.Answer)
	assert.Equal(t, FallbackAnswer, *run.Answer)

	require.Len(t, run.Steps, 3)
	for i, step := range run.Steps {
		assert.Equal(t, i+1, step.StepIndex)
		assert.Equal(t, models.StepKindUnknown, step.Kind)
		assert.Equal(t, "I am not sure what to do here.", step.RawResponse)
	}
	assert.Equal(t, 3, fx.llm.callCount(), "the model is re-queried every iteration")
}

func TestPlanner_ToolErrorKeepsLooping(t *testing.T) {
	fx := newPlannerFixture(t, sreProfile())
	fx.llm.responses = []string{
		`{"action": "tool_call", "server_id": "net", "tool_name": "ping", "arguments": {"host": "db.internal"}}`,
		`{"action": "finish", "answer": "db.internal does not resolve."}`,
	}
	fx.executor.results = map[string]*ToolResult{
		"net.ping": {Name: "net.ping", Content: "unknown host db.internal", IsError: true},
	}

	require.NoError(t, fx.planner.Execute(context.Background(), fx.runID))

	run, err := fx.runs.GetRun(context.Background(), fx.runID)
	require.NoError(t, err)
	assert.Equal(t, entrun.StatusCompleted, run.Status)
	require.Len(t, run.Steps, 2)
	assert.True(t, run.Steps[0].ToolCall.IsError)
}

func TestPlanner_ToolTimeoutRecordsErrorStep(t *testing.T) {
	fx := newPlannerFixture(t, sreProfile())
	fx.cfg.Planner.ToolTimeout = 50 * time.Millisecond
	fx.executor.delay = 2 * time.Second
	fx.llm.responses = []string{
		`{"action": "tool_call", "server_id": "net", "tool_name": "ping", "arguments": {"host": "8.8.8.8"}}`,
		`{"action": "finish", "answer": "Could not verify, ping timed out."}`,
	}

	require.NoError(t, fx.planner.Execute(context.Background(), fx.runID))

	run, err := fx.runs.GetRun(context.Background(), fx.runID)
	require.NoError(t, err)
	assert.Equal(t, entrun.StatusCompleted, run.Status)
	require.Len(t, run.Steps, 2)
	require.NotNil(t, run.Steps[0].ToolCall)
	assert.True(t, run.Steps[0].ToolCall.IsError)
	assert.Contains(t, run.Steps[0].ToolCall.ResultSummary, "[TIMEOUT]")
}

func TestPlanner_LLMErrorFailsRun(t *testing.T) {
	fx := newPlannerFixture(t, sreProfile())
	fx.llm.err = fmt.Errorf("provider unavailable")

	require.NoError(t, fx.planner.Execute(context.Background(), fx.runID))

	run, err := fx.runs.GetRun(context.Background(), fx.runID)
	require.NoError(t, err)
	assert.Equal(t, entrun.StatusFailed, run.Status)
	require.NotNil(t, run.ErrorMessage)
	assert.Contains(t, *run.ErrorMessage, "provider unavailable")
}

func TestPlanner_CancellationStopsLoop(t *testing.T) {
	fx := newPlannerFixture(t, sreProfile())
	fx.llm.responses = []string{
		`{"action": "tool_call", "server_id": "net", "tool_name": "ping", "arguments": {"host": "8.8.8.8"}}`,
	}
	fx.llm.onCall = func(call int) {
		if call == 1 {
			_, err := fx.runs.CancelRun(context.Background(), fx.runID)
			require.NoError(t, err)
		}
	}

	require.NoError(t, fx.planner.Execute(context.Background(), fx.runID))

	run, err := fx.runs.GetRun(context.Background(), fx.runID)
	require.NoError(t, err)
	assert.Equal(t, entrun.StatusCancelled, run.Status, "terminal status is never overwritten")
	assert.Len(t, run.Steps, 1, "the in-flight step still lands before the loop notices")
	assert.Equal(t, 1, fx.llm.callCount())
}

func TestPlanner_ResumeSkipsPersistedSteps(t *testing.T) {
	fx := newPlannerFixture(t, sreProfile())
	ctx := context.Background()

	// Simulate a previous worker that executed step 1 and crashed.
	require.NoError(t, fx.runs.MarkRunning(ctx, fx.runID, "dead-pod"))
	record := &models.ToolCallRecord{ServerID: "net", ToolName: "ping", ResultSummary: "0% loss"}
	require.NoError(t, fx.runs.AppendStep(ctx, fx.runID, models.StepRecord{
		StepIndex: 1,
		Kind:      models.StepKindToolCall,
		ToolCall:  record,
	}, record))

	fx.llm.responses = []string{`{"action": "finish", "answer": "Reachable, confirmed by the earlier ping."}`}

	require.NoError(t, fx.planner.Execute(ctx, fx.runID))

	run, err := fx.runs.GetRun(ctx, fx.runID)
	require.NoError(t, err)
	assert.Equal(t, entrun.StatusCompleted, run.Status)
	require.Len(t, run.Steps, 2)
	assert.Equal(t, 2, run.Steps[1].StepIndex)
	assert.Empty(t, fx.executor.callNames(), "the persisted step is not re-executed")
	assert.Equal(t, 1, fx.llm.callCount())
}

func TestPlanner_ToolArgumentsPassedThrough(t *testing.T) {
	fx := newPlannerFixture(t, sreProfile())
	fx.llm.responses = []string{
		`{"action": "tool_call", "server_id": "net", "tool_name": "ping", "arguments": {"host": "10.0.0.1", "count": 2}}`,
		`{"action": "finish", "answer": "done"}`,
	}

	require.NoError(t, fx.planner.Execute(context.Background(), fx.runID))

	require.Len(t, fx.executor.calls, 1)
	var args map[string]any
	require.NoError(t, json.Unmarshal([]byte(fx.executor.calls[0].Arguments), &args))
	assert.Equal(t, "10.0.0.1", args["host"])
	assert.Equal(t, float64(2), args["count"])
}
