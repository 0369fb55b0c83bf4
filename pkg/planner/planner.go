package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/codeready-toolchain/ranger/ent"
	entrun "github.com/codeready-toolchain/ranger/ent/run"
	"github.com/codeready-toolchain/ranger/pkg/config"
	"github.com/codeready-toolchain/ranger/pkg/events"
	"github.com/codeready-toolchain/ranger/pkg/llm"
	"github.com/codeready-toolchain/ranger/pkg/models"
	"github.com/codeready-toolchain/ranger/pkg/services"
)

// FallbackAnswer is written when the step cap is reached without an
// explicit finish action.
const FallbackAnswer = "Reached maximum steps without explicit finish."

// summaryMaxLen caps tool result summaries stored on steps and replayed in
// the conversation.
const summaryMaxLen = 300

// ExecutorFactory builds the tool executor for a profile. Production wires
// the tool-server multiplexer here; tests inject fakes.
type ExecutorFactory func(profile *config.AgentProfileConfig) ToolExecutor

// Planner drives the step loop for runs: prompt, parse, act, persist.
// One Planner instance serves all runs in the process; per-run state lives
// in the run record so any replica can resume any run.
type Planner struct {
	runs      *services.RunService
	pub       *events.Publisher
	llm       llm.Client
	cfg       *config.Config
	prompts   *PromptBuilder
	executors ExecutorFactory
	podID     string
	logger    *slog.Logger
}

// NewPlanner creates a Planner. podID identifies this process for run
// ownership when the planner claims a pending run itself.
func NewPlanner(
	runs *services.RunService,
	pub *events.Publisher,
	llmClient llm.Client,
	cfg *config.Config,
	prompts *PromptBuilder,
	executors ExecutorFactory,
	podID string,
) *Planner {
	return &Planner{
		runs:      runs,
		pub:       pub,
		llm:       llmClient,
		cfg:       cfg,
		prompts:   prompts,
		executors: executors,
		podID:     podID,
		logger:    slog.Default(),
	}
}

// Execute runs the planner loop for a run until it reaches a terminal
// status, pauses for approval, or the context is cancelled. It serves both
// fresh starts and resumes: the start step is derived from the persisted
// checkpoint, so a step whose append landed but whose caller crashed is
// never re-executed.
//
// Execute returns an error only for infrastructure failures the caller
// should surface (store unreachable, unknown run). Run-level failures are
// written to the run record and return nil.
func (p *Planner) Execute(ctx context.Context, runID string) error {
	run, err := p.runs.GetRun(ctx, runID)
	if err != nil {
		return fmt.Errorf("failed to load run %s: %w", runID, err)
	}

	profile, err := p.cfg.GetProfile(run.AgentProfileID)
	if err != nil {
		p.failRun(ctx, runID, fmt.Sprintf("unknown agent profile %q", run.AgentProfileID))
		return nil
	}

	executor := p.executors(profile)
	tools, err := executor.ListTools(ctx)
	if err != nil || len(tools) == 0 {
		p.failRun(ctx, runID, fmt.Sprintf("No MCP tools available for profile %q", run.AgentProfileID))
		return nil
	}

	if run.Status == entrun.StatusPending {
		if err := p.runs.MarkRunning(ctx, runID, p.podID); err != nil {
			if errors.Is(err, services.ErrConcurrentModification) {
				return nil // claimed elsewhere or already terminal
			}
			return fmt.Errorf("failed to mark run %s running: %w", runID, err)
		}
	}
	p.publishStatus(ctx, runID, string(entrun.StatusRunning), nil, "")

	conversation := rebuildConversation(run.Steps)
	startStep := nextStepIndex(run)
	maxSteps := p.cfg.MaxStepsForProfile(profile)

	for stepIndex := startStep; stepIndex <= maxSteps; stepIndex++ {
		// Cooperative cancellation: re-read status at the top of every
		// iteration. A terminal status written externally ends the loop
		// without any further writes.
		current, err := p.runs.GetRun(ctx, runID)
		if err != nil {
			return fmt.Errorf("failed to re-read run %s: %w", runID, err)
		}
		if models.IsTerminalStatus(string(current.Status)) {
			p.logger.Info("Run reached terminal state externally, stopping loop",
				"run_id", runID, "status", current.Status, "step", stepIndex)
			return nil
		}

		raw, err := p.callLLM(ctx, current, profile, tools, conversation)
		if err != nil {
			p.failRun(ctx, runID, fmt.Sprintf("LLM call failed at step %d: %s", stepIndex, err))
			return nil
		}

		action := ParseAction(raw)
		switch action.Kind {
		case ActionFinish:
			step := models.StepRecord{
				StepIndex:    stepIndex,
				Kind:         models.StepKindFinish,
				FinishAnswer: action.Answer,
				RawResponse:  raw,
			}
			if err := p.appendStep(ctx, runID, step, nil); err != nil {
				return nil
			}
			p.completeRun(ctx, runID, action.Answer)
			return nil

		case ActionToolCall:
			done, err := p.executeToolStep(ctx, runID, profile, executor, action, stepIndex, &conversation)
			if done || err != nil {
				return nil
			}

		case ActionUnknown:
			step := models.StepRecord{
				StepIndex:   stepIndex,
				Kind:        models.StepKindUnknown,
				RawResponse: raw,
			}
			if err := p.appendStep(ctx, runID, step, nil); err != nil {
				return nil
			}
			conversation = append(conversation,
				"Previous response could not be parsed. Reply with exactly one JSON object.")
		}
	}

	p.completeRun(ctx, runID, FallbackAnswer)
	return nil
}

// executeToolStep handles one tool_call action: the approval gate check,
// the actual call, persistence, and conversation bookkeeping. Returns
// done=true when the loop must stop (approval pause or store failure).
func (p *Planner) executeToolStep(
	ctx context.Context,
	runID string,
	profile *config.AgentProfileConfig,
	executor ToolExecutor,
	action Action,
	stepIndex int,
	conversation *[]string,
) (done bool, err error) {
	if profile.RequiresApproval(action.ServerID, action.ToolName) {
		pending := &models.PendingToolCall{
			ServerID:  action.ServerID,
			ToolName:  action.ToolName,
			Arguments: action.Arguments,
			StepIndex: stepIndex,
		}
		if err := p.runs.SetAwaitingApproval(ctx, runID, pending); err != nil {
			if !errors.Is(err, services.ErrConcurrentModification) {
				p.logger.Error("Failed to pause run for approval", "run_id", runID, "error", err)
			}
			return true, err
		}
		p.publishStatus(ctx, runID, string(entrun.StatusAwaitingApproval), pending, "")
		p.logger.Info("Run paused for tool approval",
			"run_id", runID, "server", action.ServerID, "tool", action.ToolName, "step", stepIndex)
		return true, nil
	}

	result := p.invokeTool(ctx, executor, action)
	summary := Truncate(result.Content, summaryMaxLen)

	record := &models.ToolCallRecord{
		ServerID:      action.ServerID,
		ToolName:      action.ToolName,
		Arguments:     action.Arguments,
		ResultSummary: summary,
		IsError:       result.IsError,
	}
	step := models.StepRecord{
		StepIndex:   stepIndex,
		Kind:        models.StepKindToolCall,
		ToolCall:    record,
		RawResponse: action.Raw,
	}
	if err := p.appendStep(ctx, runID, step, record); err != nil {
		return true, err
	}

	*conversation = append(*conversation,
		fmt.Sprintf("Tool call: %s/%s -> %s", action.ServerID, action.ToolName, summary))
	if result.IsError {
		*conversation = append(*conversation,
			"The last tool call failed. Consider a different tool or different arguments, or finish with what you know.")
	}
	return false, nil
}

// invokeTool runs the tool under the configured tool timeout. Timeouts and
// executor failures come back as error results so the loop keeps going.
func (p *Planner) invokeTool(ctx context.Context, executor ToolExecutor, action Action) *ToolResult {
	toolCtx := ctx
	var cancel context.CancelFunc
	if t := p.cfg.Planner.ToolTimeout; t > 0 {
		toolCtx, cancel = context.WithTimeout(ctx, t)
		defer cancel()
	}

	args, err := json.Marshal(action.Arguments)
	if err != nil {
		return &ToolResult{Content: fmt.Sprintf("Failed to encode tool arguments: %s", err), IsError: true}
	}

	name := action.ServerID + "." + action.ToolName
	result, err := executor.Execute(toolCtx, ToolCall{Name: name, Arguments: string(args)})
	if err != nil {
		if errors.Is(toolCtx.Err(), context.DeadlineExceeded) {
			return &ToolResult{
				Name:    name,
				Content: fmt.Sprintf("[TIMEOUT] tool call %s exceeded %s", name, p.cfg.Planner.ToolTimeout),
				IsError: true,
			}
		}
		return &ToolResult{Name: name, Content: fmt.Sprintf("Tool execution failed: %s", err), IsError: true}
	}
	if result.IsError && errors.Is(toolCtx.Err(), context.DeadlineExceeded) {
		result.Content = fmt.Sprintf("[TIMEOUT] %s", result.Content)
	}
	return result
}

// callLLM invokes the model under the configured LLM timeout, accumulating
// streamed text. Token deltas are forwarded to live subscribers when the
// run was started with stream_tokens.
func (p *Planner) callLLM(
	ctx context.Context,
	run *ent.Run,
	profile *config.AgentProfileConfig,
	tools []ToolDefinition,
	conversation []string,
) (string, error) {
	llmCtx := ctx
	var cancel context.CancelFunc
	if t := p.cfg.Planner.LLMTimeout; t > 0 {
		llmCtx, cancel = context.WithTimeout(ctx, t)
		defer cancel()
	}

	input := &llm.GenerateInput{
		RunID:    run.ID,
		Messages: p.prompts.BuildMessages(profile, tools, run.Goal, conversation),
	}
	ch, err := p.llm.Generate(llmCtx, input)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for {
		select {
		case <-llmCtx.Done():
			return "", llmCtx.Err()
		case chunk, ok := <-ch:
			if !ok {
				return sb.String(), nil
			}
			switch c := chunk.(type) {
			case *llm.TextChunk:
				sb.WriteString(c.Content)
				if run.StreamTokens {
					p.pub.PublishToken(run.ID, c.Content)
				}
			case *llm.ErrorChunk:
				return "", fmt.Errorf("%s", c.Message)
			}
		}
	}
}

// appendStep persists a step; any store failure fails the run.
func (p *Planner) appendStep(ctx context.Context, runID string, step models.StepRecord, toolCall *models.ToolCallRecord) error {
	if err := p.runs.AppendStep(ctx, runID, step, toolCall); err != nil {
		p.failRun(ctx, runID, fmt.Sprintf("failed to persist step %d: %s", step.StepIndex, err))
		return err
	}
	if err := p.pub.PublishStep(ctx, runID, step); err != nil {
		p.logger.Warn("Failed to publish step event", "run_id", runID, "step", step.StepIndex, "error", err)
	}
	return nil
}

// completeRun writes the terminal completed status plus its events.
// Losing the race to an external cancel is not an error.
func (p *Planner) completeRun(ctx context.Context, runID, answer string) {
	if err := p.runs.CompleteRun(ctx, runID, answer); err != nil {
		if !errors.Is(err, services.ErrConcurrentModification) {
			p.logger.Error("Failed to complete run", "run_id", runID, "error", err)
		}
		return
	}
	p.publishStatus(ctx, runID, string(entrun.StatusCompleted), nil, "")
	if err := p.pub.PublishAnswer(ctx, runID, answer); err != nil {
		p.logger.Warn("Failed to publish answer event", "run_id", runID, "error", err)
	}
}

// failRun writes the terminal failed status plus its event.
func (p *Planner) failRun(ctx context.Context, runID, errMsg string) {
	if err := p.runs.FailRun(ctx, runID, errMsg); err != nil {
		if !errors.Is(err, services.ErrConcurrentModification) {
			p.logger.Error("Failed to fail run", "run_id", runID, "error", err)
		}
		return
	}
	p.publishStatus(ctx, runID, string(entrun.StatusFailed), nil, errMsg)
}

func (p *Planner) publishStatus(ctx context.Context, runID, status string, pending *models.PendingToolCall, errMsg string) {
	if err := p.pub.PublishStatus(ctx, runID, status, pending, errMsg); err != nil {
		p.logger.Warn("Failed to publish status event",
			"run_id", runID, "status", status, "error", err)
	}
}

// nextStepIndex computes where the loop (re)starts. The max guards the
// crash window between appending a step and writing its checkpoint: the
// persisted step wins, it is never re-executed.
func nextStepIndex(run *ent.Run) int {
	next := len(run.Steps) + 1
	if run.CheckpointStepIndex != nil && *run.CheckpointStepIndex+1 > next {
		next = *run.CheckpointStepIndex + 1
	}
	return next
}

// rebuildConversation reconstructs the replayable conversation lines from
// persisted steps, mirroring what the loop appends as it goes.
func rebuildConversation(steps []models.StepRecord) []string {
	var lines []string
	for _, step := range steps {
		switch step.Kind {
		case models.StepKindToolCall:
			if step.ToolCall == nil {
				continue
			}
			lines = append(lines, fmt.Sprintf("Tool call: %s/%s -> %s",
				step.ToolCall.ServerID, step.ToolCall.ToolName, step.ToolCall.ResultSummary))
			if step.ToolCall.IsError {
				lines = append(lines,
					"The last tool call failed. Consider a different tool or different arguments, or finish with what you know.")
			}
		case models.StepKindUnknown:
			lines = append(lines,
				"Previous response could not be parsed. Reply with exactly one JSON object.")
		}
	}
	return lines
}

// Truncate caps s at max bytes, appending an ellipsis when cut.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
