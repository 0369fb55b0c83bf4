package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	entrun "github.com/codeready-toolchain/ranger/ent/run"
	"github.com/codeready-toolchain/ranger/pkg/events"
	"github.com/codeready-toolchain/ranger/pkg/models"
	"github.com/codeready-toolchain/ranger/pkg/services"
)

// Scheduler hands a run back to the execution layer after the approval gate
// releases it. The queue worker pool and the in-process runner both satisfy
// this.
type Scheduler interface {
	Schedule(ctx context.Context, runID string)
}

// ApprovalResult reports what an approve or reject call actually did.
// Calls against runs that are not awaiting approval are idempotent no-ops.
type ApprovalResult struct {
	Applied bool   `json:"applied"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Gate resolves held tool calls. Approve executes the held call while the
// run is still in awaiting_approval, so no worker can claim it concurrently;
// only after the step is durable does the run go back to pending.
type Gate struct {
	planner   *Planner
	scheduler Scheduler
	logger    *slog.Logger

	// Per-run serialization of approval decisions. The second of two
	// concurrent decisions revalidates the run status under the lock and
	// becomes a no-op instead of executing the held call again.
	decisionMu sync.Map // runID -> *sync.Mutex
}

// NewGate creates a Gate sharing the planner's store, publisher, and
// executors.
func NewGate(planner *Planner, scheduler Scheduler) *Gate {
	return &Gate{
		planner:   planner,
		scheduler: scheduler,
		logger:    slog.Default(),
	}
}

// lockRun serializes approval decisions for one run within this process.
// Decisions racing from another replica are caught later by AppendStep's
// step-index check, which refuses a second step at the pending index.
func (g *Gate) lockRun(runID string) func() {
	muI, _ := g.decisionMu.LoadOrStore(runID, &sync.Mutex{})
	mu := muI.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// Approve executes a held tool call and resumes the run. modifiedArgs, when
// non-nil, replaces the arguments the model proposed; the audit event records
// the substitution.
func (g *Gate) Approve(ctx context.Context, runID, approverID string, modifiedArgs map[string]any) (*ApprovalResult, error) {
	unlock := g.lockRun(runID)
	defer unlock()

	run, err := g.planner.runs.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run.Status != entrun.StatusAwaitingApproval || run.PendingToolCall == nil {
		return &ApprovalResult{
			Applied: false,
			Status:  string(run.Status),
			Message: fmt.Sprintf("run is %s, not awaiting approval; nothing to approve", run.Status),
		}, nil
	}

	pending := run.PendingToolCall
	args := pending.Arguments
	if modifiedArgs != nil {
		args = modifiedArgs
	}

	profile, err := g.planner.cfg.GetProfile(run.AgentProfileID)
	if err != nil {
		return nil, fmt.Errorf("unknown agent profile %q: %w", run.AgentProfileID, err)
	}
	executor := g.planner.executors(profile)

	// The run stays in awaiting_approval while the tool executes, so a
	// crash here re-presents the pending call instead of losing it.
	result := g.planner.invokeTool(ctx, executor, Action{
		Kind:      ActionToolCall,
		ServerID:  pending.ServerID,
		ToolName:  pending.ToolName,
		Arguments: args,
	})
	summary := Truncate(result.Content, summaryMaxLen)

	record := &models.ToolCallRecord{
		ServerID:      pending.ServerID,
		ToolName:      pending.ToolName,
		Arguments:     args,
		ResultSummary: summary,
		IsError:       result.IsError,
	}
	step := models.StepRecord{
		StepIndex:   pending.StepIndex,
		Kind:        models.StepKindToolCall,
		ToolCall:    record,
		RawResponse: "(approved)",
	}
	if err := g.planner.runs.AppendStep(ctx, runID, step, record); err != nil {
		return nil, fmt.Errorf("failed to persist approved step: %w", err)
	}
	if err := g.planner.pub.PublishStep(ctx, runID, step); err != nil {
		g.logger.Warn("Failed to publish approved step event", "run_id", runID, "error", err)
	}
	if err := g.planner.pub.PublishAudit(ctx, runID, events.AuditActionToolApproved,
		pending.ServerID, pending.ToolName, approverID, modifiedArgs != nil); err != nil {
		g.logger.Warn("Failed to publish audit event", "run_id", runID, "error", err)
	}

	if _, err := g.planner.runs.ResumeFromApproval(ctx, runID, args); err != nil {
		if errors.Is(err, services.ErrConcurrentModification) {
			// Cancelled between execution and resume; the step stays
			// recorded, the run stays terminal.
			current, gerr := g.planner.runs.GetRun(ctx, runID)
			if gerr != nil {
				return nil, gerr
			}
			return &ApprovalResult{
				Applied: true,
				Status:  string(current.Status),
				Message: "tool executed but run reached a terminal status before resuming",
			}, nil
		}
		return nil, err
	}

	g.logger.Info("Tool call approved",
		"run_id", runID, "server", pending.ServerID, "tool", pending.ToolName,
		"approver", approverID, "arguments_modified", modifiedArgs != nil)

	g.scheduler.Schedule(ctx, runID)
	return &ApprovalResult{Applied: true, Status: string(entrun.StatusPending)}, nil
}

// Reject fails a run that is awaiting approval. Rejecting a run in any other
// status is an idempotent no-op.
func (g *Gate) Reject(ctx context.Context, runID, approverID string) (*ApprovalResult, error) {
	unlock := g.lockRun(runID)
	defer unlock()

	run, err := g.planner.runs.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run.Status != entrun.StatusAwaitingApproval || run.PendingToolCall == nil {
		return &ApprovalResult{
			Applied: false,
			Status:  string(run.Status),
			Message: fmt.Sprintf("run is %s, not awaiting approval; nothing to reject", run.Status),
		}, nil
	}

	pending := run.PendingToolCall
	if err := g.planner.runs.FailRun(ctx, runID, "Tool call rejected by user"); err != nil {
		if errors.Is(err, services.ErrConcurrentModification) {
			current, gerr := g.planner.runs.GetRun(ctx, runID)
			if gerr != nil {
				return nil, gerr
			}
			return &ApprovalResult{Applied: false, Status: string(current.Status)}, nil
		}
		return nil, err
	}

	if err := g.planner.pub.PublishAudit(ctx, runID, events.AuditActionToolRejected,
		pending.ServerID, pending.ToolName, approverID, false); err != nil {
		g.logger.Warn("Failed to publish audit event", "run_id", runID, "error", err)
	}
	g.planner.publishStatus(ctx, runID, string(entrun.StatusFailed), nil, "Tool call rejected by user")

	g.logger.Info("Tool call rejected",
		"run_id", runID, "server", pending.ServerID, "tool", pending.ToolName, "approver", approverID)

	return &ApprovalResult{Applied: true, Status: string(entrun.StatusFailed)}, nil
}
