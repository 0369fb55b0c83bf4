package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/ranger/ent"
	"github.com/codeready-toolchain/ranger/ent/run"
	"github.com/codeready-toolchain/ranger/pkg/models"
)

// RunService manages run lifecycle and the durable step history.
type RunService struct {
	client *ent.Client
}

// NewRunService creates a new RunService
func NewRunService(client *ent.Client) *RunService {
	return &RunService{client: client}
}

// RunListResponse contains a paginated run list
type RunListResponse struct {
	Runs       []*ent.Run `json:"runs"`
	TotalCount int        `json:"total_count"`
	Limit      int        `json:"limit"`
	Offset     int        `json:"offset"`
}

// nonTerminalStatuses are the statuses a run can still transition out of.
var nonTerminalStatuses = []run.Status{
	run.StatusPending,
	run.StatusRunning,
	run.StatusAwaitingApproval,
}

// CreateRun creates a new run in pending status.
func (s *RunService) CreateRun(httpCtx context.Context, req models.CreateRunRequest) (*ent.Run, error) {
	if req.RunID == "" {
		return nil, NewValidationError("run_id", "required")
	}
	if req.Goal == "" {
		return nil, NewValidationError("goal", "required")
	}
	if req.AgentProfileID == "" {
		return nil, NewValidationError("agent_profile_id", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Run.Create().
		SetID(req.RunID).
		SetGoal(req.Goal).
		SetAgentProfileID(req.AgentProfileID).
		SetStatus(run.StatusPending).
		SetStreamTokens(req.StreamTokens)

	if req.Context != nil {
		builder.SetContext(req.Context)
	}
	if req.Author != "" {
		builder.SetAuthor(req.Author)
	}
	if req.AlertFingerprint != "" {
		builder.SetAlertFingerprint(req.AlertFingerprint)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create run: %w", err)
	}

	return created, nil
}

// GetRun retrieves a run by ID
func (s *RunService) GetRun(ctx context.Context, runID string) (*ent.Run, error) {
	r, err := s.client.Run.Query().Where(run.IDEQ(runID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return r, nil
}

// ListRuns lists runs with filtering and pagination, newest first
func (s *RunService) ListRuns(ctx context.Context, filters models.RunFilters) (*RunListResponse, error) {
	query := s.client.Run.Query()

	if filters.Status != "" {
		query = query.Where(run.StatusEQ(run.Status(filters.Status)))
	}
	if filters.ProfileID != "" {
		query = query.Where(run.AgentProfileIDEQ(filters.ProfileID))
	}
	if filters.Author != "" {
		query = query.Where(run.AuthorEQ(filters.Author))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(run.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(run.CreatedAtLT(*filters.CreatedBefore))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count runs: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	runs, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(run.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	return &RunListResponse{
		Runs:       runs,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// AppendStep durably records a completed step. The step, the optional tool
// call record, and the checkpoint advance are written in one update so a
// crash can never leave a step without its checkpoint.
func (s *RunService) AppendStep(ctx context.Context, runID string, step models.StepRecord, toolCall *models.ToolCallRecord) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	r, err := s.GetRun(writeCtx, runID)
	if err != nil {
		return err
	}

	if len(r.Steps) > 0 && r.Steps[len(r.Steps)-1].StepIndex >= step.StepIndex {
		return fmt.Errorf("step index %d not after last recorded step %d: %w",
			step.StepIndex, r.Steps[len(r.Steps)-1].StepIndex, ErrConcurrentModification)
	}

	update := s.client.Run.UpdateOneID(runID).
		SetSteps(append(r.Steps, step)).
		SetCheckpointStepIndex(step.StepIndex)

	if toolCall != nil {
		update = update.SetToolCalls(append(r.ToolCalls, *toolCall))
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to append step: %w", err)
	}

	return nil
}

// MarkRunning transitions a pending run to running. Used by the in-process
// execution path; queue workers claim through ClaimNextPendingRun instead.
func (s *RunService) MarkRunning(ctx context.Context, runID, podID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Run.Update().
		Where(run.IDEQ(runID), run.StatusEQ(run.StatusPending)).
		SetStatus(run.StatusRunning).
		SetPodID(podID).
		SetLastHeartbeatAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to mark run running: %w", err)
	}
	if count == 0 {
		return ErrConcurrentModification
	}
	return nil
}

// SetAwaitingApproval pauses a running run on a tool call that requires
// human approval.
func (s *RunService) SetAwaitingApproval(ctx context.Context, runID string, pending *models.PendingToolCall) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Run.Update().
		Where(run.IDEQ(runID), run.StatusEQ(run.StatusRunning)).
		SetStatus(run.StatusAwaitingApproval).
		SetPendingToolCall(pending).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to set awaiting approval: %w", err)
	}
	if count == 0 {
		return ErrConcurrentModification
	}
	return nil
}

// ResumeFromApproval transitions awaiting_approval back to pending so a
// worker can pick the run up again, clearing the held tool call. The
// approved call (possibly with modified arguments) is returned for the
// resuming planner via the run's step history.
func (s *RunService) ResumeFromApproval(ctx context.Context, runID string, approvedArgs map[string]any) (*models.PendingToolCall, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	r, err := s.GetRun(writeCtx, runID)
	if err != nil {
		return nil, err
	}
	if r.Status != run.StatusAwaitingApproval || r.PendingToolCall == nil {
		return nil, ErrConcurrentModification
	}

	approved := *r.PendingToolCall
	if approvedArgs != nil {
		approved.Arguments = approvedArgs
	}

	count, err := s.client.Run.Update().
		Where(run.IDEQ(runID), run.StatusEQ(run.StatusAwaitingApproval)).
		SetStatus(run.StatusPending).
		ClearPendingToolCall().
		ClearPodID().
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to resume from approval: %w", err)
	}
	if count == 0 {
		return nil, ErrConcurrentModification
	}

	return &approved, nil
}

// CompleteRun transitions a run to completed with its final answer.
// No-op (ErrConcurrentModification) if the run reached a terminal status
// through another path, e.g. cancellation.
func (s *RunService) CompleteRun(ctx context.Context, runID, answer string) error {
	return s.finishRun(runID, run.StatusCompleted, answer, "")
}

// FailRun transitions a run to failed with an error message.
func (s *RunService) FailRun(ctx context.Context, runID, errorMessage string) error {
	return s.finishRun(runID, run.StatusFailed, "", errorMessage)
}

func (s *RunService) finishRun(runID string, status run.Status, answer, errorMessage string) error {
	// Background context: terminal writes must land even when the
	// caller's context is already cancelled.
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Run.Update().
		Where(run.IDEQ(runID), run.StatusIn(nonTerminalStatuses...)).
		SetStatus(status).
		SetCompletedAt(time.Now()).
		ClearPendingToolCall()

	// Completed runs always carry an answer, even an empty one. The
	// answer column being non-null is what marks a run as completed
	// rather than merely terminal.
	if status == run.StatusCompleted {
		update = update.SetAnswer(answer)
	}
	if errorMessage != "" {
		update = update.SetErrorMessage(errorMessage)
	}

	count, err := update.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	if count == 0 {
		return ErrConcurrentModification
	}
	return nil
}

// CancelRun marks a non-terminal run cancelled. Cancelling an already
// terminal run is an idempotent no-op.
func (s *RunService) CancelRun(ctx context.Context, runID string) (*ent.Run, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.Run.Update().
		Where(run.IDEQ(runID), run.StatusIn(nonTerminalStatuses...)).
		SetStatus(run.StatusCancelled).
		SetCompletedAt(time.Now()).
		ClearPendingToolCall().
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel run: %w", err)
	}

	return s.GetRun(writeCtx, runID)
}

// Heartbeat refreshes the executing worker's liveness marker.
func (s *RunService) Heartbeat(ctx context.Context, runID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Run.UpdateOneID(runID).
		SetLastHeartbeatAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to heartbeat run: %w", err)
	}
	return nil
}

// ClaimNextPendingRun atomically claims the oldest pending run for this pod
// using FOR UPDATE SKIP LOCKED so concurrent workers never double-claim.
func (s *RunService) ClaimNextPendingRun(ctx context.Context, podID string) (*ent.Run, error) {
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	claimed, err := tx.Run.Query().
		Where(run.StatusEQ(run.StatusPending)).
		Order(ent.Asc(run.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil // No pending runs
		}
		return nil, fmt.Errorf("failed to query pending run: %w", err)
	}

	claimed, err = tx.Run.UpdateOne(claimed).
		SetStatus(run.StatusRunning).
		SetPodID(podID).
		SetLastHeartbeatAt(time.Now()).
		Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return claimed, nil
}

// FindOrphanedRuns finds running runs whose worker heartbeat went stale.
func (s *RunService) FindOrphanedRuns(ctx context.Context, staleAfter time.Duration) ([]*ent.Run, error) {
	threshold := time.Now().Add(-staleAfter)

	runs, err := s.client.Run.Query().
		Where(
			run.StatusEQ(run.StatusRunning),
			run.LastHeartbeatAtNotNil(),
			run.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find orphaned runs: %w", err)
	}

	return runs, nil
}

// FailStartupOrphans fails runs this pod left running before a restart.
// Called once at startup, before the worker pool begins claiming.
func (s *RunService) FailStartupOrphans(ctx context.Context, podID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Run.Update().
		Where(
			run.StatusEQ(run.StatusRunning),
			run.PodIDEQ(podID),
		).
		SetStatus(run.StatusFailed).
		SetErrorMessage("process restarted while run was executing").
		SetCompletedAt(time.Now()).
		ClearPendingToolCall().
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to fail startup orphans: %w", err)
	}

	return count, nil
}

// CountActiveAlertRuns counts non-terminal runs that were triggered by
// webhook alerts. Backs the webhook concurrency cap.
func (s *RunService) CountActiveAlertRuns(ctx context.Context) (int, error) {
	count, err := s.client.Run.Query().
		Where(
			run.AlertFingerprintNotNil(),
			run.StatusIn(nonTerminalStatuses...),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count active alert runs: %w", err)
	}
	return count, nil
}

// SearchRuns performs full-text search on goals and answers
func (s *RunService) SearchRuns(ctx context.Context, query string, limit int) ([]*ent.Run, error) {
	if limit <= 0 {
		limit = 20
	}

	runs, err := s.client.Run.Query().
		Where(func(sel *sql.Selector) {
			sel.Where(sql.Or(
				sql.ExprP("to_tsvector('english', goal) @@ plainto_tsquery($1)", query),
				sql.ExprP("to_tsvector('english', COALESCE(answer, '')) @@ plainto_tsquery($2)", query),
			))
		}).
		Limit(limit).
		Order(ent.Desc(run.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search runs: %w", err)
	}

	return runs, nil
}
