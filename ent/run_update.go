// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/ranger/ent/predicate"
	"github.com/codeready-toolchain/ranger/ent/run"
	"github.com/codeready-toolchain/ranger/ent/runevent"
	"github.com/codeready-toolchain/ranger/pkg/models"
)

// RunUpdate is the builder for updating Run entities.
type RunUpdate struct {
	config
	hooks    []Hook
	mutation *RunMutation
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdate) Where(ps ...predicate.Run) *RunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGoal sets the "goal" field.
func (_u *RunUpdate) SetGoal(v string) *RunUpdate {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *RunUpdate) SetNillableGoal(v *string) *RunUpdate {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// SetAgentProfileID sets the "agent_profile_id" field.
func (_u *RunUpdate) SetAgentProfileID(v string) *RunUpdate {
	_u.mutation.SetAgentProfileID(v)
	return _u
}

// SetNillableAgentProfileID sets the "agent_profile_id" field if the given value is not nil.
func (_u *RunUpdate) SetNillableAgentProfileID(v *string) *RunUpdate {
	if v != nil {
		_u.SetAgentProfileID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunUpdate) SetStatus(v run.Status) *RunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStatus(v *run.Status) *RunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *RunUpdate) SetContext(v map[string]string) *RunUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *RunUpdate) ClearContext() *RunUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetSteps sets the "steps" field.
func (_u *RunUpdate) SetSteps(v []models.StepRecord) *RunUpdate {
	_u.mutation.SetSteps(v)
	return _u
}

// AppendSteps appends value to the "steps" field.
func (_u *RunUpdate) AppendSteps(v []models.StepRecord) *RunUpdate {
	_u.mutation.AppendSteps(v)
	return _u
}

// ClearSteps clears the value of the "steps" field.
func (_u *RunUpdate) ClearSteps() *RunUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// SetToolCalls sets the "tool_calls" field.
func (_u *RunUpdate) SetToolCalls(v []models.ToolCallRecord) *RunUpdate {
	_u.mutation.SetToolCalls(v)
	return _u
}

// AppendToolCalls appends value to the "tool_calls" field.
func (_u *RunUpdate) AppendToolCalls(v []models.ToolCallRecord) *RunUpdate {
	_u.mutation.AppendToolCalls(v)
	return _u
}

// ClearToolCalls clears the value of the "tool_calls" field.
func (_u *RunUpdate) ClearToolCalls() *RunUpdate {
	_u.mutation.ClearToolCalls()
	return _u
}

// SetPendingToolCall sets the "pending_tool_call" field.
func (_u *RunUpdate) SetPendingToolCall(v *models.PendingToolCall) *RunUpdate {
	_u.mutation.SetPendingToolCall(v)
	return _u
}

// ClearPendingToolCall clears the value of the "pending_tool_call" field.
func (_u *RunUpdate) ClearPendingToolCall() *RunUpdate {
	_u.mutation.ClearPendingToolCall()
	return _u
}

// SetCheckpointStepIndex sets the "checkpoint_step_index" field.
func (_u *RunUpdate) SetCheckpointStepIndex(v int) *RunUpdate {
	_u.mutation.ResetCheckpointStepIndex()
	_u.mutation.SetCheckpointStepIndex(v)
	return _u
}

// SetNillableCheckpointStepIndex sets the "checkpoint_step_index" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCheckpointStepIndex(v *int) *RunUpdate {
	if v != nil {
		_u.SetCheckpointStepIndex(*v)
	}
	return _u
}

// AddCheckpointStepIndex adds value to the "checkpoint_step_index" field.
func (_u *RunUpdate) AddCheckpointStepIndex(v int) *RunUpdate {
	_u.mutation.AddCheckpointStepIndex(v)
	return _u
}

// ClearCheckpointStepIndex clears the value of the "checkpoint_step_index" field.
func (_u *RunUpdate) ClearCheckpointStepIndex() *RunUpdate {
	_u.mutation.ClearCheckpointStepIndex()
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *RunUpdate) SetAnswer(v string) *RunUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *RunUpdate) SetNillableAnswer(v *string) *RunUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// ClearAnswer clears the value of the "answer" field.
func (_u *RunUpdate) ClearAnswer() *RunUpdate {
	_u.mutation.ClearAnswer()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RunUpdate) SetErrorMessage(v string) *RunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RunUpdate) SetNillableErrorMessage(v *string) *RunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RunUpdate) ClearErrorMessage() *RunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStreamTokens sets the "stream_tokens" field.
func (_u *RunUpdate) SetStreamTokens(v bool) *RunUpdate {
	_u.mutation.SetStreamTokens(v)
	return _u
}

// SetNillableStreamTokens sets the "stream_tokens" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStreamTokens(v *bool) *RunUpdate {
	if v != nil {
		_u.SetStreamTokens(*v)
	}
	return _u
}

// SetAuthor sets the "author" field.
func (_u *RunUpdate) SetAuthor(v string) *RunUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *RunUpdate) SetNillableAuthor(v *string) *RunUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *RunUpdate) ClearAuthor() *RunUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// SetAlertFingerprint sets the "alert_fingerprint" field.
func (_u *RunUpdate) SetAlertFingerprint(v string) *RunUpdate {
	_u.mutation.SetAlertFingerprint(v)
	return _u
}

// SetNillableAlertFingerprint sets the "alert_fingerprint" field if the given value is not nil.
func (_u *RunUpdate) SetNillableAlertFingerprint(v *string) *RunUpdate {
	if v != nil {
		_u.SetAlertFingerprint(*v)
	}
	return _u
}

// ClearAlertFingerprint clears the value of the "alert_fingerprint" field.
func (_u *RunUpdate) ClearAlertFingerprint() *RunUpdate {
	_u.mutation.ClearAlertFingerprint()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *RunUpdate) SetPodID(v string) *RunUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *RunUpdate) SetNillablePodID(v *string) *RunUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *RunUpdate) ClearPodID() *RunUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *RunUpdate) SetLastHeartbeatAt(v time.Time) *RunUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableLastHeartbeatAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *RunUpdate) ClearLastHeartbeatAt() *RunUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RunUpdate) SetCreatedAt(v time.Time) *RunUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCreatedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RunUpdate) SetUpdatedAt(v time.Time) *RunUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RunUpdate) SetCompletedAt(v time.Time) *RunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCompletedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RunUpdate) ClearCompletedAt() *RunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddEventIDs adds the "events" edge to the RunEvent entity by IDs.
func (_u *RunUpdate) AddEventIDs(ids ...int) *RunUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the RunEvent entity.
func (_u *RunUpdate) AddEvents(v ...*RunEvent) *RunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdate) Mutation() *RunMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the RunEvent entity.
func (_u *RunUpdate) ClearEvents() *RunUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to RunEvent entities by IDs.
func (_u *RunUpdate) RemoveEventIDs(ids ...int) *RunUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to RunEvent entities.
func (_u *RunUpdate) RemoveEvents(v ...*RunEvent) *RunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RunUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := run.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(run.FieldGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentProfileID(); ok {
		_spec.SetField(run.FieldAgentProfileID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(run.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(run.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(run.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, run.FieldSteps, value)
		})
	}
	if _u.mutation.StepsCleared() {
		_spec.ClearField(run.FieldSteps, field.TypeJSON)
	}
	if value, ok := _u.mutation.ToolCalls(); ok {
		_spec.SetField(run.FieldToolCalls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolCalls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, run.FieldToolCalls, value)
		})
	}
	if _u.mutation.ToolCallsCleared() {
		_spec.ClearField(run.FieldToolCalls, field.TypeJSON)
	}
	if value, ok := _u.mutation.PendingToolCall(); ok {
		_spec.SetField(run.FieldPendingToolCall, field.TypeJSON, value)
	}
	if _u.mutation.PendingToolCallCleared() {
		_spec.ClearField(run.FieldPendingToolCall, field.TypeJSON)
	}
	if value, ok := _u.mutation.CheckpointStepIndex(); ok {
		_spec.SetField(run.FieldCheckpointStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCheckpointStepIndex(); ok {
		_spec.AddField(run.FieldCheckpointStepIndex, field.TypeInt, value)
	}
	if _u.mutation.CheckpointStepIndexCleared() {
		_spec.ClearField(run.FieldCheckpointStepIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(run.FieldAnswer, field.TypeString, value)
	}
	if _u.mutation.AnswerCleared() {
		_spec.ClearField(run.FieldAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(run.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(run.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StreamTokens(); ok {
		_spec.SetField(run.FieldStreamTokens, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(run.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(run.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.AlertFingerprint(); ok {
		_spec.SetField(run.FieldAlertFingerprint, field.TypeString, value)
	}
	if _u.mutation.AlertFingerprintCleared() {
		_spec.ClearField(run.FieldAlertFingerprint, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(run.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(run.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(run.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(run.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(run.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(run.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(run.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.EventsTable,
			Columns: []string{run.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.EventsTable,
			Columns: []string{run.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.EventsTable,
			Columns: []string{run.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunUpdateOne is the builder for updating a single Run entity.
type RunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunMutation
}

// SetGoal sets the "goal" field.
func (_u *RunUpdateOne) SetGoal(v string) *RunUpdateOne {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableGoal(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// SetAgentProfileID sets the "agent_profile_id" field.
func (_u *RunUpdateOne) SetAgentProfileID(v string) *RunUpdateOne {
	_u.mutation.SetAgentProfileID(v)
	return _u
}

// SetNillableAgentProfileID sets the "agent_profile_id" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableAgentProfileID(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetAgentProfileID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunUpdateOne) SetStatus(v run.Status) *RunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStatus(v *run.Status) *RunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *RunUpdateOne) SetContext(v map[string]string) *RunUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *RunUpdateOne) ClearContext() *RunUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetSteps sets the "steps" field.
func (_u *RunUpdateOne) SetSteps(v []models.StepRecord) *RunUpdateOne {
	_u.mutation.SetSteps(v)
	return _u
}

// AppendSteps appends value to the "steps" field.
func (_u *RunUpdateOne) AppendSteps(v []models.StepRecord) *RunUpdateOne {
	_u.mutation.AppendSteps(v)
	return _u
}

// ClearSteps clears the value of the "steps" field.
func (_u *RunUpdateOne) ClearSteps() *RunUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// SetToolCalls sets the "tool_calls" field.
func (_u *RunUpdateOne) SetToolCalls(v []models.ToolCallRecord) *RunUpdateOne {
	_u.mutation.SetToolCalls(v)
	return _u
}

// AppendToolCalls appends value to the "tool_calls" field.
func (_u *RunUpdateOne) AppendToolCalls(v []models.ToolCallRecord) *RunUpdateOne {
	_u.mutation.AppendToolCalls(v)
	return _u
}

// ClearToolCalls clears the value of the "tool_calls" field.
func (_u *RunUpdateOne) ClearToolCalls() *RunUpdateOne {
	_u.mutation.ClearToolCalls()
	return _u
}

// SetPendingToolCall sets the "pending_tool_call" field.
func (_u *RunUpdateOne) SetPendingToolCall(v *models.PendingToolCall) *RunUpdateOne {
	_u.mutation.SetPendingToolCall(v)
	return _u
}

// ClearPendingToolCall clears the value of the "pending_tool_call" field.
func (_u *RunUpdateOne) ClearPendingToolCall() *RunUpdateOne {
	_u.mutation.ClearPendingToolCall()
	return _u
}

// SetCheckpointStepIndex sets the "checkpoint_step_index" field.
func (_u *RunUpdateOne) SetCheckpointStepIndex(v int) *RunUpdateOne {
	_u.mutation.ResetCheckpointStepIndex()
	_u.mutation.SetCheckpointStepIndex(v)
	return _u
}

// SetNillableCheckpointStepIndex sets the "checkpoint_step_index" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCheckpointStepIndex(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetCheckpointStepIndex(*v)
	}
	return _u
}

// AddCheckpointStepIndex adds value to the "checkpoint_step_index" field.
func (_u *RunUpdateOne) AddCheckpointStepIndex(v int) *RunUpdateOne {
	_u.mutation.AddCheckpointStepIndex(v)
	return _u
}

// ClearCheckpointStepIndex clears the value of the "checkpoint_step_index" field.
func (_u *RunUpdateOne) ClearCheckpointStepIndex() *RunUpdateOne {
	_u.mutation.ClearCheckpointStepIndex()
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *RunUpdateOne) SetAnswer(v string) *RunUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableAnswer(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// ClearAnswer clears the value of the "answer" field.
func (_u *RunUpdateOne) ClearAnswer() *RunUpdateOne {
	_u.mutation.ClearAnswer()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RunUpdateOne) SetErrorMessage(v string) *RunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableErrorMessage(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RunUpdateOne) ClearErrorMessage() *RunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStreamTokens sets the "stream_tokens" field.
func (_u *RunUpdateOne) SetStreamTokens(v bool) *RunUpdateOne {
	_u.mutation.SetStreamTokens(v)
	return _u
}

// SetNillableStreamTokens sets the "stream_tokens" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStreamTokens(v *bool) *RunUpdateOne {
	if v != nil {
		_u.SetStreamTokens(*v)
	}
	return _u
}

// SetAuthor sets the "author" field.
func (_u *RunUpdateOne) SetAuthor(v string) *RunUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableAuthor(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *RunUpdateOne) ClearAuthor() *RunUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// SetAlertFingerprint sets the "alert_fingerprint" field.
func (_u *RunUpdateOne) SetAlertFingerprint(v string) *RunUpdateOne {
	_u.mutation.SetAlertFingerprint(v)
	return _u
}

// SetNillableAlertFingerprint sets the "alert_fingerprint" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableAlertFingerprint(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetAlertFingerprint(*v)
	}
	return _u
}

// ClearAlertFingerprint clears the value of the "alert_fingerprint" field.
func (_u *RunUpdateOne) ClearAlertFingerprint() *RunUpdateOne {
	_u.mutation.ClearAlertFingerprint()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *RunUpdateOne) SetPodID(v string) *RunUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillablePodID(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *RunUpdateOne) ClearPodID() *RunUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *RunUpdateOne) SetLastHeartbeatAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *RunUpdateOne) ClearLastHeartbeatAt() *RunUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RunUpdateOne) SetCreatedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCreatedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RunUpdateOne) SetUpdatedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RunUpdateOne) SetCompletedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCompletedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RunUpdateOne) ClearCompletedAt() *RunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddEventIDs adds the "events" edge to the RunEvent entity by IDs.
func (_u *RunUpdateOne) AddEventIDs(ids ...int) *RunUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the RunEvent entity.
func (_u *RunUpdateOne) AddEvents(v ...*RunEvent) *RunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdateOne) Mutation() *RunMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the RunEvent entity.
func (_u *RunUpdateOne) ClearEvents() *RunUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to RunEvent entities by IDs.
func (_u *RunUpdateOne) RemoveEventIDs(ids ...int) *RunUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to RunEvent entities.
func (_u *RunUpdateOne) RemoveEvents(v ...*RunEvent) *RunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdateOne) Where(ps ...predicate.Run) *RunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunUpdateOne) Select(field string, fields ...string) *RunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Run entity.
func (_u *RunUpdateOne) Save(ctx context.Context) (*Run, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdateOne) SaveX(ctx context.Context) *Run {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RunUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := run.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RunUpdateOne) sqlSave(ctx context.Context) (_node *Run, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Run.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, run.FieldID)
		for _, f := range fields {
			if !run.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != run.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(run.FieldGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentProfileID(); ok {
		_spec.SetField(run.FieldAgentProfileID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(run.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(run.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(run.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, run.FieldSteps, value)
		})
	}
	if _u.mutation.StepsCleared() {
		_spec.ClearField(run.FieldSteps, field.TypeJSON)
	}
	if value, ok := _u.mutation.ToolCalls(); ok {
		_spec.SetField(run.FieldToolCalls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolCalls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, run.FieldToolCalls, value)
		})
	}
	if _u.mutation.ToolCallsCleared() {
		_spec.ClearField(run.FieldToolCalls, field.TypeJSON)
	}
	if value, ok := _u.mutation.PendingToolCall(); ok {
		_spec.SetField(run.FieldPendingToolCall, field.TypeJSON, value)
	}
	if _u.mutation.PendingToolCallCleared() {
		_spec.ClearField(run.FieldPendingToolCall, field.TypeJSON)
	}
	if value, ok := _u.mutation.CheckpointStepIndex(); ok {
		_spec.SetField(run.FieldCheckpointStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCheckpointStepIndex(); ok {
		_spec.AddField(run.FieldCheckpointStepIndex, field.TypeInt, value)
	}
	if _u.mutation.CheckpointStepIndexCleared() {
		_spec.ClearField(run.FieldCheckpointStepIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(run.FieldAnswer, field.TypeString, value)
	}
	if _u.mutation.AnswerCleared() {
		_spec.ClearField(run.FieldAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(run.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(run.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StreamTokens(); ok {
		_spec.SetField(run.FieldStreamTokens, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(run.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(run.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.AlertFingerprint(); ok {
		_spec.SetField(run.FieldAlertFingerprint, field.TypeString, value)
	}
	if _u.mutation.AlertFingerprintCleared() {
		_spec.ClearField(run.FieldAlertFingerprint, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(run.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(run.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(run.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(run.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(run.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(run.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(run.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.EventsTable,
			Columns: []string{run.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.EventsTable,
			Columns: []string{run.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.EventsTable,
			Columns: []string{run.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Run{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
