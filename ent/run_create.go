// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/ranger/ent/run"
	"github.com/codeready-toolchain/ranger/ent/runevent"
	"github.com/codeready-toolchain/ranger/pkg/models"
)

// RunCreate is the builder for creating a Run entity.
type RunCreate struct {
	config
	mutation *RunMutation
	hooks    []Hook
}

// SetGoal sets the "goal" field.
func (_c *RunCreate) SetGoal(v string) *RunCreate {
	_c.mutation.SetGoal(v)
	return _c
}

// SetAgentProfileID sets the "agent_profile_id" field.
func (_c *RunCreate) SetAgentProfileID(v string) *RunCreate {
	_c.mutation.SetAgentProfileID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RunCreate) SetStatus(v run.Status) *RunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RunCreate) SetNillableStatus(v *run.Status) *RunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetContext sets the "context" field.
func (_c *RunCreate) SetContext(v map[string]string) *RunCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetSteps sets the "steps" field.
func (_c *RunCreate) SetSteps(v []models.StepRecord) *RunCreate {
	_c.mutation.SetSteps(v)
	return _c
}

// SetToolCalls sets the "tool_calls" field.
func (_c *RunCreate) SetToolCalls(v []models.ToolCallRecord) *RunCreate {
	_c.mutation.SetToolCalls(v)
	return _c
}

// SetPendingToolCall sets the "pending_tool_call" field.
func (_c *RunCreate) SetPendingToolCall(v *models.PendingToolCall) *RunCreate {
	_c.mutation.SetPendingToolCall(v)
	return _c
}

// SetCheckpointStepIndex sets the "checkpoint_step_index" field.
func (_c *RunCreate) SetCheckpointStepIndex(v int) *RunCreate {
	_c.mutation.SetCheckpointStepIndex(v)
	return _c
}

// SetNillableCheckpointStepIndex sets the "checkpoint_step_index" field if the given value is not nil.
func (_c *RunCreate) SetNillableCheckpointStepIndex(v *int) *RunCreate {
	if v != nil {
		_c.SetCheckpointStepIndex(*v)
	}
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *RunCreate) SetAnswer(v string) *RunCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_c *RunCreate) SetNillableAnswer(v *string) *RunCreate {
	if v != nil {
		_c.SetAnswer(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *RunCreate) SetErrorMessage(v string) *RunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *RunCreate) SetNillableErrorMessage(v *string) *RunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetStreamTokens sets the "stream_tokens" field.
func (_c *RunCreate) SetStreamTokens(v bool) *RunCreate {
	_c.mutation.SetStreamTokens(v)
	return _c
}

// SetNillableStreamTokens sets the "stream_tokens" field if the given value is not nil.
func (_c *RunCreate) SetNillableStreamTokens(v *bool) *RunCreate {
	if v != nil {
		_c.SetStreamTokens(*v)
	}
	return _c
}

// SetAuthor sets the "author" field.
func (_c *RunCreate) SetAuthor(v string) *RunCreate {
	_c.mutation.SetAuthor(v)
	return _c
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_c *RunCreate) SetNillableAuthor(v *string) *RunCreate {
	if v != nil {
		_c.SetAuthor(*v)
	}
	return _c
}

// SetAlertFingerprint sets the "alert_fingerprint" field.
func (_c *RunCreate) SetAlertFingerprint(v string) *RunCreate {
	_c.mutation.SetAlertFingerprint(v)
	return _c
}

// SetNillableAlertFingerprint sets the "alert_fingerprint" field if the given value is not nil.
func (_c *RunCreate) SetNillableAlertFingerprint(v *string) *RunCreate {
	if v != nil {
		_c.SetAlertFingerprint(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *RunCreate) SetPodID(v string) *RunCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *RunCreate) SetNillablePodID(v *string) *RunCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *RunCreate) SetLastHeartbeatAt(v time.Time) *RunCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableLastHeartbeatAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RunCreate) SetCreatedAt(v time.Time) *RunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableCreatedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RunCreate) SetUpdatedAt(v time.Time) *RunCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableUpdatedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *RunCreate) SetCompletedAt(v time.Time) *RunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableCompletedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RunCreate) SetID(v string) *RunCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddEventIDs adds the "events" edge to the RunEvent entity by IDs.
func (_c *RunCreate) AddEventIDs(ids ...int) *RunCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the RunEvent entity.
func (_c *RunCreate) AddEvents(v ...*RunEvent) *RunCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_c *RunCreate) Mutation() *RunMutation {
	return _c.mutation
}

// Save creates the Run in the database.
func (_c *RunCreate) Save(ctx context.Context) (*Run, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunCreate) SaveX(ctx context.Context) *Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := run.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StreamTokens(); !ok {
		v := run.DefaultStreamTokens
		_c.mutation.SetStreamTokens(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := run.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := run.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunCreate) check() error {
	if _, ok := _c.mutation.Goal(); !ok {
		return &ValidationError{Name: "goal", err: errors.New(`ent: missing required field "Run.goal"`)}
	}
	if _, ok := _c.mutation.AgentProfileID(); !ok {
		return &ValidationError{Name: "agent_profile_id", err: errors.New(`ent: missing required field "Run.agent_profile_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Run.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StreamTokens(); !ok {
		return &ValidationError{Name: "stream_tokens", err: errors.New(`ent: missing required field "Run.stream_tokens"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Run.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Run.updated_at"`)}
	}
	return nil
}

func (_c *RunCreate) sqlSave(ctx context.Context) (*Run, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Run.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RunCreate) createSpec() (*Run, *sqlgraph.CreateSpec) {
	var (
		_node = &Run{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(run.Table, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Goal(); ok {
		_spec.SetField(run.FieldGoal, field.TypeString, value)
		_node.Goal = value
	}
	if value, ok := _c.mutation.AgentProfileID(); ok {
		_spec.SetField(run.FieldAgentProfileID, field.TypeString, value)
		_node.AgentProfileID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(run.FieldContext, field.TypeJSON, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.Steps(); ok {
		_spec.SetField(run.FieldSteps, field.TypeJSON, value)
		_node.Steps = value
	}
	if value, ok := _c.mutation.ToolCalls(); ok {
		_spec.SetField(run.FieldToolCalls, field.TypeJSON, value)
		_node.ToolCalls = value
	}
	if value, ok := _c.mutation.PendingToolCall(); ok {
		_spec.SetField(run.FieldPendingToolCall, field.TypeJSON, value)
		_node.PendingToolCall = value
	}
	if value, ok := _c.mutation.CheckpointStepIndex(); ok {
		_spec.SetField(run.FieldCheckpointStepIndex, field.TypeInt, value)
		_node.CheckpointStepIndex = &value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(run.FieldAnswer, field.TypeString, value)
		_node.Answer = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(run.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.StreamTokens(); ok {
		_spec.SetField(run.FieldStreamTokens, field.TypeBool, value)
		_node.StreamTokens = value
	}
	if value, ok := _c.mutation.Author(); ok {
		_spec.SetField(run.FieldAuthor, field.TypeString, value)
		_node.Author = &value
	}
	if value, ok := _c.mutation.AlertFingerprint(); ok {
		_spec.SetField(run.FieldAlertFingerprint, field.TypeString, value)
		_node.AlertFingerprint = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(run.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(run.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(run.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(run.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RunCreateBulk is the builder for creating many Run entities in bulk.
type RunCreateBulk struct {
	config
	err      error
	builders []*RunCreate
}

// Save creates the Run entities in the database.
func (_c *RunCreateBulk) Save(ctx context.Context) ([]*Run, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Run, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RunCreateBulk) SaveX(ctx context.Context) []*Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
