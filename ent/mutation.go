// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/ranger/ent/predicate"
	"github.com/codeready-toolchain/ranger/ent/run"
	"github.com/codeready-toolchain/ranger/ent/runevent"
	"github.com/codeready-toolchain/ranger/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeRun      = "Run"
	TypeRunEvent = "RunEvent"
)

// RunMutation represents an operation that mutates the Run nodes in the graph.
type RunMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	goal                     *string
	agent_profile_id         *string
	status                   *run.Status
	context                  *map[string]string
	steps                    *[]models.StepRecord
	appendsteps              []models.StepRecord
	tool_calls               *[]models.ToolCallRecord
	appendtool_calls         []models.ToolCallRecord
	pending_tool_call        **models.PendingToolCall
	checkpoint_step_index    *int
	addcheckpoint_step_index *int
	answer                   *string
	error_message            *string
	stream_tokens            *bool
	author                   *string
	alert_fingerprint        *string
	pod_id                   *string
	last_heartbeat_at        *time.Time
	created_at               *time.Time
	updated_at               *time.Time
	completed_at             *time.Time
	clearedFields            map[string]struct{}
	events                   map[int]struct{}
	removedevents            map[int]struct{}
	clearedevents            bool
	done                     bool
	oldValue                 func(context.Context) (*Run, error)
	predicates               []predicate.Run
}

var _ ent.Mutation = (*RunMutation)(nil)

// runOption allows management of the mutation configuration using functional options.
type runOption func(*RunMutation)

// newRunMutation creates new mutation for the Run entity.
func newRunMutation(c config, op Op, opts ...runOption) *RunMutation {
	m := &RunMutation{
		config:        c,
		op:            op,
		typ:           TypeRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunID sets the ID field of the mutation.
func withRunID(id string) runOption {
	return func(m *RunMutation) {
		var (
			err   error
			once  sync.Once
			value *Run
		)
		m.oldValue = func(ctx context.Context) (*Run, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Run.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRun sets the old Run of the mutation.
func withRun(node *Run) runOption {
	return func(m *RunMutation) {
		m.oldValue = func(context.Context) (*Run, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Run entities.
func (m *RunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Run.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGoal sets the "goal" field.
func (m *RunMutation) SetGoal(s string) {
	m.goal = &s
}

// Goal returns the value of the "goal" field in the mutation.
func (m *RunMutation) Goal() (r string, exists bool) {
	v := m.goal
	if v == nil {
		return
	}
	return *v, true
}

// OldGoal returns the old "goal" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldGoal(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoal: %w", err)
	}
	return oldValue.Goal, nil
}

// ResetGoal resets all changes to the "goal" field.
func (m *RunMutation) ResetGoal() {
	m.goal = nil
}

// SetAgentProfileID sets the "agent_profile_id" field.
func (m *RunMutation) SetAgentProfileID(s string) {
	m.agent_profile_id = &s
}

// AgentProfileID returns the value of the "agent_profile_id" field in the mutation.
func (m *RunMutation) AgentProfileID() (r string, exists bool) {
	v := m.agent_profile_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentProfileID returns the old "agent_profile_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldAgentProfileID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentProfileID: %w", err)
	}
	return oldValue.AgentProfileID, nil
}

// ResetAgentProfileID resets all changes to the "agent_profile_id" field.
func (m *RunMutation) ResetAgentProfileID() {
	m.agent_profile_id = nil
}

// SetStatus sets the "status" field.
func (m *RunMutation) SetStatus(r run.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RunMutation) Status() (r run.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStatus(ctx context.Context) (v run.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RunMutation) ResetStatus() {
	m.status = nil
}

// SetContext sets the "context" field.
func (m *RunMutation) SetContext(value map[string]string) {
	m.context = &value
}

// Context returns the value of the "context" field in the mutation.
func (m *RunMutation) Context() (r map[string]string, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldContext(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *RunMutation) ClearContext() {
	m.context = nil
	m.clearedFields[run.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *RunMutation) ContextCleared() bool {
	_, ok := m.clearedFields[run.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *RunMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, run.FieldContext)
}

// SetSteps sets the "steps" field.
func (m *RunMutation) SetSteps(mr []models.StepRecord) {
	m.steps = &mr
	m.appendsteps = nil
}

// Steps returns the value of the "steps" field in the mutation.
func (m *RunMutation) Steps() (r []models.StepRecord, exists bool) {
	v := m.steps
	if v == nil {
		return
	}
	return *v, true
}

// OldSteps returns the old "steps" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldSteps(ctx context.Context) (v []models.StepRecord, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSteps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSteps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSteps: %w", err)
	}
	return oldValue.Steps, nil
}

// AppendSteps adds mr to the "steps" field.
func (m *RunMutation) AppendSteps(mr []models.StepRecord) {
	m.appendsteps = append(m.appendsteps, mr...)
}

// AppendedSteps returns the list of values that were appended to the "steps" field in this mutation.
func (m *RunMutation) AppendedSteps() ([]models.StepRecord, bool) {
	if len(m.appendsteps) == 0 {
		return nil, false
	}
	return m.appendsteps, true
}

// ClearSteps clears the value of the "steps" field.
func (m *RunMutation) ClearSteps() {
	m.steps = nil
	m.appendsteps = nil
	m.clearedFields[run.FieldSteps] = struct{}{}
}

// StepsCleared returns if the "steps" field was cleared in this mutation.
func (m *RunMutation) StepsCleared() bool {
	_, ok := m.clearedFields[run.FieldSteps]
	return ok
}

// ResetSteps resets all changes to the "steps" field.
func (m *RunMutation) ResetSteps() {
	m.steps = nil
	m.appendsteps = nil
	delete(m.clearedFields, run.FieldSteps)
}

// SetToolCalls sets the "tool_calls" field.
func (m *RunMutation) SetToolCalls(mcr []models.ToolCallRecord) {
	m.tool_calls = &mcr
	m.appendtool_calls = nil
}

// ToolCalls returns the value of the "tool_calls" field in the mutation.
func (m *RunMutation) ToolCalls() (r []models.ToolCallRecord, exists bool) {
	v := m.tool_calls
	if v == nil {
		return
	}
	return *v, true
}

// OldToolCalls returns the old "tool_calls" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldToolCalls(ctx context.Context) (v []models.ToolCallRecord, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolCalls is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolCalls requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolCalls: %w", err)
	}
	return oldValue.ToolCalls, nil
}

// AppendToolCalls adds mcr to the "tool_calls" field.
func (m *RunMutation) AppendToolCalls(mcr []models.ToolCallRecord) {
	m.appendtool_calls = append(m.appendtool_calls, mcr...)
}

// AppendedToolCalls returns the list of values that were appended to the "tool_calls" field in this mutation.
func (m *RunMutation) AppendedToolCalls() ([]models.ToolCallRecord, bool) {
	if len(m.appendtool_calls) == 0 {
		return nil, false
	}
	return m.appendtool_calls, true
}

// ClearToolCalls clears the value of the "tool_calls" field.
func (m *RunMutation) ClearToolCalls() {
	m.tool_calls = nil
	m.appendtool_calls = nil
	m.clearedFields[run.FieldToolCalls] = struct{}{}
}

// ToolCallsCleared returns if the "tool_calls" field was cleared in this mutation.
func (m *RunMutation) ToolCallsCleared() bool {
	_, ok := m.clearedFields[run.FieldToolCalls]
	return ok
}

// ResetToolCalls resets all changes to the "tool_calls" field.
func (m *RunMutation) ResetToolCalls() {
	m.tool_calls = nil
	m.appendtool_calls = nil
	delete(m.clearedFields, run.FieldToolCalls)
}

// SetPendingToolCall sets the "pending_tool_call" field.
func (m *RunMutation) SetPendingToolCall(mtc *models.PendingToolCall) {
	m.pending_tool_call = &mtc
}

// PendingToolCall returns the value of the "pending_tool_call" field in the mutation.
func (m *RunMutation) PendingToolCall() (r *models.PendingToolCall, exists bool) {
	v := m.pending_tool_call
	if v == nil {
		return
	}
	return *v, true
}

// OldPendingToolCall returns the old "pending_tool_call" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldPendingToolCall(ctx context.Context) (v *models.PendingToolCall, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPendingToolCall is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPendingToolCall requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPendingToolCall: %w", err)
	}
	return oldValue.PendingToolCall, nil
}

// ClearPendingToolCall clears the value of the "pending_tool_call" field.
func (m *RunMutation) ClearPendingToolCall() {
	m.pending_tool_call = nil
	m.clearedFields[run.FieldPendingToolCall] = struct{}{}
}

// PendingToolCallCleared returns if the "pending_tool_call" field was cleared in this mutation.
func (m *RunMutation) PendingToolCallCleared() bool {
	_, ok := m.clearedFields[run.FieldPendingToolCall]
	return ok
}

// ResetPendingToolCall resets all changes to the "pending_tool_call" field.
func (m *RunMutation) ResetPendingToolCall() {
	m.pending_tool_call = nil
	delete(m.clearedFields, run.FieldPendingToolCall)
}

// SetCheckpointStepIndex sets the "checkpoint_step_index" field.
func (m *RunMutation) SetCheckpointStepIndex(i int) {
	m.checkpoint_step_index = &i
	m.addcheckpoint_step_index = nil
}

// CheckpointStepIndex returns the value of the "checkpoint_step_index" field in the mutation.
func (m *RunMutation) CheckpointStepIndex() (r int, exists bool) {
	v := m.checkpoint_step_index
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckpointStepIndex returns the old "checkpoint_step_index" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCheckpointStepIndex(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckpointStepIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckpointStepIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckpointStepIndex: %w", err)
	}
	return oldValue.CheckpointStepIndex, nil
}

// AddCheckpointStepIndex adds i to the "checkpoint_step_index" field.
func (m *RunMutation) AddCheckpointStepIndex(i int) {
	if m.addcheckpoint_step_index != nil {
		*m.addcheckpoint_step_index += i
	} else {
		m.addcheckpoint_step_index = &i
	}
}

// AddedCheckpointStepIndex returns the value that was added to the "checkpoint_step_index" field in this mutation.
func (m *RunMutation) AddedCheckpointStepIndex() (r int, exists bool) {
	v := m.addcheckpoint_step_index
	if v == nil {
		return
	}
	return *v, true
}

// ClearCheckpointStepIndex clears the value of the "checkpoint_step_index" field.
func (m *RunMutation) ClearCheckpointStepIndex() {
	m.checkpoint_step_index = nil
	m.addcheckpoint_step_index = nil
	m.clearedFields[run.FieldCheckpointStepIndex] = struct{}{}
}

// CheckpointStepIndexCleared returns if the "checkpoint_step_index" field was cleared in this mutation.
func (m *RunMutation) CheckpointStepIndexCleared() bool {
	_, ok := m.clearedFields[run.FieldCheckpointStepIndex]
	return ok
}

// ResetCheckpointStepIndex resets all changes to the "checkpoint_step_index" field.
func (m *RunMutation) ResetCheckpointStepIndex() {
	m.checkpoint_step_index = nil
	m.addcheckpoint_step_index = nil
	delete(m.clearedFields, run.FieldCheckpointStepIndex)
}

// SetAnswer sets the "answer" field.
func (m *RunMutation) SetAnswer(s string) {
	m.answer = &s
}

// Answer returns the value of the "answer" field in the mutation.
func (m *RunMutation) Answer() (r string, exists bool) {
	v := m.answer
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswer returns the old "answer" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldAnswer(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswer: %w", err)
	}
	return oldValue.Answer, nil
}

// ClearAnswer clears the value of the "answer" field.
func (m *RunMutation) ClearAnswer() {
	m.answer = nil
	m.clearedFields[run.FieldAnswer] = struct{}{}
}

// AnswerCleared returns if the "answer" field was cleared in this mutation.
func (m *RunMutation) AnswerCleared() bool {
	_, ok := m.clearedFields[run.FieldAnswer]
	return ok
}

// ResetAnswer resets all changes to the "answer" field.
func (m *RunMutation) ResetAnswer() {
	m.answer = nil
	delete(m.clearedFields, run.FieldAnswer)
}

// SetErrorMessage sets the "error_message" field.
func (m *RunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *RunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *RunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[run.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *RunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[run.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *RunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, run.FieldErrorMessage)
}

// SetStreamTokens sets the "stream_tokens" field.
func (m *RunMutation) SetStreamTokens(b bool) {
	m.stream_tokens = &b
}

// StreamTokens returns the value of the "stream_tokens" field in the mutation.
func (m *RunMutation) StreamTokens() (r bool, exists bool) {
	v := m.stream_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamTokens returns the old "stream_tokens" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStreamTokens(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamTokens: %w", err)
	}
	return oldValue.StreamTokens, nil
}

// ResetStreamTokens resets all changes to the "stream_tokens" field.
func (m *RunMutation) ResetStreamTokens() {
	m.stream_tokens = nil
}

// SetAuthor sets the "author" field.
func (m *RunMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *RunMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldAuthor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ClearAuthor clears the value of the "author" field.
func (m *RunMutation) ClearAuthor() {
	m.author = nil
	m.clearedFields[run.FieldAuthor] = struct{}{}
}

// AuthorCleared returns if the "author" field was cleared in this mutation.
func (m *RunMutation) AuthorCleared() bool {
	_, ok := m.clearedFields[run.FieldAuthor]
	return ok
}

// ResetAuthor resets all changes to the "author" field.
func (m *RunMutation) ResetAuthor() {
	m.author = nil
	delete(m.clearedFields, run.FieldAuthor)
}

// SetAlertFingerprint sets the "alert_fingerprint" field.
func (m *RunMutation) SetAlertFingerprint(s string) {
	m.alert_fingerprint = &s
}

// AlertFingerprint returns the value of the "alert_fingerprint" field in the mutation.
func (m *RunMutation) AlertFingerprint() (r string, exists bool) {
	v := m.alert_fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertFingerprint returns the old "alert_fingerprint" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldAlertFingerprint(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertFingerprint: %w", err)
	}
	return oldValue.AlertFingerprint, nil
}

// ClearAlertFingerprint clears the value of the "alert_fingerprint" field.
func (m *RunMutation) ClearAlertFingerprint() {
	m.alert_fingerprint = nil
	m.clearedFields[run.FieldAlertFingerprint] = struct{}{}
}

// AlertFingerprintCleared returns if the "alert_fingerprint" field was cleared in this mutation.
func (m *RunMutation) AlertFingerprintCleared() bool {
	_, ok := m.clearedFields[run.FieldAlertFingerprint]
	return ok
}

// ResetAlertFingerprint resets all changes to the "alert_fingerprint" field.
func (m *RunMutation) ResetAlertFingerprint() {
	m.alert_fingerprint = nil
	delete(m.clearedFields, run.FieldAlertFingerprint)
}

// SetPodID sets the "pod_id" field.
func (m *RunMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *RunMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *RunMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[run.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *RunMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[run.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *RunMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, run.FieldPodID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *RunMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *RunMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *RunMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[run.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *RunMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[run.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *RunMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, run.FieldLastHeartbeatAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *RunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RunMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RunMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RunMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *RunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *RunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *RunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[run.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *RunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *RunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, run.FieldCompletedAt)
}

// AddEventIDs adds the "events" edge to the RunEvent entity by ids.
func (m *RunMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the RunEvent entity.
func (m *RunMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the RunEvent entity was cleared.
func (m *RunMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the RunEvent entity by IDs.
func (m *RunMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the RunEvent entity.
func (m *RunMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *RunMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *RunMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the RunMutation builder.
func (m *RunMutation) Where(ps ...predicate.Run) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Run, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Run).
func (m *RunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.goal != nil {
		fields = append(fields, run.FieldGoal)
	}
	if m.agent_profile_id != nil {
		fields = append(fields, run.FieldAgentProfileID)
	}
	if m.status != nil {
		fields = append(fields, run.FieldStatus)
	}
	if m.context != nil {
		fields = append(fields, run.FieldContext)
	}
	if m.steps != nil {
		fields = append(fields, run.FieldSteps)
	}
	if m.tool_calls != nil {
		fields = append(fields, run.FieldToolCalls)
	}
	if m.pending_tool_call != nil {
		fields = append(fields, run.FieldPendingToolCall)
	}
	if m.checkpoint_step_index != nil {
		fields = append(fields, run.FieldCheckpointStepIndex)
	}
	if m.answer != nil {
		fields = append(fields, run.FieldAnswer)
	}
	if m.error_message != nil {
		fields = append(fields, run.FieldErrorMessage)
	}
	if m.stream_tokens != nil {
		fields = append(fields, run.FieldStreamTokens)
	}
	if m.author != nil {
		fields = append(fields, run.FieldAuthor)
	}
	if m.alert_fingerprint != nil {
		fields = append(fields, run.FieldAlertFingerprint)
	}
	if m.pod_id != nil {
		fields = append(fields, run.FieldPodID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, run.FieldLastHeartbeatAt)
	}
	if m.created_at != nil {
		fields = append(fields, run.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, run.FieldUpdatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, run.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case run.FieldGoal:
		return m.Goal()
	case run.FieldAgentProfileID:
		return m.AgentProfileID()
	case run.FieldStatus:
		return m.Status()
	case run.FieldContext:
		return m.Context()
	case run.FieldSteps:
		return m.Steps()
	case run.FieldToolCalls:
		return m.ToolCalls()
	case run.FieldPendingToolCall:
		return m.PendingToolCall()
	case run.FieldCheckpointStepIndex:
		return m.CheckpointStepIndex()
	case run.FieldAnswer:
		return m.Answer()
	case run.FieldErrorMessage:
		return m.ErrorMessage()
	case run.FieldStreamTokens:
		return m.StreamTokens()
	case run.FieldAuthor:
		return m.Author()
	case run.FieldAlertFingerprint:
		return m.AlertFingerprint()
	case run.FieldPodID:
		return m.PodID()
	case run.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case run.FieldCreatedAt:
		return m.CreatedAt()
	case run.FieldUpdatedAt:
		return m.UpdatedAt()
	case run.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case run.FieldGoal:
		return m.OldGoal(ctx)
	case run.FieldAgentProfileID:
		return m.OldAgentProfileID(ctx)
	case run.FieldStatus:
		return m.OldStatus(ctx)
	case run.FieldContext:
		return m.OldContext(ctx)
	case run.FieldSteps:
		return m.OldSteps(ctx)
	case run.FieldToolCalls:
		return m.OldToolCalls(ctx)
	case run.FieldPendingToolCall:
		return m.OldPendingToolCall(ctx)
	case run.FieldCheckpointStepIndex:
		return m.OldCheckpointStepIndex(ctx)
	case run.FieldAnswer:
		return m.OldAnswer(ctx)
	case run.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case run.FieldStreamTokens:
		return m.OldStreamTokens(ctx)
	case run.FieldAuthor:
		return m.OldAuthor(ctx)
	case run.FieldAlertFingerprint:
		return m.OldAlertFingerprint(ctx)
	case run.FieldPodID:
		return m.OldPodID(ctx)
	case run.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case run.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case run.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case run.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Run field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case run.FieldGoal:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoal(v)
		return nil
	case run.FieldAgentProfileID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentProfileID(v)
		return nil
	case run.FieldStatus:
		v, ok := value.(run.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case run.FieldContext:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case run.FieldSteps:
		v, ok := value.([]models.StepRecord)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSteps(v)
		return nil
	case run.FieldToolCalls:
		v, ok := value.([]models.ToolCallRecord)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolCalls(v)
		return nil
	case run.FieldPendingToolCall:
		v, ok := value.(*models.PendingToolCall)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPendingToolCall(v)
		return nil
	case run.FieldCheckpointStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckpointStepIndex(v)
		return nil
	case run.FieldAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswer(v)
		return nil
	case run.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case run.FieldStreamTokens:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamTokens(v)
		return nil
	case run.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case run.FieldAlertFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertFingerprint(v)
		return nil
	case run.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case run.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case run.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case run.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case run.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunMutation) AddedFields() []string {
	var fields []string
	if m.addcheckpoint_step_index != nil {
		fields = append(fields, run.FieldCheckpointStepIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case run.FieldCheckpointStepIndex:
		return m.AddedCheckpointStepIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case run.FieldCheckpointStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCheckpointStepIndex(v)
		return nil
	}
	return fmt.Errorf("unknown Run numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(run.FieldContext) {
		fields = append(fields, run.FieldContext)
	}
	if m.FieldCleared(run.FieldSteps) {
		fields = append(fields, run.FieldSteps)
	}
	if m.FieldCleared(run.FieldToolCalls) {
		fields = append(fields, run.FieldToolCalls)
	}
	if m.FieldCleared(run.FieldPendingToolCall) {
		fields = append(fields, run.FieldPendingToolCall)
	}
	if m.FieldCleared(run.FieldCheckpointStepIndex) {
		fields = append(fields, run.FieldCheckpointStepIndex)
	}
	if m.FieldCleared(run.FieldAnswer) {
		fields = append(fields, run.FieldAnswer)
	}
	if m.FieldCleared(run.FieldErrorMessage) {
		fields = append(fields, run.FieldErrorMessage)
	}
	if m.FieldCleared(run.FieldAuthor) {
		fields = append(fields, run.FieldAuthor)
	}
	if m.FieldCleared(run.FieldAlertFingerprint) {
		fields = append(fields, run.FieldAlertFingerprint)
	}
	if m.FieldCleared(run.FieldPodID) {
		fields = append(fields, run.FieldPodID)
	}
	if m.FieldCleared(run.FieldLastHeartbeatAt) {
		fields = append(fields, run.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(run.FieldCompletedAt) {
		fields = append(fields, run.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunMutation) ClearField(name string) error {
	switch name {
	case run.FieldContext:
		m.ClearContext()
		return nil
	case run.FieldSteps:
		m.ClearSteps()
		return nil
	case run.FieldToolCalls:
		m.ClearToolCalls()
		return nil
	case run.FieldPendingToolCall:
		m.ClearPendingToolCall()
		return nil
	case run.FieldCheckpointStepIndex:
		m.ClearCheckpointStepIndex()
		return nil
	case run.FieldAnswer:
		m.ClearAnswer()
		return nil
	case run.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case run.FieldAuthor:
		m.ClearAuthor()
		return nil
	case run.FieldAlertFingerprint:
		m.ClearAlertFingerprint()
		return nil
	case run.FieldPodID:
		m.ClearPodID()
		return nil
	case run.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case run.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Run nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunMutation) ResetField(name string) error {
	switch name {
	case run.FieldGoal:
		m.ResetGoal()
		return nil
	case run.FieldAgentProfileID:
		m.ResetAgentProfileID()
		return nil
	case run.FieldStatus:
		m.ResetStatus()
		return nil
	case run.FieldContext:
		m.ResetContext()
		return nil
	case run.FieldSteps:
		m.ResetSteps()
		return nil
	case run.FieldToolCalls:
		m.ResetToolCalls()
		return nil
	case run.FieldPendingToolCall:
		m.ResetPendingToolCall()
		return nil
	case run.FieldCheckpointStepIndex:
		m.ResetCheckpointStepIndex()
		return nil
	case run.FieldAnswer:
		m.ResetAnswer()
		return nil
	case run.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case run.FieldStreamTokens:
		m.ResetStreamTokens()
		return nil
	case run.FieldAuthor:
		m.ResetAuthor()
		return nil
	case run.FieldAlertFingerprint:
		m.ResetAlertFingerprint()
		return nil
	case run.FieldPodID:
		m.ResetPodID()
		return nil
	case run.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case run.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case run.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case run.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.events != nil {
		edges = append(edges, run.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case run.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedevents != nil {
		edges = append(edges, run.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case run.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedevents {
		edges = append(edges, run.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunMutation) EdgeCleared(name string) bool {
	switch name {
	case run.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Run unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunMutation) ResetEdge(name string) error {
	switch name {
	case run.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown Run edge %s", name)
}

// RunEventMutation represents an operation that mutates the RunEvent nodes in the graph.
type RunEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	event_type    *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*RunEvent, error)
	predicates    []predicate.RunEvent
}

var _ ent.Mutation = (*RunEventMutation)(nil)

// runeventOption allows management of the mutation configuration using functional options.
type runeventOption func(*RunEventMutation)

// newRunEventMutation creates new mutation for the RunEvent entity.
func newRunEventMutation(c config, op Op, opts ...runeventOption) *RunEventMutation {
	m := &RunEventMutation{
		config:        c,
		op:            op,
		typ:           TypeRunEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunEventID sets the ID field of the mutation.
func withRunEventID(id int) runeventOption {
	return func(m *RunEventMutation) {
		var (
			err   error
			once  sync.Once
			value *RunEvent
		)
		m.oldValue = func(ctx context.Context) (*RunEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RunEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRunEvent sets the old RunEvent of the mutation.
func withRunEvent(node *RunEvent) runeventOption {
	return func(m *RunEventMutation) {
		m.oldValue = func(context.Context) (*RunEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RunEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *RunEventMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *RunEventMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *RunEventMutation) ResetRunID() {
	m.run = nil
}

// SetEventType sets the "event_type" field.
func (m *RunEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *RunEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *RunEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetPayload sets the "payload" field.
func (m *RunEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *RunEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *RunEventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RunEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *RunEventMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[runevent.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *RunEventMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *RunEventMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *RunEventMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the RunEventMutation builder.
func (m *RunEventMutation) Where(ps ...predicate.RunEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RunEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RunEvent).
func (m *RunEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunEventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.run != nil {
		fields = append(fields, runevent.FieldRunID)
	}
	if m.event_type != nil {
		fields = append(fields, runevent.FieldEventType)
	}
	if m.payload != nil {
		fields = append(fields, runevent.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, runevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runevent.FieldRunID:
		return m.RunID()
	case runevent.FieldEventType:
		return m.EventType()
	case runevent.FieldPayload:
		return m.Payload()
	case runevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runevent.FieldRunID:
		return m.OldRunID(ctx)
	case runevent.FieldEventType:
		return m.OldEventType(ctx)
	case runevent.FieldPayload:
		return m.OldPayload(ctx)
	case runevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RunEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runevent.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case runevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case runevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case runevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RunEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RunEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RunEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunEventMutation) ResetField(name string) error {
	switch name {
	case runevent.FieldRunID:
		m.ResetRunID()
		return nil
	case runevent.FieldEventType:
		m.ResetEventType()
		return nil
	case runevent.FieldPayload:
		m.ResetPayload()
		return nil
	case runevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RunEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, runevent.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case runevent.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, runevent.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunEventMutation) EdgeCleared(name string) bool {
	switch name {
	case runevent.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunEventMutation) ClearEdge(name string) error {
	switch name {
	case runevent.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown RunEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunEventMutation) ResetEdge(name string) error {
	switch name {
	case runevent.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown RunEvent edge %s", name)
}
