// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/ranger/ent/run"
	"github.com/codeready-toolchain/ranger/pkg/models"
)

// Run is the model entity for the Run schema.
type Run struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Natural-language goal submitted by the client
	Goal string `json:"goal,omitempty"`
	// Profile that scopes tools and approval policy
	AgentProfileID string `json:"agent_profile_id,omitempty"`
	// Status holds the value of the "status" field.
	Status run.Status `json:"status,omitempty"`
	// Free-form key/value context supplied at submission
	Context map[string]string `json:"context,omitempty"`
	// Ordered step records (1-based step_index)
	Steps []models.StepRecord `json:"steps,omitempty"`
	// ToolCalls holds the value of the "tool_calls" field.
	ToolCalls []models.ToolCallRecord `json:"tool_calls,omitempty"`
	// Set only while status is awaiting_approval
	PendingToolCall *models.PendingToolCall `json:"pending_tool_call,omitempty"`
	// Highest step index whose results are durable
	CheckpointStepIndex *int `json:"checkpoint_step_index,omitempty"`
	// Final answer (set only on completed)
	Answer *string `json:"answer,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Whether token events are emitted for this run
	StreamTokens bool `json:"stream_tokens,omitempty"`
	// From proxy headers
	Author *string `json:"author,omitempty"`
	// Set when the run was triggered by a deduplicated webhook alert
	AlertFingerprint *string `json:"alert_fingerprint,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// For orphan detection
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RunQuery when eager-loading is set.
	Edges        RunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RunEdges holds the relations/edges for other nodes in the graph.
type RunEdges struct {
	// Events holds the value of the events edge.
	Events []*RunEvent `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) EventsOrErr() ([]*RunEvent, error) {
	if e.loadedTypes[0] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Run) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case run.FieldContext, run.FieldSteps, run.FieldToolCalls, run.FieldPendingToolCall:
			values[i] = new([]byte)
		case run.FieldStreamTokens:
			values[i] = new(sql.NullBool)
		case run.FieldCheckpointStepIndex:
			values[i] = new(sql.NullInt64)
		case run.FieldID, run.FieldGoal, run.FieldAgentProfileID, run.FieldStatus, run.FieldAnswer, run.FieldErrorMessage, run.FieldAuthor, run.FieldAlertFingerprint, run.FieldPodID:
			values[i] = new(sql.NullString)
		case run.FieldLastHeartbeatAt, run.FieldCreatedAt, run.FieldUpdatedAt, run.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Run fields.
func (_m *Run) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case run.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case run.FieldGoal:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field goal", values[i])
			} else if value.Valid {
				_m.Goal = value.String
			}
		case run.FieldAgentProfileID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_profile_id", values[i])
			} else if value.Valid {
				_m.AgentProfileID = value.String
			}
		case run.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = run.Status(value.String)
			}
		case run.FieldContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Context); err != nil {
					return fmt.Errorf("unmarshal field context: %w", err)
				}
			}
		case run.FieldSteps:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field steps", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Steps); err != nil {
					return fmt.Errorf("unmarshal field steps: %w", err)
				}
			}
		case run.FieldToolCalls:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tool_calls", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ToolCalls); err != nil {
					return fmt.Errorf("unmarshal field tool_calls: %w", err)
				}
			}
		case run.FieldPendingToolCall:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field pending_tool_call", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PendingToolCall); err != nil {
					return fmt.Errorf("unmarshal field pending_tool_call: %w", err)
				}
			}
		case run.FieldCheckpointStepIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field checkpoint_step_index", values[i])
			} else if value.Valid {
				_m.CheckpointStepIndex = new(int)
				*_m.CheckpointStepIndex = int(value.Int64)
			}
		case run.FieldAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer", values[i])
			} else if value.Valid {
				_m.Answer = new(string)
				*_m.Answer = value.String
			}
		case run.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case run.FieldStreamTokens:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field stream_tokens", values[i])
			} else if value.Valid {
				_m.StreamTokens = value.Bool
			}
		case run.FieldAuthor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author", values[i])
			} else if value.Valid {
				_m.Author = new(string)
				*_m.Author = value.String
			}
		case run.FieldAlertFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alert_fingerprint", values[i])
			} else if value.Valid {
				_m.AlertFingerprint = new(string)
				*_m.AlertFingerprint = value.String
			}
		case run.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case run.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		case run.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case run.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case run.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Run.
// This includes values selected through modifiers, order, etc.
func (_m *Run) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvents queries the "events" edge of the Run entity.
func (_m *Run) QueryEvents() *RunEventQuery {
	return NewRunClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this Run.
// Note that you need to call Run.Unwrap() before calling this method if this Run
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Run) Update() *RunUpdateOne {
	return NewRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Run entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Run) Unwrap() *Run {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Run is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Run) String() string {
	var builder strings.Builder
	builder.WriteString("Run(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("goal=")
	builder.WriteString(_m.Goal)
	builder.WriteString(", ")
	builder.WriteString("agent_profile_id=")
	builder.WriteString(_m.AgentProfileID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("context=")
	builder.WriteString(fmt.Sprintf("%v", _m.Context))
	builder.WriteString(", ")
	builder.WriteString("steps=")
	builder.WriteString(fmt.Sprintf("%v", _m.Steps))
	builder.WriteString(", ")
	builder.WriteString("tool_calls=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToolCalls))
	builder.WriteString(", ")
	builder.WriteString("pending_tool_call=")
	builder.WriteString(fmt.Sprintf("%v", _m.PendingToolCall))
	builder.WriteString(", ")
	if v := _m.CheckpointStepIndex; v != nil {
		builder.WriteString("checkpoint_step_index=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Answer; v != nil {
		builder.WriteString("answer=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("stream_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.StreamTokens))
	builder.WriteString(", ")
	if v := _m.Author; v != nil {
		builder.WriteString("author=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AlertFingerprint; v != nil {
		builder.WriteString("alert_fingerprint=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Runs is a parsable slice of Run.
type Runs []*Run
