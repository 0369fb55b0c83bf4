// Code generated by ent, DO NOT EDIT.

package run

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the run type in the database.
	Label = "run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_id"
	// FieldGoal holds the string denoting the goal field in the database.
	FieldGoal = "goal"
	// FieldAgentProfileID holds the string denoting the agent_profile_id field in the database.
	FieldAgentProfileID = "agent_profile_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldContext holds the string denoting the context field in the database.
	FieldContext = "context"
	// FieldSteps holds the string denoting the steps field in the database.
	FieldSteps = "steps"
	// FieldToolCalls holds the string denoting the tool_calls field in the database.
	FieldToolCalls = "tool_calls"
	// FieldPendingToolCall holds the string denoting the pending_tool_call field in the database.
	FieldPendingToolCall = "pending_tool_call"
	// FieldCheckpointStepIndex holds the string denoting the checkpoint_step_index field in the database.
	FieldCheckpointStepIndex = "checkpoint_step_index"
	// FieldAnswer holds the string denoting the answer field in the database.
	FieldAnswer = "answer"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldStreamTokens holds the string denoting the stream_tokens field in the database.
	FieldStreamTokens = "stream_tokens"
	// FieldAuthor holds the string denoting the author field in the database.
	FieldAuthor = "author"
	// FieldAlertFingerprint holds the string denoting the alert_fingerprint field in the database.
	FieldAlertFingerprint = "alert_fingerprint"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// RunEventFieldID holds the string denoting the ID field of the RunEvent.
	RunEventFieldID = "id"
	// Table holds the table name of the run in the database.
	Table = "runs"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "run_events"
	// EventsInverseTable is the table name for the RunEvent entity.
	// It exists in this package in order to avoid circular dependency with the "runevent" package.
	EventsInverseTable = "run_events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "run_id"
)

// Columns holds all SQL columns for run fields.
var Columns = []string{
	FieldID,
	FieldGoal,
	FieldAgentProfileID,
	FieldStatus,
	FieldContext,
	FieldSteps,
	FieldToolCalls,
	FieldPendingToolCall,
	FieldCheckpointStepIndex,
	FieldAnswer,
	FieldErrorMessage,
	FieldStreamTokens,
	FieldAuthor,
	FieldAlertFingerprint,
	FieldPodID,
	FieldLastHeartbeatAt,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultStreamTokens holds the default value on creation for the "stream_tokens" field.
	DefaultStreamTokens bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending          Status = "pending"
	StatusRunning          Status = "running"
	StatusAwaitingApproval Status = "awaiting_approval"
	StatusCompleted        Status = "completed"
	StatusFailed           Status = "failed"
	StatusCancelled        Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusAwaitingApproval, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("run: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Run queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByGoal orders the results by the goal field.
func ByGoal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoal, opts...).ToFunc()
}

// ByAgentProfileID orders the results by the agent_profile_id field.
func ByAgentProfileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentProfileID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCheckpointStepIndex orders the results by the checkpoint_step_index field.
func ByCheckpointStepIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckpointStepIndex, opts...).ToFunc()
}

// ByAnswer orders the results by the answer field.
func ByAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswer, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByStreamTokens orders the results by the stream_tokens field.
func ByStreamTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreamTokens, opts...).ToFunc()
}

// ByAuthor orders the results by the author field.
func ByAuthor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthor, opts...).ToFunc()
}

// ByAlertFingerprint orders the results by the alert_fingerprint field.
func ByAlertFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlertFingerprint, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, RunEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
