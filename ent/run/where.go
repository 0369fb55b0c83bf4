// Code generated by ent, DO NOT EDIT.

package run

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/ranger/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldID, id))
}

// Goal applies equality check predicate on the "goal" field. It's identical to GoalEQ.
func Goal(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldGoal, v))
}

// AgentProfileID applies equality check predicate on the "agent_profile_id" field. It's identical to AgentProfileIDEQ.
func AgentProfileID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldAgentProfileID, v))
}

// CheckpointStepIndex applies equality check predicate on the "checkpoint_step_index" field. It's identical to CheckpointStepIndexEQ.
func CheckpointStepIndex(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCheckpointStepIndex, v))
}

// Answer applies equality check predicate on the "answer" field. It's identical to AnswerEQ.
func Answer(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldAnswer, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldErrorMessage, v))
}

// StreamTokens applies equality check predicate on the "stream_tokens" field. It's identical to StreamTokensEQ.
func StreamTokens(v bool) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStreamTokens, v))
}

// Author applies equality check predicate on the "author" field. It's identical to AuthorEQ.
func Author(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldAuthor, v))
}

// AlertFingerprint applies equality check predicate on the "alert_fingerprint" field. It's identical to AlertFingerprintEQ.
func AlertFingerprint(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldAlertFingerprint, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldPodID, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCompletedAt, v))
}

// GoalEQ applies the EQ predicate on the "goal" field.
func GoalEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldGoal, v))
}

// GoalNEQ applies the NEQ predicate on the "goal" field.
func GoalNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldGoal, v))
}

// GoalIn applies the In predicate on the "goal" field.
func GoalIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldGoal, vs...))
}

// GoalNotIn applies the NotIn predicate on the "goal" field.
func GoalNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldGoal, vs...))
}

// GoalGT applies the GT predicate on the "goal" field.
func GoalGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldGoal, v))
}

// GoalGTE applies the GTE predicate on the "goal" field.
func GoalGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldGoal, v))
}

// GoalLT applies the LT predicate on the "goal" field.
func GoalLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldGoal, v))
}

// GoalLTE applies the LTE predicate on the "goal" field.
func GoalLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldGoal, v))
}

// GoalContains applies the Contains predicate on the "goal" field.
func GoalContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldGoal, v))
}

// GoalHasPrefix applies the HasPrefix predicate on the "goal" field.
func GoalHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldGoal, v))
}

// GoalHasSuffix applies the HasSuffix predicate on the "goal" field.
func GoalHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldGoal, v))
}

// GoalEqualFold applies the EqualFold predicate on the "goal" field.
func GoalEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldGoal, v))
}

// GoalContainsFold applies the ContainsFold predicate on the "goal" field.
func GoalContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldGoal, v))
}

// AgentProfileIDEQ applies the EQ predicate on the "agent_profile_id" field.
func AgentProfileIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldAgentProfileID, v))
}

// AgentProfileIDNEQ applies the NEQ predicate on the "agent_profile_id" field.
func AgentProfileIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldAgentProfileID, v))
}

// AgentProfileIDIn applies the In predicate on the "agent_profile_id" field.
func AgentProfileIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldAgentProfileID, vs...))
}

// AgentProfileIDNotIn applies the NotIn predicate on the "agent_profile_id" field.
func AgentProfileIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldAgentProfileID, vs...))
}

// AgentProfileIDGT applies the GT predicate on the "agent_profile_id" field.
func AgentProfileIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldAgentProfileID, v))
}

// AgentProfileIDGTE applies the GTE predicate on the "agent_profile_id" field.
func AgentProfileIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldAgentProfileID, v))
}

// AgentProfileIDLT applies the LT predicate on the "agent_profile_id" field.
func AgentProfileIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldAgentProfileID, v))
}

// AgentProfileIDLTE applies the LTE predicate on the "agent_profile_id" field.
func AgentProfileIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldAgentProfileID, v))
}

// AgentProfileIDContains applies the Contains predicate on the "agent_profile_id" field.
func AgentProfileIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldAgentProfileID, v))
}

// AgentProfileIDHasPrefix applies the HasPrefix predicate on the "agent_profile_id" field.
func AgentProfileIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldAgentProfileID, v))
}

// AgentProfileIDHasSuffix applies the HasSuffix predicate on the "agent_profile_id" field.
func AgentProfileIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldAgentProfileID, v))
}

// AgentProfileIDEqualFold applies the EqualFold predicate on the "agent_profile_id" field.
func AgentProfileIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldAgentProfileID, v))
}

// AgentProfileIDContainsFold applies the ContainsFold predicate on the "agent_profile_id" field.
func AgentProfileIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldAgentProfileID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldStatus, vs...))
}

// ContextIsNil applies the IsNil predicate on the "context" field.
func ContextIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldContext))
}

// ContextNotNil applies the NotNil predicate on the "context" field.
func ContextNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldContext))
}

// StepsIsNil applies the IsNil predicate on the "steps" field.
func StepsIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldSteps))
}

// StepsNotNil applies the NotNil predicate on the "steps" field.
func StepsNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldSteps))
}

// ToolCallsIsNil applies the IsNil predicate on the "tool_calls" field.
func ToolCallsIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldToolCalls))
}

// ToolCallsNotNil applies the NotNil predicate on the "tool_calls" field.
func ToolCallsNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldToolCalls))
}

// PendingToolCallIsNil applies the IsNil predicate on the "pending_tool_call" field.
func PendingToolCallIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldPendingToolCall))
}

// PendingToolCallNotNil applies the NotNil predicate on the "pending_tool_call" field.
func PendingToolCallNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldPendingToolCall))
}

// CheckpointStepIndexEQ applies the EQ predicate on the "checkpoint_step_index" field.
func CheckpointStepIndexEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCheckpointStepIndex, v))
}

// CheckpointStepIndexNEQ applies the NEQ predicate on the "checkpoint_step_index" field.
func CheckpointStepIndexNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCheckpointStepIndex, v))
}

// CheckpointStepIndexIn applies the In predicate on the "checkpoint_step_index" field.
func CheckpointStepIndexIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCheckpointStepIndex, vs...))
}

// CheckpointStepIndexNotIn applies the NotIn predicate on the "checkpoint_step_index" field.
func CheckpointStepIndexNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCheckpointStepIndex, vs...))
}

// CheckpointStepIndexGT applies the GT predicate on the "checkpoint_step_index" field.
func CheckpointStepIndexGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldCheckpointStepIndex, v))
}

// CheckpointStepIndexGTE applies the GTE predicate on the "checkpoint_step_index" field.
func CheckpointStepIndexGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldCheckpointStepIndex, v))
}

// CheckpointStepIndexLT applies the LT predicate on the "checkpoint_step_index" field.
func CheckpointStepIndexLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldCheckpointStepIndex, v))
}

// CheckpointStepIndexLTE applies the LTE predicate on the "checkpoint_step_index" field.
func CheckpointStepIndexLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldCheckpointStepIndex, v))
}

// CheckpointStepIndexIsNil applies the IsNil predicate on the "checkpoint_step_index" field.
func CheckpointStepIndexIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldCheckpointStepIndex))
}

// CheckpointStepIndexNotNil applies the NotNil predicate on the "checkpoint_step_index" field.
func CheckpointStepIndexNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldCheckpointStepIndex))
}

// AnswerEQ applies the EQ predicate on the "answer" field.
func AnswerEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldAnswer, v))
}

// AnswerNEQ applies the NEQ predicate on the "answer" field.
func AnswerNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldAnswer, v))
}

// AnswerIn applies the In predicate on the "answer" field.
func AnswerIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldAnswer, vs...))
}

// AnswerNotIn applies the NotIn predicate on the "answer" field.
func AnswerNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldAnswer, vs...))
}

// AnswerGT applies the GT predicate on the "answer" field.
func AnswerGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldAnswer, v))
}

// AnswerGTE applies the GTE predicate on the "answer" field.
func AnswerGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldAnswer, v))
}

// AnswerLT applies the LT predicate on the "answer" field.
func AnswerLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldAnswer, v))
}

// AnswerLTE applies the LTE predicate on the "answer" field.
func AnswerLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldAnswer, v))
}

// AnswerContains applies the Contains predicate on the "answer" field.
func AnswerContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldAnswer, v))
}

// AnswerHasPrefix applies the HasPrefix predicate on the "answer" field.
func AnswerHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldAnswer, v))
}

// AnswerHasSuffix applies the HasSuffix predicate on the "answer" field.
func AnswerHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldAnswer, v))
}

// AnswerIsNil applies the IsNil predicate on the "answer" field.
func AnswerIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldAnswer))
}

// AnswerNotNil applies the NotNil predicate on the "answer" field.
func AnswerNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldAnswer))
}

// AnswerEqualFold applies the EqualFold predicate on the "answer" field.
func AnswerEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldAnswer, v))
}

// AnswerContainsFold applies the ContainsFold predicate on the "answer" field.
func AnswerContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldAnswer, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldErrorMessage, v))
}

// StreamTokensEQ applies the EQ predicate on the "stream_tokens" field.
func StreamTokensEQ(v bool) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStreamTokens, v))
}

// StreamTokensNEQ applies the NEQ predicate on the "stream_tokens" field.
func StreamTokensNEQ(v bool) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldStreamTokens, v))
}

// AuthorEQ applies the EQ predicate on the "author" field.
func AuthorEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldAuthor, v))
}

// AuthorNEQ applies the NEQ predicate on the "author" field.
func AuthorNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldAuthor, v))
}

// AuthorIn applies the In predicate on the "author" field.
func AuthorIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldAuthor, vs...))
}

// AuthorNotIn applies the NotIn predicate on the "author" field.
func AuthorNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldAuthor, vs...))
}

// AuthorGT applies the GT predicate on the "author" field.
func AuthorGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldAuthor, v))
}

// AuthorGTE applies the GTE predicate on the "author" field.
func AuthorGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldAuthor, v))
}

// AuthorLT applies the LT predicate on the "author" field.
func AuthorLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldAuthor, v))
}

// AuthorLTE applies the LTE predicate on the "author" field.
func AuthorLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldAuthor, v))
}

// AuthorContains applies the Contains predicate on the "author" field.
func AuthorContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldAuthor, v))
}

// AuthorHasPrefix applies the HasPrefix predicate on the "author" field.
func AuthorHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldAuthor, v))
}

// AuthorHasSuffix applies the HasSuffix predicate on the "author" field.
func AuthorHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldAuthor, v))
}

// AuthorIsNil applies the IsNil predicate on the "author" field.
func AuthorIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldAuthor))
}

// AuthorNotNil applies the NotNil predicate on the "author" field.
func AuthorNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldAuthor))
}

// AuthorEqualFold applies the EqualFold predicate on the "author" field.
func AuthorEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldAuthor, v))
}

// AuthorContainsFold applies the ContainsFold predicate on the "author" field.
func AuthorContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldAuthor, v))
}

// AlertFingerprintEQ applies the EQ predicate on the "alert_fingerprint" field.
func AlertFingerprintEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldAlertFingerprint, v))
}

// AlertFingerprintNEQ applies the NEQ predicate on the "alert_fingerprint" field.
func AlertFingerprintNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldAlertFingerprint, v))
}

// AlertFingerprintIn applies the In predicate on the "alert_fingerprint" field.
func AlertFingerprintIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldAlertFingerprint, vs...))
}

// AlertFingerprintNotIn applies the NotIn predicate on the "alert_fingerprint" field.
func AlertFingerprintNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldAlertFingerprint, vs...))
}

// AlertFingerprintGT applies the GT predicate on the "alert_fingerprint" field.
func AlertFingerprintGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldAlertFingerprint, v))
}

// AlertFingerprintGTE applies the GTE predicate on the "alert_fingerprint" field.
func AlertFingerprintGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldAlertFingerprint, v))
}

// AlertFingerprintLT applies the LT predicate on the "alert_fingerprint" field.
func AlertFingerprintLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldAlertFingerprint, v))
}

// AlertFingerprintLTE applies the LTE predicate on the "alert_fingerprint" field.
func AlertFingerprintLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldAlertFingerprint, v))
}

// AlertFingerprintContains applies the Contains predicate on the "alert_fingerprint" field.
func AlertFingerprintContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldAlertFingerprint, v))
}

// AlertFingerprintHasPrefix applies the HasPrefix predicate on the "alert_fingerprint" field.
func AlertFingerprintHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldAlertFingerprint, v))
}

// AlertFingerprintHasSuffix applies the HasSuffix predicate on the "alert_fingerprint" field.
func AlertFingerprintHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldAlertFingerprint, v))
}

// AlertFingerprintIsNil applies the IsNil predicate on the "alert_fingerprint" field.
func AlertFingerprintIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldAlertFingerprint))
}

// AlertFingerprintNotNil applies the NotNil predicate on the "alert_fingerprint" field.
func AlertFingerprintNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldAlertFingerprint))
}

// AlertFingerprintEqualFold applies the EqualFold predicate on the "alert_fingerprint" field.
func AlertFingerprintEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldAlertFingerprint, v))
}

// AlertFingerprintContainsFold applies the ContainsFold predicate on the "alert_fingerprint" field.
func AlertFingerprintContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldAlertFingerprint, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldPodID, v))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldUpdatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldCompletedAt))
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.RunEvent) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Run) predicate.Run {
	return predicate.Run(sql.NotPredicates(p))
}
