package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/codeready-toolchain/ranger/pkg/models"
)

// Run holds the schema definition for the Run entity.
// One row per goal-driven planner session.
type Run struct {
	ent.Schema
}

// Fields of the Run.
func (Run) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.Text("goal").
			Comment("Natural-language goal submitted by the client"),
		field.String("agent_profile_id").
			Comment("Profile that scopes tools and approval policy"),
		field.Enum("status").
			Values("pending", "running", "awaiting_approval", "completed", "failed", "cancelled").
			Default("pending"),
		field.JSON("context", map[string]string{}).
			Optional().
			Comment("Free-form key/value context supplied at submission"),
		field.JSON("steps", []models.StepRecord{}).
			Optional().
			Comment("Ordered step records (1-based step_index)"),
		field.JSON("tool_calls", []models.ToolCallRecord{}).
			Optional(),
		field.JSON("pending_tool_call", &models.PendingToolCall{}).
			Optional().
			Comment("Set only while status is awaiting_approval"),
		field.Int("checkpoint_step_index").
			Optional().
			Nillable().
			Comment("Highest step index whose results are durable"),
		field.Text("answer").
			Optional().
			Nillable().
			Comment("Final answer (set only on completed)"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Bool("stream_tokens").
			Default(false).
			Comment("Whether token events are emitted for this run"),
		field.String("author").
			Optional().
			Nillable().
			Comment("From proxy headers"),
		field.String("alert_fingerprint").
			Optional().
			Nillable().
			Comment("Set when the run was triggered by a deduplicated webhook alert"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Run.
func (Run) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("events", RunEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Run.
func (Run) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("created_at"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat_at"),
		// Multi-replica backstop: at most one non-terminal run per alert
		// fingerprint. Duplicate inserts surface as a constraint error.
		index.Fields("alert_fingerprint").
			Unique().
			Annotations(entsql.IndexWhere("status NOT IN ('completed', 'failed', 'cancelled')")),
	}
}
