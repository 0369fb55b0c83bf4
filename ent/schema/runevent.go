package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunEvent holds the schema definition for the RunEvent entity.
// Append-only event log rows; the source of truth for SSE streaming.
// The auto-incrementing integer ID doubles as the SSE cursor — strictly
// monotonic within a run because rows are never updated or reordered.
type RunEvent struct {
	ent.Schema
}

// Fields of the RunEvent.
func (RunEvent) Fields() []ent.Field {
	return []ent.Field{
		// Default integer ID (serial) is the event cursor.
		field.String("run_id"),
		field.String("event_type").
			Comment("status, step, token, answer, audit, end"),
		field.JSON("payload", map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the RunEvent.
func (RunEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("events").
			Field("run_id").
			Unique().
			Required(),
	}
}

// Indexes of the RunEvent.
func (RunEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "id"),
		index.Fields("created_at"),
	}
}
