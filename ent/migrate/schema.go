// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// RunsColumns holds the columns for the "runs" table.
	RunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "goal", Type: field.TypeString, Size: 2147483647},
		{Name: "agent_profile_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "awaiting_approval", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
		{Name: "steps", Type: field.TypeJSON, Nullable: true},
		{Name: "tool_calls", Type: field.TypeJSON, Nullable: true},
		{Name: "pending_tool_call", Type: field.TypeJSON, Nullable: true},
		{Name: "checkpoint_step_index", Type: field.TypeInt, Nullable: true},
		{Name: "answer", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "stream_tokens", Type: field.TypeBool, Default: false},
		{Name: "author", Type: field.TypeString, Nullable: true},
		{Name: "alert_fingerprint", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// RunsTable holds the schema information for the "runs" table.
	RunsTable = &schema.Table{
		Name:       "runs",
		Columns:    RunsColumns,
		PrimaryKey: []*schema.Column{RunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "run_status",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[3]},
			},
			{
				Name:    "run_created_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[16]},
			},
			{
				Name:    "run_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[3], RunsColumns[16]},
			},
			{
				Name:    "run_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[3], RunsColumns[15]},
			},
			{
				Name:    "run_alert_fingerprint",
				Unique:  true,
				Columns: []*schema.Column{RunsColumns[13]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status NOT IN ('completed', 'failed', 'cancelled')",
				},
			},
		},
	}
	// RunEventsColumns holds the columns for the "run_events" table.
	RunEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// RunEventsTable holds the schema information for the "run_events" table.
	RunEventsTable = &schema.Table{
		Name:       "run_events",
		Columns:    RunEventsColumns,
		PrimaryKey: []*schema.Column{RunEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "run_events_runs_events",
				Columns:    []*schema.Column{RunEventsColumns[4]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "runevent_run_id_id",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[4], RunEventsColumns[0]},
			},
			{
				Name:    "runevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		RunsTable,
		RunEventsTable,
	}
)

func init() {
	RunEventsTable.ForeignKeys[0].RefTable = RunsTable
}
