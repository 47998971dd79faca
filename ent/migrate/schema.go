// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CredentialsColumns holds the columns for the "credentials" table.
	CredentialsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "token", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "saved_at", Type: field.TypeTime},
	}
	// CredentialsTable holds the schema information for the "credentials" table.
	CredentialsTable = &schema.Table{
		Name:       "credentials",
		Columns:    CredentialsColumns,
		PrimaryKey: []*schema.Column{CredentialsColumns[0]},
	}
	// DraftsColumns holds the columns for the "drafts" table.
	DraftsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "questions", Type: field.TypeJSON},
		{Name: "metadata", Type: field.TypeJSON},
		{Name: "answers", Type: field.TypeJSON, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DraftsTable holds the schema information for the "drafts" table.
	DraftsTable = &schema.Table{
		Name:       "drafts",
		Columns:    DraftsColumns,
		PrimaryKey: []*schema.Column{DraftsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "draft_session_id",
				Unique:  false,
				Columns: []*schema.Column{DraftsColumns[1]},
			},
		},
	}
	// LlmCallsColumns holds the columns for the "llm_calls" table.
	LlmCallsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString, Default: "unknown"},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool, Default: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LlmCallsTable holds the schema information for the "llm_calls" table.
	LlmCallsTable = &schema.Table{
		Name:       "llm_calls",
		Columns:    LlmCallsColumns,
		PrimaryKey: []*schema.Column{LlmCallsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmcall_created_at",
				Unique:  false,
				Columns: []*schema.Column{LlmCallsColumns[9]},
			},
		},
	}
	// SessionRecordsColumns holds the columns for the "session_records" table.
	SessionRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeString},
		{Name: "company", Type: field.TypeString, Nullable: true},
		{Name: "interview_type", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "answered", Type: field.TypeInt},
		{Name: "skipped", Type: field.TypeInt, Default: 0},
		{Name: "completion_rate", Type: field.TypeFloat64},
		{Name: "overall_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "grade", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime},
	}
	// SessionRecordsTable holds the schema information for the "session_records" table.
	SessionRecordsTable = &schema.Table{
		Name:       "session_records",
		Columns:    SessionRecordsColumns,
		PrimaryKey: []*schema.Column{SessionRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionrecord_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionRecordsColumns[1]},
			},
			{
				Name:    "sessionrecord_completed_at",
				Unique:  false,
				Columns: []*schema.Column{SessionRecordsColumns[13]},
			},
		},
	}
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       "settings",
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CredentialsTable,
		DraftsTable,
		LlmCallsTable,
		SessionRecordsTable,
		SettingsTable,
	}
)

func init() {
}
