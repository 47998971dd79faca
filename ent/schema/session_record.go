package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionRecord is the local log of completed interview sessions. One row is
// appended by the finalizer per successful save; the welcome screen derives
// its stats from these rows and the history screen falls back to them when
// the backend history endpoint is unreachable.
type SessionRecord struct {
	ent.Schema
}

func (SessionRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Server-assigned id when saved online, client UUID otherwise"),
		field.String("role"),
		field.String("company").
			Optional(),
		field.String("interview_type").
			Comment("technical, hr or behavioral"),
		field.String("difficulty"),
		field.Int("total_questions"),
		field.Int("answered"),
		field.Int("skipped").
			Default(0),
		field.Float("completion_rate"),
		field.Float("overall_score").
			Optional().
			Comment("From the feedback report, when one was produced"),
		field.String("grade").
			Optional(),
		field.Time("started_at"),
		field.Time("completed_at"),
	}
}

func (SessionRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("completed_at"),
	}
}
