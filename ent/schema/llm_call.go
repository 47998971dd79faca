package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMCall records one request to an LLM provider in offline mode, appended by
// the logging middleware. Used by `prepdeck doctor` to report token spend.
type LLMCall struct {
	ent.Schema
}

func (LLMCall) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			NotEmpty(),
		field.String("model").
			NotEmpty(),
		field.String("purpose").
			Default("unknown").
			Comment("question-gen or feedback-gen"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0),
		field.Bool("success").
			Default(true),
		field.String("error_message").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (LLMCall) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
