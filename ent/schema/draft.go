package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Draft is the in-progress interview snapshot: the loaded question set, the
// setup metadata and the answers recorded so far. The interview screen is the
// only writer; the finalizer clears it after a successful save so a new
// session can never read stale answers. An absent row means no session is in
// progress.
type Draft struct {
	ent.Schema
}

func (Draft) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Comment("Client-generated UUID for the in-progress session"),
		field.JSON("questions", json.RawMessage{}).
			Comment("Serialized ordered question list"),
		field.JSON("metadata", json.RawMessage{}).
			Comment("Serialized setup metadata"),
		field.JSON("answers", json.RawMessage{}).
			Optional().
			Comment("Serialized answer list, updated on every recorded answer"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Draft) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
