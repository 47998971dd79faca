package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Credential stores the bearer token for the authenticated backend flow.
// At most one row exists; signing in replaces it, signing out deletes it.
type Credential struct {
	ent.Schema
}

func (Credential) Fields() []ent.Field {
	return []ent.Field{
		field.String("token").
			NotEmpty().
			Sensitive().
			Comment("JWT bearer token returned by the auth endpoints"),
		field.String("user_id").
			Optional().
			Comment("Subject decoded from the token payload"),
		field.String("email").
			Optional(),
		field.Time("saved_at").
			Default(time.Now),
	}
}
