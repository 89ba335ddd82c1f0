package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionState is the per-user questionnaire state: the working answer
// set, recomputed section scores, and the resume position. One row per
// user, upserted on every submission.
type SessionState struct {
	ent.Schema
}

func (SessionState) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Unique().
			Immutable().
			Comment("Token subject identifying the user"),
		field.JSON("answers", map[string]any{}).
			Comment("Raw answer values keyed by question ID"),
		field.JSON("section_scores", map[string]float64{}).
			Comment("Raw earned points keyed by section ID"),
		field.String("last_question_id").
			Comment("Next question to present, or the completed marker"),
		field.String("catalog_version").
			Comment("Catalog version the answers were recorded against"),
		field.JSON("summary", map[string]any{}).
			Optional().
			Comment("Generated self-discovery summary, absent until requested"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (SessionState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}
