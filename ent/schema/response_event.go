package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResponseEvent records every answer submission, giving an append-only
// history alongside the mutable SessionState row.
type ResponseEvent struct {
	ent.Schema
}

func (ResponseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResponseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Comment("Token subject, or the anonymous marker"),
		field.String("question_id"),
		field.String("section_id"),
		field.String("answer").
			Comment("Answer value rendered as a string"),
		field.Float("score").
			Comment("Points earned for this answer"),
	}
}

func (ResponseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("question_id"),
	}
}
