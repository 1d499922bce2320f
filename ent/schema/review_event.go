package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records one completion or missed signal for a scheduled
// session, plus the mastery numbers that resulted from it. The log is
// append-only and is the audit trail behind the stats command.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("plan_id").NotEmpty(),
		field.String("student_id").NotEmpty(),
		field.String("topic_id").NotEmpty(),
		field.Int("day_index").NonNegative(),
		field.String("outcome").
			NotEmpty().
			Comment(`Either "completed" or "missed"`),
		field.Float("performance_pct").Default(0),
		field.Int("quality").Default(0),
		field.Int("interval_days").Default(0),
		field.Float("easiness").Default(0),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "topic_id"),
		index.Fields("plan_id"),
	}
}
