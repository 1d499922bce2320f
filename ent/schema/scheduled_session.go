package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScheduledSession is one (day, topic) slot inside a study plan.
// Rows are immutable once the plan is published; completion state
// lives in the review event log, not here.
type ScheduledSession struct {
	ent.Schema
}

func (ScheduledSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("plan_id").NotEmpty().Immutable(),
		field.Int("day_index").NonNegative().Immutable(),
		field.String("topic_id").NotEmpty().Immutable(),
		field.String("role").
			NotEmpty().
			Immutable().
			Comment(`Either "new" (first introduction) or "review"`),
		field.Int("estimated_mins").Positive().Immutable(),
	}
}

func (ScheduledSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("plan_id", "day_index"),
		index.Fields("plan_id", "day_index", "topic_id").Unique(),
	}
}
