package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryState is the durable SM-2 state for one (student, topic) pair.
// The version column backs optimistic compare-and-set updates: every
// write must match the version it read and bumps it by one.
type MasteryState struct {
	ent.Schema
}

func (MasteryState) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").NotEmpty(),
		field.String("topic_id").NotEmpty(),
		field.Float("easiness").
			Comment("SM-2 easiness factor, clamped to [1.3, 2.5]"),
		field.Int("interval_days").NonNegative(),
		field.Int("repetitions").NonNegative(),
		field.Time("due").
			Comment("Date on or after which the next review is scheduled"),
		field.Int("last_quality").
			Default(-1).
			Comment("Most recent quality signal, -1 before the first review"),
		field.Int64("version").Default(1),
	}
}

func (MasteryState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "topic_id").Unique(),
		index.Fields("student_id", "due"),
	}
}
