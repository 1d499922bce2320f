package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudyPlan is one generated full-horizon plan. Plans are append-only:
// regeneration inserts a new row and archives the previous one in the
// same transaction, so exactly one non-archived plan exists per
// (student, subject) after a successful publish.
type StudyPlan struct {
	ent.Schema
}

func (StudyPlan) Fields() []ent.Field {
	return []ent.Field{
		field.String("plan_id").
			Unique().
			NotEmpty().
			Immutable(),
		field.String("student_id").NotEmpty().Immutable(),
		field.String("subject_id").NotEmpty().Immutable(),
		field.Time("start_date").Immutable(),
		field.Int("horizon_days").Positive().Immutable(),
		field.Bool("coverage_extended").
			Default(false).
			Comment("True when extra days past the horizon were needed for full coverage"),
		field.Bool("archived").Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (StudyPlan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("plan_id"),
		index.Fields("student_id", "subject_id", "archived"),
	}
}
