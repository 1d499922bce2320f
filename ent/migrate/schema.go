// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// MasteryStatesColumns holds the columns for the "mastery_states" table.
	MasteryStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "easiness", Type: field.TypeFloat64},
		{Name: "interval_days", Type: field.TypeInt},
		{Name: "repetitions", Type: field.TypeInt},
		{Name: "due", Type: field.TypeTime},
		{Name: "last_quality", Type: field.TypeInt, Default: -1},
		{Name: "version", Type: field.TypeInt64, Default: 1},
	}
	// MasteryStatesTable holds the schema information for the "mastery_states" table.
	MasteryStatesTable = &schema.Table{
		Name:       "mastery_states",
		Columns:    MasteryStatesColumns,
		PrimaryKey: []*schema.Column{MasteryStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masterystate_student_id_topic_id",
				Unique:  true,
				Columns: []*schema.Column{MasteryStatesColumns[1], MasteryStatesColumns[2]},
			},
			{
				Name:    "masterystate_student_id_due",
				Unique:  false,
				Columns: []*schema.Column{MasteryStatesColumns[1], MasteryStatesColumns[6]},
			},
		},
	}
	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "plan_id", Type: field.TypeString},
		{Name: "student_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "day_index", Type: field.TypeInt},
		{Name: "outcome", Type: field.TypeString},
		{Name: "performance_pct", Type: field.TypeFloat64, Default: 0},
		{Name: "quality", Type: field.TypeInt, Default: 0},
		{Name: "interval_days", Type: field.TypeInt, Default: 0},
		{Name: "easiness", Type: field.TypeFloat64, Default: 0},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       "review_events",
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[1]},
			},
			{
				Name:    "reviewevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[2]},
			},
			{
				Name:    "reviewevent_student_id_topic_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[4], ReviewEventsColumns[5]},
			},
			{
				Name:    "reviewevent_plan_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[3]},
			},
		},
	}
	// ScheduledSessionsColumns holds the columns for the "scheduled_sessions" table.
	ScheduledSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "plan_id", Type: field.TypeString},
		{Name: "day_index", Type: field.TypeInt},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeString},
		{Name: "estimated_mins", Type: field.TypeInt},
	}
	// ScheduledSessionsTable holds the schema information for the "scheduled_sessions" table.
	ScheduledSessionsTable = &schema.Table{
		Name:       "scheduled_sessions",
		Columns:    ScheduledSessionsColumns,
		PrimaryKey: []*schema.Column{ScheduledSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scheduledsession_plan_id_day_index",
				Unique:  false,
				Columns: []*schema.Column{ScheduledSessionsColumns[1], ScheduledSessionsColumns[2]},
			},
			{
				Name:    "scheduledsession_plan_id_day_index_topic_id",
				Unique:  true,
				Columns: []*schema.Column{ScheduledSessionsColumns[1], ScheduledSessionsColumns[2], ScheduledSessionsColumns[3]},
			},
		},
	}
	// StudyPlansColumns holds the columns for the "study_plans" table.
	StudyPlansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "plan_id", Type: field.TypeString, Unique: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "start_date", Type: field.TypeTime},
		{Name: "horizon_days", Type: field.TypeInt},
		{Name: "coverage_extended", Type: field.TypeBool, Default: false},
		{Name: "archived", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StudyPlansTable holds the schema information for the "study_plans" table.
	StudyPlansTable = &schema.Table{
		Name:       "study_plans",
		Columns:    StudyPlansColumns,
		PrimaryKey: []*schema.Column{StudyPlansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studyplan_plan_id",
				Unique:  false,
				Columns: []*schema.Column{StudyPlansColumns[1]},
			},
			{
				Name:    "studyplan_student_id_subject_id_archived",
				Unique:  false,
				Columns: []*schema.Column{StudyPlansColumns[2], StudyPlansColumns[3], StudyPlansColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		MasteryStatesTable,
		ReviewEventsTable,
		ScheduledSessionsTable,
		StudyPlansTable,
	}
)

func init() {
}
